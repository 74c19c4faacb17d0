package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be mysql, postgres or sqlite")

	// ErrUnknownSessionStorage error if config webserver.session.storage is not supported.
	ErrUnknownSessionStorage = errors.New("toml config webserver.session.storage must be mysql, postgres, memory or redis")

	// ErrSessionStorageEngineMismatch error if a database session storage differs from db.gormEngine.
	ErrSessionStorageEngineMismatch = errors.New("toml config webserver.session.storage mysql or postgres must match db.gormEngine")

	// ErrEmptyGatePattern error if a gate rule has no pattern.
	ErrEmptyGatePattern = errors.New("toml config gate.rules pattern can not be empty")
)
