// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/designspec/designspec-web/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EnginePostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s %s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	case config.EngineSQLite:
		return cfg.DB.Path
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			cfg.DB.Extras,
		)
	}
}

// SessionURI builds the connection URI the session storages expect.
// The mysql storage takes a go-sql-driver DSN, postgres takes a URL.
func SessionURI(cfg *config.Config) string {
	if cfg.DB.GormEngine == config.EnginePostgres {
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.DB.User, cfg.DB.Password),
			Host:   net.JoinHostPort(cfg.DB.Host, strconv.Itoa(cfg.DB.Port)),
			Path:   "/" + cfg.DB.Name,
		}

		return u.String()
	}

	return Create(cfg)
}
