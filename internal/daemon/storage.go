package daemon

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	sessionmysql "github.com/gofiber/storage/mysql/v2"
	sessionpostgres "github.com/gofiber/storage/postgres/v3"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db/dsn"
	"github.com/designspec/designspec-web/internal/web/session/redisstore"
)

const (
	storageMemory = "memory"
	storageRedis  = "redis"

	sessionTable = "sessions"
)

// sessionStorageKind returns the configured session storage. Empty follows
// the database engine, sqlite keeps sessions in memory.
func sessionStorageKind(cfg *config.Config) string {
	if kind := cfg.Webserver.Session.Storage; kind != "" {
		return kind
	}

	switch cfg.DB.GormEngine {
	case config.EngineMySQL, config.EnginePostgres:
		return cfg.DB.GormEngine
	default:
		return storageMemory
	}
}

// newSessionStorage opens the session storage backend.
func newSessionStorage(cfg *config.Config) (fiber.Storage, error) {
	switch sessionStorageKind(cfg) {
	case config.EngineMySQL:
		return sessionmysql.New(sessionmysql.Config{
			ConnectionURI: dsn.SessionURI(cfg),
			Table:         sessionTable,
		}), nil
	case config.EnginePostgres:
		return sessionpostgres.New(sessionpostgres.Config{
			ConnectionURI: dsn.SessionURI(cfg),
			Table:         sessionTable,
		}), nil
	case storageRedis:
		return redisstore.New(cfg.Webserver.Session.Redis) //nolint:wrapcheck
	case storageMemory:
		return memory.New(), nil
	default:
		return nil, config.ErrUnknownSessionStorage
	}
}
