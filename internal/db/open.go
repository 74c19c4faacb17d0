// Package db opens the gorm connection for the configured engine.
package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/designspec/designspec-web/internal/config"
	"github.com/designspec/designspec-web/internal/db/dsn"
	"github.com/designspec/designspec-web/internal/db/models"
	gormadapter "github.com/designspec/designspec-web/internal/logger/adapter/gorm"
)

const dataDirPerm = 0o750

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.Create(cfg)), nil
	default:
		return nil, config.ErrUnknownGormEngine
	}
}

// Open connects and migrates all models.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DB.GormEngine == config.EngineSQLite && cfg.DB.Path != "" && cfg.DB.Path != ":memory:" {
		if err = os.MkdirAll(filepath.Dir(cfg.DB.Path), dataDirPerm); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormadapter.New()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err = db.AutoMigrate(models.All()...); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return db, nil
}
