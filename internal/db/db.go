// Package db opens the menu storage for the configured engine.
package db

import (
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/storenav/storenav/internal/config"
	"github.com/storenav/storenav/internal/db/dsn"
	"github.com/storenav/storenav/internal/db/models"
)

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.Engine {
	case config.EngineSQLite, "":
		return sqlite.Open(dsn.Create(cfg)), nil
	case config.EngineMySQL:
		return mysql.Open(dsn.Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(dsn.Create(cfg)), nil
	default:
		return nil, errors.Wrap(config.ErrUnknownDBEngine, cfg.DB.Engine)
	}
}

// Open connects to the database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{}
	if !cfg.DevMode {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect %s database", cfg.DB.Engine)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.NavLink{}); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	return nil
}
