package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates the SQLite connection and runs migrations.
func Open(cfg conf.Database) (*gorm.DB, error) {
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return nil, errors.WithMessage(err, "create db dir")
		}
	}

	gormLogger := logger.Default
	if !cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "open database")
	}

	sqlDb, err := db.DB()
	if err != nil {
		return nil, errors.WithMessage(err, "get sql db")
	}
	sqlDb.SetMaxOpenConns(10)
	sqlDb.SetMaxIdleConns(5)
	sqlDb.SetConnMaxLifetime(time.Hour)

	_, _ = sqlDb.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDb.Exec("PRAGMA synchronous = NORMAL;")

	err = db.AutoMigrate(&entity.StatEvent{}, &entity.Notification{}, &entity.Activity{})
	if err != nil {
		return nil, errors.WithMessage(err, "migrate database")
	}

	return db, nil
}
