package database

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Pinger struct {
	db *gorm.DB
}

func NewPinger(db *gorm.DB) Pinger {
	return Pinger{
		db: db,
	}
}

func (p Pinger) Ping(ctx context.Context) error {
	sqlDb, err := p.db.DB()
	if err != nil {
		return errors.WithMessage(err, "get sql db")
	}
	err = sqlDb.PingContext(ctx)
	if err != nil {
		return errors.WithMessage(err, "ping database")
	}
	return nil
}
