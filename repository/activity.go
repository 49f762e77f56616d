package repository

import (
	"context"

	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const recentActivityLimit = 20

type Activity struct {
	db *gorm.DB
}

func NewActivity(db *gorm.DB) Activity {
	return Activity{db: db}
}

func (r Activity) Insert(ctx context.Context, activity entity.Activity) error {
	err := r.db.WithContext(ctx).Create(&activity).Error
	if err != nil {
		return errors.WithMessage(err, "insert activity")
	}
	return nil
}

func (r Activity) Recent(ctx context.Context) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(recentActivityLimit).
		Find(&activities).Error
	if err != nil {
		return nil, errors.WithMessage(err, "select recent activities")
	}
	return activities, nil
}
