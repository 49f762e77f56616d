package repository

import (
	"context"

	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Notification struct {
	db *gorm.DB
}

func NewNotification(db *gorm.DB) Notification {
	return Notification{db: db}
}

// LatestActive returns the newest active notification or nil when there is none.
func (r Notification) LatestActive(ctx context.Context) (*entity.Notification, error) {
	notification := entity.Notification{}
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		First(&notification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WithMessage(err, "select latest active notification")
	}
	return &notification, nil
}

// Publish deactivates all previous notifications and inserts the new one
// in a single transaction.
func (r Notification) Publish(ctx context.Context, notification entity.Notification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&entity.Notification{}).
			Where("active = ?", true).
			Update("active", false).Error
		if err != nil {
			return errors.WithMessage(err, "deactivate previous notifications")
		}

		notification.Active = true
		err = tx.Create(&notification).Error
		if err != nil {
			return errors.WithMessage(err, "insert notification")
		}
		return nil
	})
	if err != nil {
		return errors.WithMessage(err, "publish notification")
	}
	return nil
}
