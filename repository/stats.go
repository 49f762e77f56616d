package repository

import (
	"context"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Stats struct {
	db *gorm.DB
}

func NewStats(db *gorm.DB) Stats {
	return Stats{db: db}
}

func (r Stats) Insert(ctx context.Context, event entity.StatEvent) error {
	err := r.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		return errors.WithMessage(err, "insert stat event")
	}
	return nil
}

func (r Stats) CountVisits(ctx context.Context) (int64, error) {
	return r.countVisitsBetween(ctx, time.Time{}, time.Time{})
}

func (r Stats) CountVisitsSince(ctx context.Context, since time.Time) (int64, error) {
	return r.countVisitsBetween(ctx, since, time.Time{})
}

// CountVisitsForDay counts visits within [dayStart, dayStart+24h).
func (r Stats) CountVisitsForDay(ctx context.Context, dayStart time.Time) (int64, error) {
	return r.countVisitsBetween(ctx, dayStart, dayStart.Add(24*time.Hour))
}

func (r Stats) countVisitsBetween(ctx context.Context, from time.Time, to time.Time) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&entity.StatEvent{}).
		Where("kind = ?", entity.StatKindVisit)
	if !from.IsZero() {
		query = query.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("created_at < ?", to)
	}

	var count int64
	err := query.Count(&count).Error
	if err != nil {
		return 0, errors.WithMessage(err, "count visits")
	}
	return count, nil
}

func (r Stats) CountByKind(ctx context.Context, kind string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.StatEvent{}).
		Where("kind = ?", kind).
		Count(&count).Error
	if err != nil {
		return 0, errors.WithMessagef(err, "count events of kind %s", kind)
	}
	return count, nil
}
