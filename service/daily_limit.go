package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

type DailyLimitRepo interface {
	Increment(ctx context.Context, clientIp string, today time.Time) (int64, error)
}

type DailyLimit struct {
	repo  DailyLimitRepo
	limit int64
}

func NewDailyLimit(repo DailyLimitRepo, limit int64) DailyLimit {
	return DailyLimit{
		repo:  repo,
		limit: limit,
	}
}

func (s DailyLimit) IncrementAndCheck(ctx context.Context, clientIp string) (bool, error) {
	if s.limit <= 0 {
		return true, nil
	}

	newValue, err := s.repo.Increment(ctx, clientIp, time.Now())
	if err != nil {
		return false, errors.WithMessage(err, "increment")
	}

	return newValue <= s.limit, nil
}
