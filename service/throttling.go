package service

import (
	"context"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/pkg/errors"
)

type ThrottlingRepo interface {
	IsAllowRequestPerSecond(ctx context.Context, clientIp string, rate int) (*domain.RateLimitResult, error)
}

type Throttling struct {
	repo ThrottlingRepo
	rate int
}

func NewThrottling(repo ThrottlingRepo, rate int) Throttling {
	return Throttling{
		repo: repo,
		rate: rate,
	}
}

func (s Throttling) AllowRateLimit(ctx context.Context, clientIp string) (*domain.RateLimitResult, error) {
	if s.rate <= 0 {
		return &domain.RateLimitResult{
			Allow:      true,
			Remaining:  -1,
			RetryAfter: -1,
		}, nil
	}

	result, err := s.repo.IsAllowRequestPerSecond(ctx, clientIp, s.rate)
	if err != nil {
		return nil, errors.WithMessage(err, "is allow request per second")
	}

	return result, nil
}
