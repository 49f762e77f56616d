package repository

import (
	"context"
	"fmt"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/go-redis/redis_rate/v10"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type Throttling struct {
	cli *redis_rate.Limiter
}

func NewThrottling(cli redis.UniversalClient) Throttling {
	return Throttling{
		cli: redis_rate.NewLimiter(cli),
	}
}

func (r Throttling) IsAllowRequestPerSecond(ctx context.Context, clientIp string, rate int) (*domain.RateLimitResult, error) {
	result, err := r.cli.Allow(ctx, r.key(clientIp), redis_rate.PerSecond(rate))
	if err != nil {
		return nil, errors.WithMessage(err, "redis_rate allow")
	}
	return &domain.RateLimitResult{
		Allow:      result.Allowed > 0,
		Remaining:  result.Remaining,
		RetryAfter: result.RetryAfter,
	}, nil
}

func (r Throttling) key(clientIp string) string {
	return fmt.Sprintf("throttling:%s", clientIp)
}
