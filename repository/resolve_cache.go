package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ResolveCache stores resolved media urls keyed by the shared tiktok url.
type ResolveCache struct {
	cli redis.UniversalClient
	ttl time.Duration
}

func NewResolveCache(cli redis.UniversalClient, ttl time.Duration) ResolveCache {
	return ResolveCache{
		cli: cli,
		ttl: ttl,
	}
}

func (r ResolveCache) Get(ctx context.Context, tiktokUrl string) (string, bool, error) {
	value, err := r.cli.Get(ctx, r.key(tiktokUrl)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.WithMessage(err, "get")
	}
	return value, true, nil
}

func (r ResolveCache) Set(ctx context.Context, tiktokUrl string, mediaUrl string) error {
	err := r.cli.Set(ctx, r.key(tiktokUrl), mediaUrl, r.ttl).Err()
	if err != nil {
		return errors.WithMessage(err, "set")
	}
	return nil
}

func (r ResolveCache) key(tiktokUrl string) string {
	return fmt.Sprintf("resolved_url:%s", tiktokUrl)
}
