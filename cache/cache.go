package cache

import (
	"context"
	"sync"
	"time"
)

type item struct {
	mediaUrl  string
	expiredAt time.Time
}

// ResolvedUrl is an in-process fallback for the redis resolve cache,
// used when redis is not configured.
type ResolvedUrl struct {
	store    map[string]item
	lifeTime time.Duration
	lock     *sync.RWMutex
}

func NewResolvedUrl(lifeTime time.Duration) *ResolvedUrl {
	return &ResolvedUrl{
		store:    map[string]item{},
		lifeTime: lifeTime,
		lock:     &sync.RWMutex{},
	}
}

func (c *ResolvedUrl) Get(_ context.Context, tiktokUrl string) (string, bool, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	cached, ok := c.store[tiktokUrl]
	if !ok {
		return "", false, nil
	}

	if time.Now().After(cached.expiredAt) {
		return "", false, nil
	}

	return cached.mediaUrl, true, nil
}

func (c *ResolvedUrl) Set(_ context.Context, tiktokUrl string, mediaUrl string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.store[tiktokUrl] = item{
		mediaUrl:  mediaUrl,
		expiredAt: time.Now().Add(c.lifeTime),
	}
	return nil
}
