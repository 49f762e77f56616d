package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/cache"
	"github.com/stretchr/testify/require"
)

func TestGetBasic(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cache := cache.NewResolvedUrl(24 * time.Hour)
	err := cache.Set(context.Background(), "https://vm.tiktok.com/abc", "https://cdn.example.com/video.mp4")
	require.NoError(err)

	mediaUrl, ok, err := cache.Get(context.Background(), "https://vm.tiktok.com/abc")
	require.NoError(err)
	require.True(ok)
	require.EqualValues("https://cdn.example.com/video.mp4", mediaUrl)

	_, ok, err = cache.Get(context.Background(), "https://vm.tiktok.com/other")
	require.NoError(err)
	require.False(ok)
}

func TestGetExpired(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	cache := cache.NewResolvedUrl(500 * time.Millisecond)
	err := cache.Set(context.Background(), "https://vm.tiktok.com/abc", "https://cdn.example.com/video.mp4")
	require.NoError(err)

	time.Sleep(1 * time.Second)

	mediaUrl, ok, err := cache.Get(context.Background(), "https://vm.tiktok.com/abc")
	require.NoError(err)
	require.False(ok)
	require.Empty(mediaUrl)
}
