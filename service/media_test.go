package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/repository"
	"github.com/XPTOOLS/Tiktokdownloaderxp/service"
	"github.com/stretchr/testify/require"
)

type resolverMock struct {
	mediaUrl string
	err      error
	calls    int
}

func (m *resolverMock) Resolve(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.mediaUrl, m.err
}

type fetcherMock struct {
	content string
}

func (m *fetcherMock) Download(_ context.Context, _ string, w io.Writer) (int64, error) {
	written, err := w.Write([]byte(m.content))
	return int64(written), err
}

type cacheMock struct {
	store map[string]string
}

func (m *cacheMock) Get(_ context.Context, tiktokUrl string) (string, bool, error) {
	mediaUrl, ok := m.store[tiktokUrl]
	return mediaUrl, ok, nil
}

func (m *cacheMock) Set(_ context.Context, tiktokUrl string, mediaUrl string) error {
	m.store[tiktokUrl] = mediaUrl
	return nil
}

func newMediaService(t *testing.T, resolver *resolverMock, cache service.ResolveCache) service.Media {
	t.Helper()
	stats := service.NewStats(repository.NewStats(openTestDb(t)))
	return service.NewMedia(resolver, &fetcherMock{content: "video-bytes"}, cache, stats, log.NewNop())
}

func TestMediaResolveRejectsInvalidUrl(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	media := newMediaService(t, &resolverMock{}, nil)

	_, err := media.Resolve(context.Background(), "https://example.com/video", "1.2.3.4")
	require.ErrorIs(err, domain.ErrInvalidUrl)

	_, err = media.Resolve(context.Background(), "", "1.2.3.4")
	require.ErrorIs(err, domain.ErrInvalidUrl)
}

func TestMediaResolveUsesCache(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	resolver := &resolverMock{mediaUrl: "https://cdn.example.com/video.mp4"}
	cache := &cacheMock{store: map[string]string{}}
	media := newMediaService(t, resolver, cache)

	mediaUrl, err := media.Resolve(ctx, "https://vm.tiktok.com/abc", "1.2.3.4")
	require.NoError(err)
	require.Equal("https://cdn.example.com/video.mp4", mediaUrl)
	require.Equal(1, resolver.calls)

	// second call is served from the cache
	mediaUrl, err = media.Resolve(ctx, "https://vm.tiktok.com/abc", "1.2.3.4")
	require.NoError(err)
	require.Equal("https://cdn.example.com/video.mp4", mediaUrl)
	require.Equal(1, resolver.calls)
}
