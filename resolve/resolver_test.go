package resolve_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/resolve"
	"github.com/stretchr/testify/require"
)

func TestResolverResolve(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal("https://vm.tiktok.com/abc", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"videoUrl":"https://cdn.example.com/video.mp4"}`))
	}))
	defer srv.Close()

	resolver := resolve.NewResolver(srv.URL, 15*time.Second)
	mediaUrl, err := resolver.Resolve(context.Background(), "https://vm.tiktok.com/abc")
	require.NoError(err)
	require.Equal("https://cdn.example.com/video.mp4", mediaUrl)
}

func TestResolverTimeout(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	responded := atomic.Bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		responded.Store(true)
		_, _ = w.Write([]byte(`{"videoUrl":"https://cdn.example.com/video.mp4"}`))
	}))
	defer srv.Close()

	resolver := resolve.NewResolver(srv.URL, 100*time.Millisecond)
	started := time.Now()
	_, err := resolver.Resolve(context.Background(), "https://vm.tiktok.com/abc")
	require.ErrorIs(err, domain.ErrResolveTimeout)
	require.Less(time.Since(started), 400*time.Millisecond)
	// the late response is discarded, not awaited
	require.False(responded.Load())
}

func TestResolverUpstreamError(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	resolver := resolve.NewResolver(srv.URL, 15*time.Second)
	_, err := resolver.Resolve(context.Background(), "https://vm.tiktok.com/abc")
	httpStatusErr := domain.HttpStatusError{}
	require.ErrorAs(err, &httpStatusErr)
	require.Equal(http.StatusBadGateway, httpStatusErr.StatusCode)
}

func TestFetcherDownload(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	content := bytes.Repeat([]byte("video"), 1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(content)
	}))
	defer srv.Close()

	buffer := bytes.Buffer{}
	written, err := resolve.NewFetcher().Download(context.Background(), srv.URL, &buffer)
	require.NoError(err)
	require.EqualValues(len(content), written)
	require.Equal(content, buffer.Bytes())
}

func TestFilename(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1700000000123)
	require.Equal(t, "tiktok_video_1700000000123.mp4", resolve.Filename(now))
}
