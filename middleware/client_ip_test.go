package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/stretchr/testify/require"
)

func TestClientIp(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.1:54321"
	require.Equal("10.0.0.1", middleware.ClientIp(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	require.Equal("203.0.113.7", middleware.ClientIp(req))
}
