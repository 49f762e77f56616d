package middleware

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"go.uber.org/zap"
)

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Hijack is required by the websocket upgrade on /api/admin/stream.
func (w *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}

func Logger(logger log.Logger, enable bool) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		if !enable {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) error {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			err := next(sw, r)
			logger.Info(r.Context(), "http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("statusCode", sw.statusCode),
				zap.Duration("elapsed", time.Since(start)),
			)
			return err
		}
	}
}
