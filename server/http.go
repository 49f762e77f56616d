package server

import (
	"context"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"github.com/pkg/errors"
)

const defaultTimeout = 60 * time.Second

type Http struct {
	srv *http.Server
}

func NewHttp(cfg conf.Http, handler http.Handler) *Http {
	readTimeout := defaultTimeout
	if cfg.ReadTimeoutInSec > 0 {
		readTimeout = time.Duration(cfg.ReadTimeoutInSec) * time.Second
	}
	writeTimeout := defaultTimeout
	if cfg.WriteTimeoutInSec > 0 {
		writeTimeout = time.Duration(cfg.WriteTimeoutInSec) * time.Second
	}
	if cfg.MaxRequestBodySize > 0 {
		next := handler
		maxSize := cfg.MaxRequestBodySize
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxSize)
			next.ServeHTTP(w, r)
		})
	}
	return &Http{
		srv: &http.Server{
			Addr:         cfg.BindAddress,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}
}

func (s *Http) ListenAndServe() error {
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithMessage(err, "listen and serve")
	}
	return nil
}

func (s *Http) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	if err != nil {
		return errors.WithMessage(err, "shutdown http server")
	}
	return nil
}
