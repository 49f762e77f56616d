package middleware

import (
	"errors"
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"go.uber.org/zap"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type Middleware func(next HandlerFunc) HandlerFunc

// Noop is used in place of limits that are not configured.
func Noop() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return next
	}
}

func Chain(handler HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

// Endpoint terminates the chain, turning handler errors into http responses.
func Endpoint(handler HandlerFunc, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			return
		}
		httpErr := httperrors.HttpError{}
		if !errors.As(err, &httpErr) {
			logger.Error(r.Context(), "unexpected error", zap.Error(err))
			httpErr = httperrors.New(http.StatusInternalServerError, err.Error(), err)
		}
		httpErr.WriteError(r.Context(), w, logger)
	}
}
