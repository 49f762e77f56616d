package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/pkg/errors"
)

type ThrottlingService interface {
	AllowRateLimit(ctx context.Context, clientIp string) (*domain.RateLimitResult, error)
}

func Throttling(service ThrottlingService) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			result, err := service.AllowRateLimit(r.Context(), ClientIp(r))
			if err != nil {
				return errors.WithMessage(err, "check rate limit")
			}
			if !result.Allow {
				if result.RetryAfter > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(int(result.RetryAfter.Seconds())))
				}
				return httperrors.New(http.StatusTooManyRequests, "too many requests", nil)
			}
			return next(w, r)
		}
	}
}
