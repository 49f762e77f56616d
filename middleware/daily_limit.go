package middleware

import (
	"context"
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/pkg/errors"
)

type DailyLimitService interface {
	IncrementAndCheck(ctx context.Context, clientIp string) (bool, error)
}

func DailyLimit(service DailyLimitService) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			allow, err := service.IncrementAndCheck(r.Context(), ClientIp(r))
			if err != nil {
				return errors.WithMessage(err, "increment daily limit")
			}
			if !allow {
				return httperrors.New(http.StatusTooManyRequests, "daily download limit exceeded", nil)
			}
			return next(w, r)
		}
	}
}
