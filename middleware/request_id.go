package middleware

import (
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/requestid"
)

const requestIdHeader = "X-Request-Id"

func RequestId() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			requestId := r.Header.Get(requestIdHeader)
			if requestId == "" {
				requestId = requestid.Next()
			}
			ctx := requestid.ToContext(r.Context(), requestId)
			w.Header().Set(requestIdHeader, requestId)
			return next(w, r.WithContext(ctx))
		}
	}
}
