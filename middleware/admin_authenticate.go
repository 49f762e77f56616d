package middleware

import (
	"net/http"
	"strings"

	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
)

type TokenVerifier interface {
	Verify(token string) error
}

func AdminAuthenticate(verifier TokenVerifier) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			token := bearerToken(r)
			err := verifier.Verify(token)
			if err != nil {
				return httperrors.New(http.StatusUnauthorized, "unauthorized", err)
			}
			return next(w, r)
		}
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		// the dashboard may also pass the token as a query parameter,
		// websocket clients can not set headers
		return r.URL.Query().Get("token")
	}
	return token
}
