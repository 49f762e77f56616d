package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidUrl         = errors.New("invalid tiktok url")
	ErrResolveTimeout     = errors.New("resolve timeout")
	ErrNoMediaUrl         = errors.New("no video url found in response")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid admin token")
)

// HttpStatusError reports a non-2xx reply from the external resolver.
type HttpStatusError struct {
	StatusCode int
}

func (e HttpStatusError) Error() string {
	return fmt.Sprintf("resolver responded with status %d", e.StatusCode)
}
