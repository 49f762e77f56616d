package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/pkg/errors"
)

const maxResponseBodySize = 4 << 20

type Resolver struct {
	baseUrl string
	timeout time.Duration
	cli     *http.Client
}

func NewResolver(baseUrl string, timeout time.Duration) Resolver {
	return Resolver{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		timeout: timeout,
		cli:     &http.Client{},
	}
}

// Resolve calls the external resolver and extracts a playable media url.
// The call races against the configured timeout with a first-settle-wins
// policy: once the timer fires the operation returns domain.ErrResolveTimeout
// and a late response is discarded. The transport itself is not cancelled.
func (r Resolver) Resolve(ctx context.Context, tiktokUrl string) (string, error) {
	type outcome struct {
		mediaUrl string
		err      error
	}
	results := make(chan outcome, 1)
	go func() {
		mediaUrl, err := r.doResolve(ctx, tiktokUrl)
		results <- outcome{mediaUrl: mediaUrl, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case result := <-results:
		return result.mediaUrl, result.err
	case <-timer.C:
		return "", domain.ErrResolveTimeout
	}
}

func (r Resolver) doResolve(ctx context.Context, tiktokUrl string) (string, error) {
	requestUrl := fmt.Sprintf("%s/?url=%s", r.baseUrl, url.QueryEscape(tiktokUrl))
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestUrl, nil)
	if err != nil {
		return "", errors.WithMessage(err, "create resolver request")
	}

	response, err := r.cli.Do(request)
	if err != nil {
		return "", errors.WithMessage(err, "call resolver")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", domain.HttpStatusError{StatusCode: response.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBodySize))
	if err != nil {
		return "", errors.WithMessage(err, "read resolver response")
	}

	return ExtractMediaUrl(body)
}
