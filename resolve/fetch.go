package resolve

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/pkg/errors"
)

// Filename generates the attachment name for a saved video.
func Filename(now time.Time) string {
	return fmt.Sprintf("tiktok_video_%d.mp4", now.UnixMilli())
}

type Fetcher struct {
	cli *http.Client
}

func NewFetcher() Fetcher {
	return Fetcher{
		cli: &http.Client{},
	}
}

// Download streams the binary content of mediaUrl into w. The body is copied
// without buffering it whole, so repeated downloads do not accumulate memory.
func (f Fetcher) Download(ctx context.Context, mediaUrl string, w io.Writer) (int64, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaUrl, nil)
	if err != nil {
		return 0, errors.WithMessage(err, "create download request")
	}

	response, err := f.cli.Do(request)
	if err != nil {
		return 0, errors.WithMessage(err, "fetch media")
	}
	defer func() { _ = response.Body.Close() }()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return 0, domain.HttpStatusError{StatusCode: response.StatusCode}
	}

	written, err := io.Copy(w, response.Body)
	if err != nil {
		return written, errors.WithMessage(err, "copy media body")
	}

	return written, nil
}
