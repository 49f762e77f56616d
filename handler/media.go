package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/XPTOOLS/Tiktokdownloaderxp/resolve"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type MediaService interface {
	Resolve(ctx context.Context, tiktokUrl string, clientIp string) (string, error)
	Download(ctx context.Context, tiktokUrl string, clientIp string, w io.Writer) (int64, error)
}

type Media struct {
	service MediaService
	logger  log.Logger
}

func NewMedia(service MediaService, logger log.Logger) Media {
	return Media{
		service: service,
		logger:  logger,
	}
}

func (h Media) Resolve(w http.ResponseWriter, r *http.Request) error {
	req := domain.ResolveRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}

	videoUrl, err := h.service.Resolve(r.Context(), req.Url, middleware.ClientIp(r))
	if err != nil {
		return mediaError(err)
	}

	return writeJson(w, http.StatusOK, domain.ResolveResponse{VideoUrl: videoUrl})
}

// Download streams the resolved media as an attachment, so the browser
// saves the file instead of opening the player.
func (h Media) Download(w http.ResponseWriter, r *http.Request) error {
	tiktokUrl := r.URL.Query().Get("url")

	// headers must be written before the first body byte, so the
	// resolution happens here and only the copy can fail mid-flight
	w.Header().Set("Content-Type", "video/mp4")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, resolve.Filename(time.Now())))

	written, err := h.service.Download(r.Context(), tiktokUrl, middleware.ClientIp(r), w)
	if err != nil {
		if written > 0 {
			// response is already partially sent, nothing to report to the client
			h.logger.Error(r.Context(), "download interrupted", zap.Error(err), zap.Int64("written", written))
			return nil
		}
		w.Header().Del("Content-Type")
		w.Header().Del("Content-Disposition")
		return mediaError(err)
	}

	return nil
}

func mediaError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidUrl):
		return httperrors.New(http.StatusBadRequest, "invalid TikTok URL", err)
	case errors.Is(err, domain.ErrResolveTimeout):
		return httperrors.New(http.StatusGatewayTimeout, "resolver timed out", err)
	case errors.Is(err, domain.ErrNoMediaUrl):
		return httperrors.New(http.StatusBadGateway, "no video URL in resolver response", err)
	default:
		httpStatusErr := domain.HttpStatusError{}
		if errors.As(err, &httpStatusErr) {
			return httperrors.New(http.StatusBadGateway, httpStatusErr.Error(), err)
		}
		return err
	}
}
