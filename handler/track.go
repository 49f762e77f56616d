package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/pkg/errors"
)

type StatsService interface {
	RecordVisit(ctx context.Context, page string, ip string, userAgent string) error
	RecordDownload(ctx context.Context, url string, ip string) error
	RecordSuccessfulDownload(ctx context.Context, ip string) error
	Summary(ctx context.Context, now time.Time) (*domain.StatsResponse, error)
}

type Track struct {
	service StatsService
}

func NewTrack(service StatsService) Track {
	return Track{
		service: service,
	}
}

func (h Track) Visit(w http.ResponseWriter, r *http.Request) error {
	req := domain.TrackVisitRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}

	err = h.service.RecordVisit(r.Context(), req.Page, middleware.ClientIp(r), r.UserAgent())
	if err != nil {
		return errors.WithMessage(err, "record visit")
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}

func (h Track) Download(w http.ResponseWriter, r *http.Request) error {
	req := domain.TrackDownloadRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}

	err = h.service.RecordDownload(r.Context(), req.Url, middleware.ClientIp(r))
	if err != nil {
		return errors.WithMessage(err, "record download")
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}

func (h Track) SuccessfulDownload(w http.ResponseWriter, r *http.Request) error {
	req := domain.TrackSuccessfulDownloadRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}

	err = h.service.RecordSuccessfulDownload(r.Context(), middleware.ClientIp(r))
	if err != nil {
		return errors.WithMessage(err, "record successful download")
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}
