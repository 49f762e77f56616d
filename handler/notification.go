package handler

import (
	"context"
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/pkg/errors"
)

type NotificationService interface {
	Pending(ctx context.Context) ([]domain.Notification, error)
	Publish(ctx context.Context, req domain.PublishNotificationRequest, sentBy string) error
}

type Notification struct {
	service NotificationService
}

func NewNotification(service NotificationService) Notification {
	return Notification{
		service: service,
	}
}

// Pending returns the active notification as a list, empty when there is none.
func (h Notification) Pending(w http.ResponseWriter, r *http.Request) error {
	notifications, err := h.service.Pending(r.Context())
	if err != nil {
		return errors.WithMessage(err, "get pending notifications")
	}
	return writeJson(w, http.StatusOK, notifications)
}

func (h Notification) Publish(w http.ResponseWriter, r *http.Request) error {
	req := domain.PublishNotificationRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Message == "" {
		return httperrors.New(http.StatusBadRequest, "message is required", nil)
	}

	err = h.service.Publish(r.Context(), req, "admin")
	if err != nil {
		return errors.WithMessage(err, "publish notification")
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}
