package service

import (
	"context"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
)

type NotificationRepo interface {
	LatestActive(ctx context.Context) (*entity.Notification, error)
	Publish(ctx context.Context, notification entity.Notification) error
}

type Notification struct {
	repo NotificationRepo
}

func NewNotification(repo NotificationRepo) Notification {
	return Notification{repo: repo}
}

// Pending returns the active notification as a list of at most one element,
// matching the wire contract of the notifications endpoint.
func (s Notification) Pending(ctx context.Context) ([]domain.Notification, error) {
	notification, err := s.repo.LatestActive(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "latest active")
	}
	if notification == nil {
		return []domain.Notification{}, nil
	}
	return []domain.Notification{{
		Message:    notification.Message,
		ActionText: notification.ActionText,
		ActionUrl:  notification.ActionUrl,
		Timestamp:  notification.CreatedAt,
	}}, nil
}

// Publish replaces the currently active notification. Only one notification
// is ever active at a time.
func (s Notification) Publish(ctx context.Context, req domain.PublishNotificationRequest, sentBy string) error {
	if req.Message == "" {
		return errors.New("message is required")
	}
	err := s.repo.Publish(ctx, entity.Notification{
		Message:    req.Message,
		ActionText: req.ActionText,
		ActionUrl:  req.ActionUrl,
		SentBy:     sentBy,
	})
	if err != nil {
		return errors.WithMessage(err, "publish")
	}
	return nil
}
