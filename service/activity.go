package service

import (
	"context"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
)

type ActivityRepo interface {
	Insert(ctx context.Context, activity entity.Activity) error
	Recent(ctx context.Context) ([]entity.Activity, error)
}

type Activity struct {
	repo ActivityRepo
}

func NewActivity(repo ActivityRepo) Activity {
	return Activity{repo: repo}
}

func (s Activity) Record(ctx context.Context, action string, details *string, ip string) error {
	if action == "" {
		return errors.New("action is required")
	}
	err := s.repo.Insert(ctx, entity.Activity{
		Action:  action,
		Details: details,
		Ip:      ip,
	})
	if err != nil {
		return errors.WithMessage(err, "insert activity")
	}
	return nil
}

func (s Activity) Recent(ctx context.Context) ([]domain.Activity, error) {
	activities, err := s.repo.Recent(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "recent activities")
	}
	result := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		result = append(result, domain.Activity{
			Action:    activity.Action,
			Details:   activity.Details,
			Timestamp: activity.CreatedAt,
		})
	}
	return result, nil
}
