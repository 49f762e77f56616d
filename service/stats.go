package service

import (
	"context"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/entity"
	"github.com/pkg/errors"
)

const chartDays = 7

type StatsRepo interface {
	Insert(ctx context.Context, event entity.StatEvent) error
	CountVisits(ctx context.Context) (int64, error)
	CountVisitsSince(ctx context.Context, since time.Time) (int64, error)
	CountVisitsForDay(ctx context.Context, dayStart time.Time) (int64, error)
	CountByKind(ctx context.Context, kind string) (int64, error)
}

type Stats struct {
	repo StatsRepo
}

func NewStats(repo StatsRepo) Stats {
	return Stats{repo: repo}
}

func (s Stats) RecordVisit(ctx context.Context, page string, ip string, userAgent string) error {
	if page == "" {
		page = "user"
	}
	err := s.repo.Insert(ctx, entity.StatEvent{
		Kind:      entity.StatKindVisit,
		Page:      page,
		Ip:        ip,
		UserAgent: userAgent,
	})
	if err != nil {
		return errors.WithMessage(err, "record visit")
	}
	return nil
}

func (s Stats) RecordDownload(ctx context.Context, url string, ip string) error {
	err := s.repo.Insert(ctx, entity.StatEvent{
		Kind: entity.StatKindDownload,
		Url:  url,
		Ip:   ip,
	})
	if err != nil {
		return errors.WithMessage(err, "record download")
	}
	return nil
}

func (s Stats) RecordSuccessfulDownload(ctx context.Context, ip string) error {
	err := s.repo.Insert(ctx, entity.StatEvent{
		Kind: entity.StatKindSuccessfulDownload,
		Ip:   ip,
	})
	if err != nil {
		return errors.WithMessage(err, "record successful download")
	}
	return nil
}

// Summary aggregates the dashboard counters and the visit series for the
// last seven days, oldest day first.
func (s Stats) Summary(ctx context.Context, now time.Time) (*domain.StatsResponse, error) {
	totalVisits, err := s.repo.CountVisits(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "count total visits")
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayVisits, err := s.repo.CountVisitsSince(ctx, todayStart)
	if err != nil {
		return nil, errors.WithMessage(err, "count today visits")
	}

	totalDownloads, err := s.repo.CountByKind(ctx, entity.StatKindDownload)
	if err != nil {
		return nil, errors.WithMessage(err, "count downloads")
	}

	successfulDownloads, err := s.repo.CountByKind(ctx, entity.StatKindSuccessfulDownload)
	if err != nil {
		return nil, errors.WithMessage(err, "count successful downloads")
	}

	labels := make([]string, 0, chartDays)
	data := make([]int64, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		day := todayStart.AddDate(0, 0, -i)
		dailyVisits, err := s.repo.CountVisitsForDay(ctx, day)
		if err != nil {
			return nil, errors.WithMessage(err, "count daily visits")
		}
		labels = append(labels, day.Format("01/02"))
		data = append(data, dailyVisits)
	}

	return &domain.StatsResponse{
		TotalVisits:         totalVisits,
		TotalDownloads:      totalDownloads,
		TodayVisits:         todayVisits,
		SuccessfulDownloads: successfulDownloads,
		VisitsData: domain.VisitsData{
			Labels: labels,
			Data:   data,
		},
	}, nil
}
