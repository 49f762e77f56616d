package service

import (
	"context"
	"io"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/resolve"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type UrlResolver interface {
	Resolve(ctx context.Context, tiktokUrl string) (string, error)
}

type MediaFetcher interface {
	Download(ctx context.Context, mediaUrl string, w io.Writer) (int64, error)
}

type ResolveCache interface {
	Get(ctx context.Context, tiktokUrl string) (string, bool, error)
	Set(ctx context.Context, tiktokUrl string, mediaUrl string) error
}

// Media orchestrates the resolution and delivery flow: validate the link,
// record the attempt, resolve through the external worker (with cache) and
// stream the binary content back.
type Media struct {
	resolver UrlResolver
	fetcher  MediaFetcher
	cache    ResolveCache // nil when redis is not configured
	stats    Stats
	logger   log.Logger
}

func NewMedia(resolver UrlResolver, fetcher MediaFetcher, cache ResolveCache, stats Stats, logger log.Logger) Media {
	return Media{
		resolver: resolver,
		fetcher:  fetcher,
		cache:    cache,
		stats:    stats,
		logger:   logger,
	}
}

func (s Media) Resolve(ctx context.Context, tiktokUrl string, clientIp string) (string, error) {
	if tiktokUrl == "" || !resolve.IsValidTikTokUrl(tiktokUrl) {
		return "", domain.ErrInvalidUrl
	}

	// attempt tracking must never fail the user flow
	err := s.stats.RecordDownload(ctx, tiktokUrl, clientIp)
	if err != nil {
		s.logger.Error(ctx, "record download attempt", zap.Error(err))
	}

	if s.cache != nil {
		mediaUrl, ok, err := s.cache.Get(ctx, tiktokUrl)
		if err != nil {
			s.logger.Error(ctx, "resolve cache get", zap.Error(err))
		}
		if ok {
			return mediaUrl, nil
		}
	}

	mediaUrl, err := s.resolver.Resolve(ctx, tiktokUrl)
	if err != nil {
		return "", errors.WithMessage(err, "resolve")
	}

	if s.cache != nil {
		err = s.cache.Set(ctx, tiktokUrl, mediaUrl)
		if err != nil {
			s.logger.Error(ctx, "resolve cache set", zap.Error(err))
		}
	}

	return mediaUrl, nil
}

// Download resolves the link and copies the media content into w. The
// successful download signal is recorded best effort after the copy.
func (s Media) Download(ctx context.Context, tiktokUrl string, clientIp string, w io.Writer) (int64, error) {
	mediaUrl, err := s.Resolve(ctx, tiktokUrl, clientIp)
	if err != nil {
		return 0, err
	}

	written, err := s.fetcher.Download(ctx, mediaUrl, w)
	if err != nil {
		return written, errors.WithMessage(err, "download media")
	}

	err = s.stats.RecordSuccessfulDownload(ctx, clientIp)
	if err != nil {
		s.logger.Error(ctx, "record successful download", zap.Error(err))
	}

	return written, nil
}
