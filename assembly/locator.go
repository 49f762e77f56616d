package assembly

import (
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/cache"
	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"github.com/XPTOOLS/Tiktokdownloaderxp/database"
	"github.com/XPTOOLS/Tiktokdownloaderxp/handler"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/XPTOOLS/Tiktokdownloaderxp/repository"
	"github.com/XPTOOLS/Tiktokdownloaderxp/resolve"
	"github.com/XPTOOLS/Tiktokdownloaderxp/routes"
	"github.com/XPTOOLS/Tiktokdownloaderxp/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Locator struct {
	cfg      conf.Config
	db       *gorm.DB
	redisCli redis.UniversalClient // nil when redis is not configured
	logger   log.Logger
}

func NewLocator(cfg conf.Config, db *gorm.DB, redisCli redis.UniversalClient, logger log.Logger) Locator {
	return Locator{
		cfg:      cfg,
		db:       db,
		redisCli: redisCli,
		logger:   logger,
	}
}

func (l Locator) Handler() http.Handler {
	statsRepo := repository.NewStats(l.db)
	notificationRepo := repository.NewNotification(l.db)
	activityRepo := repository.NewActivity(l.db)

	statsService := service.NewStats(statsRepo)
	notificationService := service.NewNotification(notificationRepo)
	activityService := service.NewActivity(activityRepo)
	adminService := service.NewAdmin(
		l.cfg.Admin.Username,
		l.cfg.Admin.PasswordHash,
		l.cfg.Admin.JwtSecret,
		l.cfg.Admin.TokenTtl(),
	)

	var resolveCache service.ResolveCache
	if l.cfg.Caching.ResolvedUrlInSec > 0 {
		if l.redisCli != nil {
			resolveCache = repository.NewResolveCache(l.redisCli, l.cfg.Caching.ResolvedUrlTtl())
		} else {
			resolveCache = cache.NewResolvedUrl(l.cfg.Caching.ResolvedUrlTtl())
		}
	}
	resolver := resolve.NewResolver(l.cfg.Resolver.BaseUrl, l.cfg.Resolver.Timeout())
	mediaService := service.NewMedia(resolver, resolve.NewFetcher(), resolveCache, statsService, l.logger)

	dailyLimit := middleware.Noop()
	if l.cfg.Limits.DownloadsPerDay > 0 {
		dailyLimitService := service.NewDailyLimit(repository.NewDailyLimit(l.redisCli), l.cfg.Limits.DownloadsPerDay)
		dailyLimit = middleware.DailyLimit(dailyLimitService)
	}
	throttling := middleware.Noop()
	if l.cfg.Limits.RequestsPerSecond > 0 {
		throttlingService := service.NewThrottling(repository.NewThrottling(l.redisCli), l.cfg.Limits.RequestsPerSecond)
		throttling = middleware.Throttling(throttlingService)
	}

	controllers := routes.Controllers{
		Pages:        handler.NewPages(),
		Track:        handler.NewTrack(statsService),
		Notification: handler.NewNotification(notificationService),
		Media:        handler.NewMedia(mediaService, l.logger),
		Admin:        handler.NewAdmin(adminService, statsService, activityService),
		Export:       handler.NewExport(statsService, activityService),
		Stream:       handler.NewStream(statsService, activityService, l.logger),
		Health:       handler.NewHealth(database.NewPinger(l.db)),
		AdminAuth:    middleware.AdminAuthenticate(adminService),
		DailyLimit:   dailyLimit,
		Throttling:   throttling,
		Logger:       l.logger,
		RequestLogs:  l.cfg.Logging.RequestLogEnable,
	}
	return controllers.Handler()
}
