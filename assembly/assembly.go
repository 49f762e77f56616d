package assembly

import (
	"context"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/conf"
	"github.com/XPTOOLS/Tiktokdownloaderxp/database"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/server"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type Assembly struct {
	cfg      conf.Config
	logger   *log.Adapter
	db       *gorm.DB
	redisCli redis.UniversalClient
	server   *server.Http
}

func New(cfg conf.Config) (*Assembly, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, errors.WithMessage(err, "validate config")
	}

	logger, err := log.New(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		return nil, errors.WithMessage(err, "create logger")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, errors.WithMessage(err, "open database")
	}

	var redisCli redis.UniversalClient
	if cfg.Redis != nil {
		redisCli = redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs:    []string{cfg.Redis.Address},
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err = redisCli.Ping(pingCtx).Err()
		if err != nil {
			return nil, errors.WithMessage(err, "ping redis")
		}
	}

	locator := NewLocator(cfg, db, redisCli, logger)
	httpServer := server.NewHttp(cfg.Http, locator.Handler())

	return &Assembly{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		redisCli: redisCli,
		server:   httpServer,
	}, nil
}

func (a *Assembly) Logger() *log.Adapter {
	return a.logger
}

func (a *Assembly) Run(ctx context.Context) error {
	a.logger.Info(ctx, "starting http server", zap.String("bindAddress", a.cfg.Http.BindAddress))
	return a.server.ListenAndServe()
}

func (a *Assembly) Close(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error(ctx, "shutdown http server", zap.Error(err))
	}

	if a.redisCli != nil {
		err = a.redisCli.Close()
		if err != nil {
			a.logger.Error(ctx, "close redis client", zap.Error(err))
		}
	}

	sqlDb, err := a.db.DB()
	if err == nil {
		err = sqlDb.Close()
	}
	if err != nil {
		a.logger.Error(ctx, "close database", zap.Error(err))
	}

	_ = a.logger.Sync()
}
