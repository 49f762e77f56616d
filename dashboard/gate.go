package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// fallbackToken mirrors the literal the legacy backend issued before
	// signed tokens, the server still accepts it on verification.
	fallbackToken = "admin_token"

	defaultPollInterval = 30 * time.Second

	failedLoginAction     = "failed_login"
	successfulLoginAction = "Admin Login Success"
)

type State string

const (
	Unauthenticated State = "unauthenticated"
	Verifying       State = "verifying"
	Authenticated   State = "authenticated"
)

type Api interface {
	Login(ctx context.Context, username string, password string) (*domain.LoginResponse, error)
	Verify(ctx context.Context, token string) error
	Stats(ctx context.Context, token string) (*domain.StatsResponse, error)
	Activity(ctx context.Context, token string) ([]domain.Activity, error)
	TrackActivity(ctx context.Context, action string, details *string)
}

// Gate drives the admin session: it verifies the stored token once on
// bootstrap, runs the dashboard pollers while authenticated and redirects
// to the login view when the session is gone.
type Gate struct {
	api          Api
	tokens       TokenStore
	redirect     func()
	onStats      func(*domain.StatsResponse)
	onActivity   func([]domain.Activity)
	pollInterval time.Duration
	logger       log.Logger

	lock  sync.Mutex
	state State
}

type GateConfig struct {
	Api          Api
	Tokens       TokenStore
	Redirect     func()
	OnStats      func(*domain.StatsResponse)
	OnActivity   func([]domain.Activity)
	PollInterval time.Duration
	Logger       log.Logger
}

func NewGate(cfg GateConfig) *Gate {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Gate{
		api:          cfg.Api,
		tokens:       cfg.Tokens,
		redirect:     cfg.Redirect,
		onStats:      cfg.OnStats,
		onActivity:   cfg.OnActivity,
		pollInterval: pollInterval,
		logger:       cfg.Logger,
		state:        Unauthenticated,
	}
}

func (g *Gate) State() State {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.state
}

// Bootstrap verifies the stored token exactly once. On success the stats
// and activity pollers start, each on its own independent timer, until the
// context is cancelled. On failure the token is deleted and the redirect
// hook is invoked.
func (g *Gate) Bootstrap(ctx context.Context) error {
	token, err := g.tokens.Load()
	if err != nil {
		return errors.WithMessage(err, "load token")
	}
	if token == "" {
		g.setState(Unauthenticated)
		g.redirect()
		return nil
	}

	g.setState(Verifying)
	err = g.api.Verify(ctx, token)
	if err != nil {
		g.logger.Debug(ctx, "token verification failed", zap.Error(err))
		g.setState(Unauthenticated)
		_ = g.tokens.Delete()
		g.redirect()
		return nil
	}

	g.setState(Authenticated)
	go g.poll(ctx, token, g.pollStats)
	go g.poll(ctx, token, g.pollActivity)
	return nil
}

// Login attempts the credentials once. A non-success outcome returns the
// server-provided message (or a generic one) as an error and best-effort
// records the failed attempt.
func (g *Gate) Login(ctx context.Context, username string, password string) error {
	resp, err := g.api.Login(ctx, username, password)
	if err != nil {
		g.logger.Debug(ctx, "login call failed", zap.Error(err))
		g.api.TrackActivity(ctx, failedLoginAction, &username)
		return errors.New("login failed, please try again")
	}
	if resp.Status != domain.StatusSuccess {
		g.api.TrackActivity(ctx, failedLoginAction, &username)
		message := resp.Message
		if message == "" {
			message = "login failed, please try again"
		}
		return errors.New(message)
	}

	token := resp.Token
	if token == "" {
		token = fallbackToken
	}
	err = g.tokens.Save(token)
	if err != nil {
		return errors.WithMessage(err, "save token")
	}
	g.api.TrackActivity(ctx, successfulLoginAction, &username)
	return nil
}

// Logout deletes the token and redirects, regardless of any error.
func (g *Gate) Logout(ctx context.Context) {
	err := g.tokens.Delete()
	if err != nil {
		g.logger.Warn(ctx, "delete token", zap.Error(err))
	}
	g.setState(Unauthenticated)
	g.redirect()
}

// poll fires on a fixed interval. Each tick runs in its own goroutine,
// overlapping ticks are not coalesced.
func (g *Gate) poll(ctx context.Context, token string, tick func(ctx context.Context, token string)) {
	tick(ctx, token)

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go tick(ctx, token)
		}
	}
}

func (g *Gate) pollStats(ctx context.Context, token string) {
	stats, err := g.api.Stats(ctx, token)
	if err != nil {
		g.logger.Debug(ctx, "stats poll failed", zap.Error(err))
		return
	}
	if g.onStats != nil {
		g.onStats(stats)
	}
}

func (g *Gate) pollActivity(ctx context.Context, token string) {
	activity, err := g.api.Activity(ctx, token)
	if err != nil {
		g.logger.Debug(ctx, "activity poll failed", zap.Error(err))
		return
	}
	if g.onActivity != nil {
		g.onActivity(activity)
	}
}

func (g *Gate) setState(state State) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.state = state
}
