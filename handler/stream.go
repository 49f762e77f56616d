package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const streamInterval = 30 * time.Second

type streamSnapshot struct {
	Stats    *domain.StatsResponse `json:"stats"`
	Activity []domain.Activity     `json:"activity"`
}

type Stream struct {
	stats    StatsService
	activity ActivityService
	upgrader websocket.Upgrader
	logger   log.Logger
}

func NewStream(stats StatsService, activity ActivityService, logger log.Logger) *Stream {
	return &Stream{
		stats:    stats,
		activity: activity,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// the dashboard is served from the same origin, token auth happens upstream
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Live upgrades the connection and pushes dashboard snapshots on a fixed
// interval until the client goes away.
func (h *Stream) Live(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an error status
		return nil //nolint:nilerr
	}
	defer conn.Close()

	ctx := r.Context()
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		err := h.push(ctx, conn)
		if err != nil {
			h.logger.Debug(ctx, "stream push failed", zap.Error(err))
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-closed:
			return nil
		case <-ticker.C:
		}
	}
}

func (h *Stream) push(ctx context.Context, conn *websocket.Conn) error {
	summary, err := h.stats.Summary(ctx, time.Now())
	if err != nil {
		return errors.WithMessage(err, "stats summary")
	}
	activities, err := h.activity.Recent(ctx)
	if err != nil {
		return errors.WithMessage(err, "recent activity")
	}

	err = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err != nil {
		return errors.WithMessage(err, "set write deadline")
	}
	err = conn.WriteJSON(streamSnapshot{
		Stats:    summary,
		Activity: activities,
	})
	if err != nil {
		return errors.WithMessage(err, "write snapshot")
	}
	return nil
}
