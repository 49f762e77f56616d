package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
)

type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type Health struct {
	database DatabasePinger
}

func NewHealth(database DatabasePinger) Health {
	return Health{
		database: database,
	}
}

func (h Health) Status(w http.ResponseWriter, r *http.Request) error {
	databaseStatus := "connected"
	err := h.database.Ping(r.Context())
	if err != nil {
		databaseStatus = "disconnected"
	}

	return writeJson(w, http.StatusOK, domain.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  databaseStatus,
	})
}
