package routes

import (
	"net/http"

	"github.com/XPTOOLS/Tiktokdownloaderxp/handler"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/gorilla/mux"
)

type Controllers struct {
	Pages        handler.Pages
	Track        handler.Track
	Notification handler.Notification
	Media        handler.Media
	Admin        handler.Admin
	Export       handler.Export
	Stream       *handler.Stream
	Health       handler.Health

	AdminAuth   middleware.Middleware
	DailyLimit  middleware.Middleware
	Throttling  middleware.Middleware
	Logger      log.Logger
	RequestLogs bool
}

func (c Controllers) Handler() http.Handler {
	router := mux.NewRouter()

	common := []middleware.Middleware{
		middleware.RequestId(),
		middleware.Logger(c.Logger, c.RequestLogs),
	}
	limited := append(append([]middleware.Middleware{}, common...), c.Throttling, c.DailyLimit)
	adminOnly := append(append([]middleware.Middleware{}, common...), c.AdminAuth)

	endpoint := func(handlerFunc middleware.HandlerFunc, middlewares []middleware.Middleware) http.HandlerFunc {
		return middleware.Endpoint(middleware.Chain(handlerFunc, middlewares...), c.Logger)
	}

	router.HandleFunc("/", endpoint(c.Pages.Index, common)).Methods(http.MethodGet)
	router.HandleFunc("/user.html", endpoint(c.Pages.User, common)).Methods(http.MethodGet)
	router.HandleFunc("/admin", endpoint(c.Pages.Admin, common)).Methods(http.MethodGet)
	router.HandleFunc("/login", endpoint(c.Pages.Login, common)).Methods(http.MethodGet)

	router.HandleFunc("/api/track-visit", endpoint(c.Track.Visit, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/track-download", endpoint(c.Track.Download, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/track-successful-download", endpoint(c.Track.SuccessfulDownload, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/notifications", endpoint(c.Notification.Pending, common)).Methods(http.MethodGet)

	router.HandleFunc("/api/resolve", endpoint(c.Media.Resolve, limited)).Methods(http.MethodPost)
	router.HandleFunc("/api/download", endpoint(c.Media.Download, limited)).Methods(http.MethodGet)

	router.HandleFunc("/api/admin/login", endpoint(c.Admin.Login, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/verify", endpoint(c.Admin.Verify, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/stats", endpoint(c.Admin.Stats, adminOnly)).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/activity", endpoint(c.Admin.Activity, adminOnly)).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/notification", endpoint(c.Notification.Publish, adminOnly)).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/track-activity", endpoint(c.Admin.TrackActivity, common)).Methods(http.MethodPost)
	router.HandleFunc("/api/admin/export", endpoint(c.Export.Dashboard, adminOnly)).Methods(http.MethodGet)
	router.HandleFunc("/api/admin/stream", endpoint(c.Stream.Live, adminOnly)).Methods(http.MethodGet)

	router.HandleFunc("/api/health", endpoint(c.Health.Status, common)).Methods(http.MethodGet)

	return router
}
