package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/httperrors"
	"github.com/XPTOOLS/Tiktokdownloaderxp/middleware"
	"github.com/pkg/errors"
)

const adminLoginAction = "Admin Login"

type AdminService interface {
	Login(username string, password string) (string, error)
	Verify(token string) error
}

type ActivityService interface {
	Record(ctx context.Context, action string, details *string, ip string) error
	Recent(ctx context.Context) ([]domain.Activity, error)
}

type Admin struct {
	service  AdminService
	stats    StatsService
	activity ActivityService
}

func NewAdmin(service AdminService, stats StatsService, activity ActivityService) Admin {
	return Admin{
		service:  service,
		stats:    stats,
		activity: activity,
	}
}

func (h Admin) Login(w http.ResponseWriter, r *http.Request) error {
	req := domain.LoginRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}

	token, err := h.service.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return httperrors.NewWithBody(http.StatusUnauthorized, domain.LoginResponse{
			Status:  domain.StatusError,
			Message: "Invalid credentials",
		}, err)
	case err != nil:
		return errors.WithMessage(err, "login")
	}

	// journal entry must not fail the login itself
	_ = h.activity.Record(r.Context(), adminLoginAction, &req.Username, middleware.ClientIp(r))

	return writeJson(w, http.StatusOK, domain.LoginResponse{
		Status:  domain.StatusSuccess,
		Message: "Login successful",
		Token:   token,
	})
}

// Verify accepts the token either in the json body or as a bearer header.
func (h Admin) Verify(w http.ResponseWriter, r *http.Request) error {
	req := domain.VerifyRequest{}
	_ = readJson(r, &req)
	if req.Token == "" {
		req.Token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}

	err := h.service.Verify(req.Token)
	if err != nil {
		return httperrors.NewWithBody(http.StatusUnauthorized, domain.StatusResponse{
			Status: domain.StatusError,
		}, err)
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}

func (h Admin) Stats(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.stats.Summary(r.Context(), time.Now())
	if err != nil {
		return errors.WithMessage(err, "stats summary")
	}
	return writeJson(w, http.StatusOK, summary)
}

func (h Admin) Activity(w http.ResponseWriter, r *http.Request) error {
	activities, err := h.activity.Recent(r.Context())
	if err != nil {
		return errors.WithMessage(err, "recent activity")
	}
	return writeJson(w, http.StatusOK, activities)
}

func (h Admin) TrackActivity(w http.ResponseWriter, r *http.Request) error {
	req := domain.TrackActivityRequest{}
	err := readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Action == "" {
		return httperrors.New(http.StatusBadRequest, "action is required", nil)
	}

	err = h.activity.Record(r.Context(), req.Action, req.Details, middleware.ClientIp(r))
	if err != nil {
		return errors.WithMessage(err, "record activity")
	}

	return writeJson(w, http.StatusOK, domain.StatusResponse{Status: domain.StatusSuccess})
}
