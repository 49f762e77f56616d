package domain

import (
	"time"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type StatusResponse struct {
	Status string `json:"status"`
}

type TrackVisitRequest struct {
	Page      string `json:"page"`
	Timestamp string `json:"timestamp"`
}

type TrackDownloadRequest struct {
	Url       string `json:"url"`
	Timestamp string `json:"timestamp"`
}

type TrackSuccessfulDownloadRequest struct {
	Timestamp string `json:"timestamp"`
}

type Notification struct {
	Message    string    `json:"message"`
	ActionText *string   `json:"actionText"`
	ActionUrl  *string   `json:"actionUrl"`
	Timestamp  time.Time `json:"timestamp"`
}

type PublishNotificationRequest struct {
	Message    string  `json:"message"`
	ActionText *string `json:"actionText"`
	ActionUrl  *string `json:"actionUrl"`
	Timestamp  string  `json:"timestamp"`
}

type Activity struct {
	Action    string    `json:"action"`
	Details   *string   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

type TrackActivityRequest struct {
	Action    string  `json:"action"`
	Details   *string `json:"details"`
	Timestamp string  `json:"timestamp"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type StatsResponse struct {
	TotalVisits         int64      `json:"totalVisits"`
	TotalDownloads      int64      `json:"totalDownloads"`
	TodayVisits         int64      `json:"todayVisits"`
	SuccessfulDownloads int64      `json:"successfulDownloads"`
	VisitsData          VisitsData `json:"visitsData"`
}

type VisitsData struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type ResolveRequest struct {
	Url string `json:"url"`
}

type ResolveResponse struct {
	VideoUrl string `json:"videoUrl"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
}
