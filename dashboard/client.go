package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/pkg/errors"
)

const clientTimeout = 30 * time.Second

// Client is a typed api client for the admin backend.
type Client struct {
	baseUrl string
	cli     *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		cli: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) Login(ctx context.Context, username string, password string) (*domain.LoginResponse, error) {
	resp := domain.LoginResponse{}
	err := c.call(ctx, http.MethodPost, "/api/admin/login", "", domain.LoginRequest{
		Username: username,
		Password: password,
	}, &resp, true)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Verify(ctx context.Context, token string) error {
	resp := domain.StatusResponse{}
	err := c.call(ctx, http.MethodPost, "/api/admin/verify", token, domain.VerifyRequest{Token: token}, &resp, false)
	if err != nil {
		return err
	}
	if resp.Status != domain.StatusSuccess {
		return errors.Errorf("verification rejected with status %q", resp.Status)
	}
	return nil
}

func (c *Client) Stats(ctx context.Context, token string) (*domain.StatsResponse, error) {
	resp := domain.StatsResponse{}
	err := c.call(ctx, http.MethodGet, "/api/admin/stats", token, nil, &resp, false)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Activity(ctx context.Context, token string) ([]domain.Activity, error) {
	resp := []domain.Activity{}
	err := c.call(ctx, http.MethodGet, "/api/admin/activity", token, nil, &resp, false)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	resp := []domain.Notification{}
	err := c.call(ctx, http.MethodGet, "/api/notifications", "", nil, &resp, false)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) PublishNotification(ctx context.Context, token string, req domain.PublishNotificationRequest) error {
	resp := domain.StatusResponse{}
	return c.call(ctx, http.MethodPost, "/api/admin/notification", token, req, &resp, false)
}

// TrackActivity is fire-and-forget, failures never surface to the caller.
func (c *Client) TrackActivity(ctx context.Context, action string, details *string) {
	req := domain.TrackActivityRequest{
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	_ = c.call(ctx, http.MethodPost, "/api/admin/track-activity", "", req, nil, false)
}

// call issues one request, no retries. When acceptAnyStatus is set the
// response body is decoded even on a non-2xx status, so the caller can
// inspect the server message.
func (c *Client) call(
	ctx context.Context,
	method string,
	path string,
	token string,
	body any,
	result any,
	acceptAnyStatus bool,
) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithMessage(err, "marshal request body")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+path, reqBody)
	if err != nil {
		return errors.WithMessage(err, "create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return errors.WithMessagef(err, "call %s %s", method, path)
	}
	defer resp.Body.Close()

	statusOk := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !statusOk && !acceptAnyStatus {
		return fmt.Errorf("%s %s responded with status %d", method, path, resp.StatusCode)
	}
	if result == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return errors.WithMessage(err, "decode response body")
	}
	return nil
}
