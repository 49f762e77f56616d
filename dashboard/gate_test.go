package dashboard_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/dashboard"
	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type memoryTokenStore struct {
	token string
}

func (s *memoryTokenStore) Load() (string, error) {
	return s.token, nil
}

func (s *memoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *memoryTokenStore) Delete() error {
	s.token = ""
	return nil
}

type apiMock struct {
	loginResp    *domain.LoginResponse
	loginErr     error
	verifyErr    error
	verifyCalls  atomic.Int32
	statsCalls   atomic.Int32
	tracked      atomic.Int32
	trackedLast  atomic.Value
	activityList []domain.Activity
}

func (m *apiMock) Login(_ context.Context, _ string, _ string) (*domain.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *apiMock) Verify(_ context.Context, _ string) error {
	m.verifyCalls.Add(1)
	return m.verifyErr
}

func (m *apiMock) Stats(_ context.Context, _ string) (*domain.StatsResponse, error) {
	m.statsCalls.Add(1)
	return &domain.StatsResponse{TotalVisits: 42}, nil
}

func (m *apiMock) Activity(_ context.Context, _ string) ([]domain.Activity, error) {
	return m.activityList, nil
}

func (m *apiMock) TrackActivity(_ context.Context, action string, _ *string) {
	m.tracked.Add(1)
	m.trackedLast.Store(action)
}

func newGate(api dashboard.Api, tokens dashboard.TokenStore, redirects *atomic.Int32) *dashboard.Gate {
	return dashboard.NewGate(dashboard.GateConfig{
		Api:          api,
		Tokens:       tokens,
		Redirect:     func() { redirects.Add(1) },
		PollInterval: 50 * time.Millisecond,
		Logger:       log.NewNop(),
	})
}

func TestGateBootstrapWithoutToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{}
	redirects := atomic.Int32{}
	gate := newGate(api, &memoryTokenStore{}, &redirects)

	require.NoError(gate.Bootstrap(context.Background()))
	require.Equal(dashboard.Unauthenticated, gate.State())
	require.EqualValues(1, redirects.Load())
	require.EqualValues(0, api.verifyCalls.Load())
}

func TestGateBootstrapVerifyFailureDeletesToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{verifyErr: errors.New("unauthorized")}
	tokens := &memoryTokenStore{token: "stale"}
	redirects := atomic.Int32{}
	gate := newGate(api, tokens, &redirects)

	require.NoError(gate.Bootstrap(context.Background()))
	require.Equal(dashboard.Unauthenticated, gate.State())
	require.Empty(tokens.token)
	require.EqualValues(1, redirects.Load())
	// verification is attempted exactly once, no retry
	require.EqualValues(1, api.verifyCalls.Load())
}

func TestGateBootstrapStartsPollers(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{}
	redirects := atomic.Int32{}
	gate := newGate(api, &memoryTokenStore{token: "valid"}, &redirects)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(gate.Bootstrap(ctx))
	require.Equal(dashboard.Authenticated, gate.State())

	require.Eventually(func() bool {
		return api.statsCalls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	time.Sleep(100 * time.Millisecond)
	settled := api.statsCalls.Load()
	time.Sleep(150 * time.Millisecond)
	require.Equal(settled, api.statsCalls.Load())
}

func TestGateLoginStoresToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{loginResp: &domain.LoginResponse{
		Status: domain.StatusSuccess,
		Token:  "issued-token",
	}}
	tokens := &memoryTokenStore{}
	redirects := atomic.Int32{}
	gate := newGate(api, tokens, &redirects)

	require.NoError(gate.Login(context.Background(), "admin", "secret123"))
	require.Equal("issued-token", tokens.token)
	require.EqualValues(1, api.tracked.Load())
	require.Equal("Admin Login Success", api.trackedLast.Load())
}

func TestGateLoginFallbackToken(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{loginResp: &domain.LoginResponse{Status: domain.StatusSuccess}}
	tokens := &memoryTokenStore{}
	redirects := atomic.Int32{}
	gate := newGate(api, tokens, &redirects)

	require.NoError(gate.Login(context.Background(), "admin", "secret123"))
	require.Equal("admin_token", tokens.token)
}

func TestGateLoginFailureRecordsAttempt(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{loginResp: &domain.LoginResponse{
		Status:  domain.StatusError,
		Message: "Invalid credentials",
	}}
	tokens := &memoryTokenStore{}
	redirects := atomic.Int32{}
	gate := newGate(api, tokens, &redirects)

	err := gate.Login(context.Background(), "admin", "wrong")
	require.EqualError(err, "Invalid credentials")
	require.Empty(tokens.token)
	require.EqualValues(1, api.tracked.Load())
	require.Equal("failed_login", api.trackedLast.Load())
}

func TestGateLogout(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	api := &apiMock{}
	tokens := &memoryTokenStore{token: "valid"}
	redirects := atomic.Int32{}
	gate := newGate(api, tokens, &redirects)

	gate.Logout(context.Background())
	require.Empty(tokens.token)
	require.Equal(dashboard.Unauthenticated, gate.State())
	require.EqualValues(1, redirects.Load())
}
