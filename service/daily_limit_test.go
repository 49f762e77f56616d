package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/XPTOOLS/Tiktokdownloaderxp/service"
	"github.com/stretchr/testify/require"
)

type dailyLimitRepoMock struct {
	counters map[string]int64
}

func (m *dailyLimitRepoMock) Increment(_ context.Context, clientIp string, _ time.Time) (int64, error) {
	m.counters[clientIp]++
	return m.counters[clientIp], nil
}

func TestDailyLimitIncrementAndCheck(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	repo := &dailyLimitRepoMock{counters: map[string]int64{}}
	limit := service.NewDailyLimit(repo, 3)

	for i := 0; i < 3; i++ {
		allow, err := limit.IncrementAndCheck(ctx, "1.2.3.4")
		require.NoError(err)
		require.True(allow)
	}

	allow, err := limit.IncrementAndCheck(ctx, "1.2.3.4")
	require.NoError(err)
	require.False(allow)

	// another client has its own counter
	allow, err = limit.IncrementAndCheck(ctx, "5.6.7.8")
	require.NoError(err)
	require.True(allow)
}

func TestDailyLimitDisabled(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	limit := service.NewDailyLimit(&dailyLimitRepoMock{counters: map[string]int64{}}, 0)
	for i := 0; i < 100; i++ {
		allow, err := limit.IncrementAndCheck(context.Background(), "1.2.3.4")
		require.NoError(err)
		require.True(allow)
	}
}
