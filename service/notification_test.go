package service_test

import (
	"context"
	"testing"

	"github.com/XPTOOLS/Tiktokdownloaderxp/domain"
	"github.com/XPTOOLS/Tiktokdownloaderxp/repository"
	"github.com/XPTOOLS/Tiktokdownloaderxp/service"
	"github.com/stretchr/testify/require"
)

func strPtr(value string) *string {
	return &value
}

func TestNotificationPublishKeepsSingleActive(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	ctx := context.Background()

	db := openTestDb(t)
	notifications := service.NewNotification(repository.NewNotification(db))

	pending, err := notifications.Pending(ctx)
	require.NoError(err)
	require.Empty(pending)

	err = notifications.Publish(ctx, domain.PublishNotificationRequest{
		Message: "first announcement",
	}, "admin")
	require.NoError(err)

	err = notifications.Publish(ctx, domain.PublishNotificationRequest{
		Message:    "second announcement",
		ActionText: strPtr("Open"),
		ActionUrl:  strPtr("https://example.com"),
	}, "admin")
	require.NoError(err)

	pending, err = notifications.Pending(ctx)
	require.NoError(err)
	require.Len(pending, 1)
	require.Equal("second announcement", pending[0].Message)
	require.NotNil(pending[0].ActionText)
	require.Equal("Open", *pending[0].ActionText)
}

func TestNotificationPublishRequiresMessage(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	db := openTestDb(t)
	notifications := service.NewNotification(repository.NewNotification(db))

	err := notifications.Publish(context.Background(), domain.PublishNotificationRequest{}, "admin")
	require.Error(err)
}
