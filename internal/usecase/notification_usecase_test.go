package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unilagyard/internal/domain/entity"
	"unilagyard/pkg/errors"
)

func TestMarkReadRejectsForeignNotification(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	require.NoError(t, notificationRepo.Create(context.Background(), &entity.Notification{
		UserID: "owner-1",
		Type:   "report",
		Title:  "Report resolved",
	}))

	uc := NewNotificationUseCase(notificationRepo)

	err := uc.MarkRead(context.Background(), "intruder-1", "notification-1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
	assert.False(t, notificationRepo.notifications[0].Read)
}

func TestMarkReadByOwner(t *testing.T) {
	notificationRepo := &fakeNotificationRepo{}
	require.NoError(t, notificationRepo.Create(context.Background(), &entity.Notification{
		UserID: "owner-1",
		Type:   "payment",
		Title:  "Payment confirmed",
	}))

	uc := NewNotificationUseCase(notificationRepo)

	require.NoError(t, uc.MarkRead(context.Background(), "owner-1", "notification-1"))
	assert.True(t, notificationRepo.notifications[0].Read)
}

func TestMarkReadMissingNotification(t *testing.T) {
	uc := NewNotificationUseCase(&fakeNotificationRepo{})

	err := uc.MarkRead(context.Background(), "owner-1", "gone")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
