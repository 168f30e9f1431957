package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/services/dto"
)

func TestNotificationService_AddNotificationRecipients(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.notificationRepo)

	// 1. Явный получатель в запросе побеждает подключенный кошелек
	notification, err := svc.AddNotification("0xCONNECTED", &dto.CreateNotificationRequest{
		WalletAddress: "0xEXPLICIT",
		Type:          models.NotificationTypeSystem,
		Title:         "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xEXPLICIT", notification.WalletAddress)

	// 2. Без явного получателя используется подключенный кошелек
	notification, err = svc.AddNotification("0xCONNECTED", &dto.CreateNotificationRequest{
		Type:  models.NotificationTypeSystem,
		Title: "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xCONNECTED", notification.WalletAddress)

	// 3. Без какого-либо получателя запись молча отбрасывается
	notification, err = svc.AddNotification("", &dto.CreateNotificationRequest{
		Type:  models.NotificationTypeSystem,
		Title: "dropped",
	})
	require.NoError(t, err)
	assert.Nil(t, notification)
}

func TestNotificationService_AddNotificationSerializesData(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.notificationRepo)

	notification, err := svc.AddNotification("0xME", &dto.CreateNotificationRequest{
		Type:    models.NotificationTypeSystem,
		Title:   "payload",
		Message: "with data",
		Data:    map[string]interface{}{"jobId": 7},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, notification.ID)
	assert.False(t, notification.Read)
	assert.JSONEq(t, `{"jobId":7}`, string(notification.Data))
}

func TestNotificationService_GetNotificationsComputesUnread(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.notificationRepo)

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.AddNotification("0xME", &dto.CreateNotificationRequest{
			Type:  models.NotificationTypeSystem,
			Title: title,
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetNotifications("0xME")
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 3)
	assert.Equal(t, 3, resp.UnreadCount)

	require.NoError(t, svc.MarkAsRead("0xME", resp.Notifications[0].ID))

	resp, err = svc.GetNotifications("0xME")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.UnreadCount)

	require.NoError(t, svc.MarkAllAsRead("0xME"))
	count, err := svc.UnreadCount("0xME")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, svc.ClearNotifications("0xME"))
	resp, err = svc.GetNotifications("0xME")
	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
}
