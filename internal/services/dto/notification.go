package dto

import "jobsfi_backend/internal/models"

type CreateNotificationRequest struct {
	WalletAddress string                  `json:"walletAddress"`
	Type          models.NotificationType `json:"type" validate:"required,notification_type"`
	Title         string                  `json:"title" validate:"required,max=200"`
	Message       string                  `json:"message" validate:"max=2000"`
	Data          map[string]interface{}  `json:"data"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
}
