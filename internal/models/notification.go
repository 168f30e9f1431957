package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification - внутриплатформенное уведомление. Список хранится
// под ключом "jobsfi_notifications_<walletAddress>".
type Notification struct {
	ID            string           `json:"id"` // Случайный непрозрачный идентификатор
	WalletAddress string           `json:"walletAddress"`
	Type          NotificationType `json:"type"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Data          datatypes.JSON   `json:"data,omitempty"` // Произвольный payload
	Read          bool             `json:"read"`
	CreatedAt     time.Time        `json:"createdAt"`
}
