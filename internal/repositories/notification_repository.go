package repositories

import (
	"encoding/json"
	"errors"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationRepository interface {
	FindByWallet(walletAddress string) ([]models.Notification, error)
	// Create добавляет уведомление в начало списка получателя.
	Create(notification *models.Notification) error
	// MarkAsRead помечает уведомление прочитанным. Переход монотонный:
	// прочитанное уведомление снова непрочитанным не становится.
	MarkAsRead(walletAddress, id string) error
	MarkAllAsRead(walletAddress string) error
	// Clear удаляет весь список уведомлений кошелька.
	Clear(walletAddress string) error
	UnreadCount(walletAddress string) (int, error)

	// Фабричные методы типовых уведомлений (notification_factory.go)
	CreateApplicationNotification(creatorWallet, applicantName, jobTitle string, jobID, applicationID int) error
	CreateApplicationStatusNotification(applicant, jobTitle string, jobID, applicationID int, status models.ApplicationStatus) error
	CreateSubscriptionActivatedNotification(walletAddress string, tier models.SubscriptionTier, transactionHash string) error
	CreateSubscriptionCancelledNotification(walletAddress string) error
	CreateEarlyAccessJobNotification(walletAddress, category, jobTitle string, jobID int) error
}

type notificationRepository struct {
	store storage.Store
}

func NewNotificationRepository(store storage.Store) NotificationRepository {
	return &notificationRepository{store: store}
}

func (r *notificationRepository) load(walletAddress string) ([]models.Notification, error) {
	raw, err := r.store.Get(storage.NotificationsKey(walletAddress))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Notification{}, nil
		}
		return nil, err
	}

	var notifications []models.Notification
	if err := json.Unmarshal(raw, &notifications); err != nil {
		logger.Warn("malformed notifications document, falling back to empty",
			"wallet_address", walletAddress, "error", err)
		return []models.Notification{}, nil
	}
	return notifications, nil
}

func (r *notificationRepository) persist(walletAddress string, notifications []models.Notification) error {
	raw, err := json.Marshal(notifications)
	if err != nil {
		return err
	}
	return r.store.Put(storage.NotificationsKey(walletAddress), raw)
}

func (r *notificationRepository) FindByWallet(walletAddress string) ([]models.Notification, error) {
	return r.load(walletAddress)
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	notifications, err := r.load(notification.WalletAddress)
	if err != nil {
		return err
	}
	notifications = append([]models.Notification{*notification}, notifications...)
	return r.persist(notification.WalletAddress, notifications)
}

func (r *notificationRepository) MarkAsRead(walletAddress, id string) error {
	notifications, err := r.load(walletAddress)
	if err != nil {
		return err
	}
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			return r.persist(walletAddress, notifications)
		}
	}
	return ErrNotificationNotFound
}

func (r *notificationRepository) MarkAllAsRead(walletAddress string) error {
	notifications, err := r.load(walletAddress)
	if err != nil {
		return err
	}
	for i := range notifications {
		notifications[i].Read = true
	}
	return r.persist(walletAddress, notifications)
}

func (r *notificationRepository) Clear(walletAddress string) error {
	return r.persist(walletAddress, []models.Notification{})
}

func (r *notificationRepository) UnreadCount(walletAddress string) (int, error) {
	notifications, err := r.load(walletAddress)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
