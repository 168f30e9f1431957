package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/repositories"
	"jobsfi_backend/internal/services/dto"
)

type NotificationService interface {
	// AddNotification создает уведомление. Получатель - явный walletAddress
	// из запроса, иначе подключенный кошелек; без получателя запись
	// молча отбрасывается (возвращается nil, nil).
	AddNotification(connectedWallet string, req *dto.CreateNotificationRequest) (*models.Notification, error)
	GetNotifications(walletAddress string) (*dto.NotificationListResponse, error)
	UnreadCount(walletAddress string) (int, error)
	MarkAsRead(walletAddress, id string) error
	MarkAllAsRead(walletAddress string) error
	ClearNotifications(walletAddress string) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) AddNotification(connectedWallet string, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	recipient := req.WalletAddress
	if recipient == "" {
		recipient = connectedWallet
	}
	if recipient == "" {
		// Без адресата уведомление отбрасывается
		return nil, nil
	}

	var dataJSON datatypes.JSON
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification data: %w", err)
		}
		dataJSON = datatypes.JSON(raw)
	}

	notification := &models.Notification{
		ID:            uuid.NewString(),
		WalletAddress: recipient,
		Type:          req.Type,
		Title:         req.Title,
		Message:       req.Message,
		Data:          dataJSON,
		Read:          false,
		CreatedAt:     time.Now(),
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (s *notificationService) GetNotifications(walletAddress string) (*dto.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.FindByWallet(walletAddress)
	if err != nil {
		return nil, err
	}

	// Счетчик непрочитанных - производное значение
	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) UnreadCount(walletAddress string) (int, error) {
	return s.notificationRepo.UnreadCount(walletAddress)
}

func (s *notificationService) MarkAsRead(walletAddress, id string) error {
	return s.notificationRepo.MarkAsRead(walletAddress, id)
}

func (s *notificationService) MarkAllAsRead(walletAddress string) error {
	return s.notificationRepo.MarkAllAsRead(walletAddress)
}

func (s *notificationService) ClearNotifications(walletAddress string) error {
	return s.notificationRepo.Clear(walletAddress)
}
