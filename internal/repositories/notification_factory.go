package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jobsfi_backend/internal/models"
)

// Фабричные методы типовых уведомлений. Каждый собирает запись
// с предзаполненным текстом и payload и кладет ее получателю.

func (r *notificationRepository) newNotification(walletAddress string, nType models.NotificationType, title, message string, data map[string]interface{}) *models.Notification {
	var dataJSON datatypes.JSON
	if data != nil {
		if raw, err := json.Marshal(data); err == nil {
			dataJSON = datatypes.JSON(raw)
		}
	}
	return &models.Notification{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		Type:          nType,
		Title:         title,
		Message:       message,
		Data:          dataJSON,
		Read:          false,
		CreatedAt:     time.Now(),
	}
}

// CreateApplicationNotification уведомляет владельца вакансии о новом отклике.
func (r *notificationRepository) CreateApplicationNotification(creatorWallet, applicantName, jobTitle string, jobID, applicationID int) error {
	n := r.newNotification(creatorWallet, models.NotificationTypeApplication,
		"New Job Application",
		fmt.Sprintf("%s has applied to your job: %s", applicantName, jobTitle),
		map[string]interface{}{
			"jobId":         jobID,
			"applicationId": applicationID,
		})
	return r.Create(n)
}

// CreateApplicationStatusNotification уведомляет соискателя о решении по отклику.
func (r *notificationRepository) CreateApplicationStatusNotification(applicant, jobTitle string, jobID, applicationID int, status models.ApplicationStatus) error {
	title := "Application Status Update"
	message := fmt.Sprintf("Your application for %s has been reviewed. Unfortunately, the position has been filled.", jobTitle)
	if status == models.ApplicationStatusAccepted {
		title = "Application Accepted!"
		message = fmt.Sprintf("Your application for %s has been accepted! The employer will contact you soon.", jobTitle)
	}

	n := r.newNotification(applicant, models.NotificationTypeJobStatus, title, message,
		map[string]interface{}{
			"jobId":         jobID,
			"applicationId": applicationID,
			"status":        status,
		})
	return r.Create(n)
}

// CreateSubscriptionActivatedNotification подтверждает оформление подписки.
func (r *notificationRepository) CreateSubscriptionActivatedNotification(walletAddress string, tier models.SubscriptionTier, transactionHash string) error {
	n := r.newNotification(walletAddress, models.NotificationTypeSystem,
		"Subscription Activated",
		fmt.Sprintf("Your %s subscription has been activated! You'll now receive early alerts for new job postings.", tier),
		map[string]interface{}{
			"tier":            tier,
			"transactionHash": transactionHash,
		})
	return r.Create(n)
}

// CreateSubscriptionCancelledNotification подтверждает отмену подписки.
func (r *notificationRepository) CreateSubscriptionCancelledNotification(walletAddress string) error {
	n := r.newNotification(walletAddress, models.NotificationTypeSystem,
		"Subscription Cancelled",
		"Your subscription has been cancelled. You will no longer receive early job alerts.",
		nil)
	return r.Create(n)
}

// CreateEarlyAccessJobNotification - ранний алерт подписчику о новой вакансии
// его категории.
func (r *notificationRepository) CreateEarlyAccessJobNotification(walletAddress, category, jobTitle string, jobID int) error {
	n := r.newNotification(walletAddress, models.NotificationTypeSystem,
		"New Early Access Job",
		fmt.Sprintf("A new %s job is available for early access: %s", category, jobTitle),
		map[string]interface{}{
			"jobId":    jobID,
			"category": category,
		})
	return r.Create(n)
}
