package dto

import "jobsfi_backend/internal/models"

type SubscribeRequest struct {
	Tier       models.SubscriptionTier `json:"tier" validate:"required,subscription_tier"`
	Categories []string                `json:"categories" validate:"dive,job_category"`
	Price      float64                 `json:"price" validate:"required,gt=0"`
}

// Plan - публичное описание тарифа (исходное приложение
// хранило эту таблицу прямо в странице подписки).
type Plan struct {
	Tier           models.SubscriptionTier `json:"tier"`
	Price          float64                 `json:"price"` // В APE токенах
	DurationMonths int                     `json:"durationMonths"`
	MaxCategories  int                     `json:"maxCategories"` // -1 = без лимита
}

type PlanListResponse struct {
	Plans []Plan `json:"plans"`
}

type SubscriptionResponse struct {
	Subscription *models.Subscription `json:"subscription"`
	IsSubscribed bool                 `json:"isSubscribed"`
	Categories   []string             `json:"subscribedCategories"`
}
