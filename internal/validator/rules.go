package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"jobsfi_backend/internal/models"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Незарегистрированное правило - ошибка времени запуска
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'subscription_tier': тариф подписки валиден
	mustRegister("subscription_tier", validateSubscriptionTier)

	// 'notification_type': тип уведомления валиден
	mustRegister("notification_type", validateNotificationType)

	// 'job_category': категория из фиксированного набора
	mustRegister("job_category", validateJobCategory)
}

// --- Функции валидации ---

func validateSubscriptionTier(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Пустые значения обрабатывает 'required'
	}
	return models.SubscriptionTier(value).Valid()
}

func validateNotificationType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.NotificationType(value) {
	case models.NotificationTypeApplication, models.NotificationTypeJobStatus, models.NotificationTypeSystem:
		return true
	default:
		return false
	}
}

func validateJobCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.IsValidCategory(value)
}
