package models

type SubscriptionTier string
type ApplicationStatus string
type NotificationType string

const (
	TierBasic     SubscriptionTier = "basic"
	TierPremium   SubscriptionTier = "premium"
	TierUnlimited SubscriptionTier = "unlimited"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	NotificationTypeApplication NotificationType = "application"
	NotificationTypeJobStatus   NotificationType = "job_status"
	NotificationTypeSystem      NotificationType = "system"
)

// CategoryAll - сентинел "все категории" для unlimited-подписки
const CategoryAll = "all"

// JobCategories - фиксированный набор категорий вакансий
var JobCategories = []string{
	"Development",
	"Design",
	"Marketing",
	"Security",
	"Economics",
	"Management",
	"Research",
	"Community",
}

// SubscriptionPrices - цена каждого тарифа в APE токенах
var SubscriptionPrices = map[SubscriptionTier]float64{
	TierBasic:     5,  // 1 месяц, 1 категория
	TierPremium:   12, // 3 месяца, 3 категории
	TierUnlimited: 25, // 6 месяцев, все категории
}

// DurationMonths возвращает длительность подписки тарифа в месяцах.
func (t SubscriptionTier) DurationMonths() int {
	switch t {
	case TierPremium:
		return 3
	case TierUnlimited:
		return 6
	default:
		return 1
	}
}

// MaxCategories возвращает лимит категорий тарифа.
// Для unlimited лимит не действует (возвращается -1).
func (t SubscriptionTier) MaxCategories() int {
	switch t {
	case TierBasic:
		return 1
	case TierPremium:
		return 3
	default:
		return -1
	}
}

// Valid сообщает, известен ли тариф.
func (t SubscriptionTier) Valid() bool {
	switch t {
	case TierBasic, TierPremium, TierUnlimited:
		return true
	}
	return false
}

// Valid сообщает, допустим ли статус отклика.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// IsValidCategory проверяет принадлежность категории фиксированному набору.
func IsValidCategory(category string) bool {
	for _, c := range JobCategories {
		if c == category {
			return true
		}
	}
	return false
}
