package models

import "time"

// Subscription - единственная (активная или истекшая) подписка кошелька.
// Хранится под ключом "jobsfi_subscription_<walletAddress>".
//
// Инвариант: IsActive обязан быть пересчитан в false при чтении,
// если now > EndDate (ленивый пересчет, см. SubscriptionRepository).
type Subscription struct {
	WalletAddress   string           `json:"walletAddress"`
	Tier            SubscriptionTier `json:"tier"`
	Categories      []string         `json:"categories"` // {"all"} для unlimited
	StartDate       time.Time        `json:"startDate"`
	EndDate         time.Time        `json:"endDate"`
	TransactionHash string           `json:"transactionHash"`
	IsActive        bool             `json:"isActive"`
}

// Expired сообщает, истек ли срок подписки.
func (s *Subscription) Expired(now time.Time) bool {
	return now.After(s.EndDate)
}

// CoversCategory сообщает, покрывает ли подписка категорию
// (напрямую или через сентинел "all"). Активность не проверяется.
func (s *Subscription) CoversCategory(category string) bool {
	for _, c := range s.Categories {
		if c == CategoryAll || c == category {
			return true
		}
	}
	return false
}
