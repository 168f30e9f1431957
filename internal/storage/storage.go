package storage

import "errors"

// Ключи локального хранилища. Значения - JSON-документы,
// в том же формате, что исходное приложение писало в localStorage.
const (
	KeyJobs         = "jobsfi"
	KeyApplications = "jobsfi_applications"

	subscriptionKeyPrefix  = "jobsfi_subscription_"
	notificationsKeyPrefix = "jobsfi_notifications_"
)

var ErrKeyNotFound = errors.New("storage: key not found")

// SubscriptionKey возвращает ключ подписки кошелька.
func SubscriptionKey(walletAddress string) string {
	return subscriptionKeyPrefix + walletAddress
}

// NotificationsKey возвращает ключ списка уведомлений кошелька.
func NotificationsKey(walletAddress string) string {
	return notificationsKeyPrefix + walletAddress
}

// SubscriptionKeyPrefix - префикс для обхода всех подписок (фан-аут, sweeper).
func SubscriptionKeyPrefix() string {
	return subscriptionKeyPrefix
}

// WalletFromSubscriptionKey извлекает адрес кошелька из ключа подписки.
func WalletFromSubscriptionKey(key string) string {
	if len(key) <= len(subscriptionKeyPrefix) {
		return ""
	}
	return key[len(subscriptionKeyPrefix):]
}

// Store - durable key-value слой, единственный механизм персистентности.
type Store interface {
	// Get возвращает значение ключа или ErrKeyNotFound.
	Get(key string) ([]byte, error)
	// Put записывает значение ключа (перезаписывая существующее).
	Put(key string, value []byte) error
	// Delete удаляет ключ. Отсутствие ключа не является ошибкой.
	Delete(key string) error
	// Keys возвращает все ключи с данным префиксом.
	Keys(prefix string) ([]string, error)
}
