package repositories

import (
	"encoding/json"
	"errors"
	"time"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type SubscriptionRepository interface {
	// Find возвращает запись подписки кошелька или ErrSubscriptionNotFound.
	// Истекшая запись с устаревшим isActive=true исправляется при чтении
	// и немедленно пере-сохраняется.
	Find(walletAddress string) (*models.Subscription, error)
	// Save перезаписывает запись подписки кошелька.
	Save(subscription *models.Subscription) error
	// FindActiveForCategory возвращает все активные подписки, покрывающие
	// категорию (напрямую или через "all"). Источник фан-аута уведомлений.
	FindActiveForCategory(category string) ([]models.Subscription, error)
	// Wallets возвращает адреса всех кошельков, у которых есть запись подписки.
	Wallets() ([]string, error)
}

type subscriptionRepository struct {
	store storage.Store
	now   func() time.Time
}

func NewSubscriptionRepository(store storage.Store) SubscriptionRepository {
	return &subscriptionRepository{store: store, now: time.Now}
}

// NewSubscriptionRepositoryWithClock - конструктор с подменяемыми часами (тесты).
func NewSubscriptionRepositoryWithClock(store storage.Store, now func() time.Time) SubscriptionRepository {
	return &subscriptionRepository{store: store, now: now}
}

func (r *subscriptionRepository) Find(walletAddress string) (*models.Subscription, error) {
	raw, err := r.store.Get(storage.SubscriptionKey(walletAddress))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	var subscription models.Subscription
	if err := json.Unmarshal(raw, &subscription); err != nil {
		logger.Warn("malformed subscription document, treating as absent",
			"wallet_address", walletAddress, "error", err)
		return nil, ErrSubscriptionNotFound
	}

	// Ленивый пересчет истечения: запись могла пролежать в хранилище
	// с isActive=true дольше своего endDate. Хранимой копии без этого
	// пересчета доверять нельзя.
	if subscription.IsActive && subscription.Expired(r.now()) {
		subscription.IsActive = false
		if err := r.Save(&subscription); err != nil {
			return nil, err
		}
	}

	return &subscription, nil
}

func (r *subscriptionRepository) Save(subscription *models.Subscription) error {
	raw, err := json.Marshal(subscription)
	if err != nil {
		return err
	}
	return r.store.Put(storage.SubscriptionKey(subscription.WalletAddress), raw)
}

func (r *subscriptionRepository) FindActiveForCategory(category string) ([]models.Subscription, error) {
	wallets, err := r.Wallets()
	if err != nil {
		return nil, err
	}

	var result []models.Subscription
	for _, wallet := range wallets {
		subscription, err := r.Find(wallet)
		if err != nil {
			if errors.Is(err, ErrSubscriptionNotFound) {
				continue
			}
			return nil, err
		}
		if subscription.IsActive && subscription.CoversCategory(category) {
			result = append(result, *subscription)
		}
	}
	return result, nil
}

func (r *subscriptionRepository) Wallets() ([]string, error) {
	keys, err := r.store.Keys(storage.SubscriptionKeyPrefix())
	if err != nil {
		return nil, err
	}
	var wallets []string
	for _, key := range keys {
		if wallet := storage.WalletFromSubscriptionKey(key); wallet != "" {
			wallets = append(wallets, wallet)
		}
	}
	return wallets, nil
}
