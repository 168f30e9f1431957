package repositories

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/storage"
)

func activeSubscription(wallet string, categories []string, endDate time.Time) *models.Subscription {
	return &models.Subscription{
		WalletAddress:   wallet,
		Tier:            models.TierBasic,
		Categories:      categories,
		StartDate:       endDate.AddDate(0, -1, 0),
		EndDate:         endDate,
		TransactionHash: "0xdeadbeef",
		IsActive:        true,
	}
}

func TestSubscriptionRepository_FindAbsent(t *testing.T) {
	repo := NewSubscriptionRepository(newTestStore(t))

	_, err := repo.Find("0xNOBODY")
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}

func TestSubscriptionRepository_SaveAndFind(t *testing.T) {
	repo := NewSubscriptionRepository(newTestStore(t))

	subscription := activeSubscription("0xME", []string{"Design"}, time.Now().AddDate(0, 1, 0))
	require.NoError(t, repo.Save(subscription))

	got, err := repo.Find("0xME")
	require.NoError(t, err)
	assert.Equal(t, subscription.Tier, got.Tier)
	assert.Equal(t, subscription.Categories, got.Categories)
	assert.True(t, got.IsActive)
}

func TestSubscriptionRepository_LazyExpiryRecompute(t *testing.T) {
	store := newTestStore(t)

	// Запись пролежала в хранилище дольше endDate с устаревшим isActive=true
	now := time.Now()
	stale := activeSubscription("0xSTALE", []string{"Development"}, now.AddDate(0, 0, -1))
	require.NoError(t, NewSubscriptionRepository(store).Save(stale))

	repo := NewSubscriptionRepositoryWithClock(store, func() time.Time { return now })

	got, err := repo.Find("0xSTALE")
	require.NoError(t, err)
	assert.False(t, got.IsActive, "истекшая подписка должна читаться как неактивная")

	// Пересчет немедленно пере-сохранен: сырой документ тоже исправлен
	raw, err := store.Get(storage.SubscriptionKey("0xSTALE"))
	require.NoError(t, err)
	var persisted models.Subscription
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.False(t, persisted.IsActive)
}

func TestSubscriptionRepository_FindActiveForCategory(t *testing.T) {
	store := newTestStore(t)
	repo := NewSubscriptionRepository(store)
	future := time.Now().AddDate(0, 1, 0)

	require.NoError(t, repo.Save(activeSubscription("0xDEV", []string{"Development"}, future)))
	require.NoError(t, repo.Save(activeSubscription("0xALL", []string{models.CategoryAll}, future)))
	require.NoError(t, repo.Save(activeSubscription("0xDESIGN", []string{"Design"}, future)))

	expired := activeSubscription("0xEXPIRED", []string{"Development"}, time.Now().AddDate(0, 0, -1))
	require.NoError(t, repo.Save(expired))

	cancelled := activeSubscription("0xCANCELLED", []string{"Development"}, future)
	cancelled.IsActive = false
	require.NoError(t, repo.Save(cancelled))

	subscriptions, err := repo.FindActiveForCategory("Development")
	require.NoError(t, err)

	wallets := make([]string, 0, len(subscriptions))
	for _, s := range subscriptions {
		wallets = append(wallets, s.WalletAddress)
	}
	// "all" покрывает любую категорию; истекшие и отмененные не попадают
	assert.ElementsMatch(t, []string{"0xDEV", "0xALL"}, wallets)
}

func TestSubscriptionRepository_Wallets(t *testing.T) {
	repo := NewSubscriptionRepository(newTestStore(t))
	future := time.Now().AddDate(0, 1, 0)

	require.NoError(t, repo.Save(activeSubscription("0xA", []string{"Design"}, future)))
	require.NoError(t, repo.Save(activeSubscription("0xB", []string{"Design"}, future)))

	wallets, err := repo.Wallets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"0xA", "0xB"}, wallets)
}

func TestSubscriptionRepository_MalformedDocumentTreatedAsAbsent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put(storage.SubscriptionKey("0xBAD"), []byte("{broken")))

	repo := NewSubscriptionRepository(store)
	_, err := repo.Find("0xBAD")
	assert.ErrorIs(t, err, ErrSubscriptionNotFound)
}
