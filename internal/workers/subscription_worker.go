package workers

import (
	"context"
	"log"
	"time"

	"jobsfi_backend/internal/repositories"
)

type SubscriptionWorker struct {
	subscriptionRepo repositories.SubscriptionRepository
	sweepInterval    time.Duration
}

func NewSubscriptionWorker(subscriptionRepo repositories.SubscriptionRepository, sweepInterval time.Duration) *SubscriptionWorker {
	return &SubscriptionWorker{
		subscriptionRepo: subscriptionRepo,
		sweepInterval:    sweepInterval,
	}
}

// Start запускает фоновые задачи для подписок
func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.sweepExpiredSubscriptions(ctx)
}

// sweepExpiredSubscriptions проходит по всем записям подписок.
// Find пересчитывает истечение при чтении и сам пере-сохраняет
// устаревшие записи, поэтому достаточно просто прочитать каждую.
func (w *SubscriptionWorker) sweepExpiredSubscriptions(ctx context.Context) {
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Subscription worker stopped")
			return
		case <-ticker.C:
			wallets, err := w.subscriptionRepo.Wallets()
			if err != nil {
				log.Printf("Error listing subscription wallets: %v", err)
				continue
			}
			swept := 0
			for _, wallet := range wallets {
				if _, err := w.subscriptionRepo.Find(wallet); err != nil {
					log.Printf("Error sweeping subscription for %s: %v", wallet, err)
					continue
				}
				swept++
			}
			if swept > 0 {
				log.Printf("Swept %d subscription records", swept)
			}
		}
	}
}
