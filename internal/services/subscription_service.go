package services

import (
	"errors"
	"sync"
	"time"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/internal/models"
	"jobsfi_backend/internal/payments"
	"jobsfi_backend/internal/repositories"
	"jobsfi_backend/internal/services/dto"
	"jobsfi_backend/pkg/apperrors"
)

type SubscriptionService interface {
	// GetSubscription возвращает запись подписки кошелька (или nil).
	// isActive в возвращаемой записи уже пересчитан по endDate.
	GetSubscription(walletAddress string) (*models.Subscription, error)
	// Subscribe проводит симулированный платеж и перезаписывает запись
	// подписки кошелька новой.
	Subscribe(walletAddress string, req *dto.SubscribeRequest) (*models.Subscription, error)
	// CancelSubscription деактивирует существующую запись, сохраняя
	// остальные поля для истории.
	CancelSubscription(walletAddress string) (*models.Subscription, error)
	// IsProcessing сообщает, идет ли сейчас платеж/отмена для кошелька.
	IsProcessing(walletAddress string) bool
	// GetPlans возвращает тарифную таблицу.
	GetPlans() []dto.Plan
}

type subscriptionService struct {
	subscriptionRepo repositories.SubscriptionRepository
	notificationRepo repositories.NotificationRepository
	chain            payments.Provider

	// Платеж и отмена для одного кошелька не выполняются одновременно.
	// Замена advisory-флага isProcessing исходного приложения.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubscriptionService(
	subscriptionRepo repositories.SubscriptionRepository,
	notificationRepo repositories.NotificationRepository,
	chain payments.Provider,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: subscriptionRepo,
		notificationRepo: notificationRepo,
		chain:            chain,
		inFlight:         make(map[string]struct{}),
	}
}

func (s *subscriptionService) GetSubscription(walletAddress string) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.Find(walletAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return subscription, nil
}

func (s *subscriptionService) Subscribe(walletAddress string, req *dto.SubscribeRequest) (*models.Subscription, error) {
	if walletAddress == "" {
		return nil, apperrors.ErrWalletNotConnected.WithMessage("You must connect your wallet to subscribe")
	}
	if !req.Tier.Valid() {
		return nil, apperrors.ErrInvalidTier
	}
	if err := validateCategories(req.Tier, req.Categories); err != nil {
		return nil, err
	}
	if req.Price != models.SubscriptionPrices[req.Tier] {
		return nil, apperrors.ErrInvalidPaymentAmount
	}

	if !s.begin(walletAddress) {
		return nil, apperrors.ErrPaymentInProgress
	}
	defer s.end(walletAddress)

	transactionHash, err := s.chain.Pay(walletAddress, req.Price)
	if err != nil {
		return nil, err
	}

	categories := req.Categories
	if req.Tier == models.TierUnlimited {
		categories = []string{models.CategoryAll}
	}

	now := time.Now()
	subscription := &models.Subscription{
		WalletAddress:   walletAddress,
		Tier:            req.Tier,
		Categories:      categories,
		StartDate:       now,
		EndDate:         now.AddDate(0, req.Tier.DurationMonths(), 0),
		TransactionHash: transactionHash,
		IsActive:        true,
	}

	// Последняя запись побеждает: прошлая подписка кошелька перезаписывается
	if err := s.subscriptionRepo.Save(subscription); err != nil {
		return nil, err
	}

	if err := s.notificationRepo.CreateSubscriptionActivatedNotification(
		walletAddress, subscription.Tier, transactionHash); err != nil {
		logger.Warn("failed to enqueue subscription notification",
			"wallet_address", walletAddress, "error", err)
	}

	logger.Info("subscription activated",
		"wallet_address", walletAddress,
		"tier", subscription.Tier,
		"months", req.Tier.DurationMonths())
	return subscription, nil
}

func (s *subscriptionService) CancelSubscription(walletAddress string) (*models.Subscription, error) {
	if walletAddress == "" {
		return nil, apperrors.ErrWalletNotConnected
	}

	subscription, err := s.subscriptionRepo.Find(walletAddress)
	if err != nil {
		if errors.Is(err, repositories.ErrSubscriptionNotFound) {
			return nil, apperrors.ErrNoActiveSubscription
		}
		return nil, err
	}

	if !s.begin(walletAddress) {
		return nil, apperrors.ErrPaymentInProgress
	}
	defer s.end(walletAddress)

	if err := s.chain.Cancel(walletAddress, subscription.TransactionHash); err != nil {
		return nil, err
	}

	// Запись не удаляется: поля сохраняются для отображения истории
	subscription.IsActive = false
	if err := s.subscriptionRepo.Save(subscription); err != nil {
		return nil, err
	}

	if err := s.notificationRepo.CreateSubscriptionCancelledNotification(walletAddress); err != nil {
		logger.Warn("failed to enqueue cancellation notification",
			"wallet_address", walletAddress, "error", err)
	}

	logger.Info("subscription cancelled", "wallet_address", walletAddress)
	return subscription, nil
}

func (s *subscriptionService) IsProcessing(walletAddress string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[walletAddress]
	return ok
}

func (s *subscriptionService) GetPlans() []dto.Plan {
	tiers := []models.SubscriptionTier{models.TierBasic, models.TierPremium, models.TierUnlimited}
	plans := make([]dto.Plan, 0, len(tiers))
	for _, tier := range tiers {
		plans = append(plans, dto.Plan{
			Tier:           tier,
			Price:          models.SubscriptionPrices[tier],
			DurationMonths: tier.DurationMonths(),
			MaxCategories:  tier.MaxCategories(),
		})
	}
	return plans
}

func (s *subscriptionService) begin(walletAddress string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[walletAddress]; ok {
		return false
	}
	s.inFlight[walletAddress] = struct{}{}
	return true
}

func (s *subscriptionService) end(walletAddress string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, walletAddress)
}

// validateCategories - централизованная проверка лимита категорий тарифа.
func validateCategories(tier models.SubscriptionTier, categories []string) error {
	if tier == models.TierUnlimited {
		return nil
	}
	if len(categories) == 0 {
		return apperrors.NewBadRequestError("Please select at least one category")
	}
	if tier == models.TierBasic && len(categories) > 1 {
		return apperrors.NewBadRequestError("Basic tier only allows 1 category")
	}
	if tier == models.TierPremium && len(categories) > 3 {
		return apperrors.NewBadRequestError("Premium tier only allows 3 categories")
	}
	for _, category := range categories {
		if !models.IsValidCategory(category) {
			return apperrors.NewBadRequestError("Unknown job category: " + category)
		}
	}
	return nil
}
