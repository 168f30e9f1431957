package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsfi_backend/internal/middleware"
	"jobsfi_backend/internal/services"
	"jobsfi_backend/internal/services/dto"
)

type SubscriptionHandler struct {
	*BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base *BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		BaseHandler:         base,
		subscriptionService: subscriptionService,
	}
}

func (h *SubscriptionHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Тарифная таблица публична
	r.GET("/plans", h.GetPlans)

	subscription := r.Group("/subscription")
	subscription.Use(middleware.RequireWallet())
	{
		subscription.GET("", h.GetSubscription)
		subscription.POST("", h.Subscribe)
		subscription.DELETE("", h.CancelSubscription)
	}
}

func (h *SubscriptionHandler) GetPlans(c *gin.Context) {
	plans := h.subscriptionService.GetPlans()
	c.JSON(http.StatusOK, dto.PlanListResponse{Plans: plans})
}

// GetSubscription возвращает запись подписки кошелька.
// Отсутствие подписки - не ошибка: isSubscribed=false и null в теле.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.GetSubscription(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := dto.SubscriptionResponse{Subscription: subscription}
	if subscription != nil && subscription.IsActive {
		resp.IsSubscribed = true
		resp.Categories = subscription.Categories
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	subscription, err := h.subscriptionService.Subscribe(wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.CancelSubscription(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subscription)
}
