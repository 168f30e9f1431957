package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobsfi_backend/internal/middleware"
	"jobsfi_backend/internal/repositories"
	"jobsfi_backend/internal/services"
	"jobsfi_backend/internal/services/dto"
	"jobsfi_backend/pkg/apperrors"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.RequireWallet())
	{
		notifications.GET("", h.GetNotifications)
		notifications.GET("/unread-count", h.GetUnreadCount)
		notifications.POST("", h.CreateNotification)
		notifications.PUT("/:notificationId/read", h.MarkAsRead)
		notifications.PUT("/read-all", h.MarkAllAsRead)
		notifications.DELETE("", h.ClearNotifications)
	}
}

func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	resp, err := h.notificationService.GetNotifications(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unreadCount": count})
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notification, err := h.notificationService.AddNotification(wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if notification == nil {
		// Без адресата уведомление отброшено
		c.JSON(http.StatusOK, gin.H{"message": "Notification dropped: no recipient"})
		return
	}

	c.JSON(http.StatusCreated, notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	notificationID := c.Param("notificationId")
	if err := h.notificationService.MarkAsRead(wallet, notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			apperrors.HandleError(c, apperrors.ErrNotificationNotFound)
			return
		}
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllAsRead(wallet); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) ClearNotifications(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	if err := h.notificationService.ClearNotifications(wallet); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
