package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	JobHandler          *JobHandler
	SubscriptionHandler *SubscriptionHandler
	NotificationHandler *NotificationHandler
}
