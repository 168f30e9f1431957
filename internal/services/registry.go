package services

// ServiceContainer - контейнер всех сервисов приложения (DI).
type ServiceContainer struct {
	JobService          JobService
	SubscriptionService SubscriptionService
	NotificationService NotificationService
}
