package apperrors

// Коды ошибок сгруппированные по доменам
const (
	// Идентификация кошелька
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"

	// Валидация
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Вакансии и отклики
	CodeJobNotFound         ErrorCode = "JOB_NOT_FOUND"
	CodeJobClosed           ErrorCode = "JOB_CLOSED"
	CodeApplicationNotFound ErrorCode = "APPLICATION_NOT_FOUND"

	// Подписки и платежи
	CodeNoActiveSubscription ErrorCode = "NO_ACTIVE_SUBSCRIPTION"
	CodePaymentInProgress    ErrorCode = "PAYMENT_IN_PROGRESS"
	CodeInvalidPaymentAmount ErrorCode = "INVALID_PAYMENT_AMOUNT"
	CodeInvalidTier          ErrorCode = "INVALID_TIER"

	// Уведомления
	CodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	// Системные ошибки
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
	CodeStorageError  ErrorCode = "STORAGE_ERROR"
)
