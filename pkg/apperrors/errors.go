package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode - тип для кодов ошибок
type ErrorCode string

// AppError - основная структура ошибки приложения
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Конструктор
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// С цепочкой ошибок
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  e.Message,
		Details:  details,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:     e.Code,
		Message:  message,
		Err:      e.Err,
		HTTPCode: e.HTTPCode,
	}
}

// Для маршалинга в JSON
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is - обертка над стандартной функцией errors.Is
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As - обертка над стандартной функцией errors.As
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Предопределенные ошибки
var (
	// Кошелек
	ErrWalletNotConnected = New(CodeUnauthenticated, "You must connect your wallet first", http.StatusUnauthorized)

	// Валидация
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)

	// Вакансии
	ErrJobNotFound         = New(CodeJobNotFound, "Job not found", http.StatusNotFound)
	ErrJobClosed           = New(CodeJobClosed, "Job is no longer open for applications", http.StatusBadRequest)
	ErrApplicationNotFound = New(CodeApplicationNotFound, "Application not found", http.StatusNotFound)

	// Подписки
	ErrNoActiveSubscription = New(CodeNoActiveSubscription, "No active subscription to cancel", http.StatusBadRequest)
	ErrPaymentInProgress    = New(CodePaymentInProgress, "A payment is already being processed for this wallet", http.StatusConflict)
	ErrInvalidPaymentAmount = New(CodeInvalidPaymentAmount, "Payment amount does not match the tier price", http.StatusBadRequest)
	ErrInvalidTier          = New(CodeInvalidTier, "Unknown subscription tier", http.StatusBadRequest)

	// Уведомления
	ErrNotificationNotFound = New(CodeNotificationNotFound, "Notification not found", http.StatusNotFound)
)

// Функции-помощники для создания ошибок с деталями
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

func StorageError(err error) *AppError {
	return Wrap(err, CodeStorageError, "Storage operation failed", http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthenticated, message, http.StatusUnauthorized)
}
