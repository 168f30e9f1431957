package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse - стандартный ответ об ошибке
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError - обработка ошибок для Gin контекста
func HandleError(c *gin.Context, err *AppError) {
	c.JSON(err.HTTPCode, ErrorResponse{Error: err})
}

// HandleUnknownError оборачивает произвольную ошибку в AppError и отправляет ответ.
func HandleUnknownError(c *gin.Context, err error) {
	var appErr *AppError
	if As(err, &appErr) {
		HandleError(c, appErr)
		return
	}
	HandleError(c, InternalError(err))
}

// Abort завершает обработку запроса с ошибкой (для middleware).
func Abort(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{Error: err})
}
