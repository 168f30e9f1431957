package middleware

import (
	"github.com/gin-gonic/gin"

	"jobsfi_backend/internal/logger"
	"jobsfi_backend/pkg/apperrors"
	"jobsfi_backend/pkg/contextkeys"
)

// HeaderWalletAddress - заголовок, которым клиент представляет подключенный кошелек
const HeaderWalletAddress = "X-Wallet-Address"

// WalletMiddleware - кладет адрес кошелька из заголовка в контекст запроса.
// Отсутствие заголовка не ошибка: часть маршрутов доступна без кошелька.
func WalletMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet := c.GetHeader(HeaderWalletAddress)
		if wallet != "" {
			c.Set(string(contextkeys.WalletContextKey), wallet)
			ctx := logger.WithWallet(c.Request.Context(), wallet)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// RequireWallet - middleware для маршрутов, требующих подключенного кошелька
func RequireWallet() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetWallet(c) == "" {
			apperrors.Abort(c, apperrors.ErrWalletNotConnected)
			return
		}
		c.Next()
	}
}

// GetWallet извлекает адрес кошелька из контекста
func GetWallet(c *gin.Context) string {
	walletVal, exists := c.Get(string(contextkeys.WalletContextKey))
	if !exists {
		return ""
	}

	wallet, ok := walletVal.(string)
	if !ok {
		return ""
	}

	return wallet
}
