package payments

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobsfi_backend/internal/logger"
)

// Provider - слой расчетов за подписку. Реальная реализация ходила бы
// в платежный контракт; здесь транзакция симулируется фиксированной
// задержкой и случайным хешем. Начатый платеж прервать нельзя.
type Provider interface {
	// Pay списывает amount APE с кошелька и возвращает хеш транзакции.
	Pay(walletAddress string, amount float64) (string, error)
	// Cancel проводит транзакцию отмены подписки.
	Cancel(walletAddress, transactionHash string) error
}

// SimulatedChain - симуляция ApeChain: задержка, затем успех.
// Частичные сбои и повторы не моделируются.
type SimulatedChain struct {
	payDelay    time.Duration
	cancelDelay time.Duration
}

func NewSimulatedChain(payDelay, cancelDelay time.Duration) *SimulatedChain {
	return &SimulatedChain{payDelay: payDelay, cancelDelay: cancelDelay}
}

func (c *SimulatedChain) Pay(walletAddress string, amount float64) (string, error) {
	logger.Info("initiating simulated payment",
		"wallet_address", walletAddress, "amount_ape", amount)

	time.Sleep(c.payDelay)

	hash := newTransactionHash()
	logger.Info("simulated payment confirmed",
		"wallet_address", walletAddress, "transaction_hash", hash)
	return hash, nil
}

func (c *SimulatedChain) Cancel(walletAddress, transactionHash string) error {
	logger.Info("initiating simulated cancellation",
		"wallet_address", walletAddress, "transaction_hash", transactionHash)

	time.Sleep(c.cancelDelay)
	return nil
}

// newTransactionHash возвращает "0x" + 64 hex-символа.
func newTransactionHash() string {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		// crypto/rand на поддерживаемых платформах не падает
		panic(err)
	}
	return "0x" + hex.EncodeToString(raw)
}
