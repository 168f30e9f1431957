package contextkeys

// ContextKey - типизированный ключ для context.Context
type ContextKey string

const (
	// WalletContextKey - ключ, под которым middleware кладет адрес подключенного кошелька
	WalletContextKey ContextKey = "walletAddress"
)
