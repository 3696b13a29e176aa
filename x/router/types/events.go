package types

// Event types for the router module
const (
	EventTypeRoutedSwap      = "routed_swap"
	EventTypeRoutedLiquidity = "routed_liquidity"
)

// Event attribute keys for the router module
const (
	AttributeKeyTrader    = "trader"
	AttributeKeyProvider  = "provider"
	AttributeKeyDirection = "direction"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyShares    = "shares"
)

// Swap direction labels
const (
	DirectionCurrencyToToken = "currency_to_token"
	DirectionTokenToCurrency = "token_to_currency"
)
