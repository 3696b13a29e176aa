package types

// Event types for the AMM module
const (
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeSwap             = "swap"
	EventTypeReservesUpdated  = "reserves_updated"
)

// Event attribute keys for the AMM module
const (
	AttributeKeyProvider        = "provider"
	AttributeKeyRecipient       = "recipient"
	AttributeKeyShares          = "shares"
	AttributeKeyTokenAmount     = "token_amount"
	AttributeKeyCurrencyAmount  = "currency_amount"
	AttributeKeyTokenOut        = "token_out"
	AttributeKeyCurrencyOut     = "currency_out"
	AttributeKeyReserveToken    = "reserve_token"
	AttributeKeyReserveCurrency = "reserve_currency"
)
