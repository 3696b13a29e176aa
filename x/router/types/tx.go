package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the router message service.
type MsgServer interface {
	// SwapExactCurrencyForToken trades an exact currency input for tokens.
	SwapExactCurrencyForToken(context.Context, *MsgSwapExactCurrencyForToken) (*MsgSwapExactCurrencyForTokenResponse, error)
	// SwapExactTokenForCurrency trades an exact token input for currency.
	SwapExactTokenForCurrency(context.Context, *MsgSwapExactTokenForCurrency) (*MsgSwapExactTokenForCurrencyResponse, error)
	// AddLiquidity funds the pool with both assets and mints shares.
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	// RemoveLiquidity burns shares for both pool assets.
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
}

// MsgSwapExactCurrencyForTokenResponse defines the Msg/SwapExactCurrencyForToken response type
type MsgSwapExactCurrencyForTokenResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgSwapExactTokenForCurrencyResponse defines the Msg/SwapExactTokenForCurrency response type
type MsgSwapExactTokenForCurrencyResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgAddLiquidityResponse defines the Msg/AddLiquidity response type
type MsgAddLiquidityResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
}

// MsgRemoveLiquidityResponse defines the Msg/RemoveLiquidity response type
type MsgRemoveLiquidityResponse struct {
	TokenOut    math.Int `json:"token_out"`
	CurrencyOut math.Int `json:"currency_out"`
}
