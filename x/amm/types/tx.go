package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the AMM message service.
type MsgServer interface {
	// Deposit adds liquidity to the pool and mints shares to the provider.
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	// Withdraw burns shares and pays out both pool assets pro rata.
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	// SwapToToken trades currency for the pool token.
	SwapToToken(context.Context, *MsgSwapToToken) (*MsgSwapToTokenResponse, error)
	// SwapToCurrency trades the pool token for currency.
	SwapToCurrency(context.Context, *MsgSwapToCurrency) (*MsgSwapToCurrencyResponse, error)
	// Resync reconciles bookkept reserves with the pool account balances.
	Resync(context.Context, *MsgResync) (*MsgResyncResponse, error)
}

// MsgDepositResponse defines the Msg/Deposit response type
type MsgDepositResponse struct {
	SharesMinted math.Int `json:"shares_minted"`
}

// MsgWithdrawResponse defines the Msg/Withdraw response type
type MsgWithdrawResponse struct {
	TokenOut    math.Int `json:"token_out"`
	CurrencyOut math.Int `json:"currency_out"`
}

// MsgSwapToTokenResponse defines the Msg/SwapToToken response type
type MsgSwapToTokenResponse struct{}

// MsgSwapToCurrencyResponse defines the Msg/SwapToCurrency response type
type MsgSwapToCurrencyResponse struct{}

// MsgResyncResponse defines the Msg/Resync response type
type MsgResyncResponse struct {
	ReserveToken    math.Int `json:"reserve_token"`
	ReserveCurrency math.Int `json:"reserve_currency"`
}
