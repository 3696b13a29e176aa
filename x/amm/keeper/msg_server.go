package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the AMM MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Deposit pre-funds the pool with both assets and mints shares to the provider
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid provider address: %w", err)
	}

	params := ms.Keeper.GetParams(goCtx)

	if err := ms.tokenKeeper.Transfer(goCtx, provider, ms.moduleAddr, msg.TokenAmount); err != nil {
		return nil, fmt.Errorf("Deposit: token transfer: %w", err)
	}

	funding := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, msg.CurrencyAmount))
	if err := ms.bankKeeper.SendCoins(goCtx, provider, ms.moduleAddr, funding); err != nil {
		return nil, fmt.Errorf("Deposit: currency transfer: %w", err)
	}

	minted, err := ms.Keeper.Deposit(goCtx, provider)
	if err != nil {
		return nil, fmt.Errorf("Deposit: %w", err)
	}

	return &types.MsgDepositResponse{
		SharesMinted: minted,
	}, nil
}

// Withdraw burns shares and pays out both pool assets pro rata
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid provider address: %w", err)
	}

	tokenOut, currencyOut, err := ms.Keeper.Withdraw(goCtx, provider, msg.Shares, msg.MinToken, msg.MinCurrency)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: %w", err)
	}

	return &types.MsgWithdrawResponse{
		TokenOut:    tokenOut,
		CurrencyOut: currencyOut,
	}, nil
}

// SwapToToken pre-funds the pool with currency and sends the declared token output
func (ms msgServer) SwapToToken(goCtx context.Context, msg *types.MsgSwapToToken) (*types.MsgSwapToTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapToToken: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapToToken: invalid trader address: %w", err)
	}

	params := ms.Keeper.GetParams(goCtx)

	funding := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, msg.AmountIn))
	if err := ms.bankKeeper.SendCoins(goCtx, trader, ms.moduleAddr, funding); err != nil {
		return nil, fmt.Errorf("SwapToToken: currency transfer: %w", err)
	}

	if err := ms.Keeper.SwapToToken(goCtx, trader, msg.TokenOut); err != nil {
		return nil, fmt.Errorf("SwapToToken: %w", err)
	}

	return &types.MsgSwapToTokenResponse{}, nil
}

// SwapToCurrency pre-funds the pool with tokens and sends the declared currency output
func (ms msgServer) SwapToCurrency(goCtx context.Context, msg *types.MsgSwapToCurrency) (*types.MsgSwapToCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapToCurrency: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapToCurrency: invalid trader address: %w", err)
	}

	if err := ms.tokenKeeper.Transfer(goCtx, trader, ms.moduleAddr, msg.AmountIn); err != nil {
		return nil, fmt.Errorf("SwapToCurrency: token transfer: %w", err)
	}

	if err := ms.Keeper.SwapToCurrency(goCtx, trader, msg.CurrencyOut); err != nil {
		return nil, fmt.Errorf("SwapToCurrency: %w", err)
	}

	return &types.MsgSwapToCurrencyResponse{}, nil
}

// Resync reconciles bookkept reserves with the pool account balances
func (ms msgServer) Resync(goCtx context.Context, msg *types.MsgResync) (*types.MsgResyncResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Resync: validate: %w", err)
	}

	reserveToken, reserveCurrency, err := ms.Keeper.Resync(goCtx)
	if err != nil {
		return nil, fmt.Errorf("Resync: %w", err)
	}

	return &types.MsgResyncResponse{
		ReserveToken:    reserveToken,
		ReserveCurrency: reserveCurrency,
	}, nil
}
