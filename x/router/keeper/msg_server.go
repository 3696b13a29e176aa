package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/router/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the router MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SwapExactCurrencyForToken handles an exact-input currency to token swap
func (ms msgServer) SwapExactCurrencyForToken(goCtx context.Context, msg *types.MsgSwapExactCurrencyForToken) (*types.MsgSwapExactCurrencyForTokenResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactCurrencyForToken: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactCurrencyForToken: invalid trader address: %w", err)
	}

	out, err := ms.Keeper.SwapExactCurrencyForToken(goCtx, trader, msg.AmountIn, msg.MinOut)
	if err != nil {
		return nil, fmt.Errorf("SwapExactCurrencyForToken: %w", err)
	}

	return &types.MsgSwapExactCurrencyForTokenResponse{
		AmountOut: out,
	}, nil
}

// SwapExactTokenForCurrency handles an exact-input token to currency swap
func (ms msgServer) SwapExactTokenForCurrency(goCtx context.Context, msg *types.MsgSwapExactTokenForCurrency) (*types.MsgSwapExactTokenForCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SwapExactTokenForCurrency: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("SwapExactTokenForCurrency: invalid trader address: %w", err)
	}

	out, err := ms.Keeper.SwapExactTokenForCurrency(goCtx, trader, msg.AmountIn, msg.MinOut)
	if err != nil {
		return nil, fmt.Errorf("SwapExactTokenForCurrency: %w", err)
	}

	return &types.MsgSwapExactTokenForCurrencyResponse{
		AmountOut: out,
	}, nil
}

// AddLiquidity handles a routed liquidity deposit
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	minted, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.TokenAmount, msg.CurrencyAmount)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		SharesMinted: minted,
	}, nil
}

// RemoveLiquidity handles a routed liquidity withdrawal
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	tokenOut, currencyOut, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.Shares, msg.MinToken, msg.MinCurrency)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		TokenOut:    tokenOut,
		CurrencyOut: currencyOut,
	}, nil
}
