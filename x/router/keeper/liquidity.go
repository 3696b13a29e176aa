package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

// AddLiquidity transfers both assets to the pool and mints shares to the
// provider. The token leg may bear transfer tax, so the pool credits
// whatever actually arrives.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, tokenAmount, currencyAmount math.Int) (math.Int, error) {
	if err := k.tokenKeeper.Transfer(ctx, provider, k.ammKeeper.PoolAddress(), tokenAmount); err != nil {
		return math.Int{}, err
	}

	funding := sdk.NewCoins(sdk.NewCoin(k.currencyDenom, currencyAmount))
	if err := k.bankKeeper.SendCoins(ctx, provider, k.ammKeeper.PoolAddress(), funding); err != nil {
		return math.Int{}, err
	}

	minted, err := k.ammKeeper.Deposit(ctx, provider)
	if err != nil {
		return math.Int{}, err
	}

	k.emitLiquidity(ctx, provider, "add", minted)
	return minted, nil
}

// RemoveLiquidity burns shares through the pool with minimum-return
// protection on both assets.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, shares, minToken, minCurrency math.Int) (math.Int, math.Int, error) {
	tokenOut, currencyOut, err := k.ammKeeper.Withdraw(ctx, provider, shares, minToken, minCurrency)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.emitLiquidity(ctx, provider, "remove", shares)
	return tokenOut, currencyOut, nil
}

func (k Keeper) emitLiquidity(ctx context.Context, provider sdk.AccAddress, action string, shares math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("routed liquidity",
		"module", routertypes.ModuleName,
		"provider", provider.String(),
		"action", action,
		"shares", shares.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			routertypes.EventTypeRoutedLiquidity,
			sdk.NewAttribute(routertypes.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(sdk.AttributeKeyAction, action),
			sdk.NewAttribute(routertypes.AttributeKeyShares, shares.String()),
		),
	)
}
