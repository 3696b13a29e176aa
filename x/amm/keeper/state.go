package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// GetParams returns the AMM module parameters
func (k Keeper) GetParams(ctx context.Context) ammtypes.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return ammtypes.DefaultParams()
	}

	var params ammtypes.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("failed to unmarshal amm params: %w", err))
	}
	return params
}

// SetParams stores the AMM module parameters
func (k Keeper) SetParams(ctx context.Context, params ammtypes.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal amm params: %w", err)
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}

// GetPool returns the pool bookkeeping state
func (k Keeper) GetPool(ctx context.Context) ammtypes.Pool {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey)
	if bz == nil {
		return ammtypes.NewPool()
	}

	var pool ammtypes.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		panic(fmt.Errorf("failed to unmarshal pool state: %w", err))
	}
	return pool
}

// SetPool stores the pool bookkeeping state
func (k Keeper) SetPool(ctx context.Context, pool ammtypes.Pool) error {
	if err := pool.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to marshal pool state: %w", err)
	}

	store := k.getStore(ctx)
	store.Set(PoolKey, bz)
	return nil
}

// GetShares returns the liquidity shares held by an address
func (k Keeper) GetShares(ctx context.Context, address string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(ShareKey(address))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("failed to unmarshal share position for %s: %w", address, err))
	}
	return shares
}

// SetShares stores the liquidity shares held by an address. Zero positions
// are deleted.
func (k Keeper) SetShares(ctx context.Context, address string, shares math.Int) error {
	if shares.IsNegative() {
		return fmt.Errorf("negative share position for %s", address)
	}

	store := k.getStore(ctx)
	key := ShareKey(address)

	if shares.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := shares.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal share position for %s: %w", address, err)
	}
	store.Set(key, bz)
	return nil
}

// IterateShares iterates over all share positions, stopping when cb returns true
func (k Keeper) IterateShares(ctx context.Context, cb func(pos ammtypes.SharePosition) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ShareKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		address := string(iterator.Key()[len(ShareKeyPrefix):])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(fmt.Errorf("failed to unmarshal share position for %s: %w", address, err))
		}

		if cb(ammtypes.SharePosition{Address: address, Shares: shares}) {
			break
		}
	}
}

// observedBalances reads the pool account's actual balances of both assets.
// The token side goes through the tax token keeper so the AMM sees the same
// balance a transfer would act on.
func (k Keeper) observedBalances(ctx context.Context, params ammtypes.Params) (token, currency math.Int) {
	token = k.tokenKeeper.BalanceOf(ctx, k.moduleAddr)
	currency = k.bankKeeper.GetBalance(ctx, k.moduleAddr, params.CurrencyDenom).Amount
	return token, currency
}

// syncReserves sets the bookkept reserves to the observed balances and
// persists the pool.
func (k Keeper) syncReserves(ctx context.Context, pool *ammtypes.Pool, balToken, balCurrency math.Int) error {
	pool.ReserveToken = balToken
	pool.ReserveCurrency = balCurrency

	if err := k.SetPool(ctx, *pool); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeReservesUpdated,
			sdk.NewAttribute(ammtypes.AttributeKeyReserveToken, balToken.String()),
			sdk.NewAttribute(ammtypes.AttributeKeyReserveCurrency, balCurrency.String()),
		),
	)
	return nil
}
