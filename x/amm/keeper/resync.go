package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// Resync reconciles the bookkept reserves with the pool account's actual
// balances. Anyone may call it; assets sent to the pool outside an entry
// point are folded into the reserves instead of being stranded.
func (k Keeper) Resync(ctx context.Context) (math.Int, math.Int, error) {
	var balToken, balCurrency math.Int

	err := k.WithReentrancyGuard(ctx, "resync", func() error {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		balToken, balCurrency = k.observedBalances(ctx, params)

		if err := k.syncReserves(ctx, &pool, balToken, balCurrency); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.Logger().Info("reserves resynced",
			"module", "amm",
			"reserve_token", balToken.String(),
			"reserve_currency", balCurrency.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	return balToken, balCurrency, nil
}

// ReserveDrift reports assets held by the pool address beyond the bookkept
// reserves. Positive drift comes from transfers outside the entry points and
// stays inert until the next resync or deposit folds it in.
func (k Keeper) ReserveDrift(ctx context.Context) (math.Int, math.Int) {
	params := k.GetParams(ctx)
	pool := k.GetPool(ctx)
	balToken, balCurrency := k.observedBalances(ctx, params)
	return balToken.Sub(pool.ReserveToken), balCurrency.Sub(pool.ReserveCurrency)
}

// GetReserves returns the cached reserves and share supply for cross-module
// consumers. The second return reports whether the pool has been seeded.
func (k Keeper) GetReserves(ctx context.Context) (sharedkeeper.PoolInfo, bool) {
	pool := k.GetPool(ctx)
	info := sharedkeeper.PoolInfo{
		ReserveToken:    pool.ReserveToken,
		ReserveCurrency: pool.ReserveCurrency,
		TotalShares:     pool.TotalShares,
	}
	return info, pool.TotalShares.IsPositive()
}

var _ sharedkeeper.AmmKeeperV1Extended = Keeper{}
