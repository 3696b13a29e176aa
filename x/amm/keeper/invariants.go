package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "non-negative-pool", NonNegativePoolInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ReserveBackingInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return NonNegativePoolInvariant(k)(ctx)
	}
}

// ShareSupplyInvariant checks that the sum of share positions matches the
// pool's recorded total supply
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool := k.GetPool(ctx)

		sum := math.ZeroInt()
		k.IterateShares(ctx, func(pos types.SharePosition) bool {
			sum = sum.Add(pos.Shares)
			return false
		})

		broken := !sum.Equal(pool.TotalShares)
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("position sum %s, pool total %s", sum, pool.TotalShares),
		), broken
	}
}

// ReserveBackingInvariant checks that the bookkept reserves never exceed the
// pool account's actual balances
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		balToken, balCurrency := k.observedBalances(ctx, params)

		broken := pool.ReserveToken.GT(balToken) || pool.ReserveCurrency.GT(balCurrency)
		return sdk.FormatInvariant(
			types.ModuleName, "reserve-backing",
			fmt.Sprintf("reserves %s/%s, balances %s/%s",
				pool.ReserveToken, pool.ReserveCurrency, balToken, balCurrency),
		), broken
	}
}

// NonNegativePoolInvariant checks that the pool bookkeeping is well formed
func NonNegativePoolInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pool := k.GetPool(ctx)

		err := pool.Validate()
		broken := err != nil

		msg := "pool state well formed"
		if err != nil {
			msg = err.Error()
		}
		return sdk.FormatInvariant(types.ModuleName, "non-negative-pool", msg), broken
	}
}
