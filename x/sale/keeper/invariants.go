package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// RegisterInvariants registers all sale invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "contribution-totals", ContributionTotalsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "claim-entitlements", ClaimEntitlementsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "caps", CapsInvariant(k))
}

// AllInvariants runs all invariants of the sale module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ContributionTotalsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = ClaimEntitlementsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return CapsInvariant(k)(ctx)
	}
}

// ContributionTotalsInvariant checks that the sum of per-buyer contributions
// matches the aggregate total in the sale state
func ContributionTotalsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		state, err := k.GetSaleState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "contribution-totals", err.Error()), true
		}

		sum := math.ZeroInt()
		k.IterateRecords(ctx, func(record types.ContributionRecord) bool {
			sum = sum.Add(record.TotalContributed)
			return false
		})

		broken := !sum.Equal(state.TotalContributed)
		return sdk.FormatInvariant(
			types.ModuleName, "contribution-totals",
			fmt.Sprintf("record sum %s, state total %s", sum, state.TotalContributed),
		), broken
	}
}

// ClaimEntitlementsInvariant checks that no buyer has claimed more than their
// contribution entitles them to
func ClaimEntitlementsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "claim-entitlements", err.Error()), true
		}

		var (
			msg   string
			count int
		)
		k.IterateRecords(ctx, func(record types.ContributionRecord) bool {
			entitled := record.TotalContributed.Mul(params.Rate)
			if record.TotalClaimed.GT(entitled) {
				count++
				msg += fmt.Sprintf("%s: claimed %s > entitled %s\n",
					record.Address, record.TotalClaimed, entitled)
			}
			return false
		})

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "claim-entitlements",
			fmt.Sprintf("found %d over-claimed records\n%s", count, msg),
		), broken
	}
}

// CapsInvariant checks that the aggregate total never exceeds the active cap
func CapsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		state, err := k.GetSaleState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "caps", err.Error()), true
		}

		broken := state.TotalContributed.GT(state.AggregateCap)
		return sdk.FormatInvariant(
			types.ModuleName, "caps",
			fmt.Sprintf("total contributed %s, aggregate cap %s", state.TotalContributed, state.AggregateCap),
		), broken
	}
}
