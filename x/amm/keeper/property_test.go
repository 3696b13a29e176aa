package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// The constant product never decreases across quoted swaps, whatever the
// trade size or direction.
func TestSwapsNeverShrinkProduct(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := testkeeper.AmmKeeper(t)
		seedPool(t, k, bank, ctx, testkeeper.TestAddress(1),
			rapid.Int64Range(100_000, 10_000_000).Draw(rt, "token"),
			rapid.Int64Range(100_000, 10_000_000).Draw(rt, "currency"))
		trader := testkeeper.TestAddress(2)

		start := k.GetPool(ctx)
		product := start.ReserveToken.Mul(start.ReserveCurrency)

		steps := rapid.IntRange(1, 8).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			pool := k.GetPool(ctx)
			amountIn := math.NewInt(rapid.Int64Range(1, 50_000).Draw(rt, "amount_in"))

			if rapid.Bool().Draw(rt, "to_token") {
				quote, err := keeper.CalculateSwapOutput(
					amountIn, pool.ReserveCurrency, pool.ReserveToken, ammtypes.DefaultSwapFeePercent)
				if err != nil {
					continue
				}
				fundPool(bank, k, 0, amountIn.Int64())
				require.NoError(t, k.SwapToToken(ctx, trader, quote))
			} else {
				quote, err := keeper.CalculateSwapOutput(
					amountIn, pool.ReserveToken, pool.ReserveCurrency, ammtypes.DefaultSwapFeePercent)
				if err != nil {
					continue
				}
				fundPool(bank, k, amountIn.Int64(), 0)
				require.NoError(t, k.SwapToCurrency(ctx, trader, quote))
			}

			after := k.GetPool(ctx)
			newProduct := after.ReserveToken.Mul(after.ReserveCurrency)
			require.True(t, newProduct.GTE(product),
				"product shrank: %s -> %s", product, newProduct)
			product = newProduct
		}
	})
}

// Share accounting stays conserved across deposits and withdrawals.
func TestShareSupplyConserved(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k, bank, ctx := testkeeper.AmmKeeper(t)
		seedPool(t, k, bank, ctx, testkeeper.TestAddress(1),
			rapid.Int64Range(100_000, 1_000_000).Draw(rt, "token"),
			rapid.Int64Range(100_000, 1_000_000).Draw(rt, "currency"))

		steps := rapid.IntRange(1, 6).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			who := testkeeper.TestAddress(rapid.IntRange(1, 4).Draw(rt, "who"))

			if rapid.Bool().Draw(rt, "deposit") {
				fundPool(bank, k,
					rapid.Int64Range(1_000, 100_000).Draw(rt, "add_token"),
					rapid.Int64Range(1_000, 100_000).Draw(rt, "add_currency"))
				if _, err := k.Deposit(ctx, who); err != nil {
					continue
				}
			} else {
				held := k.GetShares(ctx, who.String())
				if !held.IsPositive() {
					continue
				}
				burn := held.QuoRaw(2).AddRaw(1)
				if _, _, err := k.Withdraw(ctx, who, burn, math.ZeroInt(), math.ZeroInt()); err != nil {
					continue
				}
			}

			pool := k.GetPool(ctx)
			sum := math.ZeroInt()
			k.IterateShares(ctx, func(pos ammtypes.SharePosition) bool {
				sum = sum.Add(pos.Shares)
				return false
			})
			require.True(t, sum.Equal(pool.TotalShares),
				"positions sum %s, pool records %s", sum, pool.TotalShares)
		}
	})
}
