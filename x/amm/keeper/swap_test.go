package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

func TestCalculateSwapOutput(t *testing.T) {
	fee := math.NewInt(1)

	out, err := keeper.CalculateSwapOutput(
		math.NewInt(1_000), math.NewInt(30_000), math.NewInt(150_000), fee)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_791), out)

	_, err = keeper.CalculateSwapOutput(
		math.NewInt(1_000), math.ZeroInt(), math.NewInt(150_000), fee)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = keeper.CalculateSwapOutput(
		math.ZeroInt(), math.NewInt(30_000), math.NewInt(150_000), fee)
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestSwapToTokenAtQuote(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)
	trader := testkeeper.TestAddress(2)

	// Trader pre-funds the pool with 1,000 currency, then asks for the quote
	fundPool(bank, k, 0, 1_000)
	require.NoError(t, k.SwapToToken(ctx, trader, math.NewInt(4_791)))

	require.Equal(t, math.NewInt(4_791), bank.GetBalance(ctx, trader, types.DefaultTokenDenom).Amount)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(145_209), pool.ReserveToken)
	require.Equal(t, math.NewInt(31_000), pool.ReserveCurrency)
}

func TestSwapToTokenGreedyOutputRejected(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	// One token above the quote breaks the fee-adjusted product
	fundPool(bank, k, 0, 1_000)
	err := k.SwapToToken(ctx, testkeeper.TestAddress(2), math.NewInt(4_792))
	require.ErrorIs(t, err, types.ErrInvariantViolation)
}

func TestSwapToTokenWithoutInput(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	err := k.SwapToToken(ctx, testkeeper.TestAddress(2), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrInvariantViolation)
}

func TestSwapToTokenOutputBounds(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)
	trader := testkeeper.TestAddress(2)

	err := k.SwapToToken(ctx, trader, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidOutput)

	err = k.SwapToToken(ctx, trader, math.NewInt(150_000))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
}

func TestSwapToCurrencyAtQuote(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)
	trader := testkeeper.TestAddress(2)

	quote, err := keeper.CalculateSwapOutput(
		math.NewInt(5_000), math.NewInt(150_000), math.NewInt(30_000), math.NewInt(1))
	require.NoError(t, err)

	fundPool(bank, k, 5_000, 0)
	require.NoError(t, k.SwapToCurrency(ctx, trader, quote))

	require.Equal(t, quote, bank.GetBalance(ctx, trader, types.DefaultCurrencyDenom).Amount)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(155_000), pool.ReserveToken)
	require.Equal(t, math.NewInt(30_000).Sub(quote), pool.ReserveCurrency)
}

func TestResyncFoldsInStrandedFunds(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	// Assets sent outside an entry point sit above the bookkept reserves
	fundPool(bank, k, 500, 250)

	reserveToken, reserveCurrency, err := k.Resync(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(150_500), reserveToken)
	require.Equal(t, math.NewInt(30_250), reserveCurrency)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(150_500), pool.ReserveToken)
	require.Equal(t, math.NewInt(30_250), pool.ReserveCurrency)
}
