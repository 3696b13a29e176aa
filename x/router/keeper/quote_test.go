package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	ammkeeper "github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
	routerkeeper "github.com/spacecoin-chain/spacecoin/x/router/keeper"
	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

var testTreasury = testkeeper.TestAddress(900)

func routerFixture(t *testing.T, taxBps int64) (routerkeeper.Keeper, ammkeeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context) {
	routerK, ammK, bank, ctx := testkeeper.RouterKeeper(t, math.NewInt(taxBps), testTreasury)

	// Seed 150,000 token / 30,000 currency directly at the pool address
	pool := ammK.GetModuleAddress()
	bank.FundAccount(pool, sdk.NewCoin(ammtypes.DefaultTokenDenom, math.NewInt(150_000)))
	bank.FundAccount(pool, sdk.NewCoin(ammtypes.DefaultCurrencyDenom, math.NewInt(30_000)))
	_, err := ammK.Deposit(ctx, testkeeper.TestAddress(1))
	require.NoError(t, err)

	return routerK, ammK, bank, ctx
}

func TestQuoteCurrencyToTokenUntaxed(t *testing.T) {
	routerK, _, _, ctx := routerFixture(t, 0)

	gross, net, err := routerK.QuoteCurrencyToToken(ctx, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_791), gross)
	require.Equal(t, gross, net, "no tax, net equals gross")
}

func TestQuoteCurrencyToTokenTaxed(t *testing.T) {
	routerK, _, _, ctx := routerFixture(t, 200)

	gross, net, err := routerK.QuoteCurrencyToToken(ctx, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_791), gross)
	require.Equal(t, math.NewInt(4_696), net, "2% withheld from the outbound leg")
}

func TestQuoteTokenToCurrencyTaxed(t *testing.T) {
	routerK, _, _, ctx := routerFixture(t, 200)
	trader := testkeeper.TestAddress(2)

	// 1,000 in, 980 arrive after 2% withholding, then the 1% pool fee
	out, err := routerK.QuoteTokenToCurrency(ctx, trader, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(192), out)
}

func TestQuoteEmptyPool(t *testing.T) {
	routerK, _, _, ctx := testkeeper.RouterKeeper(t, math.ZeroInt(), testTreasury)

	_, _, err := routerK.QuoteCurrencyToToken(ctx, math.NewInt(1_000))
	require.ErrorIs(t, err, routertypes.ErrNoLiquidity)

	_, err = routerK.QuoteTokenToCurrency(ctx, testkeeper.TestAddress(2), math.NewInt(1_000))
	require.ErrorIs(t, err, routertypes.ErrNoLiquidity)
}

func TestSwapExactCurrencyForToken(t *testing.T) {
	routerK, _, bank, ctx := routerFixture(t, 200)
	trader := testkeeper.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoin(ammtypes.DefaultCurrencyDenom, math.NewInt(1_000)))

	out, err := routerK.SwapExactCurrencyForToken(ctx, trader, math.NewInt(1_000), math.NewInt(4_696))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4_696), out)

	require.Equal(t, math.NewInt(4_696), bank.GetBalance(ctx, trader, ammtypes.DefaultTokenDenom).Amount)
	require.True(t, bank.GetBalance(ctx, trader, ammtypes.DefaultCurrencyDenom).Amount.IsZero())

	// The withheld slice landed with the treasury
	require.Equal(t, math.NewInt(95), bank.GetBalance(ctx, testTreasury, ammtypes.DefaultTokenDenom).Amount)
}

func TestSwapExactCurrencyForTokenUnmetMinimum(t *testing.T) {
	routerK, _, bank, ctx := routerFixture(t, 200)
	trader := testkeeper.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoin(ammtypes.DefaultCurrencyDenom, math.NewInt(1_000)))

	_, err := routerK.SwapExactCurrencyForToken(ctx, trader, math.NewInt(1_000), math.NewInt(4_697))
	require.ErrorIs(t, err, routertypes.ErrUnmetMinimumReturn)

	// Nothing moved
	require.Equal(t, math.NewInt(1_000), bank.GetBalance(ctx, trader, ammtypes.DefaultCurrencyDenom).Amount)
}

func TestSwapExactTokenForCurrency(t *testing.T) {
	routerK, ammK, bank, ctx := routerFixture(t, 200)
	trader := testkeeper.TestAddress(2)
	bank.FundAccount(trader, sdk.NewCoin(ammtypes.DefaultTokenDenom, math.NewInt(1_000)))

	out, err := routerK.SwapExactTokenForCurrency(ctx, trader, math.NewInt(1_000), math.NewInt(192))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(192), out)

	require.Equal(t, math.NewInt(192), bank.GetBalance(ctx, trader, ammtypes.DefaultCurrencyDenom).Amount)

	// Only the post-tax 980 reached the pool
	pool := ammK.GetPool(ctx)
	require.Equal(t, math.NewInt(150_980), pool.ReserveToken)
	require.Equal(t, math.NewInt(29_808), pool.ReserveCurrency)
}

func TestRoutedLiquidity(t *testing.T) {
	routerK, ammK, bank, ctx := routerFixture(t, 0)
	provider := testkeeper.TestAddress(3)
	bank.FundAccount(provider,
		sdk.NewCoin(ammtypes.DefaultTokenDenom, math.NewInt(15_000)),
		sdk.NewCoin(ammtypes.DefaultCurrencyDenom, math.NewInt(3_000)))

	minted, err := routerK.AddLiquidity(ctx, provider, math.NewInt(15_000), math.NewInt(3_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(6_708), minted)
	require.Equal(t, minted, ammK.GetShares(ctx, provider.String()))

	tokenOut, currencyOut, err := routerK.RemoveLiquidity(ctx, provider,
		minted, math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, tokenOut.IsPositive())
	require.True(t, currencyOut.IsPositive())
	require.True(t, ammK.GetShares(ctx, provider.String()).IsZero())
}

func TestRemoveLiquidityUnmetMinimum(t *testing.T) {
	routerK, _, bank, ctx := routerFixture(t, 0)
	provider := testkeeper.TestAddress(3)
	bank.FundAccount(provider,
		sdk.NewCoin(ammtypes.DefaultTokenDenom, math.NewInt(15_000)),
		sdk.NewCoin(ammtypes.DefaultCurrencyDenom, math.NewInt(3_000)))

	minted, err := routerK.AddLiquidity(ctx, provider, math.NewInt(15_000), math.NewInt(3_000))
	require.NoError(t, err)

	_, _, err = routerK.RemoveLiquidity(ctx, provider,
		minted, math.NewInt(1_000_000), math.ZeroInt())
	require.ErrorIs(t, err, ammtypes.ErrUnmetMinimum)
}
