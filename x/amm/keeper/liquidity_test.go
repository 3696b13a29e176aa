package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

func fundPool(bank *testkeeper.MockBankKeeper, k keeper.Keeper, token, currency int64) {
	pool := k.GetModuleAddress()
	if token > 0 {
		bank.FundAccount(pool, sdk.NewCoin(types.DefaultTokenDenom, math.NewInt(token)))
	}
	if currency > 0 {
		bank.FundAccount(pool, sdk.NewCoin(types.DefaultCurrencyDenom, math.NewInt(currency)))
	}
}

func seedPool(t *testing.T, k keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context, provider sdk.AccAddress, token, currency int64) math.Int {
	t.Helper()
	fundPool(bank, k, token, currency)
	minted, err := k.Deposit(ctx, provider)
	require.NoError(t, err)
	return minted
}

func TestFirstDepositMintsSqrtMinusLocked(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	provider := testkeeper.TestAddress(1)

	// sqrt(150,000 * 30,000) = 67,082
	minted := seedPool(t, k, bank, ctx, provider, 150_000, 30_000)
	require.Equal(t, math.NewInt(66_082), minted)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(67_082), pool.TotalShares)
	require.Equal(t, math.NewInt(150_000), pool.ReserveToken)
	require.Equal(t, math.NewInt(30_000), pool.ReserveCurrency)

	require.Equal(t, math.NewInt(66_082), k.GetShares(ctx, provider.String()))
	require.Equal(t, math.NewInt(1_000), k.GetShares(ctx, k.GetLockedSharesAddress().String()))
}

func TestFirstDepositBelowLockedFloor(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)

	// sqrt(100 * 100) = 100 <= 1,000 locked floor
	fundPool(bank, k, 100, 100)
	_, err := k.Deposit(ctx, testkeeper.TestAddress(1))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestProportionalDeposit(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	first := testkeeper.TestAddress(1)
	second := testkeeper.TestAddress(2)

	seedPool(t, k, bank, ctx, first, 150_000, 30_000)

	// A 10% top-up mints 10% of the share supply, rounded down
	minted := seedPool(t, k, bank, ctx, second, 15_000, 3_000)
	require.Equal(t, math.NewInt(6_708), minted)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(73_790), pool.TotalShares)
	require.Equal(t, math.NewInt(165_000), pool.ReserveToken)
	require.Equal(t, math.NewInt(33_000), pool.ReserveCurrency)
}

func TestLopsidedDepositMintsMinimum(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	first := testkeeper.TestAddress(1)
	second := testkeeper.TestAddress(2)

	seedPool(t, k, bank, ctx, first, 150_000, 30_000)

	// Heavy on tokens, light on currency: the currency side sets the mint
	minted := seedPool(t, k, bank, ctx, second, 75_000, 300)
	require.Equal(t, math.NewInt(670), minted, "1% of currency reserve")
}

func TestDepositNothingNew(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	_, err := k.Deposit(ctx, testkeeper.TestAddress(2))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestWithdrawProRata(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	provider := testkeeper.TestAddress(1)
	seedPool(t, k, bank, ctx, provider, 150_000, 30_000)

	tokenOut, currencyOut, err := k.Withdraw(ctx, provider,
		math.NewInt(33_041), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(73_881), tokenOut)
	require.Equal(t, math.NewInt(14_776), currencyOut)

	require.Equal(t, math.NewInt(73_881), bank.GetBalance(ctx, provider, types.DefaultTokenDenom).Amount)
	require.Equal(t, math.NewInt(14_776), bank.GetBalance(ctx, provider, types.DefaultCurrencyDenom).Amount)

	pool := k.GetPool(ctx)
	require.Equal(t, math.NewInt(34_041), pool.TotalShares)
	require.Equal(t, math.NewInt(76_119), pool.ReserveToken)
	require.Equal(t, math.NewInt(15_224), pool.ReserveCurrency)
}

func TestWithdrawMinimumFloors(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	provider := testkeeper.TestAddress(1)
	seedPool(t, k, bank, ctx, provider, 150_000, 30_000)

	_, _, err := k.Withdraw(ctx, provider,
		math.NewInt(33_041), math.NewInt(74_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrUnmetMinimum)

	_, _, err = k.Withdraw(ctx, provider,
		math.NewInt(33_041), math.ZeroInt(), math.NewInt(15_000))
	require.ErrorIs(t, err, types.ErrUnmetMinimum)
}

func TestWithdrawMoreThanHeld(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	provider := testkeeper.TestAddress(1)
	seedPool(t, k, bank, ctx, provider, 150_000, 30_000)

	// 66,082 held; the locked 1,000 belong to the sink, not the provider
	_, _, err := k.Withdraw(ctx, provider,
		math.NewInt(67_000), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestWithdrawEmptyPool(t *testing.T) {
	k, _, ctx := testkeeper.AmmKeeper(t)

	_, _, err := k.Withdraw(ctx, testkeeper.TestAddress(1),
		math.NewInt(100), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}
