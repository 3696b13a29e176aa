package ante_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/app/ante"
	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

func fundedPool(t *testing.T) (ante.AmmDecorator, sdk.Context) {
	t.Helper()

	k, _, ctx := testkeeper.AmmKeeper(t)
	pool := ammtypes.NewPool()
	pool.ReserveToken = math.NewInt(150_000)
	pool.ReserveCurrency = math.NewInt(30_000)
	pool.TotalShares = math.NewInt(67_082)
	require.NoError(t, k.SetPool(ctx, pool))
	require.NoError(t, k.SetShares(ctx, testkeeper.TestAddress(1).String(), math.NewInt(1_000)))

	return ante.NewAmmDecorator(k), ctx
}

func TestAmmDecorator_AllowsSwapWithinReserve(t *testing.T) {
	dec, ctx := fundedPool(t)
	trader := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgSwapToToken(trader.String(), math.NewInt(1_000), math.NewInt(4_791)),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestAmmDecorator_RejectsSwapDrainingTokenReserve(t *testing.T) {
	dec, ctx := fundedPool(t)
	trader := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgSwapToToken(trader.String(), math.NewInt(1_000), math.NewInt(150_000)),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, ammtypes.ErrInsufficientReserve)
}

func TestAmmDecorator_RejectsSwapDrainingCurrencyReserve(t *testing.T) {
	dec, ctx := fundedPool(t)
	trader := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgSwapToCurrency(trader.String(), math.NewInt(1_000), math.NewInt(30_000)),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, ammtypes.ErrInsufficientReserve)
}

func TestAmmDecorator_RejectsInvalidTraderAddress(t *testing.T) {
	dec, ctx := fundedPool(t)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgSwapToToken("not-a-bech32-address", math.NewInt(1_000), math.NewInt(100)),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid trader address")
}

func TestAmmDecorator_RejectsWithdrawBeyondHeldShares(t *testing.T) {
	dec, ctx := fundedPool(t)
	provider := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgWithdraw(provider.String(), math.NewInt(1_001), math.ZeroInt(), math.ZeroInt()),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, ammtypes.ErrInsufficientShares)
}

func TestAmmDecorator_AllowsWithdrawOfHeldShares(t *testing.T) {
	dec, ctx := fundedPool(t)
	provider := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgWithdraw(provider.String(), math.NewInt(1_000), math.ZeroInt(), math.ZeroInt()),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestAmmDecorator_RejectsRoutedSwapAgainstEmptyPool(t *testing.T) {
	k, _, ctx := testkeeper.AmmKeeper(t)
	trader := testkeeper.TestAddress(1)

	dec := ante.NewAmmDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{
		routertypes.NewMsgSwapExactCurrencyForToken(trader.String(), math.NewInt(1_000), math.ZeroInt()),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, ammtypes.ErrInsufficientLiquidity)
}

func TestAmmDecorator_AllowsRoutedSwapAgainstFundedPool(t *testing.T) {
	dec, ctx := fundedPool(t)
	trader := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		routertypes.NewMsgSwapExactCurrencyForToken(trader.String(), math.NewInt(1_000), math.ZeroInt()),
	}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestAmmDecorator_SkipsValidationDuringSimulation(t *testing.T) {
	dec, ctx := fundedPool(t)
	trader := testkeeper.TestAddress(1)

	tx := mockTx{msgs: []sdk.Msg{
		ammtypes.NewMsgSwapToToken(trader.String(), math.NewInt(1_000), math.NewInt(150_000)),
	}}

	_, err := dec.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}
