package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/sale/keeper"
	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

func withdrawFixture(t *testing.T) (keeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context, sdk.AccAddress) {
	kk, b, c := testkeeper.SaleKeeper(t)
	tr := testkeeper.TestAddress(50)

	params, err := kk.GetParams(c)
	require.NoError(t, err)
	params.TreasuryAddress = tr.String()
	require.NoError(t, kk.SetParams(c, params))

	buyer := testkeeper.TestAddress(1)
	fundBuyer(b, buyer, 1_500)
	require.NoError(t, kk.Whitelist(c, testkeeper.TestAuthority, buyer))
	_, err = kk.Contribute(c, buyer, math.NewInt(1_500))
	require.NoError(t, err)

	return kk, b, c, tr
}

func TestWithdrawRequiresOpenPhase(t *testing.T) {
	k, _, ctx, treasury := withdrawFixture(t)

	err := k.Withdraw(ctx, treasury, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrNotOpenPhase)
}

func TestWithdrawTreasuryOnly(t *testing.T) {
	k, _, ctx, _ := withdrawFixture(t)
	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))

	err := k.Withdraw(ctx, testkeeper.TestAddress(2), math.NewInt(100))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestWithdrawProceeds(t *testing.T) {
	k, bank, ctx, treasury := withdrawFixture(t)
	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))

	require.NoError(t, k.Withdraw(ctx, treasury, math.NewInt(1_000)))

	got := bank.GetBalance(ctx, treasury, types.DefaultCurrencyDenom)
	require.Equal(t, math.NewInt(1_000), got.Amount)

	err := k.Withdraw(ctx, treasury, math.NewInt(600))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	require.NoError(t, k.Withdraw(ctx, treasury, math.NewInt(500)))

	state, err := k.GetSaleState(ctx)
	require.NoError(t, err)
	require.True(t, state.AvailableFunds.IsZero())
}
