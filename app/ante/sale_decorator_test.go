package ante_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/app/ante"
	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	saletypes "github.com/spacecoin-chain/spacecoin/x/sale/types"
)

func passThrough(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func TestSaleDecorator_AllowsContribute(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	buyer := testkeeper.TestAddress(1)

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgContribute(buyer.String(), math.NewInt(100))}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestSaleDecorator_RejectsInvalidBuyerAddress(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgContribute("not-a-bech32-address", math.NewInt(100))}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid buyer address")
}

func TestSaleDecorator_RejectsContributeWhilePaused(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	buyer := testkeeper.TestAddress(1)

	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, true))

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgContribute(buyer.String(), math.NewInt(100))}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, saletypes.ErrPaused)
}

func TestSaleDecorator_RejectsContributeAtAggregateCap(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	buyer := testkeeper.TestAddress(1)

	state, err := k.GetSaleState(ctx)
	require.NoError(t, err)
	state.TotalContributed = state.AggregateCap
	require.NoError(t, k.SetSaleState(ctx, state))

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgContribute(buyer.String(), math.NewInt(100))}}

	_, err = dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, saletypes.ErrAggregateCapExceeded)
}

func TestSaleDecorator_RejectsClaimBeforeOpenPhase(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	claimer := testkeeper.TestAddress(2)

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgClaim(claimer.String())}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.ErrorIs(t, err, saletypes.ErrNotOpenPhase)
}

func TestSaleDecorator_AllowsClaimInOpenPhase(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	claimer := testkeeper.TestAddress(2)

	state, err := k.GetSaleState(ctx)
	require.NoError(t, err)
	state.Phase = saletypes.PhaseOpen
	require.NoError(t, k.SetSaleState(ctx, state))

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgClaim(claimer.String())}}

	_, err = dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestSaleDecorator_SkipsValidationDuringSimulation(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	buyer := testkeeper.TestAddress(1)

	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, true))

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{saletypes.NewMsgContribute(buyer.String(), math.NewInt(100))}}

	_, err := dec.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}

func TestSaleDecorator_IgnoresUnrelatedMessages(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, true))

	dec := ante.NewSaleDecorator(k)
	tx := mockTx{msgs: []sdk.Msg{mockMsg{}}}

	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}
