package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

func TestAdvancePhaseAuthority(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	err := k.AdvancePhase(ctx, testkeeper.TestAddress(1).String(), types.PhaseGeneral)
	require.Error(t, err, "only the authority may advance")

	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseGeneral))

	state, err := k.GetSaleState(ctx)
	require.NoError(t, err)
	require.Equal(t, types.PhaseGeneral, state.Phase)
	require.Equal(t, types.DefaultGeneralAggregateCap, state.AggregateCap)
	require.Equal(t, types.DefaultGeneralIndividualCap, state.IndividualCap)
}

func TestAdvancePhaseForwardOnly(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseGeneral))

	err := k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseSeed)
	require.ErrorIs(t, err, types.ErrInvalidPhase)

	err = k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseGeneral)
	require.ErrorIs(t, err, types.ErrInvalidPhase)

	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))

	err = k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen)
	require.ErrorIs(t, err, types.ErrInvalidPhase, "open phase is terminal")
}

func TestAdvancePhaseSeedToOpen(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))

	state, err := k.GetSaleState(ctx)
	require.NoError(t, err)
	require.Equal(t, types.PhaseOpen, state.Phase)
	require.Equal(t, types.DefaultOpenCap, state.AggregateCap)
	require.Equal(t, types.DefaultOpenCap, state.IndividualCap)
}

func TestWhitelistDuplicate(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)

	addr := testkeeper.TestAddress(1)
	require.NoError(t, k.Whitelist(ctx, testkeeper.TestAuthority, addr))
	require.True(t, k.IsWhitelisted(ctx, addr))

	err := k.Whitelist(ctx, testkeeper.TestAuthority, addr)
	require.ErrorIs(t, err, types.ErrAlreadyWhitelisted)
}
