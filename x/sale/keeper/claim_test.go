package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

func TestClaimRequiresOpenPhase(t *testing.T) {
	k, bank, ctx := testkeeper.SaleKeeper(t)

	buyer := testkeeper.TestAddress(1)
	fundBuyer(bank, buyer, 1_000)
	require.NoError(t, k.Whitelist(ctx, testkeeper.TestAuthority, buyer))

	_, err := k.Contribute(ctx, buyer, math.NewInt(1_000))
	require.NoError(t, err)

	_, err = k.Claim(ctx, buyer)
	require.ErrorIs(t, err, types.ErrNotOpenPhase)
}

func TestClaimPaysDeferredTokens(t *testing.T) {
	k, bank, ctx := testkeeper.SaleKeeper(t)

	buyer := testkeeper.TestAddress(1)
	fundBuyer(bank, buyer, 1_500)
	require.NoError(t, k.Whitelist(ctx, testkeeper.TestAuthority, buyer))

	_, err := k.Contribute(ctx, buyer, math.NewInt(1_500))
	require.NoError(t, err)

	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))
	fundSaleTokens(bank, 1_000_000)

	claimed, err := k.Claim(ctx, buyer)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(7_500), claimed, "1,500 at rate 5")

	got := bank.GetBalance(ctx, buyer, types.DefaultTokenDenom)
	require.Equal(t, math.NewInt(7_500), got.Amount)

	_, err = k.Claim(ctx, buyer)
	require.ErrorIs(t, err, types.ErrNothingToClaim)
}

func TestClaimNonContributor(t *testing.T) {
	k, _, ctx := testkeeper.SaleKeeper(t)
	require.NoError(t, k.AdvancePhase(ctx, testkeeper.TestAuthority, types.PhaseOpen))

	_, err := k.Claim(ctx, testkeeper.TestAddress(1))
	require.ErrorIs(t, err, types.ErrNotContributor)
}
