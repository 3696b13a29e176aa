package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

func TestReentrancyGuardBlocksNestedEntryPoints(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	err := k.WithReentrancyGuard(ctx, "outer", func() error {
		_, _, err := k.Resync(ctx)
		return err
	})
	require.ErrorIs(t, err, types.ErrReentrancy)

	err = k.WithReentrancyGuard(ctx, "outer", func() error {
		_, err := k.Deposit(ctx, testkeeper.TestAddress(2))
		return err
	})
	require.ErrorIs(t, err, types.ErrReentrancy)
}

func TestReentrancyGuardReleasesLock(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	seedPool(t, k, bank, ctx, testkeeper.TestAddress(1), 150_000, 30_000)

	require.NoError(t, k.WithReentrancyGuard(ctx, "first", func() error { return nil }))

	// A failed operation must not leave the lock behind
	_, _, err := k.Withdraw(ctx, testkeeper.TestAddress(2),
		math.NewInt(10), math.ZeroInt(), math.ZeroInt())
	require.Error(t, err)

	_, _, err = k.Resync(ctx)
	require.NoError(t, err)
}
