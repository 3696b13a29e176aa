package keeper

import (
	"context"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// WithReentrancyGuard executes a function under the pool-wide reentrancy
// lock. The lock lives in the KVStore so it persists across context
// boundaries; every mutating entry point runs under it, so none can nest
// inside another.
func (k Keeper) WithReentrancyGuard(ctx context.Context, operation string, fn func() error) error {
	if err := k.acquireReentrancyLock(ctx, operation); err != nil {
		return err
	}

	// Ensure lock is released even if function panics
	defer k.releaseReentrancyLock(ctx)

	return fn()
}

// acquireReentrancyLock attempts to acquire the pool lock from the KVStore
func (k Keeper) acquireReentrancyLock(ctx context.Context, operation string) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey()

	if store.Has(key) {
		return ammtypes.ErrReentrancy.Wrapf("pool is locked, %s rejected", operation)
	}

	store.Set(key, []byte{0x01})
	return nil
}

// releaseReentrancyLock releases the pool lock from the KVStore
func (k Keeper) releaseReentrancyLock(ctx context.Context) {
	store := k.getStore(ctx)
	store.Delete(ReentrancyLockKey())
}
