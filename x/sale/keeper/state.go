package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	// Use encoding/json for non-protobuf types
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}

// GetSaleState returns the singleton sale state
func (k Keeper) GetSaleState(ctx context.Context) (types.SaleState, error) {
	store := k.getStore(ctx)
	bz := store.Get(SaleStateKey)
	if bz == nil {
		return types.SaleState{}, fmt.Errorf("sale state not initialized")
	}

	var state types.SaleState
	if err := json.Unmarshal(bz, &state); err != nil {
		return types.SaleState{}, fmt.Errorf("GetSaleState: unmarshal: %w", err)
	}
	return state, nil
}

// SetSaleState stores the singleton sale state
func (k Keeper) SetSaleState(ctx context.Context, state types.SaleState) error {
	store := k.getStore(ctx)
	bz, err := json.Marshal(&state)
	if err != nil {
		return fmt.Errorf("SetSaleState: marshal: %w", err)
	}
	store.Set(SaleStateKey, bz)
	return nil
}

// GetRecord returns the contribution record for an address
func (k Keeper) GetRecord(ctx context.Context, addr sdk.AccAddress) (types.ContributionRecord, bool) {
	store := k.getStore(ctx)
	bz := store.Get(RecordKey(addr))
	if bz == nil {
		return types.ContributionRecord{}, false
	}

	var record types.ContributionRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		return types.ContributionRecord{}, false
	}
	return record, true
}

// SetRecord stores a contribution record
func (k Keeper) SetRecord(ctx context.Context, record types.ContributionRecord) error {
	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return fmt.Errorf("SetRecord: %w", err)
	}

	store := k.getStore(ctx)
	bz, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("SetRecord: marshal: %w", err)
	}
	store.Set(RecordKey(addr), bz)
	return nil
}

// IterateRecords calls fn for every contribution record until fn returns true
func (k Keeper) IterateRecords(ctx context.Context, fn func(record types.ContributionRecord) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, RecordKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.ContributionRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			continue
		}
		if fn(record) {
			break
		}
	}
}

// IsWhitelisted reports whether an address is registered for the seed phase
func (k Keeper) IsWhitelisted(ctx context.Context, addr sdk.AccAddress) bool {
	store := k.getStore(ctx)
	return store.Has(WhitelistKey(addr))
}

// SetWhitelisted registers an address for the seed phase
func (k Keeper) SetWhitelisted(ctx context.Context, addr sdk.AccAddress) {
	store := k.getStore(ctx)
	store.Set(WhitelistKey(addr), []byte{0x01})
}

// IterateWhitelist calls fn for every whitelisted address until fn returns true
func (k Keeper) IterateWhitelist(ctx context.Context, fn func(addr sdk.AccAddress) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, WhitelistKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(WhitelistKeyPrefix):])
		if fn(addr) {
			break
		}
	}
}

// GetContribution implements sharedkeeper.SaleKeeperV1 for external modules
func (k Keeper) GetContribution(ctx context.Context, addr sdk.AccAddress) (sharedkeeper.ContributionInfo, bool) {
	record, found := k.GetRecord(ctx, addr)
	if !found {
		return sharedkeeper.ContributionInfo{}, false
	}
	return sharedkeeper.ContributionInfo{
		Address:          addr,
		TotalContributed: record.TotalContributed,
		TotalClaimed:     record.TotalClaimed,
		Registered:       record.Registered,
	}, true
}
