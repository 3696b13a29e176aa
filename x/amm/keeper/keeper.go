package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// Keeper of the AMM store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         codec.BinaryCodec
	bankKeeper  ammtypes.BankKeeper
	tokenKeeper ammtypes.TaxTokenKeeper
	authority   string
	moduleAddr  sdk.AccAddress
	lockedAddr  sdk.AccAddress
}

// NewKeeper creates a new AMM Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper ammtypes.BankKeeper,
	tokenKeeper ammtypes.TaxTokenKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		bankKeeper:  bankKeeper,
		tokenKeeper: tokenKeeper,
		authority:   authority,
		moduleAddr:  authtypes.NewModuleAddress(ammtypes.ModuleName),
		lockedAddr:  authtypes.NewModuleAddress(ammtypes.LockedSharesName),
	}
}

// GetAuthority returns the AMM module's admin authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the pool account address
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// GetLockedSharesAddress returns the sink address holding retired bootstrap shares
func (k Keeper) GetLockedSharesAddress() sdk.AccAddress {
	return k.lockedAddr
}

// PoolAddress returns the address holding the pool's assets
func (k Keeper) PoolAddress() sdk.AccAddress {
	return k.moduleAddr
}

// getStore returns the KVStore for the AMM module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
