package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	saletypes "github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// Keeper of the sale store
type Keeper struct {
	storeKey    storetypes.StoreKey
	cdc         codec.BinaryCodec
	bankKeeper  saletypes.BankKeeper
	tokenKeeper saletypes.TaxTokenKeeper
	authority   string
	moduleAddr  sdk.AccAddress
}

// NewKeeper creates a new sale Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	bankKeeper saletypes.BankKeeper,
	tokenKeeper saletypes.TaxTokenKeeper,
	authority string,
) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		bankKeeper:  bankKeeper,
		tokenKeeper: tokenKeeper,
		authority:   authority,
		moduleAddr:  authtypes.NewModuleAddress(saletypes.ModuleName),
	}
}

// GetAuthority returns the sale module's admin authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the sale module account address
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddr
}

// getStore returns the KVStore for the sale module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
