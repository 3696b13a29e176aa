package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// AccountKeeper defines the expected interface for the auth module keeper
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected interface for the bank module keeper
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// TaxTokenKeeper defines the expected interface for the tax-bearing token
type TaxTokenKeeper = sharedkeeper.TaxTokenKeeperV1
