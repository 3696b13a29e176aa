package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// AccountKeeper defines the expected account keeper.
type AccountKeeper interface {
	GetAccount(ctx context.Context, addr sdk.AccAddress) sdk.AccountI
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper used to custody sale proceeds.
type BankKeeper interface {
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// TaxTokenKeeper is the tax-bearing token interface the sale releases tokens
// through. Releases from the module account are exempt from withholding.
type TaxTokenKeeper = sharedkeeper.TaxTokenKeeperV1
