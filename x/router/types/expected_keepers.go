package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// BankKeeper defines the expected interface for the bank module keeper
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// AmmKeeper defines the expected interface for the pool the router sequences
type AmmKeeper = sharedkeeper.AmmKeeperV1Extended

// TaxTokenKeeper defines the expected interface for the tax-bearing token
type TaxTokenKeeper = sharedkeeper.TaxTokenKeeperV1
