// Package keeper provides shared keeper interfaces for cross-module communication.
// Versioned interfaces allow stable API contracts between modules.
package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// =============================================================================
// Tax Token Keeper Interfaces (Versioned)
// =============================================================================

// TaxTokenKeeperV1 defines the minimal interface for the tax-bearing token.
// Version 1.0 - Initial release
// Modules should depend on this interface rather than the concrete keeper.
// Transfers may deliver less than the sent amount: a withholding slice is
// diverted to the token's treasury unless the sender is exempt.
type TaxTokenKeeperV1 interface {
	// BalanceOf returns the token balance of an account.
	BalanceOf(ctx context.Context, addr sdk.AccAddress) sdkmath.Int

	// Transfer moves tokens between accounts, applying withholding.
	Transfer(ctx context.Context, from, to sdk.AccAddress, amount sdkmath.Int) error

	// TaxBasisPoints returns the withholding rate in basis points.
	TaxBasisPoints(ctx context.Context) sdkmath.Int

	// IsExempt reports whether transfers from addr skip withholding.
	IsExempt(ctx context.Context, addr sdk.AccAddress) bool
}

// =============================================================================
// AMM Keeper Interfaces (Versioned)
// =============================================================================

// AmmKeeperV1 defines the minimal AMM keeper interface for cross-module use.
// Version 1.0 - Initial release
type AmmKeeperV1 interface {
	// GetReserves returns the cached token and currency reserves with the
	// outstanding share supply.
	GetReserves(ctx context.Context) (PoolInfo, bool)

	// PoolAddress returns the address holding the pool's assets.
	PoolAddress() sdk.AccAddress
}

// AmmKeeperV1Extended extends V1 with the pool entry points the router
// sequences after pre-funding the pool address.
type AmmKeeperV1Extended interface {
	AmmKeeperV1

	// Deposit mints shares against assets already sent to the pool address.
	Deposit(ctx context.Context, to sdk.AccAddress) (sdkmath.Int, error)

	// Withdraw burns shares and returns the pro-rata assets.
	Withdraw(ctx context.Context, to sdk.AccAddress, shares, minToken, minCurrency sdkmath.Int) (sdkmath.Int, sdkmath.Int, error)

	// SwapToToken sends the declared token output against currency already
	// sent to the pool address.
	SwapToToken(ctx context.Context, to sdk.AccAddress, tokenOut sdkmath.Int) error

	// SwapToCurrency sends the declared currency output against tokens
	// already sent to the pool address.
	SwapToCurrency(ctx context.Context, to sdk.AccAddress, currencyOut sdkmath.Int) error
}

// PoolInfo holds pool data returned by AMM queries.
type PoolInfo struct {
	ReserveToken    sdkmath.Int
	ReserveCurrency sdkmath.Int
	TotalShares     sdkmath.Int
}

// =============================================================================
// Sale Keeper Interfaces (Versioned)
// =============================================================================

// SaleKeeperV1 defines the minimal sale keeper interface for cross-module use.
// Version 1.0 - Initial release
type SaleKeeperV1 interface {
	// GetContribution returns the buyer's lifetime contribution and claim totals.
	GetContribution(ctx context.Context, addr sdk.AccAddress) (ContributionInfo, bool)
}

// ContributionInfo holds contribution data returned by sale queries.
type ContributionInfo struct {
	Address          sdk.AccAddress
	TotalContributed sdkmath.Int
	TotalClaimed     sdkmath.Int
	Registered       bool
}

// =============================================================================
// Version Constants
// =============================================================================

const (
	// TaxTokenKeeperVersion is the current tax token keeper interface version.
	TaxTokenKeeperVersion = "v1.0.0"

	// AmmKeeperVersion is the current AMM keeper interface version.
	AmmKeeperVersion = "v1.0.0"

	// SaleKeeperVersion is the current sale keeper interface version.
	SaleKeeperVersion = "v1.0.0"
)
