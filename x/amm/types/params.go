package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default AMM parameters.
var (
	// DefaultSwapFeePercent is the swap fee charged on the input side,
	// expressed in whole percent.
	DefaultSwapFeePercent = math.NewInt(1)

	// DefaultMinLockedShares is the quantity of bootstrap shares retired
	// forever on the first deposit.
	DefaultMinLockedShares = math.NewInt(1_000)
)

const (
	DefaultTokenDenom    = "uspc"
	DefaultCurrencyDenom = "uspace"

	// FeeScale is the denominator of the whole-percent swap fee.
	FeeScale = 100
)

// Params defines the fixed configuration of the AMM module.
type Params struct {
	TokenDenom      string   `json:"token_denom"`
	CurrencyDenom   string   `json:"currency_denom"`
	SwapFeePercent  math.Int `json:"swap_fee_percent"`
	MinLockedShares math.Int `json:"min_locked_shares"`
}

// DefaultParams returns default parameters for the AMM module
func DefaultParams() Params {
	return Params{
		TokenDenom:      DefaultTokenDenom,
		CurrencyDenom:   DefaultCurrencyDenom,
		SwapFeePercent:  DefaultSwapFeePercent,
		MinLockedShares: DefaultMinLockedShares,
	}
}

// Validate checks the AMM parameters.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.TokenDenom); err != nil {
		return fmt.Errorf("invalid token denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.CurrencyDenom); err != nil {
		return fmt.Errorf("invalid currency denom: %w", err)
	}
	if p.TokenDenom == p.CurrencyDenom {
		return fmt.Errorf("token and currency denoms must differ")
	}
	if p.SwapFeePercent.IsNil() || p.SwapFeePercent.IsNegative() {
		return fmt.Errorf("swap fee percent cannot be negative")
	}
	if p.SwapFeePercent.GTE(math.NewInt(FeeScale)) {
		return fmt.Errorf("swap fee percent must be below %d", FeeScale)
	}
	if p.MinLockedShares.IsNil() || !p.MinLockedShares.IsPositive() {
		return fmt.Errorf("min locked shares must be positive")
	}
	return nil
}
