package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default sale parameters. Amounts are denominated in base currency units.
var (
	DefaultRate = math.NewInt(5)

	DefaultSeedAggregateCap     = math.NewInt(15_000)
	DefaultSeedIndividualCap    = math.NewInt(1_500)
	DefaultGeneralAggregateCap  = math.NewInt(30_000)
	DefaultGeneralIndividualCap = math.NewInt(1_000)
	DefaultOpenCap              = math.NewInt(100_000)
)

const (
	DefaultTokenDenom    = "uspc"
	DefaultCurrencyDenom = "uspace"
)

// Params defines the fixed configuration of the sale module.
type Params struct {
	TokenDenom           string   `json:"token_denom"`
	CurrencyDenom        string   `json:"currency_denom"`
	Rate                 math.Int `json:"rate"`
	SeedAggregateCap     math.Int `json:"seed_aggregate_cap"`
	SeedIndividualCap    math.Int `json:"seed_individual_cap"`
	GeneralAggregateCap  math.Int `json:"general_aggregate_cap"`
	GeneralIndividualCap math.Int `json:"general_individual_cap"`
	OpenCap              math.Int `json:"open_cap"`
	TreasuryAddress      string   `json:"treasury_address"`
}

// DefaultParams returns default parameters for the sale module
func DefaultParams() Params {
	return Params{
		TokenDenom:           DefaultTokenDenom,
		CurrencyDenom:        DefaultCurrencyDenom,
		Rate:                 DefaultRate,
		SeedAggregateCap:     DefaultSeedAggregateCap,
		SeedIndividualCap:    DefaultSeedIndividualCap,
		GeneralAggregateCap:  DefaultGeneralAggregateCap,
		GeneralIndividualCap: DefaultGeneralIndividualCap,
		OpenCap:              DefaultOpenCap,
		TreasuryAddress:      "",
	}
}

// CapsForPhase returns the aggregate and individual caps for a phase. The
// open phase has no per-buyer limit beyond the aggregate cap, so both caps
// collapse to the open cap.
func (p Params) CapsForPhase(phase Phase) (aggregate, individual math.Int) {
	switch phase {
	case PhaseSeed:
		return p.SeedAggregateCap, p.SeedIndividualCap
	case PhaseGeneral:
		return p.GeneralAggregateCap, p.GeneralIndividualCap
	default:
		return p.OpenCap, p.OpenCap
	}
}

// Validate checks the sale parameters.
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
	if p.Rate.IsNil() || !p.Rate.IsPositive() {
		return fmt.Errorf("rate must be positive")
	}
	caps := []struct {
		name string
		val  math.Int
	}{
		{"seed aggregate cap", p.SeedAggregateCap},
		{"seed individual cap", p.SeedIndividualCap},
		{"general aggregate cap", p.GeneralAggregateCap},
		{"general individual cap", p.GeneralIndividualCap},
		{"open cap", p.OpenCap},
	}
	for _, c := range caps {
		if c.val.IsNil() || !c.val.IsPositive() {
			return fmt.Errorf("%s must be positive", c.name)
		}
	}
	if p.SeedIndividualCap.GT(p.SeedAggregateCap) {
		return fmt.Errorf("seed individual cap cannot exceed seed aggregate cap")
	}
	if p.GeneralIndividualCap.GT(p.GeneralAggregateCap) {
		return fmt.Errorf("general individual cap cannot exceed general aggregate cap")
	}
	if p.TreasuryAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.TreasuryAddress); err != nil {
			return fmt.Errorf("invalid treasury address: %w", err)
		}
	}
	return nil
}
