package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the sale module's genesis state.
type GenesisState struct {
	Params    Params               `json:"params"`
	State     SaleState            `json:"state"`
	Whitelist []string             `json:"whitelist"`
	Records   []ContributionRecord `json:"records"`
}

// DefaultGenesis returns the default genesis state for the sale module.
func DefaultGenesis() *GenesisState {
	params := DefaultParams()
	return &GenesisState{
		Params: params,
		State: SaleState{
			Phase:            PhaseSeed,
			AggregateCap:     params.SeedAggregateCap,
			IndividualCap:    params.SeedIndividualCap,
			TotalContributed: math.ZeroInt(),
			AvailableFunds:   math.ZeroInt(),
			Paused:           false,
		},
		Whitelist: []string{},
		Records:   []ContributionRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.State.Validate(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(gs.Whitelist))
	for _, addr := range gs.Whitelist {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return fmt.Errorf("invalid whitelist address %s: %w", addr, err)
		}
		if _, dup := seen[addr]; dup {
			return fmt.Errorf("duplicate whitelist address %s", addr)
		}
		seen[addr] = struct{}{}
	}

	total := math.ZeroInt()
	recorded := make(map[string]struct{}, len(gs.Records))
	for _, rec := range gs.Records {
		if err := rec.Validate(gs.Params.Rate); err != nil {
			return err
		}
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return fmt.Errorf("invalid record address %s: %w", rec.Address, err)
		}
		if _, dup := recorded[rec.Address]; dup {
			return fmt.Errorf("duplicate contribution record for %s", rec.Address)
		}
		recorded[rec.Address] = struct{}{}
		total = total.Add(rec.TotalContributed)
	}
	if !total.Equal(gs.State.TotalContributed) {
		return fmt.Errorf("sum of contributions %s does not match state total %s",
			total, gs.State.TotalContributed)
	}

	return nil
}
