package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the AMM module's genesis state.
type GenesisState struct {
	Params    Params          `json:"params"`
	Pool      Pool            `json:"pool"`
	Positions []SharePosition `json:"positions"`
}

// DefaultGenesis returns the default genesis state with an empty pool.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Pool:      NewPool(),
		Positions: nil,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if err := gs.Pool.Validate(); err != nil {
		return fmt.Errorf("invalid pool: %w", err)
	}

	seen := make(map[string]bool, len(gs.Positions))
	sum := math.ZeroInt()
	for _, pos := range gs.Positions {
		if err := pos.Validate(); err != nil {
			return err
		}
		if seen[pos.Address] {
			return fmt.Errorf("duplicate share position for %s", pos.Address)
		}
		seen[pos.Address] = true
		sum = sum.Add(pos.Shares)
	}

	if !sum.Equal(gs.Pool.TotalShares) {
		return fmt.Errorf("share positions sum to %s, pool records %s", sum, gs.Pool.TotalShares)
	}

	return nil
}
