package keeper

import (
	"context"
	"fmt"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// InitGenesis initializes the AMM module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState ammtypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	if err := k.SetPool(ctx, genState.Pool); err != nil {
		return err
	}

	for _, pos := range genState.Positions {
		if err := k.SetShares(ctx, pos.Address, pos.Shares); err != nil {
			return err
		}
	}

	return nil
}

// ExportGenesis returns the AMM module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*ammtypes.GenesisState, error) {
	genState := &ammtypes.GenesisState{
		Params: k.GetParams(ctx),
		Pool:   k.GetPool(ctx),
	}

	k.IterateShares(ctx, func(pos ammtypes.SharePosition) bool {
		genState.Positions = append(genState.Positions, pos)
		return false
	})

	return genState, nil
}
