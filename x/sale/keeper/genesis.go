package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// InitGenesis initializes the sale module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if err := k.SetSaleState(ctx, genState.State); err != nil {
		return fmt.Errorf("failed to set sale state: %w", err)
	}

	for _, addr := range genState.Whitelist {
		acc, err := sdk.AccAddressFromBech32(addr)
		if err != nil {
			return fmt.Errorf("invalid whitelist address %s: %w", addr, err)
		}
		k.SetWhitelisted(ctx, acc)
	}

	for _, record := range genState.Records {
		if err := record.Validate(genState.Params.Rate); err != nil {
			return fmt.Errorf("invalid contribution record: %w", err)
		}
		if err := k.SetRecord(ctx, record); err != nil {
			return fmt.Errorf("failed to set record for %s: %w", record.Address, err)
		}
	}

	return nil
}

// ExportGenesis exports the sale module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale state: %w", err)
	}

	whitelist := []string{}
	k.IterateWhitelist(ctx, func(addr sdk.AccAddress) bool {
		whitelist = append(whitelist, addr.String())
		return false
	})

	records := []types.ContributionRecord{}
	k.IterateRecords(ctx, func(record types.ContributionRecord) bool {
		records = append(records, record)
		return false
	})

	return &types.GenesisState{
		Params:    params,
		State:     state,
		Whitelist: whitelist,
		Records:   records,
	}, nil
}
