package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

// AdvancePhase moves the sale forward to the target phase. Transitions are
// strictly forward: seed -> general, seed -> open, or general -> open. The
// open phase is terminal.
func (k Keeper) AdvancePhase(ctx context.Context, authority string, target types.Phase) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("AdvancePhase: get params: %w", err)
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return fmt.Errorf("AdvancePhase: get state: %w", err)
	}

	if state.Phase == types.PhaseOpen {
		return types.ErrInvalidPhase.Wrap("open phase is terminal")
	}
	if target <= state.Phase || target > types.PhaseOpen {
		return types.ErrInvalidPhase.Wrapf("cannot move from %s to %s", state.Phase, target)
	}

	state.Phase = target
	state.AggregateCap, state.IndividualCap = params.CapsForPhase(target)
	if err := k.SetSaleState(ctx, state); err != nil {
		return fmt.Errorf("AdvancePhase: set state: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("sale phase advanced",
		"phase", target.String(),
		"aggregate_cap", state.AggregateCap.String(),
		"individual_cap", state.IndividualCap.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePhaseStarted,
			sdk.NewAttribute(types.AttributeKeyPhase, target.String()),
			sdk.NewAttribute(types.AttributeKeyAggregateCap, state.AggregateCap.String()),
			sdk.NewAttribute(types.AttributeKeyIndividualCap, state.IndividualCap.String()),
		),
	)

	if m := GetSaleMetrics(); m != nil {
		m.CurrentPhase.Set(float64(target))
	}

	return nil
}

// SetPaused toggles the purchase pause flag. Claims and withdrawals are not
// affected by pausing.
func (k Keeper) SetPaused(ctx context.Context, authority string, paused bool) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return fmt.Errorf("SetPaused: get state: %w", err)
	}

	state.Paused = paused
	if err := k.SetSaleState(ctx, state); err != nil {
		return fmt.Errorf("SetPaused: set state: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePauseToggled,
			sdk.NewAttribute(types.AttributeKeyPaused, fmt.Sprintf("%t", paused)),
		),
	)

	return nil
}

// Whitelist registers an address for seed-phase participation.
func (k Keeper) Whitelist(ctx context.Context, authority string, addr sdk.AccAddress) error {
	if err := sharedkeeper.ValidateAuthority(k.authority, authority); err != nil {
		return err
	}

	if k.IsWhitelisted(ctx, addr) {
		return types.ErrAlreadyWhitelisted.Wrapf("address %s", addr.String())
	}

	k.SetWhitelisted(ctx, addr)

	// An existing record picks up the registration flag
	if record, found := k.GetRecord(ctx, addr); found && !record.Registered {
		record.Registered = true
		if err := k.SetRecord(ctx, record); err != nil {
			return fmt.Errorf("Whitelist: set record: %w", err)
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelisted,
			sdk.NewAttribute(types.AttributeKeyAddress, addr.String()),
		),
	)

	return nil
}
