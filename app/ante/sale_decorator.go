package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	salekeeper "github.com/spacecoin-chain/spacecoin/x/sale/keeper"
	saletypes "github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// saleValidationGas is charged up front for sale message pre-checks.
const saleValidationGas = 2_000

// SaleDecorator rejects sale transactions that are certain to fail before
// they reach the message server, so a paused or capped-out sale does not
// burn full execution gas on doomed contributions.
type SaleDecorator struct {
	keeper salekeeper.Keeper
}

// NewSaleDecorator creates a new SaleDecorator
func NewSaleDecorator(keeper salekeeper.Keeper) SaleDecorator {
	return SaleDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (sd SaleDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *saletypes.MsgContribute:
			if err := sd.validateContribute(ctx, msg); err != nil {
				return ctx, err
			}
		case *saletypes.MsgClaim:
			if err := sd.validateClaim(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateContribute rejects contributions while the sale is paused or the
// aggregate cap is already filled.
func (sd SaleDecorator) validateContribute(ctx sdk.Context, msg *saletypes.MsgContribute) error {
	if _, err := sdk.AccAddressFromBech32(msg.Buyer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid buyer address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(saleValidationGas, "contribute validation")

	state, err := sd.keeper.GetSaleState(ctx)
	if err != nil {
		return err
	}

	if state.Paused {
		return saletypes.ErrPaused.Wrap("contributions are rejected while the sale is paused")
	}

	if state.TotalContributed.GTE(state.AggregateCap) {
		return saletypes.ErrAggregateCapExceeded.Wrapf(
			"phase cap %s already filled", state.AggregateCap.String(),
		)
	}

	return nil
}

// validateClaim rejects claims before the open phase.
func (sd SaleDecorator) validateClaim(ctx sdk.Context, msg *saletypes.MsgClaim) error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid claimer address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(saleValidationGas, "claim validation")

	state, err := sd.keeper.GetSaleState(ctx)
	if err != nil {
		return err
	}

	if state.Phase != saletypes.PhaseOpen {
		return saletypes.ErrNotOpenPhase.Wrapf(
			"claims open in phase %s, current phase is %s",
			saletypes.PhaseOpen, state.Phase,
		)
	}

	return nil
}
