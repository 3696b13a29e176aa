package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// Withdraw pays out accumulated sale proceeds to the treasury. Only the
// configured treasury may withdraw, and only once the sale is open.
func (k Keeper) Withdraw(ctx context.Context, treasury sdk.AccAddress, amount math.Int) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("Withdraw: get params: %w", err)
	}

	if params.TreasuryAddress == "" || treasury.String() != params.TreasuryAddress {
		return types.ErrUnauthorized.Wrapf("only the treasury may withdraw, got %s", treasury.String())
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return fmt.Errorf("Withdraw: get state: %w", err)
	}

	if state.Phase != types.PhaseOpen {
		return types.ErrNotOpenPhase.Wrapf("current phase is %s", state.Phase)
	}

	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("withdrawal must be positive")
	}

	newAvailable, err := SafeSub(state.AvailableFunds, amount)
	if err != nil {
		return types.ErrInvalidAmount.Wrapf(
			"withdrawal exceeds available proceeds: available %s, requested %s",
			state.AvailableFunds, amount,
		)
	}

	state.AvailableFunds = newAvailable
	if err := k.SetSaleState(ctx, state); err != nil {
		return fmt.Errorf("Withdraw: set state: %w", err)
	}

	payout := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, treasury, payout); err != nil {
		return fmt.Errorf("Withdraw: pay treasury: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("sale withdrawal",
		"recipient", treasury.String(),
		"amount", amount.String(),
		"remaining", newAvailable.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawal,
			sdk.NewAttribute(types.AttributeKeyRecipient, treasury.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	if m := GetSaleMetrics(); m != nil {
		m.WithdrawalsTotal.Inc()
	}

	return nil
}
