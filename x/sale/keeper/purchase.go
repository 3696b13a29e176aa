package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// Contribute processes a purchase. The buyer pays `amount` currency and is
// credited `amount * rate` tokens; outside the open phase the tokens stay
// deferred until Claim, in the open phase they are released immediately.
//
// Returns the number of tokens released in this call (zero when deferred).
func (k Keeper) Contribute(ctx context.Context, buyer sdk.AccAddress, amount math.Int) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, fmt.Errorf("Contribute: get params: %w", err)
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return math.Int{}, fmt.Errorf("Contribute: get state: %w", err)
	}

	// 1. Guards: paused, seed whitelist, amount, caps (in that order)
	if state.Paused {
		return math.Int{}, types.ErrPaused
	}

	if state.Phase == types.PhaseSeed && !k.IsWhitelisted(ctx, buyer) {
		return math.Int{}, types.ErrNotWhitelisted.Wrapf("address %s", buyer.String())
	}

	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("contribution must be positive")
	}

	// Overflow during cap accounting is treated as a cap failure: an amount
	// too large to represent can never fit under a finite cap.
	newTotal, err := SafeAdd(state.TotalContributed, amount)
	if err != nil || newTotal.GT(state.AggregateCap) {
		return math.Int{}, types.ErrAggregateCapExceeded.Wrapf(
			"cap %s, already contributed %s, requested %s",
			state.AggregateCap, state.TotalContributed, amount,
		)
	}

	// A first purchase registers the buyer; whitelist gating for the seed
	// phase already happened above.
	record, found := k.GetRecord(ctx, buyer)
	if !found {
		record = types.ContributionRecord{
			Address:          buyer.String(),
			Registered:       true,
			TotalContributed: math.ZeroInt(),
			TotalClaimed:     math.ZeroInt(),
		}
	}

	newIndividual, err := SafeAdd(record.TotalContributed, amount)
	if err != nil || newIndividual.GT(state.IndividualCap) {
		return math.Int{}, types.ErrIndividualCapExceeded.Wrapf(
			"cap %s, already contributed %s, requested %s",
			state.IndividualCap, record.TotalContributed, amount,
		)
	}

	// 2. Collect the currency before touching the ledger
	payment := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, buyer, types.ModuleName, payment); err != nil {
		return math.Int{}, fmt.Errorf("Contribute: collect payment: %w", err)
	}

	// 3. Update the ledger
	record.TotalContributed = newIndividual
	state.TotalContributed = newTotal
	state.AvailableFunds = state.AvailableFunds.Add(amount)

	// 4. In the open phase tokens are released immediately
	released := math.ZeroInt()
	if state.Phase == types.PhaseOpen {
		released = amount.Mul(params.Rate)
		record.TotalClaimed = record.TotalClaimed.Add(released)
	}

	if err := k.SetRecord(ctx, record); err != nil {
		return math.Int{}, fmt.Errorf("Contribute: set record: %w", err)
	}
	if err := k.SetSaleState(ctx, state); err != nil {
		return math.Int{}, fmt.Errorf("Contribute: set state: %w", err)
	}

	// 5. Outbound transfer last, after all state is final
	if released.IsPositive() {
		if err := k.tokenKeeper.Transfer(ctx, k.moduleAddr, buyer, released); err != nil {
			return math.Int{}, fmt.Errorf("Contribute: release tokens: %w", err)
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("sale contribution",
		"buyer", buyer.String(),
		"amount", amount.String(),
		"phase", state.Phase.String(),
		"released", released.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePurchase,
			sdk.NewAttribute(types.AttributeKeyBuyer, buyer.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyPhase, state.Phase.String()),
			sdk.NewAttribute(types.AttributeKeyTokensReleased, released.String()),
			sdk.NewAttribute(types.AttributeKeyTotalContributed, state.TotalContributed.String()),
		),
	)

	if m := GetSaleMetrics(); m != nil {
		m.ContributionsTotal.WithLabelValues(state.Phase.String()).Inc()
		m.ContributionVolume.WithLabelValues(state.Phase.String()).Add(float64(amount.Int64()))
	}

	return released, nil
}
