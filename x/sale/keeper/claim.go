package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// Claim releases the claimer's outstanding token entitlement. Only available
// once the sale has reached the open phase.
func (k Keeper) Claim(ctx context.Context, claimer sdk.AccAddress) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, fmt.Errorf("Claim: get params: %w", err)
	}

	state, err := k.GetSaleState(ctx)
	if err != nil {
		return math.Int{}, fmt.Errorf("Claim: get state: %w", err)
	}

	if state.Phase != types.PhaseOpen {
		return math.Int{}, types.ErrNotOpenPhase.Wrapf("current phase is %s", state.Phase)
	}

	record, found := k.GetRecord(ctx, claimer)
	if !found {
		return math.Int{}, types.ErrNotContributor.Wrapf("address %s", claimer.String())
	}

	owed := record.TokensOwed(params.Rate)
	if !owed.IsPositive() {
		return math.Int{}, types.ErrNothingToClaim.Wrapf("address %s", claimer.String())
	}

	// Settle the ledger before the outbound transfer
	record.TotalClaimed = record.TotalClaimed.Add(owed)
	if err := k.SetRecord(ctx, record); err != nil {
		return math.Int{}, fmt.Errorf("Claim: set record: %w", err)
	}

	if err := k.tokenKeeper.Transfer(ctx, k.moduleAddr, claimer, owed); err != nil {
		return math.Int{}, fmt.Errorf("Claim: release tokens: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("sale claim",
		"claimer", claimer.String(),
		"tokens", owed.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTokensClaimed,
			sdk.NewAttribute(types.AttributeKeyClaimer, claimer.String()),
			sdk.NewAttribute(types.AttributeKeyTokensReleased, owed.String()),
		),
	)

	if m := GetSaleMetrics(); m != nil {
		m.ClaimsTotal.Inc()
	}

	return owed, nil
}
