package amm

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
	sharedabci "github.com/spacecoin-chain/spacecoin/x/shared/abci"
)

// EndBlock audits the pool account at the end of every block. Positive drift
// between the pool's actual balances and the bookkept reserves is legal
// (direct transfers park value until the next resync) but worth surfacing.
// Negative drift means assets left the pool outside an entry point and is
// escalated.
func (am AppModule) EndBlock(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	handler := sharedabci.NewBlockerErrorHandler(sdkCtx, types.ModuleName)

	driftToken, driftCurrency := am.keeper.ReserveDrift(ctx)

	if driftToken.IsNegative() || driftCurrency.IsNegative() {
		handler.HandleError("reserve_audit", sharedabci.SeverityCritical,
			fmt.Errorf("pool balances below bookkept reserves: token drift %s, currency drift %s",
				driftToken, driftCurrency))
		return nil
	}

	if driftToken.IsPositive() || driftCurrency.IsPositive() {
		handler.HandleError("reserve_audit", sharedabci.SeverityLow,
			fmt.Errorf("unsynced pool assets: token %s, currency %s",
				driftToken, driftCurrency))
	}

	return nil
}
