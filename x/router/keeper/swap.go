package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/spacecoin-chain/spacecoin/app/telemetry"
	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

// SwapExactCurrencyForToken trades an exact currency input for tokens,
// rejecting the trade when the net return falls below minOut. The router
// pre-funds the pool and invokes it with the pre-tax declared output; the
// pool's outbound transfer applies any withholding.
func (k Keeper) SwapExactCurrencyForToken(ctx context.Context, trader sdk.AccAddress, amountIn, minOut math.Int) (math.Int, error) {
	ctx, span := telemetry.StartSwapSpan(ctx, routertypes.DirectionCurrencyToToken, amountIn.String())
	defer span.End()

	gross, net, err := k.QuoteCurrencyToToken(ctx, amountIn)
	if err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	if net.LT(minOut) {
		err := routertypes.ErrUnmetMinimumReturn.Wrapf(
			"net return %s below minimum %s", net, minOut)
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	funding := sdk.NewCoins(sdk.NewCoin(k.currencyDenom, amountIn))
	if err := k.bankKeeper.SendCoins(ctx, trader, k.ammKeeper.PoolAddress(), funding); err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	if err := k.ammKeeper.SwapToToken(ctx, trader, gross); err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	k.emitSwap(ctx, trader, routertypes.DirectionCurrencyToToken, amountIn, net)
	return net, nil
}

// SwapExactTokenForCurrency trades an exact token input for currency,
// rejecting the trade when the return falls below minOut. The quote prices
// only the post-tax input, which is exactly what the pool observes arriving.
func (k Keeper) SwapExactTokenForCurrency(ctx context.Context, trader sdk.AccAddress, amountIn, minOut math.Int) (math.Int, error) {
	ctx, span := telemetry.StartSwapSpan(ctx, routertypes.DirectionTokenToCurrency, amountIn.String())
	defer span.End()

	out, err := k.QuoteTokenToCurrency(ctx, trader, amountIn)
	if err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	if out.LT(minOut) {
		err := routertypes.ErrUnmetMinimumReturn.Wrapf(
			"return %s below minimum %s", out, minOut)
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	if err := k.tokenKeeper.Transfer(ctx, trader, k.ammKeeper.PoolAddress(), amountIn); err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	if err := k.ammKeeper.SwapToCurrency(ctx, trader, out); err != nil {
		telemetry.RecordError(span, err)
		return math.Int{}, err
	}

	k.emitSwap(ctx, trader, routertypes.DirectionTokenToCurrency, amountIn, out)
	return out, nil
}

func (k Keeper) emitSwap(ctx context.Context, trader sdk.AccAddress, direction string, amountIn, amountOut math.Int) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("routed swap",
		"module", routertypes.ModuleName,
		"trader", trader.String(),
		"direction", direction,
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			routertypes.EventTypeRoutedSwap,
			sdk.NewAttribute(routertypes.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(routertypes.AttributeKeyDirection, direction),
			sdk.NewAttribute(routertypes.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(routertypes.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	if m := GetRouterMetrics(); m != nil {
		m.SwapsTotal.WithLabelValues(direction).Inc()
	}
}
