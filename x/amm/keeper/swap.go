package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// SwapToToken sends the declared token output to the trader against currency
// already sent to the pool address. The implied input is the growth of the
// currency balance over the bookkept reserve, and the trade stands only if
// the fee-adjusted constant product does not shrink.
func (k Keeper) SwapToToken(ctx context.Context, to sdk.AccAddress, tokenOut math.Int) error {
	return k.WithReentrancyGuard(ctx, "swap_to_token", func() error {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		if tokenOut.IsNil() || !tokenOut.IsPositive() {
			return ammtypes.ErrInvalidOutput.Wrap("token output must be positive")
		}
		if tokenOut.GTE(pool.ReserveToken) {
			return ammtypes.ErrInsufficientReserve.Wrapf(
				"token output %s exceeds reserve %s", tokenOut, pool.ReserveToken)
		}

		// Pay out first, then judge the trade by what the balances say.
		if err := k.tokenKeeper.Transfer(ctx, k.moduleAddr, to, tokenOut); err != nil {
			return err
		}

		balToken, balCurrency := k.observedBalances(ctx, params)

		amountIn := deltaAbove(balCurrency, pool.ReserveCurrency)
		if !amountIn.IsPositive() {
			return ammtypes.ErrInvariantViolation.Wrap("no currency input received")
		}

		if err := checkSwapInvariant(
			pool.ReserveToken, pool.ReserveCurrency,
			balToken, balCurrency,
			amountIn, params.SwapFeePercent,
		); err != nil {
			return err
		}

		if err := k.syncReserves(ctx, &pool, balToken, balCurrency); err != nil {
			return err
		}

		k.emitSwap(ctx, to, amountIn, tokenOut, params.CurrencyDenom, params.TokenDenom)
		return nil
	})
}

// SwapToCurrency sends the declared currency output to the trader against
// tokens already sent to the pool address. Because the token bears transfer
// tax, the implied input is what actually arrived net of withholding.
func (k Keeper) SwapToCurrency(ctx context.Context, to sdk.AccAddress, currencyOut math.Int) error {
	return k.WithReentrancyGuard(ctx, "swap_to_currency", func() error {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		if currencyOut.IsNil() || !currencyOut.IsPositive() {
			return ammtypes.ErrInvalidOutput.Wrap("currency output must be positive")
		}
		if currencyOut.GTE(pool.ReserveCurrency) {
			return ammtypes.ErrInsufficientReserve.Wrapf(
				"currency output %s exceeds reserve %s", currencyOut, pool.ReserveCurrency)
		}

		payout := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, currencyOut))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, to, payout); err != nil {
			return err
		}

		balToken, balCurrency := k.observedBalances(ctx, params)

		amountIn := deltaAbove(balToken, pool.ReserveToken)
		if !amountIn.IsPositive() {
			return ammtypes.ErrInvariantViolation.Wrap("no token input received")
		}

		if err := checkSwapInvariant(
			pool.ReserveCurrency, pool.ReserveToken,
			balCurrency, balToken,
			amountIn, params.SwapFeePercent,
		); err != nil {
			return err
		}

		if err := k.syncReserves(ctx, &pool, balToken, balCurrency); err != nil {
			return err
		}

		k.emitSwap(ctx, to, amountIn, currencyOut, params.TokenDenom, params.CurrencyDenom)
		return nil
	})
}

// checkSwapInvariant verifies that the constant product, with the fee charged
// on the input side, did not decrease:
//
//	balOut * (balIn*FeeScale - amountIn*fee) >= resOut * resIn * FeeScale
func checkSwapInvariant(resOut, resIn, balOut, balIn, amountIn, feePercent math.Int) error {
	feeCharge, err := SafeMul(amountIn, feePercent)
	if err != nil {
		return ammtypes.ErrOverflow.Wrap(err.Error())
	}

	scaledIn, err := SafeMul(balIn, math.NewInt(ammtypes.FeeScale))
	if err != nil {
		return ammtypes.ErrOverflow.Wrap(err.Error())
	}

	adjustedIn, err := SafeSub(scaledIn, feeCharge)
	if err != nil {
		return ammtypes.ErrInvariantViolation.Wrap("fee exceeds input balance")
	}

	lhs, err := SafeMul(balOut, adjustedIn)
	if err != nil {
		return ammtypes.ErrOverflow.Wrap(err.Error())
	}

	product, err := SafeMul(resOut, resIn)
	if err != nil {
		return ammtypes.ErrOverflow.Wrap(err.Error())
	}
	rhs, err := SafeMul(product, math.NewInt(ammtypes.FeeScale))
	if err != nil {
		return ammtypes.ErrOverflow.Wrap(err.Error())
	}

	if lhs.LT(rhs) {
		return ammtypes.ErrInvariantViolation.Wrapf(
			"fee-adjusted product %s below required %s", lhs, rhs)
	}
	return nil
}

// CalculateSwapOutput quotes the output for a given input against the given
// reserves, charging the fee on the input side.
func CalculateSwapOutput(amountIn, reserveIn, reserveOut, feePercent math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, ammtypes.ErrInvalidAmount.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ammtypes.ErrInsufficientLiquidity.Wrap("pool has no liquidity")
	}

	feeFactor := math.NewInt(ammtypes.FeeScale).Sub(feePercent)

	amountInWithFee, err := SafeMul(amountIn, feeFactor)
	if err != nil {
		return math.Int{}, ammtypes.ErrOverflow.Wrap(err.Error())
	}

	numerator, err := SafeMul(amountInWithFee, reserveOut)
	if err != nil {
		return math.Int{}, ammtypes.ErrOverflow.Wrap(err.Error())
	}

	scaledReserveIn, err := SafeMul(reserveIn, math.NewInt(ammtypes.FeeScale))
	if err != nil {
		return math.Int{}, ammtypes.ErrOverflow.Wrap(err.Error())
	}

	denominator, err := SafeAdd(scaledReserveIn, amountInWithFee)
	if err != nil {
		return math.Int{}, ammtypes.ErrOverflow.Wrap(err.Error())
	}

	amountOut := numerator.Quo(denominator)
	if amountOut.IsZero() {
		return math.Int{}, ammtypes.ErrInsufficientLiquidity.Wrap("swap output rounds to zero")
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ammtypes.ErrInsufficientReserve.Wrap("swap would drain the reserve")
	}

	return amountOut, nil
}

func (k Keeper) emitSwap(ctx context.Context, to sdk.AccAddress, amountIn, amountOut math.Int, denomIn, denomOut string) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Info("swap executed",
		"module", ammtypes.ModuleName,
		"recipient", to.String(),
		"amount_in", amountIn.String(),
		"denom_in", denomIn,
		"amount_out", amountOut.String(),
		"denom_out", denomOut,
	)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			ammtypes.EventTypeSwap,
			sdk.NewAttribute(ammtypes.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amountIn.String()+denomIn),
			sdk.NewAttribute(ammtypes.AttributeKeyTokenOut, amountOut.String()+denomOut),
		),
	)

	if m := GetAmmMetrics(); m != nil {
		m.SwapsTotal.WithLabelValues(denomIn, denomOut).Inc()
	}
}
