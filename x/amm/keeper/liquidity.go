package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// Deposit mints liquidity shares against assets already sent to the pool
// address. The contribution is measured as the difference between the
// observed balances and the bookkept reserves, so callers transfer first and
// invoke second. The first deposit retires MinLockedShares to the sink
// address forever.
func (k Keeper) Deposit(ctx context.Context, to sdk.AccAddress) (math.Int, error) {
	minted := math.ZeroInt()

	err := k.WithReentrancyGuard(ctx, "deposit", func() error {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		balToken, balCurrency := k.observedBalances(ctx, params)
		deltaToken := deltaAbove(balToken, pool.ReserveToken)
		deltaCurrency := deltaAbove(balCurrency, pool.ReserveCurrency)

		if pool.TotalShares.IsZero() {
			product, err := SafeMul(deltaToken, deltaCurrency)
			if err != nil {
				return ammtypes.ErrOverflow.Wrap(err.Error())
			}

			root, err := IntSqrt(product)
			if err != nil {
				return ammtypes.ErrInvalidAmount.Wrap(err.Error())
			}

			if root.LTE(params.MinLockedShares) {
				return ammtypes.ErrInsufficientLiquidity.Wrapf(
					"initial deposit yields %s shares, need more than %s", root, params.MinLockedShares)
			}

			minted = root.Sub(params.MinLockedShares)

			lockedHeld := k.GetShares(ctx, k.lockedAddr.String())
			if err := k.SetShares(ctx, k.lockedAddr.String(), lockedHeld.Add(params.MinLockedShares)); err != nil {
				return err
			}

			pool.TotalShares = root
		} else {
			byToken, err := SafeMulDiv(deltaToken, pool.TotalShares, pool.ReserveToken)
			if err != nil {
				return ammtypes.ErrOverflow.Wrap(err.Error())
			}

			byCurrency, err := SafeMulDiv(deltaCurrency, pool.TotalShares, pool.ReserveCurrency)
			if err != nil {
				return ammtypes.ErrOverflow.Wrap(err.Error())
			}

			minted = math.MinInt(byToken, byCurrency)
			if !minted.IsPositive() {
				return ammtypes.ErrInsufficientLiquidity.Wrap("deposit too small to mint shares")
			}

			total, err := SafeAdd(pool.TotalShares, minted)
			if err != nil {
				return ammtypes.ErrOverflow.Wrap(err.Error())
			}
			pool.TotalShares = total
		}

		held := k.GetShares(ctx, to.String())
		if err := k.SetShares(ctx, to.String(), held.Add(minted)); err != nil {
			return err
		}

		if err := k.syncReserves(ctx, &pool, balToken, balCurrency); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.Logger().Info("liquidity deposited",
			"module", ammtypes.ModuleName,
			"provider", to.String(),
			"token_in", deltaToken.String(),
			"currency_in", deltaCurrency.String(),
			"shares_minted", minted.String(),
		)

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				ammtypes.EventTypeLiquidityAdded,
				sdk.NewAttribute(ammtypes.AttributeKeyProvider, to.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyTokenAmount, deltaToken.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyCurrencyAmount, deltaCurrency.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyShares, minted.String()),
			),
		)

		if m := GetAmmMetrics(); m != nil {
			m.DepositsTotal.Inc()
			m.TotalShares.Set(floatFromInt(pool.TotalShares))
		}

		return nil
	})
	if err != nil {
		return math.Int{}, err
	}

	return minted, nil
}

// Withdraw burns shares from the provider's position and pays out both pool
// assets pro rata against the observed balances.
func (k Keeper) Withdraw(ctx context.Context, to sdk.AccAddress, shares, minToken, minCurrency math.Int) (math.Int, math.Int, error) {
	tokenOut := math.ZeroInt()
	currencyOut := math.ZeroInt()

	err := k.WithReentrancyGuard(ctx, "withdraw", func() error {
		params := k.GetParams(ctx)
		pool := k.GetPool(ctx)

		if shares.IsNil() || !shares.IsPositive() {
			return ammtypes.ErrInvalidAmount.Wrap("shares must be positive")
		}
		if pool.TotalShares.IsZero() {
			return ammtypes.ErrInsufficientLiquidity.Wrap("pool has no liquidity")
		}

		held := k.GetShares(ctx, to.String())
		if shares.GT(held) {
			return ammtypes.ErrInsufficientShares.Wrapf("burning %s shares, position holds %s", shares, held)
		}

		balToken, balCurrency := k.observedBalances(ctx, params)

		var err error
		tokenOut, err = SafeMulDiv(shares, balToken, pool.TotalShares)
		if err != nil {
			return ammtypes.ErrOverflow.Wrap(err.Error())
		}

		currencyOut, err = SafeMulDiv(shares, balCurrency, pool.TotalShares)
		if err != nil {
			return ammtypes.ErrOverflow.Wrap(err.Error())
		}

		if !tokenOut.IsPositive() || !currencyOut.IsPositive() {
			return ammtypes.ErrInsufficientLiquidity.Wrap("share burn returns nothing")
		}

		if tokenOut.LT(minToken) || currencyOut.LT(minCurrency) {
			return ammtypes.ErrUnmetMinimum.Wrapf(
				"returns %s token / %s currency, minimums %s / %s", tokenOut, currencyOut, minToken, minCurrency)
		}

		if err := k.SetShares(ctx, to.String(), held.Sub(shares)); err != nil {
			return err
		}
		pool.TotalShares = pool.TotalShares.Sub(shares)

		if err := k.tokenKeeper.Transfer(ctx, k.moduleAddr, to, tokenOut); err != nil {
			return err
		}

		payout := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, currencyOut))
		if err := k.bankKeeper.SendCoins(ctx, k.moduleAddr, to, payout); err != nil {
			return err
		}

		balToken, balCurrency = k.observedBalances(ctx, params)
		if err := k.syncReserves(ctx, &pool, balToken, balCurrency); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.Logger().Info("liquidity withdrawn",
			"module", ammtypes.ModuleName,
			"provider", to.String(),
			"shares_burned", shares.String(),
			"token_out", tokenOut.String(),
			"currency_out", currencyOut.String(),
		)

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				ammtypes.EventTypeLiquidityRemoved,
				sdk.NewAttribute(ammtypes.AttributeKeyProvider, to.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyShares, shares.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyTokenOut, tokenOut.String()),
				sdk.NewAttribute(ammtypes.AttributeKeyCurrencyOut, currencyOut.String()),
			),
		)

		if m := GetAmmMetrics(); m != nil {
			m.WithdrawalsTotal.Inc()
			m.TotalShares.Set(floatFromInt(pool.TotalShares))
		}

		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	return tokenOut, currencyOut, nil
}

// deltaAbove returns bal-floor, or zero when the balance has not grown.
func deltaAbove(bal, floor math.Int) math.Int {
	if bal.LTE(floor) {
		return math.ZeroInt()
	}
	return bal.Sub(floor)
}
