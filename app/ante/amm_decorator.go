package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	ammkeeper "github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

// ammValidationGas is charged up front for pool message pre-checks.
const ammValidationGas = 2_000

// AmmDecorator rejects pool transactions that are certain to fail before
// they reach the message server: swaps that declare more output than the
// pool holds, and withdrawals of more shares than the provider owns.
type AmmDecorator struct {
	keeper ammkeeper.Keeper
}

// NewAmmDecorator creates a new AmmDecorator
func NewAmmDecorator(keeper ammkeeper.Keeper) AmmDecorator {
	return AmmDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (ad AmmDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *ammtypes.MsgSwapToToken:
			if err := ad.validateSwapToToken(ctx, msg); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgSwapToCurrency:
			if err := ad.validateSwapToCurrency(ctx, msg); err != nil {
				return ctx, err
			}
		case *ammtypes.MsgWithdraw:
			if err := ad.validateWithdraw(ctx, msg); err != nil {
				return ctx, err
			}
		case *routertypes.MsgSwapExactCurrencyForToken,
			*routertypes.MsgSwapExactTokenForCurrency:
			if err := ad.validatePoolLiquidity(ctx); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateSwapToToken checks the declared token output against the reserve.
func (ad AmmDecorator) validateSwapToToken(ctx sdk.Context, msg *ammtypes.MsgSwapToToken) error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ammValidationGas, "swap validation")

	pool := ad.keeper.GetPool(ctx)
	if msg.TokenOut.GTE(pool.ReserveToken) {
		return ammtypes.ErrInsufficientReserve.Wrapf(
			"declared output %s exceeds token reserve %s",
			msg.TokenOut.String(), pool.ReserveToken.String(),
		)
	}

	return nil
}

// validateSwapToCurrency checks the declared currency output against the reserve.
func (ad AmmDecorator) validateSwapToCurrency(ctx sdk.Context, msg *ammtypes.MsgSwapToCurrency) error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid trader address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ammValidationGas, "swap validation")

	pool := ad.keeper.GetPool(ctx)
	if msg.CurrencyOut.GTE(pool.ReserveCurrency) {
		return ammtypes.ErrInsufficientReserve.Wrapf(
			"declared output %s exceeds currency reserve %s",
			msg.CurrencyOut.String(), pool.ReserveCurrency.String(),
		)
	}

	return nil
}

// validateWithdraw checks the share balance of the provider.
func (ad AmmDecorator) validateWithdraw(ctx sdk.Context, msg *ammtypes.MsgWithdraw) error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}

	ctx.GasMeter().ConsumeGas(ammValidationGas, "withdraw validation")

	held := ad.keeper.GetShares(ctx, msg.Provider)
	if msg.Shares.GT(held) {
		return ammtypes.ErrInsufficientShares.Wrapf(
			"withdrawing %s shares, holding %s",
			msg.Shares.String(), held.String(),
		)
	}

	return nil
}

// validatePoolLiquidity rejects routed swaps against an unfunded pool.
func (ad AmmDecorator) validatePoolLiquidity(ctx sdk.Context) error {
	ctx.GasMeter().ConsumeGas(ammValidationGas, "routed swap validation")

	pool := ad.keeper.GetPool(ctx)
	if !pool.ReserveToken.IsPositive() || !pool.ReserveCurrency.IsPositive() {
		return ammtypes.ErrInsufficientLiquidity.Wrap("pool has no reserves")
	}

	return nil
}
