package keeper

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

// feeScale is the denominator of the whole-percent swap fee.
const feeScale = 100

// bpsDenominator converts basis points to a fraction.
const bpsDenominator = 10_000

// getAmountOut prices an input amount against reserves with the fee charged
// on the input side.
func (k Keeper) getAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, routertypes.ErrNoLiquidity
	}

	feeFactor := big.NewInt(feeScale - k.feePercent.Int64())

	amountInWithFee := new(big.Int).Mul(amountIn.BigInt(), feeFactor)
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut.BigInt())
	denominator := new(big.Int).Add(
		new(big.Int).Mul(reserveIn.BigInt(), big.NewInt(feeScale)),
		amountInWithFee,
	)

	out := new(big.Int).Quo(numerator, denominator)
	return math.NewIntFromBigInt(out), nil
}

// taxOn returns the withholding taken from a token transfer of amount.
func taxOn(amount, taxBps math.Int) math.Int {
	return amount.Mul(taxBps).Quo(math.NewInt(bpsDenominator))
}

// QuoteCurrencyToToken quotes the tokens a trader receives for a currency
// input. The pool prices the full input; the pool's outbound token transfer
// then bears tax unless the pool is exempt, so the net figure is what lands
// in the trader's account.
func (k Keeper) QuoteCurrencyToToken(ctx context.Context, amountIn math.Int) (gross, net math.Int, err error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, math.Int{}, routertypes.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	info, ok := k.ammKeeper.GetReserves(ctx)
	if !ok {
		return math.Int{}, math.Int{}, routertypes.ErrNoLiquidity
	}

	gross, err = k.getAmountOut(amountIn, info.ReserveCurrency, info.ReserveToken)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	net = gross
	if !k.tokenKeeper.IsExempt(ctx, k.ammKeeper.PoolAddress()) {
		net = gross.Sub(taxOn(gross, k.tokenKeeper.TaxBasisPoints(ctx)))
	}

	return gross, net, nil
}

// QuoteTokenToCurrency quotes the currency a trader receives for a token
// input. The trader's inbound transfer bears tax unless the trader is
// exempt, so the pool only prices what actually arrives.
func (k Keeper) QuoteTokenToCurrency(ctx context.Context, trader sdk.AccAddress, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, routertypes.ErrInvalidAmount.Wrap("input amount must be positive")
	}

	info, ok := k.ammKeeper.GetReserves(ctx)
	if !ok {
		return math.Int{}, routertypes.ErrNoLiquidity
	}

	netIn := amountIn
	if !k.tokenKeeper.IsExempt(ctx, trader) {
		netIn = amountIn.Sub(taxOn(amountIn, k.tokenKeeper.TaxBasisPoints(ctx)))
	}
	if !netIn.IsPositive() {
		return math.Int{}, fmt.Errorf("input fully consumed by withholding")
	}

	return k.getAmountOut(netIn, info.ReserveToken, info.ReserveCurrency)
}
