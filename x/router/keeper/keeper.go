package keeper

import (
	"cosmossdk.io/math"

	routertypes "github.com/spacecoin-chain/spacecoin/x/router/types"
)

// Keeper is the stateless router over the pool. It holds no store of its
// own; it sequences transfers against the pool entry points and prices
// trades with tax-adjusted quotes.
type Keeper struct {
	ammKeeper     routertypes.AmmKeeper
	bankKeeper    routertypes.BankKeeper
	tokenKeeper   routertypes.TaxTokenKeeper
	currencyDenom string
	feePercent    math.Int
}

// NewKeeper creates a new router Keeper instance. The fee percent must match
// the pool's swap fee so quotes agree with the pool's invariant check.
func NewKeeper(
	ammKeeper routertypes.AmmKeeper,
	bankKeeper routertypes.BankKeeper,
	tokenKeeper routertypes.TaxTokenKeeper,
	currencyDenom string,
	feePercent math.Int,
) Keeper {
	return Keeper{
		ammKeeper:     ammKeeper,
		bankKeeper:    bankKeeper,
		tokenKeeper:   tokenKeeper,
		currencyDenom: currencyDenom,
		feePercent:    feePercent,
	}
}

// CurrencyDenom returns the currency denom the router trades against
func (k Keeper) CurrencyDenom() string {
	return k.currencyDenom
}
