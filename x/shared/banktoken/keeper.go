// Package banktoken implements the tax-bearing token on top of the bank
// keeper. Every ordinary transfer withholds a basis-point slice for the
// token's treasury; transfers touching the treasury or an exempt module
// account move the full amount.
package banktoken

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	sharedkeeper "github.com/spacecoin-chain/spacecoin/x/shared/keeper"
)

const bpsDenominator = 10_000

// BankKeeper is the slice of the bank keeper the token needs.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
}

// Keeper moves a single bank denom with treasury withholding.
type Keeper struct {
	bankKeeper BankKeeper
	denom      string
	taxBps     math.Int
	treasury   sdk.AccAddress
	exempt     map[string]struct{}
}

var _ sharedkeeper.TaxTokenKeeperV1 = Keeper{}

// NewKeeper creates a new banktoken Keeper instance. Exempt addresses send
// without withholding; the treasury is always exempt.
func NewKeeper(bankKeeper BankKeeper, denom string, taxBps math.Int, treasury sdk.AccAddress, exempt []sdk.AccAddress) Keeper {
	exemptSet := make(map[string]struct{}, len(exempt)+1)
	if treasury != nil {
		exemptSet[treasury.String()] = struct{}{}
	}
	for _, addr := range exempt {
		exemptSet[addr.String()] = struct{}{}
	}
	return Keeper{
		bankKeeper: bankKeeper,
		denom:      denom,
		taxBps:     taxBps,
		treasury:   treasury,
		exempt:     exemptSet,
	}
}

// Denom returns the bank denomination backing the token.
func (k Keeper) Denom() string {
	return k.denom
}

// BalanceOf returns the token balance of an account.
func (k Keeper) BalanceOf(ctx context.Context, addr sdk.AccAddress) math.Int {
	return k.bankKeeper.GetBalance(ctx, addr, k.denom).Amount
}

// TaxBasisPoints returns the withholding rate in basis points.
func (k Keeper) TaxBasisPoints(ctx context.Context) math.Int {
	return k.taxBps
}

// IsExempt reports whether transfers from addr skip withholding.
func (k Keeper) IsExempt(ctx context.Context, addr sdk.AccAddress) bool {
	_, ok := k.exempt[addr.String()]
	return ok
}

// Transfer moves tokens between accounts. The sender is debited the full
// amount; a non-exempt transfer delivers amount minus tax and credits the
// withheld tax to the treasury.
func (k Keeper) Transfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("banktoken: invalid transfer amount %s", amount)
	}
	if amount.IsZero() {
		return nil
	}

	if k.taxBps.IsZero() || k.IsExempt(ctx, from) || to.Equals(k.treasury) {
		return k.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(k.denom, amount)))
	}

	tax := amount.Mul(k.taxBps).Quo(math.NewInt(bpsDenominator))
	net := amount.Sub(tax)

	if err := k.bankKeeper.SendCoins(ctx, from, to, sdk.NewCoins(sdk.NewCoin(k.denom, net))); err != nil {
		return err
	}
	if tax.IsPositive() {
		if err := k.bankKeeper.SendCoins(ctx, from, k.treasury, sdk.NewCoins(sdk.NewCoin(k.denom, tax))); err != nil {
			return err
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.Logger().Debug("taxed token transfer",
		"denom", k.denom,
		"from", from.String(),
		"to", to.String(),
		"amount", amount.String(),
		"tax", tax.String(),
	)
	return nil
}
