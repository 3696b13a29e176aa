package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool holds the bookkept reserves of the single token/currency pair and the
// total supply of liquidity shares. Reserves track the balances the pool
// last observed; the module account balances are the source of truth and the
// two are reconciled on every state-changing operation.
type Pool struct {
	ReserveToken    math.Int `json:"reserve_token"`
	ReserveCurrency math.Int `json:"reserve_currency"`
	TotalShares     math.Int `json:"total_shares"`
}

// NewPool returns an empty pool.
func NewPool() Pool {
	return Pool{
		ReserveToken:    math.ZeroInt(),
		ReserveCurrency: math.ZeroInt(),
		TotalShares:     math.ZeroInt(),
	}
}

// Validate checks pool bookkeeping for internal consistency.
func (p Pool) Validate() error {
	for _, f := range []struct {
		name string
		val  math.Int
	}{
		{"reserve_token", p.ReserveToken},
		{"reserve_currency", p.ReserveCurrency},
		{"total_shares", p.TotalShares},
	} {
		if f.val.IsNil() {
			return fmt.Errorf("%s is nil", f.name)
		}
		if f.val.IsNegative() {
			return fmt.Errorf("%s is negative: %s", f.name, f.val)
		}
	}
	if p.TotalShares.IsPositive() && (p.ReserveToken.IsZero() || p.ReserveCurrency.IsZero()) {
		return fmt.Errorf("shares outstanding with empty reserve")
	}
	return nil
}

// SharePosition records the liquidity shares held by a single address.
type SharePosition struct {
	Address string   `json:"address"`
	Shares  math.Int `json:"shares"`
}

// Validate checks a share position.
func (s SharePosition) Validate() error {
	if s.Address == "" {
		return fmt.Errorf("share position has empty address")
	}
	if s.Shares.IsNil() || !s.Shares.IsPositive() {
		return fmt.Errorf("share position for %s must be positive", s.Address)
	}
	return nil
}
