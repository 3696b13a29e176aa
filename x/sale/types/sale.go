package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Phase enumerates the sale phases. Phases only move forward: the general
// phase may be skipped entirely, and the open phase is terminal.
type Phase uint32

const (
	PhaseSeed    Phase = 0
	PhaseGeneral Phase = 1
	PhaseOpen    Phase = 2
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSeed:
		return "seed"
	case PhaseGeneral:
		return "general"
	case PhaseOpen:
		return "open"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(p))
	}
}

// ParsePhase converts a phase name to its Phase value.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "seed":
		return PhaseSeed, nil
	case "general":
		return PhaseGeneral, nil
	case "open":
		return PhaseOpen, nil
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// SaleState holds the mutable sale-wide state. The caps are the ones for the
// current phase and are swapped out on each phase transition.
type SaleState struct {
	Phase            Phase    `json:"phase"`
	AggregateCap     math.Int `json:"aggregate_cap"`
	IndividualCap    math.Int `json:"individual_cap"`
	TotalContributed math.Int `json:"total_contributed"`
	AvailableFunds   math.Int `json:"available_funds"`
	Paused           bool     `json:"paused"`
}

// ContributionRecord tracks a single buyer across the whole sale.
type ContributionRecord struct {
	Address          string   `json:"address"`
	Registered       bool     `json:"registered"`
	TotalContributed math.Int `json:"total_contributed"`
	TotalClaimed     math.Int `json:"total_claimed"`
}

// TokensOwed returns the unclaimed token entitlement at the given exchange rate.
func (r ContributionRecord) TokensOwed(rate math.Int) math.Int {
	return r.TotalContributed.Mul(rate).Sub(r.TotalClaimed)
}

// Validate checks internal consistency of a contribution record.
func (r ContributionRecord) Validate(rate math.Int) error {
	if r.Address == "" {
		return fmt.Errorf("contribution record missing address")
	}
	if r.TotalContributed.IsNil() || r.TotalContributed.IsNegative() {
		return fmt.Errorf("contribution record for %s has invalid total contributed", r.Address)
	}
	if r.TotalClaimed.IsNil() || r.TotalClaimed.IsNegative() {
		return fmt.Errorf("contribution record for %s has invalid total claimed", r.Address)
	}
	if r.TotalClaimed.GT(r.TotalContributed.Mul(rate)) {
		return fmt.Errorf("contribution record for %s claimed more than entitled", r.Address)
	}
	return nil
}

// Validate checks internal consistency of the sale state.
func (s SaleState) Validate() error {
	if s.Phase > PhaseOpen {
		return fmt.Errorf("invalid phase %d", s.Phase)
	}
	if s.AggregateCap.IsNil() || !s.AggregateCap.IsPositive() {
		return fmt.Errorf("aggregate cap must be positive")
	}
	if s.IndividualCap.IsNil() || !s.IndividualCap.IsPositive() {
		return fmt.Errorf("individual cap must be positive")
	}
	if s.IndividualCap.GT(s.AggregateCap) {
		return fmt.Errorf("individual cap cannot exceed aggregate cap")
	}
	if s.TotalContributed.IsNil() || s.TotalContributed.IsNegative() {
		return fmt.Errorf("total contributed cannot be negative")
	}
	if s.TotalContributed.GT(s.AggregateCap) {
		return fmt.Errorf("total contributed exceeds aggregate cap")
	}
	if s.AvailableFunds.IsNil() || s.AvailableFunds.IsNegative() {
		return fmt.Errorf("available funds cannot be negative")
	}
	return nil
}
