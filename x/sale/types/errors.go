package types

import (
	"cosmossdk.io/errors"
)

// Sale module sentinel errors
var (
	ErrPaused                = errors.Register(ModuleName, 1, "sale is paused")
	ErrNotWhitelisted        = errors.Register(ModuleName, 2, "address is not whitelisted for the seed phase")
	ErrInvalidAmount         = errors.Register(ModuleName, 3, "invalid amount")
	ErrAggregateCapExceeded  = errors.Register(ModuleName, 4, "phase aggregate cap exceeded")
	ErrIndividualCapExceeded = errors.Register(ModuleName, 5, "individual contribution cap exceeded")
	ErrInvalidPhase          = errors.Register(ModuleName, 6, "invalid phase transition")
	ErrNotContributor        = errors.Register(ModuleName, 7, "address has no contribution record")
	ErrNothingToClaim        = errors.Register(ModuleName, 8, "no tokens left to claim")
	ErrNotOpenPhase          = errors.Register(ModuleName, 9, "operation requires the open phase")
	ErrInvalidAddress        = errors.Register(ModuleName, 10, "invalid address")
	ErrUnauthorized          = errors.Register(ModuleName, 12, "unauthorized")
	ErrAlreadyWhitelisted    = errors.Register(ModuleName, 13, "address is already whitelisted")
)
