package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrInvalidAmount         = errors.Register(ModuleName, 1, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 2, "insufficient liquidity")
	ErrInvalidOutput         = errors.Register(ModuleName, 3, "declared output must be positive")
	ErrInsufficientReserve   = errors.Register(ModuleName, 4, "declared output exceeds reserve")
	ErrInvariantViolation    = errors.Register(ModuleName, 5, "constant product invariant violated")
	ErrUnmetMinimum          = errors.Register(ModuleName, 6, "return below declared minimum")
	ErrReentrancy            = errors.Register(ModuleName, 7, "reentrancy detected")
	ErrInvalidAddress        = errors.Register(ModuleName, 8, "invalid address")
	ErrInsufficientShares    = errors.Register(ModuleName, 9, "insufficient liquidity shares")
	ErrInvalidPoolState      = errors.Register(ModuleName, 10, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 11, "arithmetic overflow")
)
