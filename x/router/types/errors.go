package types

import (
	"cosmossdk.io/errors"
)

// Router module sentinel errors
var (
	ErrUnmetMinimumReturn = errors.Register(ModuleName, 1, "return below declared minimum")
	ErrInvalidAmount      = errors.Register(ModuleName, 2, "invalid amount")
	ErrInvalidAddress     = errors.Register(ModuleName, 3, "invalid address")
	ErrNoLiquidity        = errors.Register(ModuleName, 4, "pool has no liquidity")
)
