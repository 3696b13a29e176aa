package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// SaleStateKey is the key for the singleton sale state
	SaleStateKey = []byte{0x01}

	// RecordKeyPrefix is the prefix for contribution record store keys
	RecordKeyPrefix = []byte{0x02}

	// WhitelistKeyPrefix is the prefix for seed whitelist entries
	WhitelistKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04}
)

// RecordKey returns the store key for a contribution record
func RecordKey(addr sdk.AccAddress) []byte {
	return append(RecordKeyPrefix, addr.Bytes()...)
}

// WhitelistKey returns the store key for a whitelist entry
func WhitelistKey(addr sdk.AccAddress) []byte {
	return append(WhitelistKeyPrefix, addr.Bytes()...)
}
