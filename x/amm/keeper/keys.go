package keeper

// KVStore key prefixes for the AMM module
var (
	PoolKey                = []byte{0x01}
	ShareKeyPrefix         = []byte{0x02}
	ParamsKey              = []byte{0x03}
	ReentrancyLockKeyBytes = []byte{0x04}
)

// ShareKey returns the store key for an address's liquidity share position
func ShareKey(address string) []byte {
	return append(ShareKeyPrefix, []byte(address)...)
}

// ReentrancyLockKey returns the store key for the pool-wide reentrancy lock
func ReentrancyLockKey() []byte {
	return ReentrancyLockKeyBytes
}
