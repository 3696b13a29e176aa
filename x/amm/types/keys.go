package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// LockedSharesName is the module sub-account holding permanently
	// retired bootstrap shares
	LockedSharesName = ModuleName + "_locked"
)
