package types

const (
	// ModuleName defines the module name
	ModuleName = "router"

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)
