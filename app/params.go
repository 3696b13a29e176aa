package app

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// Bech32PrefixAccAddr defines the Bech32 prefix of an account's address
	Bech32PrefixAccAddr = "space"
	// Bech32PrefixAccPub defines the Bech32 prefix of an account's public key
	Bech32PrefixAccPub = "spacepub"
	// Bech32PrefixValAddr defines the Bech32 prefix of a validator's operator address
	Bech32PrefixValAddr = "spacevaloper"
	// Bech32PrefixValPub defines the Bech32 prefix of a validator's operator public key
	Bech32PrefixValPub = "spacevaloperpub"
	// Bech32PrefixConsAddr defines the Bech32 prefix of a consensus node address
	Bech32PrefixConsAddr = "spacevalcons"
	// Bech32PrefixConsPub defines the Bech32 prefix of a consensus node public key
	Bech32PrefixConsPub = "spacevalconspub"

	// CoinType is the Spacecoin coin type as defined in SLIP44 (https://github.com/satoshilabs/slips/blob/master/slip-0044.md)
	CoinType = 118

	// BondDenom defines the native staking token denomination. It doubles as
	// the sale currency and the pool's currency side.
	BondDenom = "uspace"

	// DisplayDenom defines the name, symbol, and display value of the SPACE token.
	DisplayDenom = "SPACE"

	// TokenDenom is the tax-bearing sale token denomination.
	TokenDenom = "uspc"

	// TokenTaxBasisPoints is the withholding rate applied to ordinary uspc
	// transfers, in basis points. Withheld amounts accrue to the token
	// treasury module account.
	TokenTaxBasisPoints = 200

	// TokenTreasuryName is the module account collecting withheld uspc.
	TokenTreasuryName = "token_treasury"

	// DefaultGasPrice is the default gas price in uspace
	DefaultGasPrice = "0.001"
)

var (
	// DefaultMinGasPrice is the minimum gas price
	DefaultMinGasPrice = sdk.NewDecCoinFromDec(BondDenom, math.LegacyNewDecWithPrec(1, 3)) // 0.001uspace
)

// SetConfig sets the configuration for the Spacecoin network
func SetConfig() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	config.SetBech32PrefixForValidator(Bech32PrefixValAddr, Bech32PrefixValPub)
	config.SetBech32PrefixForConsensusNode(Bech32PrefixConsAddr, Bech32PrefixConsPub)
	config.SetCoinType(CoinType)
	config.Seal()
}
