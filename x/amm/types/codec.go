package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "amm/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "amm/MsgWithdraw", nil)
	cdc.RegisterConcrete(&MsgSwapToToken{}, "amm/MsgSwapToToken", nil)
	cdc.RegisterConcrete(&MsgSwapToCurrency{}, "amm/MsgSwapToCurrency", nil)
	cdc.RegisterConcrete(&MsgResync{}, "amm/MsgResync", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgSwapToToken{},
		&MsgSwapToCurrency{},
		&MsgResync{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
