package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgContribute{}, "sale/MsgContribute", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "sale/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgAdvancePhase{}, "sale/MsgAdvancePhase", nil)
	cdc.RegisterConcrete(&MsgSetPaused{}, "sale/MsgSetPaused", nil)
	cdc.RegisterConcrete(&MsgWhitelist{}, "sale/MsgWhitelist", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "sale/MsgWithdraw", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgContribute{},
		&MsgClaim{},
		&MsgAdvancePhase{},
		&MsgSetPaused{},
		&MsgWhitelist{},
		&MsgWithdraw{},
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
