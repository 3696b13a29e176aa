package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSwapExactCurrencyForToken{}, "router/MsgSwapExactCurrencyForToken", nil)
	cdc.RegisterConcrete(&MsgSwapExactTokenForCurrency{}, "router/MsgSwapExactTokenForCurrency", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "router/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "router/MsgRemoveLiquidity", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSwapExactCurrencyForToken{},
		&MsgSwapExactTokenForCurrency{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
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
