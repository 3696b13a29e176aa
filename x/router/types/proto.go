package types

import "fmt"

// Hand-written messages need the gogoproto message surface so they can be
// registered with the interface registry and routed as sdk.Msg values.

func (msg *MsgSwapExactCurrencyForToken) Reset()         { *msg = MsgSwapExactCurrencyForToken{} }
func (msg *MsgSwapExactCurrencyForToken) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapExactCurrencyForToken) ProtoMessage()  {}
func (msg *MsgSwapExactCurrencyForToken) XXX_MessageName() string {
	return "spacecoin.router.v1.MsgSwapExactCurrencyForToken"
}

func (msg *MsgSwapExactTokenForCurrency) Reset()         { *msg = MsgSwapExactTokenForCurrency{} }
func (msg *MsgSwapExactTokenForCurrency) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapExactTokenForCurrency) ProtoMessage()  {}
func (msg *MsgSwapExactTokenForCurrency) XXX_MessageName() string {
	return "spacecoin.router.v1.MsgSwapExactTokenForCurrency"
}

func (msg *MsgAddLiquidity) Reset()                  { *msg = MsgAddLiquidity{} }
func (msg *MsgAddLiquidity) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAddLiquidity) ProtoMessage()           {}
func (msg *MsgAddLiquidity) XXX_MessageName() string { return "spacecoin.router.v1.MsgAddLiquidity" }

func (msg *MsgRemoveLiquidity) Reset()         { *msg = MsgRemoveLiquidity{} }
func (msg *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgRemoveLiquidity) ProtoMessage()  {}
func (msg *MsgRemoveLiquidity) XXX_MessageName() string {
	return "spacecoin.router.v1.MsgRemoveLiquidity"
}
