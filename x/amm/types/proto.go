package types

import "fmt"

// Hand-written messages need the gogoproto message surface so they can be
// registered with the interface registry and routed as sdk.Msg values.

func (msg *MsgDeposit) Reset()                  { *msg = MsgDeposit{} }
func (msg *MsgDeposit) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgDeposit) ProtoMessage()           {}
func (msg *MsgDeposit) XXX_MessageName() string { return "spacecoin.amm.v1.MsgDeposit" }

func (msg *MsgWithdraw) Reset()                  { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdraw) ProtoMessage()           {}
func (msg *MsgWithdraw) XXX_MessageName() string { return "spacecoin.amm.v1.MsgWithdraw" }

func (msg *MsgSwapToToken) Reset()                  { *msg = MsgSwapToToken{} }
func (msg *MsgSwapToToken) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapToToken) ProtoMessage()           {}
func (msg *MsgSwapToToken) XXX_MessageName() string { return "spacecoin.amm.v1.MsgSwapToToken" }

func (msg *MsgSwapToCurrency) Reset()                  { *msg = MsgSwapToCurrency{} }
func (msg *MsgSwapToCurrency) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSwapToCurrency) ProtoMessage()           {}
func (msg *MsgSwapToCurrency) XXX_MessageName() string { return "spacecoin.amm.v1.MsgSwapToCurrency" }

func (msg *MsgResync) Reset()                  { *msg = MsgResync{} }
func (msg *MsgResync) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgResync) ProtoMessage()           {}
func (msg *MsgResync) XXX_MessageName() string { return "spacecoin.amm.v1.MsgResync" }
