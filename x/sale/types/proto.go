package types

import "fmt"

// Hand-written messages need the gogoproto message surface so they can be
// registered with the interface registry and routed as sdk.Msg values.

func (msg *MsgContribute) Reset()                  { *msg = MsgContribute{} }
func (msg *MsgContribute) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgContribute) ProtoMessage()           {}
func (msg *MsgContribute) XXX_MessageName() string { return "spacecoin.sale.v1.MsgContribute" }

func (msg *MsgClaim) Reset()                  { *msg = MsgClaim{} }
func (msg *MsgClaim) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgClaim) ProtoMessage()           {}
func (msg *MsgClaim) XXX_MessageName() string { return "spacecoin.sale.v1.MsgClaim" }

func (msg *MsgAdvancePhase) Reset()                  { *msg = MsgAdvancePhase{} }
func (msg *MsgAdvancePhase) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgAdvancePhase) ProtoMessage()           {}
func (msg *MsgAdvancePhase) XXX_MessageName() string { return "spacecoin.sale.v1.MsgAdvancePhase" }

func (msg *MsgSetPaused) Reset()                  { *msg = MsgSetPaused{} }
func (msg *MsgSetPaused) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgSetPaused) ProtoMessage()           {}
func (msg *MsgSetPaused) XXX_MessageName() string { return "spacecoin.sale.v1.MsgSetPaused" }

func (msg *MsgWhitelist) Reset()                  { *msg = MsgWhitelist{} }
func (msg *MsgWhitelist) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWhitelist) ProtoMessage()           {}
func (msg *MsgWhitelist) XXX_MessageName() string { return "spacecoin.sale.v1.MsgWhitelist" }

func (msg *MsgWithdraw) Reset()                  { *msg = MsgWithdraw{} }
func (msg *MsgWithdraw) String() string          { return fmt.Sprintf("%+v", *msg) }
func (msg *MsgWithdraw) ProtoMessage()           {}
func (msg *MsgWithdraw) XXX_MessageName() string { return "spacecoin.sale.v1.MsgWithdraw" }
