package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAdvancePhase{}

// MsgAdvancePhase defines an admin message to move the sale to a later phase
type MsgAdvancePhase struct {
	Authority string `json:"authority"`
	Target    Phase  `json:"target"`
}

// NewMsgAdvancePhase creates a new MsgAdvancePhase instance
func NewMsgAdvancePhase(authority string, target Phase) *MsgAdvancePhase {
	return &MsgAdvancePhase{
		Authority: authority,
		Target:    target,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAdvancePhase) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAdvancePhase) Type() string {
	return "advance_phase"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAdvancePhase) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAdvancePhase) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAdvancePhase) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}

	if msg.Target != PhaseGeneral && msg.Target != PhaseOpen {
		return sdkerrors.Wrapf(ErrInvalidPhase, "cannot advance to phase %s", msg.Target)
	}

	return nil
}
