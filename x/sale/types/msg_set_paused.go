package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSetPaused{}

// MsgSetPaused defines an admin message to pause or resume purchases
type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

// NewMsgSetPaused creates a new MsgSetPaused instance
func NewMsgSetPaused(authority string, paused bool) *MsgSetPaused {
	return &MsgSetPaused{
		Authority: authority,
		Paused:    paused,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSetPaused) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSetPaused) Type() string {
	return "set_paused"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSetPaused) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetPaused) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	return nil
}
