package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgClaim{}

// MsgClaim defines a message to claim purchased tokens during the open phase
type MsgClaim struct {
	Claimer string `json:"claimer"`
}

// NewMsgClaim creates a new MsgClaim instance
func NewMsgClaim(claimer string) *MsgClaim {
	return &MsgClaim{Claimer: claimer}
}

// Route implements the sdk.Msg interface
func (msg MsgClaim) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgClaim) Type() string {
	return "claim"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgClaim) GetSigners() []sdk.AccAddress {
	claimer, err := sdk.AccAddressFromBech32(msg.Claimer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{claimer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgClaim) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Claimer); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid claimer address: %s", err)
	}
	return nil
}
