package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWhitelist{}

// MsgWhitelist defines an admin message to register an address for the seed phase
type MsgWhitelist struct {
	Authority string `json:"authority"`
	Address   string `json:"address"`
}

// NewMsgWhitelist creates a new MsgWhitelist instance
func NewMsgWhitelist(authority, address string) *MsgWhitelist {
	return &MsgWhitelist{
		Authority: authority,
		Address:   address,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWhitelist) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWhitelist) Type() string {
	return "whitelist"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWhitelist) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWhitelist) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWhitelist) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid authority address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid whitelist address: %s", err)
	}
	return nil
}
