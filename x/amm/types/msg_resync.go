package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgResync{}

// MsgResync defines a message to reconcile bookkept reserves with the pool
// account balances. Anyone may call it.
type MsgResync struct {
	Caller string `json:"caller"`
}

// NewMsgResync creates a new MsgResync instance
func NewMsgResync(caller string) *MsgResync {
	return &MsgResync{Caller: caller}
}

// Route implements the sdk.Msg interface
func (msg MsgResync) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgResync) Type() string {
	return "resync"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgResync) GetSigners() []sdk.AccAddress {
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{caller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResync) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResync) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid caller address: %s", err)
	}
	return nil
}
