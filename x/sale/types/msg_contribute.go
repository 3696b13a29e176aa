package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgContribute{}

// MsgContribute defines a message to contribute currency to the sale
type MsgContribute struct {
	Buyer  string   `json:"buyer"`
	Amount math.Int `json:"amount"`
}

// NewMsgContribute creates a new MsgContribute instance
func NewMsgContribute(buyer string, amount math.Int) *MsgContribute {
	return &MsgContribute{
		Buyer:  buyer,
		Amount: amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgContribute) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgContribute) Type() string {
	return "contribute"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgContribute) GetSigners() []sdk.AccAddress {
	buyer, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{buyer}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgContribute) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgContribute) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Buyer)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid buyer address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "contribution amount must be positive")
	}

	return nil
}
