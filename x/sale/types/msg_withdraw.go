package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdraw{}

// MsgWithdraw defines a treasury message to withdraw sale proceeds
type MsgWithdraw struct {
	Treasury string   `json:"treasury"`
	Amount   math.Int `json:"amount"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(treasury string, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Treasury: treasury,
		Amount:   amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdraw) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgWithdraw) Type() string {
	return "withdraw"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	treasury, err := sdk.AccAddressFromBech32(msg.Treasury)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{treasury}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Treasury); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid treasury address: %s", err)
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "withdrawal amount must be positive")
	}

	return nil
}
