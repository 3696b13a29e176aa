package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdraw{}

// MsgWithdraw defines a message to burn liquidity shares for both pool assets
type MsgWithdraw struct {
	Provider    string   `json:"provider"`
	Shares      math.Int `json:"shares"`
	MinToken    math.Int `json:"min_token"`
	MinCurrency math.Int `json:"min_currency"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(provider string, shares, minToken, minCurrency math.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Provider:    provider,
		Shares:      shares,
		MinToken:    minToken,
		MinCurrency: minCurrency,
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
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdraw) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdraw) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.Shares.IsNil() || !msg.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "shares must be positive")
	}

	if msg.MinToken.IsNil() || msg.MinToken.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum token return cannot be negative")
	}

	if msg.MinCurrency.IsNil() || msg.MinCurrency.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum currency return cannot be negative")
	}

	return nil
}
