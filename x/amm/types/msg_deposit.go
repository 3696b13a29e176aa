package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgDeposit{}

// MsgDeposit defines a message to add liquidity to the pool
type MsgDeposit struct {
	Provider       string   `json:"provider"`
	TokenAmount    math.Int `json:"token_amount"`
	CurrencyAmount math.Int `json:"currency_amount"`
}

// NewMsgDeposit creates a new MsgDeposit instance
func NewMsgDeposit(provider string, tokenAmount, currencyAmount math.Int) *MsgDeposit {
	return &MsgDeposit{
		Provider:       provider,
		TokenAmount:    tokenAmount,
		CurrencyAmount: currencyAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgDeposit) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgDeposit) Type() string {
	return "deposit"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgDeposit) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgDeposit) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgDeposit) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	if msg.TokenAmount.IsNil() || !msg.TokenAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "token amount must be positive")
	}

	if msg.CurrencyAmount.IsNil() || !msg.CurrencyAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "currency amount must be positive")
	}

	return nil
}
