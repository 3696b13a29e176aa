package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapToToken{}
	_ sdk.Msg = &MsgSwapToCurrency{}
)

// MsgSwapToToken defines a message to swap currency into the pool token.
// AmountIn is sent to the pool and TokenOut is the declared output the
// trader expects back.
type MsgSwapToToken struct {
	Trader   string   `json:"trader"`
	AmountIn math.Int `json:"amount_in"`
	TokenOut math.Int `json:"token_out"`
}

// NewMsgSwapToToken creates a new MsgSwapToToken instance
func NewMsgSwapToToken(trader string, amountIn, tokenOut math.Int) *MsgSwapToToken {
	return &MsgSwapToToken{
		Trader:   trader,
		AmountIn: amountIn,
		TokenOut: tokenOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapToToken) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapToToken) Type() string {
	return "swap_to_token"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapToToken) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapToToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapToToken) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}

	if msg.TokenOut.IsNil() || !msg.TokenOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOutput, "declared token output must be positive")
	}

	return nil
}

// MsgSwapToCurrency defines a message to swap the pool token into currency.
// AmountIn is sent to the pool and CurrencyOut is the declared output the
// trader expects back.
type MsgSwapToCurrency struct {
	Trader      string   `json:"trader"`
	AmountIn    math.Int `json:"amount_in"`
	CurrencyOut math.Int `json:"currency_out"`
}

// NewMsgSwapToCurrency creates a new MsgSwapToCurrency instance
func NewMsgSwapToCurrency(trader string, amountIn, currencyOut math.Int) *MsgSwapToCurrency {
	return &MsgSwapToCurrency{
		Trader:      trader,
		AmountIn:    amountIn,
		CurrencyOut: currencyOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapToCurrency) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapToCurrency) Type() string {
	return "swap_to_currency"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapToCurrency) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapToCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapToCurrency) ValidateBasic() error {
	_, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}

	if msg.CurrencyOut.IsNil() || !msg.CurrencyOut.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOutput, "declared currency output must be positive")
	}

	return nil
}
