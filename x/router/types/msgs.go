package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwapExactCurrencyForToken{}
	_ sdk.Msg = &MsgSwapExactTokenForCurrency{}
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
)

// MsgSwapExactCurrencyForToken swaps an exact currency input for at least
// MinOut tokens, net of transfer tax.
type MsgSwapExactCurrencyForToken struct {
	Trader   string   `json:"trader"`
	AmountIn math.Int `json:"amount_in"`
	MinOut   math.Int `json:"min_out"`
}

// NewMsgSwapExactCurrencyForToken creates a new MsgSwapExactCurrencyForToken instance
func NewMsgSwapExactCurrencyForToken(trader string, amountIn, minOut math.Int) *MsgSwapExactCurrencyForToken {
	return &MsgSwapExactCurrencyForToken{
		Trader:   trader,
		AmountIn: amountIn,
		MinOut:   minOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactCurrencyForToken) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactCurrencyForToken) Type() string {
	return "swap_exact_currency_for_token"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactCurrencyForToken) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactCurrencyForToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactCurrencyForToken) ValidateBasic() error {
	return validateSwapFields(msg.Trader, msg.AmountIn, msg.MinOut)
}

// MsgSwapExactTokenForCurrency swaps an exact token input for at least
// MinOut currency. The token side bears transfer tax before the pool
// prices the trade.
type MsgSwapExactTokenForCurrency struct {
	Trader   string   `json:"trader"`
	AmountIn math.Int `json:"amount_in"`
	MinOut   math.Int `json:"min_out"`
}

// NewMsgSwapExactTokenForCurrency creates a new MsgSwapExactTokenForCurrency instance
func NewMsgSwapExactTokenForCurrency(trader string, amountIn, minOut math.Int) *MsgSwapExactTokenForCurrency {
	return &MsgSwapExactTokenForCurrency{
		Trader:   trader,
		AmountIn: amountIn,
		MinOut:   minOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwapExactTokenForCurrency) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgSwapExactTokenForCurrency) Type() string {
	return "swap_exact_token_for_currency"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgSwapExactTokenForCurrency) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwapExactTokenForCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwapExactTokenForCurrency) ValidateBasic() error {
	return validateSwapFields(msg.Trader, msg.AmountIn, msg.MinOut)
}

// MsgAddLiquidity sequences the transfers and pool deposit for a liquidity
// provider in one step.
type MsgAddLiquidity struct {
	Provider       string   `json:"provider"`
	TokenAmount    math.Int `json:"token_amount"`
	CurrencyAmount math.Int `json:"currency_amount"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, tokenAmount, currencyAmount math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:       provider,
		TokenAmount:    tokenAmount,
		CurrencyAmount: currencyAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string {
	return "add_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
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

// MsgRemoveLiquidity burns shares through the pool with minimum-return
// protection on both assets.
type MsgRemoveLiquidity struct {
	Provider    string   `json:"provider"`
	Shares      math.Int `json:"shares"`
	MinToken    math.Int `json:"min_token"`
	MinCurrency math.Int `json:"min_currency"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, shares, minToken, minCurrency math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:    provider,
		Shares:      shares,
		MinToken:    minToken,
		MinCurrency: minCurrency,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string {
	return "remove_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
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

func validateSwapFields(trader string, amountIn, minOut math.Int) error {
	_, err := sdk.AccAddressFromBech32(trader)
	if err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "input amount must be positive")
	}

	if minOut.IsNil() || minOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum return cannot be negative")
	}

	return nil
}
