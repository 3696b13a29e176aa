package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// MockBankKeeper is an in-memory bank keeper that tracks real balances so
// transfer sequencing and balance-diff logic can be exercised in tests.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper creates an empty mock bank keeper
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits coins to an account
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, amt ...sdk.Coin) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(sdk.NewCoins(amt...)...)
}

// GetBalance returns the balance of a single denom
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	bal := m.balances[addr.String()]
	return sdk.NewCoin(denom, bal.AmountOf(denom))
}

// SpendableCoins returns all coins held by an account
func (m *MockBankKeeper) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// SendCoins moves coins between accounts, failing on insufficient funds
func (m *MockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := m.balances[fromAddr.String()]

	newFrom, negative := from.SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s has %s, sending %s", fromAddr, from, amt)
	}

	m.balances[fromAddr.String()] = newFrom
	m.balances[toAddr.String()] = m.balances[toAddr.String()].Add(amt...)
	return nil
}

// SendCoinsFromAccountToModule moves coins from an account to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.SendCoins(ctx, senderAddr, authtypes.NewModuleAddress(recipientModule), amt)
}

// SendCoinsFromModuleToAccount moves coins from a module account to an account
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, authtypes.NewModuleAddress(senderModule), recipientAddr, amt)
}
