package ante_test

import (
	"context"
	"testing"
	"time"

	"cosmossdk.io/core/address"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	spaceante "github.com/spacecoin-chain/spacecoin/app/ante"
)

func TestNewAnteHandlerMissingAccountKeeper(t *testing.T) {
	handler, err := spaceante.NewAnteHandler(spaceante.HandlerOptions{})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "account keeper is required")
}

func TestNewAnteHandlerMissingBankKeeper(t *testing.T) {
	handler, err := spaceante.NewAnteHandler(spaceante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "bank keeper is required")
}

func TestNewAnteHandlerMissingSignModeHandler(t *testing.T) {
	handler, err := spaceante.NewAnteHandler(spaceante.HandlerOptions{
		AccountKeeper: mockAccountKeeper{},
		BankKeeper:    mockAnteBankKeeper{},
	})
	require.Error(t, err)
	require.Nil(t, handler)
	require.Contains(t, err.Error(), "sign mode handler is required")
}

// Mock types for the ante builder nil checks

type mockAccountKeeper struct{}

func (mockAccountKeeper) GetParams(_ context.Context) authtypes.Params { return authtypes.Params{} }
func (mockAccountKeeper) GetAccount(_ context.Context, _ sdk.AccAddress) sdk.AccountI {
	return nil
}
func (mockAccountKeeper) SetAccount(_ context.Context, _ sdk.AccountI) {}
func (mockAccountKeeper) GetModuleAddress(_ string) sdk.AccAddress     { return nil }
func (mockAccountKeeper) AddressCodec() address.Codec {
	return authcodec.NewBech32Codec("space")
}
func (mockAccountKeeper) UnorderedTransactionsEnabled() bool                 { return false }
func (mockAccountKeeper) RemoveExpiredUnorderedNonces(_ sdk.Context) error   { return nil }
func (mockAccountKeeper) TryAddUnorderedNonce(_ sdk.Context, _ []byte, _ time.Time) error {
	return nil
}

type mockAnteBankKeeper struct{}

func (mockAnteBankKeeper) IsSendEnabledCoins(_ context.Context, _ ...sdk.Coin) error { return nil }
func (mockAnteBankKeeper) SendCoins(_ context.Context, _, _ sdk.AccAddress, _ sdk.Coins) error {
	return nil
}
func (mockAnteBankKeeper) SendCoinsFromAccountToModule(_ context.Context, _ sdk.AccAddress, _ string, _ sdk.Coins) error {
	return nil
}
