package banktoken_test

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/shared/banktoken"
)

const denom = "uspc"

func setup(taxBps int64, exempt ...sdk.AccAddress) (banktoken.Keeper, *testkeeper.MockBankKeeper, sdk.Context, sdk.AccAddress) {
	bank := testkeeper.NewMockBankKeeper()
	treasury := testkeeper.TestAddress(900)
	k := banktoken.NewKeeper(bank, denom, math.NewInt(taxBps), treasury, exempt)
	ctx := sdk.NewContext(nil, cmtproto.Header{}, false, log.NewNopLogger())
	return k, bank, ctx, treasury
}

func TestTransferWithholdsTax(t *testing.T) {
	k, bank, ctx, treasury := setup(200)

	from := testkeeper.TestAddress(1)
	to := testkeeper.TestAddress(2)
	bank.FundAccount(from, sdk.NewCoin(denom, math.NewInt(10_000)))

	require.NoError(t, k.Transfer(ctx, from, to, math.NewInt(1_000)))

	require.Equal(t, math.NewInt(980), k.BalanceOf(ctx, to))
	require.Equal(t, math.NewInt(20), k.BalanceOf(ctx, treasury))
	require.Equal(t, math.NewInt(9_000), k.BalanceOf(ctx, from), "sender debited the full amount")
}

func TestTransferExemptSender(t *testing.T) {
	from := testkeeper.TestAddress(1)
	k, bank, ctx, treasury := setup(200, from)

	to := testkeeper.TestAddress(2)
	bank.FundAccount(from, sdk.NewCoin(denom, math.NewInt(1_000)))

	require.NoError(t, k.Transfer(ctx, from, to, math.NewInt(1_000)))

	require.Equal(t, math.NewInt(1_000), k.BalanceOf(ctx, to))
	require.True(t, k.BalanceOf(ctx, treasury).IsZero())
}

func TestTransferToTreasuryUntaxed(t *testing.T) {
	k, bank, ctx, treasury := setup(200)

	from := testkeeper.TestAddress(1)
	bank.FundAccount(from, sdk.NewCoin(denom, math.NewInt(1_000)))

	require.NoError(t, k.Transfer(ctx, from, treasury, math.NewInt(1_000)))
	require.Equal(t, math.NewInt(1_000), k.BalanceOf(ctx, treasury))
}

func TestTransferZeroTax(t *testing.T) {
	k, bank, ctx, treasury := setup(0)

	from := testkeeper.TestAddress(1)
	to := testkeeper.TestAddress(2)
	bank.FundAccount(from, sdk.NewCoin(denom, math.NewInt(500)))

	require.NoError(t, k.Transfer(ctx, from, to, math.NewInt(500)))
	require.Equal(t, math.NewInt(500), k.BalanceOf(ctx, to))
	require.True(t, k.BalanceOf(ctx, treasury).IsZero())
}

func TestTransferSmallAmountRoundsTaxDown(t *testing.T) {
	k, bank, ctx, treasury := setup(200)

	from := testkeeper.TestAddress(1)
	to := testkeeper.TestAddress(2)
	bank.FundAccount(from, sdk.NewCoin(denom, math.NewInt(100)))

	// 2% of 49 rounds to zero, so the full amount is delivered
	require.NoError(t, k.Transfer(ctx, from, to, math.NewInt(49)))
	require.Equal(t, math.NewInt(49), k.BalanceOf(ctx, to))
	require.True(t, k.BalanceOf(ctx, treasury).IsZero())
}

func TestTransferInvalidAmount(t *testing.T) {
	k, _, ctx, _ := setup(200)

	from := testkeeper.TestAddress(1)
	to := testkeeper.TestAddress(2)

	require.Error(t, k.Transfer(ctx, from, to, math.NewInt(-1)))
	require.NoError(t, k.Transfer(ctx, from, to, math.ZeroInt()), "zero transfer is a no-op")
}
