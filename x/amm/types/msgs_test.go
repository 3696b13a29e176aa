package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

var testAddr = sdk.AccAddress([]byte("test-address-001----")).String()

func TestMsgDepositValidateBasic(t *testing.T) {
	msg := types.NewMsgDeposit(testAddr, math.NewInt(100), math.NewInt(100))
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgDeposit("not-bech32", math.NewInt(100), math.NewInt(100))
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAddress)

	msg = types.NewMsgDeposit(testAddr, math.ZeroInt(), math.NewInt(100))
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = types.NewMsgDeposit(testAddr, math.NewInt(100), math.NewInt(-5))
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgWithdrawValidateBasic(t *testing.T) {
	msg := types.NewMsgWithdraw(testAddr, math.NewInt(10), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgWithdraw(testAddr, math.ZeroInt(), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)

	msg = types.NewMsgWithdraw(testAddr, math.NewInt(10), math.NewInt(-1), math.ZeroInt())
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgSwapValidateBasic(t *testing.T) {
	msg := types.NewMsgSwapToToken(testAddr, math.NewInt(100), math.NewInt(50))
	require.NoError(t, msg.ValidateBasic())

	msg = types.NewMsgSwapToToken(testAddr, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidOutput)

	msg2 := types.NewMsgSwapToCurrency(testAddr, math.ZeroInt(), math.NewInt(50))
	require.ErrorIs(t, msg2.ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgResyncValidateBasic(t *testing.T) {
	require.NoError(t, types.NewMsgResync(testAddr).ValidateBasic())
	require.ErrorIs(t, types.NewMsgResync("bogus").ValidateBasic(), types.ErrInvalidAddress)
}
