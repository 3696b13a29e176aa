package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammkeeper "github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	ammtypes "github.com/spacecoin-chain/spacecoin/x/amm/types"
	routerkeeper "github.com/spacecoin-chain/spacecoin/x/router/keeper"
)

// RouterKeeper creates a test router keeper over a fresh AMM keeper sharing
// one mock bank. The token withholds taxBps for the treasury.
func RouterKeeper(t testing.TB, taxBps math.Int, treasury sdk.AccAddress) (routerkeeper.Keeper, ammkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	ammK, bank, token, ctx := AmmKeeperWithTax(t, taxBps, treasury)

	routerK := routerkeeper.NewKeeper(
		ammK,
		bank,
		token,
		ammtypes.DefaultCurrencyDenom,
		ammtypes.DefaultSwapFeePercent,
	)

	return routerK, ammK, bank, ctx
}
