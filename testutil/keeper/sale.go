package keeper

import (
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/x/sale/keeper"
	"github.com/spacecoin-chain/spacecoin/x/sale/types"
	"github.com/spacecoin-chain/spacecoin/x/shared/banktoken"
)

// TestAuthority is the admin authority wired into test keepers
var TestAuthority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

// TestAddress returns a deterministic test account address
func TestAddress(i int) sdk.AccAddress {
	return sdk.AccAddress([]byte(fmt.Sprintf("test-address-%03d----", i)))
}

// SaleKeeper creates a test keeper for the sale module with an untaxed token
func SaleKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	return SaleKeeperWithTax(t, math.ZeroInt(), TestAddress(999))
}

// SaleKeeperWithTax creates a test sale keeper whose token withholds taxBps
// for the treasury. The sale module account is exempt so token releases
// arrive whole.
func SaleKeeperWithTax(t testing.TB, taxBps math.Int, treasury sdk.AccAddress) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	saleAddr := authtypes.NewModuleAddress(types.ModuleName)
	token := banktoken.NewKeeper(bank, types.DefaultTokenDenom, taxBps, treasury, []sdk.AccAddress{saleAddr})

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		token,
		TestAuthority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx
}
