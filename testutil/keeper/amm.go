package keeper

import (
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
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/x/amm/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm/types"
	"github.com/spacecoin-chain/spacecoin/x/shared/banktoken"
)

// AmmKeeper creates a test keeper for the AMM module with an untaxed token
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	k, bank, _, ctx := AmmKeeperWithTax(t, math.ZeroInt(), TestAddress(999))
	return k, bank, ctx
}

// AmmKeeperWithTax creates a test AMM keeper whose token withholds taxBps
// for the treasury. The pool address is deliberately not exempt, so pool
// transfers bear the tax like any other account's.
func AmmKeeperWithTax(t testing.TB, taxBps math.Int, treasury sdk.AccAddress) (keeper.Keeper, *MockBankKeeper, banktoken.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	bank := NewMockBankKeeper()
	token := banktoken.NewKeeper(bank, types.DefaultTokenDenom, taxBps, treasury, nil)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bank,
		token,
		TestAuthority,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, token, ctx
}
