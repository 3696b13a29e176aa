package amm_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/spacecoin-chain/spacecoin/testutil/keeper"
	"github.com/spacecoin-chain/spacecoin/x/amm"
	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

func TestEndBlockCleanPool(t *testing.T) {
	k, _, ctx := testkeeper.AmmKeeper(t)
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	module := amm.NewAppModule(cdc, k)

	require.NoError(t, module.EndBlock(ctx))
	require.Empty(t, auditEvents(ctx))
}

func TestEndBlockSurfacesUnsyncedAssets(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	module := amm.NewAppModule(cdc, k)

	// Direct transfer to the pool address bypasses the entry points.
	poolAddr := authtypes.NewModuleAddress(types.ModuleName)
	bank.FundAccount(poolAddr, sdk.NewCoin(types.DefaultTokenDenom, math.NewInt(5_000)))

	require.NoError(t, module.EndBlock(ctx))

	events := auditEvents(ctx)
	require.Len(t, events, 1)
	require.Equal(t, "low", attribute(events[0], "severity"))
}

func TestEndBlockEscalatesMissingReserves(t *testing.T) {
	k, _, ctx := testkeeper.AmmKeeper(t)
	cdc := codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
	module := amm.NewAppModule(cdc, k)

	// Bookkept reserves with no backing balances at the pool address.
	pool := types.NewPool()
	pool.ReserveToken = math.NewInt(150_000)
	pool.ReserveCurrency = math.NewInt(30_000)
	pool.TotalShares = math.NewInt(67_082)
	require.NoError(t, k.SetPool(ctx, pool))

	require.NoError(t, module.EndBlock(ctx))

	events := auditEvents(ctx)
	require.Len(t, events, 1)
	require.Equal(t, "critical", attribute(events[0], "severity"))
}

func auditEvents(ctx sdk.Context) []sdk.Event {
	var out []sdk.Event
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == "abci_blocker_error" {
			out = append(out, ev)
		}
	}
	return out
}

func attribute(ev sdk.Event, key string) string {
	for _, attr := range ev.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
