package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

func TestDefaultGenesisValid(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisShareSumMismatch(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pool: types.Pool{
			ReserveToken:    math.NewInt(100),
			ReserveCurrency: math.NewInt(100),
			TotalShares:     math.NewInt(50),
		},
		Positions: []types.SharePosition{
			{Address: "addr1", Shares: math.NewInt(30)},
		},
	}
	require.Error(t, gs.Validate())

	gs.Positions = append(gs.Positions, types.SharePosition{Address: "addr2", Shares: math.NewInt(20)})
	require.NoError(t, gs.Validate())
}

func TestGenesisDuplicatePosition(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pool: types.Pool{
			ReserveToken:    math.NewInt(100),
			ReserveCurrency: math.NewInt(100),
			TotalShares:     math.NewInt(40),
		},
		Positions: []types.SharePosition{
			{Address: "addr1", Shares: math.NewInt(20)},
			{Address: "addr1", Shares: math.NewInt(20)},
		},
	}
	require.Error(t, gs.Validate())
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, types.NewPool().Validate())

	bad := types.Pool{
		ReserveToken:    math.ZeroInt(),
		ReserveCurrency: math.NewInt(10),
		TotalShares:     math.NewInt(5),
	}
	require.Error(t, bad.Validate(), "shares outstanding against an empty reserve")

	neg := types.NewPool()
	neg.ReserveToken = math.NewInt(-1)
	require.Error(t, neg.Validate())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.SwapFeePercent = math.NewInt(100)
	require.Error(t, p.Validate(), "fee must stay below the scale")

	p = types.DefaultParams()
	p.TokenDenom = p.CurrencyDenom
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.MinLockedShares = math.ZeroInt()
	require.Error(t, p.Validate())
}
