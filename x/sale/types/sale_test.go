package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

func TestPhaseString(t *testing.T) {
	require.Equal(t, "seed", types.PhaseSeed.String())
	require.Equal(t, "general", types.PhaseGeneral.String())
	require.Equal(t, "open", types.PhaseOpen.String())
}

func TestParsePhase(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  types.Phase
	}{
		{"seed", types.PhaseSeed},
		{"general", types.PhaseGeneral},
		{"open", types.PhaseOpen},
	} {
		got, err := types.ParsePhase(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := types.ParsePhase("closed")
	require.Error(t, err)
}

func TestTokensOwed(t *testing.T) {
	record := types.ContributionRecord{
		Address:          "buyer",
		TotalContributed: math.NewInt(1_500),
		TotalClaimed:     math.NewInt(2_500),
	}

	owed := record.TokensOwed(math.NewInt(5))
	require.Equal(t, math.NewInt(5_000), owed, "7,500 entitled minus 2,500 claimed")
}

func TestCapsForPhase(t *testing.T) {
	p := types.DefaultParams()

	agg, ind := p.CapsForPhase(types.PhaseSeed)
	require.Equal(t, types.DefaultSeedAggregateCap, agg)
	require.Equal(t, types.DefaultSeedIndividualCap, ind)

	agg, ind = p.CapsForPhase(types.PhaseGeneral)
	require.Equal(t, types.DefaultGeneralAggregateCap, agg)
	require.Equal(t, types.DefaultGeneralIndividualCap, ind)

	// The open phase has no per-buyer limit beyond the aggregate cap
	agg, ind = p.CapsForPhase(types.PhaseOpen)
	require.Equal(t, types.DefaultOpenCap, agg)
	require.Equal(t, types.DefaultOpenCap, ind)
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	p := types.DefaultParams()
	p.Rate = math.ZeroInt()
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.SeedIndividualCap = p.SeedAggregateCap.AddRaw(1)
	require.Error(t, p.Validate())

	p = types.DefaultParams()
	p.TokenDenom = p.CurrencyDenom
	require.Error(t, p.Validate())
}

func TestGenesisValidate(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())

	gs := types.DefaultGenesis()
	gs.Records = []types.ContributionRecord{
		{Address: "a", TotalContributed: math.NewInt(10), TotalClaimed: math.ZeroInt()},
		{Address: "a", TotalContributed: math.NewInt(10), TotalClaimed: math.ZeroInt()},
	}
	require.Error(t, gs.Validate(), "duplicate records rejected")
}
