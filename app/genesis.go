package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// GenesisState represents the genesis state of the blockchain.
// It is a map from module name to module genesis state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	genesis := ModuleBasics.DefaultGenesis(cdc)

	// Staking and mint default to "stake"; the chain bonds uspace.
	var stakingGenesis stakingtypes.GenesisState
	cdc.MustUnmarshalJSON(genesis[stakingtypes.ModuleName], &stakingGenesis)
	stakingGenesis.Params.BondDenom = BondDenom
	stakingGenesis.Params.MinCommissionRate = math.LegacyMustNewDecFromStr("0.05")
	genesis[stakingtypes.ModuleName] = cdc.MustMarshalJSON(&stakingGenesis)

	var mintGenesis minttypes.GenesisState
	cdc.MustUnmarshalJSON(genesis[minttypes.ModuleName], &mintGenesis)
	mintGenesis.Params.MintDenom = BondDenom
	genesis[minttypes.ModuleName] = cdc.MustMarshalJSON(&mintGenesis)

	var govGenesis govtypes.GenesisState
	cdc.MustUnmarshalJSON(genesis["gov"], &govGenesis)
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, 10_000_000_000))
	genesis["gov"] = cdc.MustMarshalJSON(&govGenesis)

	return genesis
}

// NewGenesisStateFromConfig creates genesis state with custom network parameters
func NewGenesisStateFromConfig(cdc codec.JSONCodec, config GenesisConfig) GenesisState {
	genesis := NewDefaultGenesisState(cdc)

	// Override staking params
	var stakingGenesis stakingtypes.GenesisState
	cdc.MustUnmarshalJSON(genesis[stakingtypes.ModuleName], &stakingGenesis)
	stakingGenesis.Params.MaxValidators = config.MaxValidators
	stakingGenesis.Params.UnbondingTime = time.Duration(config.UnbondingPeriodSeconds) * time.Second
	genesis[stakingtypes.ModuleName] = cdc.MustMarshalJSON(&stakingGenesis)

	// Override slashing params
	var slashingGenesis slashingtypes.GenesisState
	cdc.MustUnmarshalJSON(genesis[slashingtypes.ModuleName], &slashingGenesis)
	slashingGenesis.Params.SlashFractionDoubleSign = math.LegacyMustNewDecFromStr(config.DoubleSignPenalty)
	slashingGenesis.Params.SlashFractionDowntime = math.LegacyMustNewDecFromStr(config.DowntimePenalty)
	slashingGenesis.Params.SignedBlocksWindow = int64(config.DowntimeWindowBlocks)
	slashingGenesis.Params.DowntimeJailDuration = time.Duration(config.DowntimeJailDurationSeconds) * time.Second
	genesis[slashingtypes.ModuleName] = cdc.MustMarshalJSON(&slashingGenesis)

	// Override governance params
	var govGenesis govtypes.GenesisState
	cdc.MustUnmarshalJSON(genesis["gov"], &govGenesis)
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, config.MinDepositAmount))
	govGenesis.Params.VotingPeriod = durationPtr(time.Duration(config.VotingPeriodSeconds) * time.Second)
	govGenesis.Params.Quorum = config.Quorum
	govGenesis.Params.Threshold = config.Threshold
	govGenesis.Params.VetoThreshold = config.VetoThreshold
	genesis["gov"] = cdc.MustMarshalJSON(&govGenesis)

	// Override bank supply
	var bankGenesis banktypes.GenesisState
	cdc.MustUnmarshalJSON(genesis[banktypes.ModuleName], &bankGenesis)
	bankGenesis.Supply = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, config.TotalSupply))
	genesis[banktypes.ModuleName] = cdc.MustMarshalJSON(&bankGenesis)

	return genesis
}

// GenesisConfig holds configuration parameters for genesis state
type GenesisConfig struct {
	ChainID                     string
	TotalSupply                 int64
	MaxValidators               uint32
	UnbondingPeriodSeconds      int64
	DoubleSignPenalty           string
	DowntimePenalty             string
	DowntimeWindowBlocks        uint64
	DowntimeJailDurationSeconds int64
	MinDepositAmount            int64
	VotingPeriodSeconds         int64
	Quorum                      string
	Threshold                   string
	VetoThreshold               string
}

// DefaultGenesisConfig returns the default network configuration
func DefaultGenesisConfig() GenesisConfig {
	return GenesisConfig{
		ChainID:                     "spacecoin-testnet",
		TotalSupply:                 50000000000000, // 50M SPACE
		MaxValidators:               125,
		UnbondingPeriodSeconds:      1814400, // 21 days
		DoubleSignPenalty:           "0.05",  // 5%
		DowntimePenalty:             "0.001", // 0.1%
		DowntimeWindowBlocks:        10000,
		DowntimeJailDurationSeconds: 86400,                  // 24 hours
		MinDepositAmount:            10000000000,            // 10,000 SPACE
		VotingPeriodSeconds:         1209600,                // 14 days
		Quorum:                      "0.400000000000000000", // 40%
		Threshold:                   "0.667000000000000000", // 66.7%
		VetoThreshold:               "0.333000000000000000", // 33.3%
	}
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
