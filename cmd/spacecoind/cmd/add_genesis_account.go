package cmd

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	"github.com/spf13/cobra"
)

const (
	flagVestingStart = "vesting-start-time"
	flagVestingEnd   = "vesting-end-time"
	flagVestingAmt   = "vesting-amount"
	flagAppendMode   = "append"
	flagModuleName   = "module-name"
)

// AddGenesisAccountCmd returns a command that adds a genesis account to
// genesis.json. The account may be a plain account, a module account, or a
// delayed/continuous vesting account.
func AddGenesisAccountCmd(defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-genesis-account [address_or_key_name] [coin][,[coin]]",
		Short: "Add a genesis account to genesis.json",
		Long: `Add a genesis account to genesis.json. The provided account must specify
the account address or key name and a list of initial coins. If a key name is given,
the address will be looked up in the local keybase. The list of initial tokens must
contain valid denominations. Accounts may optionally be supplied with vesting parameters.

Example:
  spacecoind add-genesis-account space1... 50000000000uspace,1000000uspc
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetClientContextFromCmd(cmd)
			serverCtx := server.GetServerContextFromCmd(cmd)
			config := serverCtx.Config
			config.SetRoot(clientCtx.HomeDir)

			addr, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				// attempt to look up the address by key name
				inBuf := cmd.InOrStdin()
				keyringBackend, _ := cmd.Flags().GetString(flags.FlagKeyringBackend)

				kr, keyErr := keyring.New(sdk.KeyringServiceName(), keyringBackend, clientCtx.HomeDir, inBuf, clientCtx.Codec)
				if keyErr != nil {
					return fmt.Errorf("failed to open keyring: %w", keyErr)
				}

				info, keyErr := kr.Key(args[0])
				if keyErr != nil {
					return fmt.Errorf("failed to get address from keyring: %w", keyErr)
				}

				addr, keyErr = info.GetAddress()
				if keyErr != nil {
					return fmt.Errorf("failed to resolve key address: %w", keyErr)
				}
			}

			appendFlag, _ := cmd.Flags().GetBool(flagAppendMode)
			vestingStart, _ := cmd.Flags().GetInt64(flagVestingStart)
			vestingEnd, _ := cmd.Flags().GetInt64(flagVestingEnd)
			vestingAmt, _ := cmd.Flags().GetString(flagVestingAmt)
			moduleName, _ := cmd.Flags().GetString(flagModuleName)

			return genutil.AddGenesisAccount(
				clientCtx.Codec, addr, appendFlag, config.GenesisFile(),
				args[1], vestingAmt, vestingStart, vestingEnd, moduleName,
			)
		},
	}

	cmd.Flags().String(flags.FlagHome, defaultNodeHome, "node's home directory")
	cmd.Flags().String(flags.FlagKeyringBackend, flags.DefaultKeyringBackend, "select keyring's backend (os|file|kwallet|pass|test)")
	cmd.Flags().String(flagVestingAmt, "", "amount of coins for vesting accounts")
	cmd.Flags().Int64(flagVestingStart, 0, "schedule start time (unix epoch) for vesting accounts")
	cmd.Flags().Int64(flagVestingEnd, 0, "schedule end time (unix epoch) for vesting accounts")
	cmd.Flags().Bool(flagAppendMode, false, "append the coins to an account already in the genesis.json file")
	cmd.Flags().String(flagModuleName, "", "module account name")

	return cmd
}
