package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/spacecoin-chain/spacecoin/x/sale/types"
)

// GetTxCmd returns the transaction commands for the sale module
func GetTxCmd() *cobra.Command {
	saleTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Sale transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	saleTxCmd.AddCommand(
		CmdContribute(),
		CmdClaim(),
		CmdAdvancePhase(),
		CmdSetPaused(),
		CmdWhitelist(),
		CmdWithdraw(),
	)

	return saleTxCmd
}

// CmdContribute returns a CLI command handler for contributing to the sale
func CmdContribute() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contribute [amount]",
		Short: "Contribute currency to the token sale",
		Long: `Contribute currency to the token sale during the current phase.

Example:
  $ spacecoind tx sale contribute 1000 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[0])
			}

			if amount.IsZero() || amount.IsNegative() {
				return fmt.Errorf("amount must be positive")
			}

			msg := types.NewMsgContribute(clientCtx.GetFromAddress().String(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaim returns a CLI command handler for claiming purchased tokens
func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Claim purchased tokens during the open phase",
		Long: `Claim all deferred tokens once the sale reaches the open phase.

Example:
  $ spacecoind tx sale claim --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgClaim(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAdvancePhase returns a CLI command handler for advancing the sale phase
func CmdAdvancePhase() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance-phase [phase]",
		Short: "Advance the sale to a later phase (admin only)",
		Long: `Advance the sale to a later phase. Valid targets are "general" and "open".

Example:
  $ spacecoind tx sale advance-phase open --from admin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			phase, err := types.ParsePhase(args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgAdvancePhase(clientCtx.GetFromAddress().String(), phase)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetPaused returns a CLI command handler for pausing and resuming purchases
func CmdSetPaused() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-paused [true|false]",
		Short: "Pause or resume purchases (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			var paused bool
			switch args[0] {
			case "true":
				paused = true
			case "false":
				paused = false
			default:
				return fmt.Errorf("expected true or false, got %s", args[0])
			}

			msg := types.NewMsgSetPaused(clientCtx.GetFromAddress().String(), paused)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWhitelist returns a CLI command handler for seed-phase registration
func CmdWhitelist() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelist [address]",
		Short: "Register an address for the seed phase (admin only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgWhitelist(clientCtx.GetFromAddress().String(), args[0])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for treasury withdrawals
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw sale proceeds to the treasury",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[0])
			}

			msg := types.NewMsgWithdraw(clientCtx.GetFromAddress().String(), amount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
