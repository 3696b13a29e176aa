package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/spacecoin-chain/spacecoin/x/amm/types"
)

// GetTxCmd returns the transaction commands for the AMM module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdDeposit(),
		CmdWithdraw(),
		CmdSwapToToken(),
		CmdSwapToCurrency(),
		CmdResync(),
	)

	return ammTxCmd
}

func parseInt(arg, name string) (math.Int, error) {
	v, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	return v, nil
}

// CmdDeposit returns a CLI command handler for adding liquidity
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [token-amount] [currency-amount]",
		Short: "Add liquidity to the pool",
		Long: `Add liquidity to the pool and receive shares.

Example:
  $ spacecoind tx amm deposit 150000 30000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenAmount, err := parseInt(args[0], "token amount")
			if err != nil {
				return err
			}

			currencyAmount, err := parseInt(args[1], "currency amount")
			if err != nil {
				return err
			}

			msg := types.NewMsgDeposit(clientCtx.GetFromAddress().String(), tokenAmount, currencyAmount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for removing liquidity
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [shares] [min-token] [min-currency]",
		Short: "Burn liquidity shares for both pool assets",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			shares, err := parseInt(args[0], "shares")
			if err != nil {
				return err
			}

			minToken, err := parseInt(args[1], "minimum token return")
			if err != nil {
				return err
			}

			minCurrency, err := parseInt(args[2], "minimum currency return")
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdraw(clientCtx.GetFromAddress().String(), shares, minToken, minCurrency)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapToToken returns a CLI command handler for swapping currency to tokens
func CmdSwapToToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-to-token [amount-in] [token-out]",
		Short: "Swap currency for the pool token at a declared output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "input amount")
			if err != nil {
				return err
			}

			tokenOut, err := parseInt(args[1], "token output")
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapToToken(clientCtx.GetFromAddress().String(), amountIn, tokenOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapToCurrency returns a CLI command handler for swapping tokens to currency
func CmdSwapToCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-to-currency [amount-in] [currency-out]",
		Short: "Swap the pool token for currency at a declared output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "input amount")
			if err != nil {
				return err
			}

			currencyOut, err := parseInt(args[1], "currency output")
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapToCurrency(clientCtx.GetFromAddress().String(), amountIn, currencyOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdResync returns a CLI command handler for reconciling pool reserves
func CmdResync() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resync",
		Short: "Reconcile bookkept reserves with the pool account balances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgResync(clientCtx.GetFromAddress().String())
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
