package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/spacecoin-chain/spacecoin/x/router/types"
)

// GetTxCmd returns the transaction commands for the router module
func GetTxCmd() *cobra.Command {
	routerTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Router transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	routerTxCmd.AddCommand(
		CmdSwapExactCurrencyForToken(),
		CmdSwapExactTokenForCurrency(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
	)

	return routerTxCmd
}

func parseInt(arg, name string) (math.Int, error) {
	v, ok := math.NewIntFromString(arg)
	if !ok {
		return math.Int{}, fmt.Errorf("invalid %s: %s (must be integer)", name, arg)
	}
	return v, nil
}

// CmdSwapExactCurrencyForToken returns a CLI command handler for swapping
// currency to tokens with minimum-return protection
func CmdSwapExactCurrencyForToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-currency-for-token [amount-in] [min-out]",
		Short: "Swap an exact currency input for at least min-out tokens",
		Long: `Swap an exact currency input for tokens. The trade is rejected if the
net return, after pool fee and transfer tax, falls below min-out.

Example:
  $ spacecoind tx router swap-currency-for-token 1000 190 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountIn, err := parseInt(args[0], "input amount")
			if err != nil {
				return err
			}

			minOut, err := parseInt(args[1], "minimum return")
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactCurrencyForToken(clientCtx.GetFromAddress().String(), amountIn, minOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactTokenForCurrency returns a CLI command handler for swapping
// tokens to currency with minimum-return protection
func CmdSwapExactTokenForCurrency() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-token-for-currency [amount-in] [min-out]",
		Short: "Swap an exact token input for at least min-out currency",
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

			minOut, err := parseInt(args[1], "minimum return")
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactTokenForCurrency(clientCtx.GetFromAddress().String(), amountIn, minOut)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for routed liquidity deposits
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [token-amount] [currency-amount]",
		Short: "Fund the pool with both assets and receive shares",
		Args:  cobra.ExactArgs(2),
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

			msg := types.NewMsgAddLiquidity(clientCtx.GetFromAddress().String(), tokenAmount, currencyAmount)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for routed liquidity withdrawals
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [shares] [min-token] [min-currency]",
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

			msg := types.NewMsgRemoveLiquidity(clientCtx.GetFromAddress().String(), shares, minToken, minCurrency)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
