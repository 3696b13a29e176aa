package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/spacecoin-chain/spacecoin/app"
	"github.com/spacecoin-chain/spacecoin/cmd/spacecoind/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd(true)

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
