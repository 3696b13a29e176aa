package main

import (
	"context"
	"fmt"
	"os"
	"time"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/spacecoin-chain/spacecoin/app"
	"github.com/spacecoin-chain/spacecoin/cmd/spacecoind/cmd"
)

func main() {
	home := resolveNodeHome(os.Args[1:])
	metricsPort, healthPort := loadTelemetryPorts(home)
	rpcEndpoint := resolveRPCAddress(home)

	// OpenTelemetry bootstrap. Inert unless tracing is enabled in config,
	// so a bare node pays nothing for it.
	tel, err := app.InitTelemetry(loadTracingConfig(home))
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry init error: %v\n", err)
	}

	// Start Prometheus metrics server on the configured port.
	StartPrometheusServer(metricsPort)

	// Start health check server with the configured port + RPC endpoint,
	// and mount the node component checker under /node/.
	nodeChecker := NewSimpleNodeChecker(rpcEndpoint)
	hc := StartHealthCheckServer(healthPort, nodeChecker)
	hc.AttachComponentChecker(newComponentChecker(rpcEndpoint))

	rootCmd := cmd.NewRootCmd(false)
	execErr := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome)

	if tel != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = tel.Shutdown(shutdownCtx)
		cancel()
	}

	if execErr != nil {
		os.Exit(1)
	}
}
