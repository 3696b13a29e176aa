package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StartPrometheusServer starts a Prometheus metrics HTTP server on the given
// port, serving the default registry: the spacecoin_* health gauges plus the
// sale/amm/router keeper metrics. Runs in a background goroutine; this is in
// addition to the SDK's built-in telemetry.
func StartPrometheusServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		// Errors after startup (like port in use) are logged but not fatal
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("spacecoind metrics server error: %v\n", err)
		}
	}()
}
