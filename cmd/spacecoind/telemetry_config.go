package main

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/spacecoin-chain/spacecoin/app"
)

const (
	defaultMetricsPort  = 36660
	defaultHealthPort   = 36661
	defaultRPCAddress   = "http://127.0.0.1:26657"
	defaultOTLPEndpoint = "http://127.0.0.1:4318"
	defaultSampleRate   = 0.1
)

// resolveNodeHome returns the configured Spacecoin home directory.
// It honors SPACECOIN_HOME and the --home flag if provided.
func resolveNodeHome(args []string) string {
	if home := os.Getenv("SPACECOIN_HOME"); home != "" {
		return home
	}

	for i, arg := range args {
		if strings.HasPrefix(arg, "--home=") {
			return strings.SplitN(arg, "=", 2)[1]
		}
		if arg == "--home" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return app.DefaultNodeHome
}

// loadTelemetryPorts reads the desired metrics/health ports from config or
// environment variables, falling back to defaults when values are missing.
func loadTelemetryPorts(home string) (int, int) {
	metricsPort := defaultMetricsPort
	healthPort := defaultHealthPort

	configPath := filepath.Join(home, "config", "app.toml")
	if m, h, err := readTelemetryPortsFromConfig(configPath); err == nil {
		if m > 0 {
			metricsPort = m
		}
		if h > 0 {
			healthPort = h
		}
	}

	if env := os.Getenv("SPACECOIN_TELEMETRY_METRICS_PORT"); env != "" {
		if port := parsePort(env); port > 0 {
			metricsPort = port
		}
	}

	if env := os.Getenv("SPACECOIN_TELEMETRY_HEALTH_PORT"); env != "" {
		if port := parsePort(env); port > 0 {
			healthPort = port
		}
	}

	return metricsPort, healthPort
}

// loadTracingConfig assembles the OpenTelemetry configuration from app.toml
// and environment overrides. Tracing stays off unless explicitly enabled.
func loadTracingConfig(home string) app.TelemetryConfig {
	cfg := app.TelemetryConfig{
		OTLPEndpoint:      defaultOTLPEndpoint,
		PrometheusEnabled: true,
		SampleRate:        defaultSampleRate,
		Environment:       "testnet",
		ChainID:           "spacecoin-testnet",
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, "config", "app.toml"))
	if err := v.ReadInConfig(); err == nil {
		cfg.Enabled = v.GetBool("telemetry.tracing-enabled")
		if ep := v.GetString("telemetry.otlp-endpoint"); ep != "" {
			cfg.OTLPEndpoint = ep
		}
		if rate := v.GetFloat64("telemetry.trace-sample-rate"); rate > 0 && rate <= 1 {
			cfg.SampleRate = rate
		}
		if chainID := v.GetString("telemetry.chain-id"); chainID != "" {
			cfg.ChainID = chainID
		}
	}

	if env := os.Getenv("SPACECOIN_TRACING_ENABLED"); env != "" {
		cfg.Enabled = env == "1" || strings.EqualFold(env, "true")
	}
	if env := os.Getenv("SPACECOIN_OTLP_ENDPOINT"); env != "" {
		cfg.OTLPEndpoint = env
	}

	return cfg
}

func readTelemetryPortsFromConfig(path string) (int, int, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return 0, 0, err
	}

	return v.GetInt("telemetry.metrics-port"), v.GetInt("telemetry.health-port"), nil
}

func parsePort(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return 0
	}

	return port
}

// resolveRPCAddress chooses the RPC endpoint used by the health checker.
// It prefers SPACECOIN_RPC_ENDPOINT, then config/rpc.laddr, and finally a fallback.
func resolveRPCAddress(home string) string {
	if env := os.Getenv("SPACECOIN_RPC_ENDPOINT"); env != "" {
		return env
	}

	configPath := filepath.Join(home, "config", "config.toml")
	if hostPort, err := readRPCHostPort(configPath); err == nil && hostPort != "" {
		return fmt.Sprintf("http://%s", hostPort)
	}

	return defaultRPCAddress
}

func readRPCHostPort(path string) (string, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return "", err
	}

	raw := v.GetString("rpc.laddr")
	if raw == "" {
		return "", fmt.Errorf("rpc.laddr not configured")
	}

	hostPort := raw
	if strings.Contains(raw, "://") {
		if parsed, err := url.Parse(raw); err == nil && parsed.Host != "" {
			hostPort = parsed.Host
		}
	}

	return sanitizeHostPort(hostPort), nil
}

func sanitizeHostPort(raw string) string {
	hostPort := strings.TrimSpace(raw)
	if hostPort == "" {
		return ""
	}

	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return hostPort
	}

	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}

	return net.JoinHostPort(host, port)
}
