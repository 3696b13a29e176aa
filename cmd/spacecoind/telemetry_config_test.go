package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTracingConfigDefaults(t *testing.T) {
	cfg := loadTracingConfig(t.TempDir())

	if cfg.Enabled {
		t.Error("Expected tracing disabled by default")
	}
	if cfg.OTLPEndpoint != defaultOTLPEndpoint {
		t.Errorf("Expected default endpoint %s, got %s", defaultOTLPEndpoint, cfg.OTLPEndpoint)
	}
	if !cfg.PrometheusEnabled {
		t.Error("Expected Prometheus enabled by default")
	}
	if cfg.SampleRate != defaultSampleRate {
		t.Errorf("Expected default sample rate %v, got %v", defaultSampleRate, cfg.SampleRate)
	}
}

func TestLoadTracingConfigFromFile(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	appToml := `[telemetry]
tracing-enabled = true
otlp-endpoint = "http://jaeger:4318"
trace-sample-rate = 0.5
chain-id = "spacecoin-local"
`
	if err := os.WriteFile(filepath.Join(configDir, "app.toml"), []byte(appToml), 0o644); err != nil {
		t.Fatalf("Failed to write app.toml: %v", err)
	}

	cfg := loadTracingConfig(home)

	if !cfg.Enabled {
		t.Error("Expected tracing enabled from config")
	}
	if cfg.OTLPEndpoint != "http://jaeger:4318" {
		t.Errorf("Expected endpoint from config, got %s", cfg.OTLPEndpoint)
	}
	if cfg.SampleRate != 0.5 {
		t.Errorf("Expected sample rate 0.5, got %v", cfg.SampleRate)
	}
	if cfg.ChainID != "spacecoin-local" {
		t.Errorf("Expected chain id from config, got %s", cfg.ChainID)
	}
}

func TestLoadTracingConfigEnvOverride(t *testing.T) {
	t.Setenv("SPACECOIN_TRACING_ENABLED", "true")
	t.Setenv("SPACECOIN_OTLP_ENDPOINT", "http://collector:4318")

	cfg := loadTracingConfig(t.TempDir())

	if !cfg.Enabled {
		t.Error("Expected env var to enable tracing")
	}
	if cfg.OTLPEndpoint != "http://collector:4318" {
		t.Errorf("Expected endpoint from env, got %s", cfg.OTLPEndpoint)
	}
}

func TestLoadTracingConfigIgnoresBadSampleRate(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	appToml := `[telemetry]
trace-sample-rate = 3.0
`
	if err := os.WriteFile(filepath.Join(configDir, "app.toml"), []byte(appToml), 0o644); err != nil {
		t.Fatalf("Failed to write app.toml: %v", err)
	}

	cfg := loadTracingConfig(home)

	if cfg.SampleRate != defaultSampleRate {
		t.Errorf("Expected out-of-range rate to fall back to %v, got %v", defaultSampleRate, cfg.SampleRate)
	}
}
