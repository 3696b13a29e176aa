package app

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/spacecoin-chain/spacecoin/app/telemetry"
)

// TelemetryConfig holds the daemon-facing telemetry switches. It is the
// flattened form of telemetry.Config consumed by the startup path.
type TelemetryConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	PrometheusEnabled bool
	SampleRate        float64
	Environment       string
	ChainID           string
}

// Telemetry bundles the OpenTelemetry provider with the transaction
// metrics middleware.
type Telemetry struct {
	provider   *telemetry.Provider
	middleware *TelemetryMiddleware
}

// InitTelemetry initializes OpenTelemetry tracing and metrics. When the
// config is disabled the returned instance is inert and Shutdown is a no-op.
func InitTelemetry(cfg TelemetryConfig) (*Telemetry, error) {
	provider, err := telemetry.NewProvider(telemetry.Config{
		Enabled:           cfg.Enabled,
		JaegerEndpoint:    cfg.OTLPEndpoint,
		SampleRate:        cfg.SampleRate,
		Environment:       cfg.Environment,
		ChainID:           cfg.ChainID,
		PrometheusEnabled: cfg.PrometheusEnabled,
	})
	if err != nil {
		return nil, err
	}

	middleware, err := NewTelemetryMiddleware(provider.Meter())
	if err != nil {
		return nil, err
	}

	return &Telemetry{provider: provider, middleware: middleware}, nil
}

// Middleware returns the transaction metrics middleware.
func (t *Telemetry) Middleware() *TelemetryMiddleware {
	return t.middleware
}

// Shutdown gracefully shuts down telemetry
func (t *Telemetry) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// TelemetryMiddleware records per-transaction and per-module metrics
type TelemetryMiddleware struct {
	meter metric.Meter

	// Metrics
	txCounter   metric.Int64Counter
	txDuration  metric.Float64Histogram
	txGasUsed   metric.Int64Histogram
	blockHeight metric.Int64Gauge
	moduleExec  metric.Float64Histogram
}

// NewTelemetryMiddleware creates a new telemetry middleware
func NewTelemetryMiddleware(meter metric.Meter) (*TelemetryMiddleware, error) {
	txCounter, err := meter.Int64Counter(
		"cosmos.tx.total",
		metric.WithDescription("Total number of transactions"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, err
	}

	txDuration, err := meter.Float64Histogram(
		"cosmos.tx.processing_time",
		metric.WithDescription("Transaction processing time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	txGasUsed, err := meter.Int64Histogram(
		"cosmos.tx.gas_used",
		metric.WithDescription("Gas used by transaction"),
		metric.WithUnit("{gas}"),
	)
	if err != nil {
		return nil, err
	}

	blockHeight, err := meter.Int64Gauge(
		"cosmos.block.height",
		metric.WithDescription("Current block height"),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	moduleExec, err := meter.Float64Histogram(
		"cosmos.module.execution_time",
		metric.WithDescription("Module execution time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &TelemetryMiddleware{
		meter:       meter,
		txCounter:   txCounter,
		txDuration:  txDuration,
		txGasUsed:   txGasUsed,
		blockHeight: blockHeight,
		moduleExec:  moduleExec,
	}, nil
}

// RecordTransaction records transaction metrics
func (tm *TelemetryMiddleware) RecordTransaction(
	ctx context.Context,
	txType string,
	duration time.Duration,
	gasUsed int64,
	success bool,
) {
	status := "success"
	if !success {
		status = "failed"
	}

	attrs := []attribute.KeyValue{
		attribute.String("tx.type", txType),
		attribute.String("tx.status", status),
	}

	tm.txCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	tm.txDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	tm.txGasUsed.Record(ctx, gasUsed, metric.WithAttributes(attrs...))
}

// RecordBlockHeight records the current block height
func (tm *TelemetryMiddleware) RecordBlockHeight(ctx context.Context, height int64) {
	tm.blockHeight.Record(ctx, height)
}

// RecordModuleExecution records module execution time
func (tm *TelemetryMiddleware) RecordModuleExecution(
	ctx context.Context,
	moduleName string,
	duration time.Duration,
) {
	attrs := []attribute.KeyValue{
		attribute.String("module.name", moduleName),
	}
	tm.moduleExec.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
}
