package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacecoin-chain/spacecoin/app"
)

func TestInitTelemetryDisabled(t *testing.T) {
	tel, err := app.InitTelemetry(app.TelemetryConfig{})
	require.NoError(t, err)
	require.NotNil(t, tel)
	require.NotNil(t, tel.Middleware())

	require.NoError(t, tel.Shutdown(context.Background()))
}

func TestInitTelemetryRejectsBadSampleRate(t *testing.T) {
	_, err := app.InitTelemetry(app.TelemetryConfig{
		Enabled:      true,
		OTLPEndpoint: "http://127.0.0.1:4318",
		SampleRate:   2.5,
	})
	require.Error(t, err)
}

func TestInitTelemetryRequiresEndpointWhenEnabled(t *testing.T) {
	_, err := app.InitTelemetry(app.TelemetryConfig{Enabled: true})
	require.Error(t, err)
}

func TestTelemetryMiddlewareRecordsWhenDisabled(t *testing.T) {
	tel, err := app.InitTelemetry(app.TelemetryConfig{})
	require.NoError(t, err)

	// The global no-op meter backs the instruments, so recording is safe.
	mw := tel.Middleware()
	mw.RecordTransaction(context.Background(), "sale.contribute", 5*time.Millisecond, 50_000, true)
	mw.RecordTransaction(context.Background(), "amm.swap", 3*time.Millisecond, 80_000, false)
	mw.RecordBlockHeight(context.Background(), 42)
	mw.RecordModuleExecution(context.Background(), "router", time.Millisecond)
}
