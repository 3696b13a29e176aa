package telemetry

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewProviderDisabled(t *testing.T) {
	p, err := NewProvider(Config{})
	require.NoError(t, err)
	require.NotNil(t, p)

	// Disabled providers fall back to the global no-op tracer/meter.
	require.NotNil(t, p.Tracer())
	require.NotNil(t, p.Meter())
	require.NoError(t, p.HealthCheck())
	require.NoError(t, p.Shutdown(context.Background()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "missing endpoint",
			cfg:     Config{SampleRate: 0.5},
			wantErr: true,
		},
		{
			name:    "sample rate above one",
			cfg:     Config{JaegerEndpoint: "http://127.0.0.1:4318", SampleRate: 1.5},
			wantErr: true,
		},
		{
			name:    "negative sample rate",
			cfg:     Config{JaegerEndpoint: "http://127.0.0.1:4318", SampleRate: -0.1},
			wantErr: true,
		},
		{
			name: "valid",
			cfg:  Config{JaegerEndpoint: "http://127.0.0.1:4318", SampleRate: 0.1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateConfig(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestHealthCheckReportsUninitializedTracer(t *testing.T) {
	p := &Provider{config: Config{Enabled: true, JaegerEndpoint: "http://127.0.0.1:4318"}}
	require.Error(t, p.HealthCheck())
}

func TestStartSwapSpanEnds(t *testing.T) {
	ctx, span := StartSwapSpan(context.Background(), "currency_to_token", "1000")
	require.NotNil(t, ctx)
	require.NotNil(t, span)
	span.End()
}

func TestRecordErrorNilSafe(t *testing.T) {
	RecordError(nil, fmt.Errorf("boom"))

	_, span := StartSwapSpan(context.Background(), "token_to_currency", "250")
	RecordError(span, nil)
	RecordError(span, fmt.Errorf("boom"))
	span.End()
}
