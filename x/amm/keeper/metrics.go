package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AmmMetrics holds all Prometheus metrics for the AMM module
type AmmMetrics struct {
	DepositsTotal    prometheus.Counter
	WithdrawalsTotal prometheus.Counter
	SwapsTotal       *prometheus.CounterVec
	TotalShares      prometheus.Gauge
}

var (
	ammMetricsOnce sync.Once
	ammMetrics     *AmmMetrics
)

// NewAmmMetrics creates and registers AMM metrics (singleton pattern)
func NewAmmMetrics() *AmmMetrics {
	ammMetricsOnce.Do(func() {
		ammMetrics = &AmmMetrics{
			DepositsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "amm",
					Name:      "deposits_total",
					Help:      "Total number of liquidity deposits",
				},
			),
			WithdrawalsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "amm",
					Name:      "withdrawals_total",
					Help:      "Total number of liquidity withdrawals",
				},
			),
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of executed swaps",
				},
				[]string{"denom_in", "denom_out"},
			),
			TotalShares: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "spacecoin",
					Subsystem: "amm",
					Name:      "total_shares",
					Help:      "Outstanding liquidity share supply",
				},
			),
		}
	})
	return ammMetrics
}

// GetAmmMetrics returns the singleton AMM metrics instance
func GetAmmMetrics() *AmmMetrics {
	if ammMetrics == nil {
		return NewAmmMetrics()
	}
	return ammMetrics
}

// floatFromInt converts a math.Int to float64 for gauge exports
func floatFromInt(v math.Int) float64 {
	f, _ := new(big.Float).SetInt(v.BigInt()).Float64()
	return f
}
