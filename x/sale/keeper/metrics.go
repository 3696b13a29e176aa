package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SaleMetrics holds all Prometheus metrics for the sale module
type SaleMetrics struct {
	ContributionsTotal *prometheus.CounterVec
	ContributionVolume *prometheus.CounterVec
	ClaimsTotal        prometheus.Counter
	WithdrawalsTotal   prometheus.Counter
	CurrentPhase       prometheus.Gauge
	TotalContributed   prometheus.Gauge
}

var (
	saleMetricsOnce sync.Once
	saleMetrics     *SaleMetrics
)

// NewSaleMetrics creates and registers sale metrics (singleton pattern)
func NewSaleMetrics() *SaleMetrics {
	saleMetricsOnce.Do(func() {
		saleMetrics = &SaleMetrics{
			ContributionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "contributions_total",
					Help:      "Total number of contributions accepted",
				},
				[]string{"phase"},
			),
			ContributionVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "contribution_volume_total",
					Help:      "Total contribution volume in base currency units",
				},
				[]string{"phase"},
			),
			ClaimsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "claims_total",
					Help:      "Total number of successful claims",
				},
			),
			WithdrawalsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "withdrawals_total",
					Help:      "Total number of treasury withdrawals",
				},
			),
			CurrentPhase: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "current_phase",
					Help:      "Current sale phase (0=seed, 1=general, 2=open)",
				},
			),
			TotalContributed: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "spacecoin",
					Subsystem: "sale",
					Name:      "total_contributed",
					Help:      "Aggregate contributions in base currency units",
				},
			),
		}
	})
	return saleMetrics
}

// GetSaleMetrics returns the singleton sale metrics instance
func GetSaleMetrics() *SaleMetrics {
	if saleMetrics == nil {
		return NewSaleMetrics()
	}
	return saleMetrics
}
