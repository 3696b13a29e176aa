package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RouterMetrics holds all Prometheus metrics for the router module
type RouterMetrics struct {
	SwapsTotal *prometheus.CounterVec
}

var (
	routerMetricsOnce sync.Once
	routerMetrics     *RouterMetrics
)

// NewRouterMetrics creates and registers router metrics (singleton pattern)
func NewRouterMetrics() *RouterMetrics {
	routerMetricsOnce.Do(func() {
		routerMetrics = &RouterMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "spacecoin",
					Subsystem: "router",
					Name:      "swaps_total",
					Help:      "Total number of routed swaps",
				},
				[]string{"direction"},
			),
		}
	})
	return routerMetrics
}

// GetRouterMetrics returns the singleton router metrics instance
func GetRouterMetrics() *RouterMetrics {
	if routerMetrics == nil {
		return NewRouterMetrics()
	}
	return routerMetrics
}
