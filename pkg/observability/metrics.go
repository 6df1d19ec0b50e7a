package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CalculationRequests counts calculation calls by operation and outcome.
	CalculationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tilgung_calculations_total",
			Help: "Total calculation requests by operation and status.",
		},
		[]string{"operation", "status"},
	)

	// CalculationErrors counts failed calculations by operation and error kind.
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tilgung_calculation_errors_total",
			Help: "Failed calculations by operation and error kind.",
		},
		[]string{"operation", "kind"},
	)
)

// MetricsHandler returns the HTTP handler for the /metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
