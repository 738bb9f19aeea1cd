package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Amortization *AmortizationHandler
	Velocity     *VelocityHandler
	Investment   *InvestmentHandler
	Comparison   *ComparisonHandler
}

// NewRouter wires the strategy endpoints behind the rate limiter and
// request metrics, and exposes /metrics unthrottled.
func NewRouter(h Handlers, limiter *RateLimiter) *mux.Router {
	r := mux.NewRouter()

	limited := func(fn http.HandlerFunc) http.Handler {
		return MetricsMiddleware(RateLimitMiddleware(limiter, fn))
	}

	r.Handle("/mortgage/baseline", limited(h.Amortization.Baseline)).Methods(http.MethodPost)
	r.Handle("/mortgage/extra-payment", limited(h.Amortization.ExtraPayment)).Methods(http.MethodPost)
	r.Handle("/mortgage/velocity", limited(h.Velocity.Simulate)).Methods(http.MethodPost)
	r.Handle("/investment/project", limited(h.Investment.Project)).Methods(http.MethodPost)
	r.Handle("/strategies/compare", limited(h.Comparison.Compare)).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r
}
