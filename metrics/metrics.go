package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "planner_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	simulationsTotal *prometheus.CounterVec
	payoffMonths     *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	requestsTotal    *prometheus.CounterVec
)

// Init registers the planner metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		simulationsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "simulations_total",
				Help: "Total strategy simulations by strategy and result",
			},
			[]string{"strategy", "result"},
		)
		payoffMonths = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "payoff_months",
				Help:    "Months to payoff by strategy",
				Buckets: []float64{12, 60, 120, 180, 240, 300, 360, 600, 1200},
			},
			[]string{"strategy"},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_cache_lookups_total",
				Help: "Report cache lookups by outcome",
			},
			[]string{"outcome"},
		)
		requestsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by path",
			},
			[]string{"path"},
		)

		prometheus.MustRegister(simulationsTotal, payoffMonths, cacheLookups, requestsTotal)
	})
}

// ObserveSimulation counts one simulation run.
func ObserveSimulation(strategy, result string) {
	if simulationsTotal != nil {
		simulationsTotal.WithLabelValues(strategy, result).Inc()
	}
}

// ObservePayoffMonths records a payoff duration.
func ObservePayoffMonths(strategy string, months int) {
	if payoffMonths != nil {
		payoffMonths.WithLabelValues(strategy).Observe(float64(months))
	}
}

// ObserveCacheLookup counts a report cache hit or miss.
func ObserveCacheLookup(hit bool) {
	if cacheLookups == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	cacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveRequest counts one HTTP request.
func ObserveRequest(path string) {
	if requestsTotal != nil {
		requestsTotal.WithLabelValues(path).Inc()
	}
}
