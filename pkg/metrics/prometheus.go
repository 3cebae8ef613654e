// Package metrics provides Prometheus metrics for the clincher
// championship calculator service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Core business metrics
	simulationsTotal       prometheus.Counter
	simulationErrors       prometheus.Counter
	scenarioSearchesTotal  prometheus.Counter
	scenarioSearchDuration prometheus.Histogram
	combinationsEvaluated  prometheus.Counter
	collisionsSkipped      prometheus.Counter
	winningScenarios       prometheus.Histogram

	// Cache metrics
	analysisCacheHits   prometheus.Counter
	analysisCacheMisses prometheus.Counter

	// Roster metrics
	rosterSize        prometheus.Gauge
	trackedContenders prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System performance metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "clincher",
		subsystem:        "championship",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// scenarioCountBuckets spreads winning-scenario counts across the
// 1331-combination search space.
var scenarioCountBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000, 1331} //nolint:gochecknoglobals // static bucket layout

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.simulationsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulations_total",
		Help:      "Total number of manual what-if simulations computed",
	})
	m.simulationErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulation_errors_total",
		Help:      "Total number of simulation requests rejected",
	})
	m.scenarioSearchesTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_searches_total",
		Help:      "Total number of exhaustive scenario searches run",
	})
	m.scenarioSearchDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scenario_search_duration_ms",
		Help:      "Duration of exhaustive scenario searches in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.combinationsEvaluated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "combinations_evaluated_total",
		Help:      "Total finishing-position combinations scored across searches",
	})
	m.collisionsSkipped = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "collisions_skipped_total",
		Help:      "Total combinations skipped by the shared-position collision rule",
	})
	m.winningScenarios = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "winning_scenarios",
		Help:      "Distribution of winning-scenario counts per search",
		Buckets:   scenarioCountBuckets,
	})

	m.analysisCacheHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_cache_hits_total",
		Help:      "Scenario analyses served from the cache",
	})
	m.analysisCacheMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_cache_misses_total",
		Help:      "Scenario analyses that required a fresh sweep",
	})

	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Number of contenders in the active roster",
	})
	m.trackedContenders = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tracked_contenders",
		Help:      "Number of contenders in the active title fight",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.errorsByEndpoint = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "HTTP error responses by endpoint, method and error type",
	}, []string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated memory in bytes",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})
	m.systemGCPauseTime = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_ms",
		Help:      "Average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordSimulation increments the simulation counter.
func RecordSimulation() {
	if globalManager.enabled {
		globalManager.simulationsTotal.Inc()
	}
}

// RecordSimulationError increments the rejected-simulation counter.
func RecordSimulationError() {
	if globalManager.enabled {
		globalManager.simulationErrors.Inc()
	}
}

// RecordScenarioSearch records one completed sweep with its duration.
func RecordScenarioSearch(durationMs float64) {
	if globalManager.enabled {
		globalManager.scenarioSearchesTotal.Inc()
		globalManager.scenarioSearchDuration.Observe(durationMs)
	}
}

// RecordSweepCounts records the combination totals of one sweep.
func RecordSweepCounts(evaluated, skipped, winning int) {
	if globalManager.enabled {
		globalManager.combinationsEvaluated.Add(float64(evaluated))
		globalManager.collisionsSkipped.Add(float64(skipped))
		globalManager.winningScenarios.Observe(float64(winning))
	}
}

// RecordAnalysisCacheHit increments the cache hit counter.
func RecordAnalysisCacheHit() {
	if globalManager.enabled {
		globalManager.analysisCacheHits.Inc()
	}
}

// RecordAnalysisCacheMiss increments the cache miss counter.
func RecordAnalysisCacheMiss() {
	if globalManager.enabled {
		globalManager.analysisCacheMisses.Inc()
	}
}

// UpdateRosterSize sets the roster size gauge.
func UpdateRosterSize(count int) {
	if globalManager.enabled {
		globalManager.rosterSize.Set(float64(count))
	}
}

// UpdateTrackedContenders sets the title-fight size gauge.
func UpdateTrackedContenders(count int) {
	if globalManager.enabled {
		globalManager.trackedContenders.Set(float64(count))
	}
}

// RecordHTTPRequest increments the HTTP request counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// RecordErrorByEndpoint increments the endpoint error counter.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager.enabled {
		globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// UpdateSystemMemoryUsage sets the allocated-memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(count int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime records an average GC pause sample.
func RecordSystemGCPauseTime(pauseMs float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(pauseMs)
	}
}

// GetRegistry returns the custom registry backing the global manager,
// for exposition via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
