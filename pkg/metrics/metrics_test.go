package metrics_test

import (
	"testing"

	"github.com/okian/clincher/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func gatheredNames(t *testing.T) map[string]bool {
	families, err := metrics.GetRegistry().Gather()
	So(err, ShouldBeNil)
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestGlobalMetrics(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording business metrics", func() {
			metrics.RecordSimulation()
			metrics.RecordSimulationError()
			metrics.RecordScenarioSearch(12.5)
			metrics.RecordSweepCounts(1210, 121, 36)
			metrics.RecordAnalysisCacheHit()
			metrics.RecordAnalysisCacheMiss()
			metrics.UpdateRosterSize(5)
			metrics.UpdateTrackedContenders(3)

			Convey("Then the registry exposes the recorded families", func() {
				names := gatheredNames(t)
				So(names["clincher_championship_simulations_total"], ShouldBeTrue)
				So(names["clincher_championship_scenario_searches_total"], ShouldBeTrue)
				So(names["clincher_championship_combinations_evaluated_total"], ShouldBeTrue)
				So(names["clincher_championship_collisions_skipped_total"], ShouldBeTrue)
				So(names["clincher_championship_winning_scenarios"], ShouldBeTrue)
				So(names["clincher_championship_analysis_cache_hits_total"], ShouldBeTrue)
				So(names["clincher_championship_roster_size"], ShouldBeTrue)
			})
		})

		Convey("When recording HTTP metrics", func() {
			metrics.RecordHTTPRequest("/simulate", "POST", "200")
			metrics.RecordHTTPRequestDuration("/simulate", "POST", "200", 3.2)
			metrics.RecordErrorByEndpoint("/simulate", "POST", "client_error")

			Convey("Then the labeled families appear", func() {
				names := gatheredNames(t)
				So(names["clincher_championship_http_requests_total"], ShouldBeTrue)
				So(names["clincher_championship_http_request_duration_ms"], ShouldBeTrue)
				So(names["clincher_championship_errors_by_endpoint_total"], ShouldBeTrue)
			})
		})

		Convey("When updating system metrics", func() {
			So(func() {
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(12)
				metrics.RecordSystemGCPauseTime(0.2)
			}, ShouldNotPanic)
		})
	})
}

func TestNewManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()

		Convey("When constructing with options", func() {
			So(func() {
				metrics.NewManager(
					metrics.WithPrometheusRegistry(registry),
					metrics.WithNamespace("test"),
					metrics.WithSubsystem("suite"),
					metrics.WithHistogramBuckets([]float64{1, 10, 100}),
				)
			}, ShouldNotPanic)

			Convey("Then its metrics register under the custom namespace", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				// Counters without observations still register; vecs stay
				// empty until first use, so only check a plain counter.
				found := false
				for _, f := range families {
					if f.GetName() == "test_suite_simulations_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When metrics are disabled", func() {
			So(func() {
				metrics.NewManager(
					metrics.WithPrometheusRegistry(prometheus.NewRegistry()),
					metrics.WithMetricsEnabled(false),
				)
			}, ShouldNotPanic)
		})
	})
}
