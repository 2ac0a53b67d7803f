package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording match metrics", func() {
			Convey("Then it should record match requests by strategy", func() {
				So(func() {
					RecordMatchRequest("in_memory")
					RecordMatchRequest("push_down")
					RecordMatchRequest("in_memory")
				}, ShouldNotPanic)
			})

			Convey("And it should record match latency", func() {
				So(func() {
					RecordMatchLatency("in_memory", 12.0)
					RecordMatchLatency("push_down", 3.5)
				}, ShouldNotPanic)
			})

			Convey("And it should record scoring and matching errors", func() {
				So(func() {
					RecordScoringError()
					RecordMatchingError()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording store metrics", func() {
			So(func() {
				RecordStoreUpdateLatency(1.2)
				RecordStoreQueryLatency(0.4)
				UpdateStoreRecordsTotal(42)
				UpdateTotalEntities(42)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("matches", "GET", "200")
				RecordHTTPRequestDuration("matches", "GET", "200", 15.0)
			}, ShouldNotPanic)
		})

		Convey("When recording error metrics", func() {
			So(func() {
				RecordErrorByComponent("repository", "not_found")
				RecordErrorByType("client_error", "low")
				RecordErrorByEndpoint("matches", "GET", "not_found")
				RecordErrorLatency("http", "client_error", 2.0)
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024)
				UpdateSystemGoroutineCount(10)
				RecordSystemGCPauseTime(0.5)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the package registry", t, func() {
		Convey("When fetching it", func() {
			registry := GetRegistry()

			Convey("Then it should be the custom registry", func() {
				So(registry, ShouldNotBeNil)
				So(registry, ShouldEqual, customRegistry)
			})
		})
	})
}
