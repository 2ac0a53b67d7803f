package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/okian/kindred/internal/adapters/http/api"
	app "github.com/okian/kindred/internal/app"
	"github.com/okian/kindred/internal/config"
	"github.com/okian/kindred/internal/domain/matching"
	"github.com/okian/kindred/internal/domain/scoring"
	"github.com/okian/kindred/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("KINDRED_ADDR", ":8080")
			_ = os.Setenv("KINDRED_SCORING_VARIANT", "naive")
			_ = os.Setenv("KINDRED_MATCH_STRATEGY", "push_down")
			defer func() {
				_ = os.Unsetenv("KINDRED_ADDR")
				_ = os.Unsetenv("KINDRED_SCORING_VARIANT")
				_ = os.Unsetenv("KINDRED_MATCH_STRATEGY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ScoringVariant, convey.ShouldEqual, "naive")
				convey.So(cfg.MatchStrategy, convey.ShouldEqual, "push_down")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithScoringVariant(scoring.Naive),
					app.WithMatchStrategy(matching.PushDown),
					app.WithMaxMatchLimit(50),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing service metrics updater", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startServiceMetricsUpdater(ctx, svc)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing service metrics update", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateServiceMetrics(svc)
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When testing full application setup", func() {
			_ = os.Setenv("KINDRED_ADDR", ":8080")
			defer func() { _ = os.Unsetenv("KINDRED_ADDR") }()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				// Load configuration
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				// Create service (without starting to avoid logger dependency)
				svc := app.New(
					app.WithStoreKind(cfg.Store),
					app.WithMaxMatchLimit(cfg.MaxMatchLimit),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				// Create HTTP server
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)

				// Create HTTP mux and register routes
				mux := http.NewServeMux()
				convey.So(mux, convey.ShouldNotBeNil)
				server.Register(ctx, mux)

				// Stop service
				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("KINDRED_ADDR", "")
			defer func() { _ = os.Unsetenv("KINDRED_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation with invalid options", func() {
			convey.Convey("Then service should handle invalid options gracefully", func() {
				svc := app.New(
					app.WithMaxMatchLimit(0),
					app.WithSeedCount(-1),
					app.WithStoreKind(""),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}
