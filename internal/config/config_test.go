package config_test

import (
	"testing"

	"github.com/okian/kindred/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Store, convey.ShouldEqual, config.StoreMemory)
			convey.So(cfg.SQLitePath, convey.ShouldEqual, "kindred.db")
			convey.So(cfg.ScoringVariant, convey.ShouldEqual, "weighted")
			convey.So(cfg.MatchStrategy, convey.ShouldEqual, "in_memory")
			convey.So(cfg.MaxMatchLimit, convey.ShouldEqual, 100)
			convey.So(cfg.SeedCount, convey.ShouldEqual, 0)
		})
	})
}
