package seed_test

import (
	"context"
	"testing"

	repository "github.com/okian/kindred/internal/adapters/repository"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/okian/kindred/internal/seed"
	"github.com/okian/kindred/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore(ctx)

		Convey("When seeding a population", func() {
			n, err := seed.Load(ctx, store, 25)
			So(err, ShouldBeNil)

			Convey("Then the requested number of profiles is stored", func() {
				So(n, ShouldEqual, 25)
				So(store.Count(ctx), ShouldEqual, 25)
			})

			Convey("And every stored vector is valid", func() {
				profiles, err := store.AllVectors(ctx)
				So(err, ShouldBeNil)
				So(profiles, ShouldHaveLength, 25)
				for _, p := range profiles {
					So(p.Vector.Validate(), ShouldBeNil)
					So(p.Vector, ShouldHaveLength, vector.Dimension)
				}
			})
		})

		Convey("When seeding with a cancelled context", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			n, err := seed.Load(cancelled, store, 10)

			Convey("Then it stops early", func() {
				So(err, ShouldNotBeNil)
				So(n, ShouldEqual, 0)
			})
		})
	})
}
