package model_test

import (
	"testing"
	"time"

	model "github.com/okian/kindred/internal/domain/model"
	"github.com/okian/kindred/internal/domain/vector"
	"github.com/smartystreets/goconvey/convey"
)

func TestProfile(t *testing.T) {
	convey.Convey("Given a Profile struct", t, func() {
		convey.Convey("When creating a new profile", func() {
			now := time.Now()
			p := model.Profile{
				EntityID:  "entity-123",
				Vector:    vector.Vector{3, 2, 1, 5, 4},
				UpdatedAt: now,
			}

			convey.Convey("Then it should have the correct values", func() {
				convey.So(p.EntityID, convey.ShouldEqual, "entity-123")
				convey.So(p.Vector, convey.ShouldHaveLength, vector.Dimension)
				convey.So(p.UpdatedAt, convey.ShouldEqual, now)
			})
		})

		convey.Convey("When creating a profile with zero values", func() {
			p := model.Profile{}

			convey.Convey("Then it should have default values", func() {
				convey.So(p.EntityID, convey.ShouldEqual, "")
				convey.So(p.Vector, convey.ShouldBeNil)
				convey.So(p.UpdatedAt, convey.ShouldEqual, time.Time{})
			})
		})
	})
}

func TestEntityScore(t *testing.T) {
	convey.Convey("Given an EntityScore struct", t, func() {
		convey.Convey("When creating a new entity score", func() {
			es := model.EntityScore{
				EntityID: "entity-456",
				Score:    84.0,
			}

			convey.Convey("Then it should have the correct values", func() {
				convey.So(es.EntityID, convey.ShouldEqual, "entity-456")
				convey.So(es.Score, convey.ShouldEqual, 84.0)
			})
		})

		convey.Convey("When creating an entity score with a negative score", func() {
			es := model.EntityScore{
				EntityID: "entity-neg",
				Score:    -50.0,
			}

			convey.Convey("Then it should accept negative scores", func() {
				// Weighted scoring can produce them for extreme inputs.
				convey.So(es.Score, convey.ShouldEqual, -50.0)
			})
		})
	})
}
