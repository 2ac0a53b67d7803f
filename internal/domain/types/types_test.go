package types_test

import (
	"testing"

	types "github.com/okian/kindred/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	Convey("Given a Match struct", t, func() {
		Convey("When creating a new match", func() {
			m := types.Match{
				Rank:     1,
				EntityID: "entity-123",
				Score:    95.5,
			}

			Convey("Then it should have the correct values", func() {
				So(m.Rank, ShouldEqual, 1)
				So(m.EntityID, ShouldEqual, "entity-123")
				So(m.Score, ShouldEqual, 95.5)
			})
		})

		Convey("When creating a match with zero values", func() {
			m := types.Match{}

			Convey("Then it should have default values", func() {
				So(m.Rank, ShouldEqual, 0)
				So(m.EntityID, ShouldEqual, "")
				So(m.Score, ShouldEqual, 0.0)
			})
		})

		Convey("When creating a match with a negative score", func() {
			m := types.Match{
				Rank:     7,
				EntityID: "entity-neg",
				Score:    -50.0,
			}

			Convey("Then it should accept negative scores", func() {
				So(m.Score, ShouldEqual, -50.0)
			})
		})
	})
}

func TestMatchOrdering(t *testing.T) {
	Convey("Given a ranked sequence of matches", t, func() {
		matches := []types.Match{
			{Rank: 1, EntityID: "entity-1", Score: 95.0},
			{Rank: 2, EntityID: "entity-2", Score: 90.5},
			{Rank: 3, EntityID: "entity-3", Score: 90.5},
			{Rank: 4, EntityID: "entity-4", Score: 85.5},
		}

		Convey("Then ranks should be sequential", func() {
			for i, m := range matches {
				So(m.Rank, ShouldEqual, i+1)
			}
		})

		Convey("And scores should be non-increasing", func() {
			for i := 0; i < len(matches)-1; i++ {
				So(matches[i].Score, ShouldBeGreaterThanOrEqualTo, matches[i+1].Score)
			}
		})

		Convey("And equal scores should break ties by entity id", func() {
			So(matches[1].Score, ShouldEqual, matches[2].Score)
			So(matches[1].EntityID, ShouldBeLessThan, matches[2].EntityID)
		})
	})
}
