package vector_test

import (
	"errors"
	"math"
	"testing"

	vector "github.com/okian/kindred/internal/domain/vector"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given valid components", t, func() {
		Convey("When building a vector", func() {
			v, err := vector.New(3, 2, 1, 5, 4)

			Convey("Then it should succeed with all components in place", func() {
				So(err, ShouldBeNil)
				So(v, ShouldHaveLength, vector.Dimension)
				So(v[0], ShouldEqual, 3)
				So(v[4], ShouldEqual, 4)
			})
		})

		Convey("When building from one-decimal components", func() {
			v, err := vector.New(3.1, 2.2, 1.0, 5.0, 4.3)

			Convey("Then it should succeed", func() {
				So(err, ShouldBeNil)
				So(v[1], ShouldEqual, 2.2)
			})
		})

		Convey("When components sit exactly on the bounds", func() {
			_, err := vector.New(0, 5, 0, 5, 0)

			Convey("Then the bounds are inclusive", func() {
				So(err, ShouldBeNil)
			})
		})
	})

	Convey("Given invalid components", t, func() {
		Convey("When the count is wrong", func() {
			_, err := vector.New(1, 2, 3)

			Convey("Then it should report a dimension error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, vector.ErrDimension), ShouldBeTrue)
			})
		})

		Convey("When a component exceeds the maximum", func() {
			_, err := vector.New(1, 2, 3, 4, 5.1)

			Convey("Then it should report an out-of-range error", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, vector.ErrOutOfRange), ShouldBeTrue)
			})
		})

		Convey("When a component is negative", func() {
			_, err := vector.New(-0.1, 2, 3, 4, 5)

			Convey("Then it should report an out-of-range error", func() {
				So(errors.Is(err, vector.ErrOutOfRange), ShouldBeTrue)
			})
		})

		Convey("When a component is NaN", func() {
			_, err := vector.New(math.NaN(), 2, 3, 4, 5)

			Convey("Then it should report an out-of-range error", func() {
				So(errors.Is(err, vector.ErrOutOfRange), ShouldBeTrue)
			})
		})
	})
}

func TestRound(t *testing.T) {
	Convey("Given a vector with excess precision", t, func() {
		v := vector.Vector{1.25, 2.04, 3.96, 0.05, 4.999}

		Convey("When rounding to the documented precision", func() {
			r := v.Round()

			Convey("Then every component carries one decimal place", func() {
				So(r[0], ShouldAlmostEqual, 1.3)
				So(r[1], ShouldAlmostEqual, 2.0)
				So(r[2], ShouldAlmostEqual, 4.0)
				So(r[3], ShouldAlmostEqual, 0.1)
				So(r[4], ShouldAlmostEqual, 5.0)
			})

			Convey("And the original is untouched", func() {
				So(v[0], ShouldAlmostEqual, 1.25)
			})
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Given a vector", t, func() {
		v := vector.Vector{1, 2, 3, 4, 5}

		Convey("When cloning it", func() {
			c := v.Clone()
			c[0] = 9

			Convey("Then mutations do not leak back", func() {
				So(v[0], ShouldEqual, 1)
			})
		})
	})
}
