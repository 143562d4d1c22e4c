package pipeline

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWithinTolerance(t *testing.T) {
	Convey("WithinTolerance", t, func() {
		Convey("Accepts drift up to the relative tolerance", func() {
			So(WithinTolerance(100, 100, 0.05), ShouldBeTrue)
			So(WithinTolerance(100, 104.9, 0.05), ShouldBeTrue)
			So(WithinTolerance(100, 95.1, 0.05), ShouldBeTrue)
		})

		Convey("Rejects drift beyond the relative tolerance", func() {
			So(WithinTolerance(100, 106, 0.05), ShouldBeFalse)
			So(WithinTolerance(100, 94, 0.05), ShouldBeFalse)
			So(WithinTolerance(100, 0, 0.05), ShouldBeFalse)
		})

		Convey("Tolerance scales with the source duration", func() {
			So(WithinTolerance(7200, 7500, 0.05), ShouldBeTrue)
			So(WithinTolerance(60, 360, 0.05), ShouldBeFalse)
		})
	})
}
