package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given pairs of semantic version strings", t, func() {
		Convey("Equal versions compare as 0", func() {
			So(comp("1.2.3", "1.2.3"), ShouldEqual, 0)
			So(comp("v0.1.0", "0.1.0"), ShouldEqual, 0)
		})

		Convey("Newer versions compare as 1", func() {
			So(comp("2.0.0", "1.9.9"), ShouldEqual, 1)
			So(comp("1.3.0", "1.2.9"), ShouldEqual, 1)
			So(comp("1.2.4", "1.2.3"), ShouldEqual, 1)
		})

		Convey("Older versions compare as -1", func() {
			So(comp("0.9.0", "1.0.0"), ShouldEqual, -1)
		})

		Convey("Malformed versions produce an error", func() {
			_, err := Compare("not-a-version", "1.0.0")
			So(err, ShouldNotBeNil)
		})
	})
}

func comp(a, b string) int {
	result, err := Compare(a, b)
	So(err, ShouldBeNil)
	return result
}
