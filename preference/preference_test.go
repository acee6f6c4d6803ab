package preference

import (
	"errors"
	"testing"

	"github.com/coursex-bot/coursex/filesystem"
	"github.com/coursex-bot/coursex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.SetDefault(key.ExtractDefaultQuality, "720p")
}

func TestGet(t *testing.T) {
	Convey("Given a user with no stored preference", t, func() {
		Convey("It returns the configured default", func() {
			So(Get(404), ShouldEqual, "720p")
		})
	})
}

func TestSet(t *testing.T) {
	Convey("Given a quality preference", t, func() {
		Convey("It persists canonical labels", func() {
			So(Set(1, "480p"), ShouldBeNil)
			So(Get(1), ShouldEqual, "480p")
		})

		Convey("It normalizes case on write", func() {
			So(Set(2, "1080P"), ShouldBeNil)
			So(Get(2), ShouldEqual, "1080p")
		})

		Convey("It accepts the all sentinel", func() {
			So(Set(3, All), ShouldBeNil)
			So(Get(3), ShouldEqual, All)
		})

		Convey("It rejects non-canonical labels", func() {
			err := Set(4, "4k")
			So(errors.Is(err, ErrInvalidQuality), ShouldBeTrue)
			So(Get(4), ShouldEqual, "720p")
		})

		Convey("Preferences are isolated per user", func() {
			So(Set(5, "360p"), ShouldBeNil)
			So(Set(6, "240p"), ShouldBeNil)
			So(Get(5), ShouldEqual, "360p")
			So(Get(6), ShouldEqual, "240p")
		})
	})
}

func TestIsValid(t *testing.T) {
	Convey("IsValid", t, func() {
		So(IsValid("720p"), ShouldBeTrue)
		So(IsValid("720P"), ShouldBeTrue)
		So(IsValid(All), ShouldBeTrue)
		So(IsValid("8k"), ShouldBeFalse)
		So(IsValid(""), ShouldBeFalse)
	})
}
