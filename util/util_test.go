package util

import (
	"testing"

	"github.com/coursex-bot/coursex/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
		Convey("Should replace spaces", func() {
			So(SanitizeFilename("Batch A 2024"), ShouldEqual, "Batch_A_2024")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "class", "classes"), ShouldEqual, "1 class")
		So(Quantify(2, "class", "classes"), ShouldEqual, "2 classes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile("/tmp-file", []byte("x"), 0644), ShouldBeNil)
		So(Delete("/tmp-file"), ShouldBeNil)
		exists, err := fs.Exists("/tmp-file")
		So(err, ShouldBeNil)
		So(exists, ShouldBeFalse)
	})
}
