package report

import (
	"testing"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/preference"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSelectLinks(t *testing.T) {
	Convey("Given a class with mixed-quality recordings", t, func() {
		entry := &course.ClassEntry{
			Title: "Lesson",
			Recordings: []*course.Recording{
				{URL: "https://cdn.example.com/a.mp4", Quality: "720p"},
				{URL: "https://cdn.example.com/b.mp4", Quality: "480p"},
				{URL: "https://cdn.example.com/c.mp4", Quality: "720p"},
			},
		}

		Convey("A concrete preference sorts matches first, original order preserved", func() {
			links := SelectLinks(entry, "720p")
			So(links, ShouldHaveLength, 3)

			So(links[0].URL, ShouldEqual, "https://cdn.example.com/a.mp4")
			So(links[0].Preferred, ShouldBeTrue)
			So(links[1].URL, ShouldEqual, "https://cdn.example.com/c.mp4")
			So(links[1].Preferred, ShouldBeTrue)
			So(links[2].URL, ShouldEqual, "https://cdn.example.com/b.mp4")
			So(links[2].Preferred, ShouldBeFalse)
		})

		Convey("The all sentinel keeps emission order and marks nothing preferred", func() {
			links := SelectLinks(entry, preference.All)
			So(links, ShouldHaveLength, 3)
			for i, link := range links {
				So(link.Preferred, ShouldBeFalse)
				So(link.URL, ShouldEqual, entry.Recordings[i].URL)
			}
		})

		Convey("Preference matching is case-insensitive", func() {
			links := SelectLinks(entry, "720P")
			So(links[0].Preferred, ShouldBeTrue)
			So(links[1].Preferred, ShouldBeTrue)
		})
	})

	Convey("Given a class with a main link", t, func() {
		entry := &course.ClassEntry{
			Title:     "Lesson",
			ClassLink: mo.Some("https://stream.example.com/live"),
			Recordings: []*course.Recording{
				{URL: "https://cdn.example.com/a.mp4", Quality: "720p"},
			},
		}

		Convey("The main link is emitted first and never preferred", func() {
			links := SelectLinks(entry, preference.All)
			So(links[0].Quality, ShouldEqual, MainLinkLabel)
			So(links[0].Preferred, ShouldBeFalse)
		})

		Convey("A matching preference pushes the main link behind preferred entries", func() {
			links := SelectLinks(entry, "720p")
			So(links[0].Quality, ShouldEqual, "720p")
			So(links[0].Preferred, ShouldBeTrue)
			So(links[1].Quality, ShouldEqual, MainLinkLabel)
		})

		Convey("A non-http main link is dropped", func() {
			entry.ClassLink = mo.Some("ftp://stream.example.com/live")
			links := SelectLinks(entry, preference.All)
			So(links, ShouldHaveLength, 1)
			So(links[0].Quality, ShouldEqual, "720p")
		})
	})

	Convey("Given recordings with invalid URLs", t, func() {
		entry := &course.ClassEntry{
			Title: "Lesson",
			Recordings: []*course.Recording{
				{URL: "", Quality: "720p"},
				{URL: "not a url at all %%%", Quality: "480p"},
				{URL: "https://cdn.example.com/ok.mp4", Quality: "360p"},
			},
		}

		Convey("Only http(s) URLs survive", func() {
			links := SelectLinks(entry, preference.All)
			So(links, ShouldHaveLength, 1)
			So(links[0].URL, ShouldEqual, "https://cdn.example.com/ok.mp4")
		})
	})

	Convey("Given a class without any link", t, func() {
		entry := &course.ClassEntry{Title: "Lesson"}
		So(SelectLinks(entry, "720p"), ShouldBeEmpty)
	})
}
