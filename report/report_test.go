package report

import (
	"strings"
	"testing"
	"time"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/filesystem"
	"github.com/coursex-bot/coursex/preference"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

var stamp = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func introTopics() []*course.Topic {
	return []*course.Topic{{
		Name: "Intro",
		Classes: []*course.ClassEntry{{
			Title:       "Lesson 1",
			TeacherName: "Unknown Teacher",
			Recordings: []*course.Recording{
				{URL: "http://x/720.mp4", Quality: "720p"},
			},
		}},
	}}
}

func TestBuild(t *testing.T) {
	Convey("Given a course with one topic and one class", t, func() {
		topics := introTopics()

		Convey("The report carries the expected lines", func() {
			text := Build("Batch A", topics, "720p", stamp)

			So(text, ShouldContainSubstring, "Course: Batch A")
			So(text, ShouldContainSubstring, "Quality Preference: 720P")
			So(text, ShouldContainSubstring, "TOPIC: Intro")
			So(text, ShouldContainSubstring, "Class 1: Lesson 1")
			So(text, ShouldContainSubstring, "Teacher: Unknown Teacher")
			So(text, ShouldContainSubstring, "Preferred Quality (720p):")
			So(text, ShouldContainSubstring, "✓ http://x/720.mp4 (720p)")
			So(text, ShouldNotContainSubstring, "PDF Materials:")
		})

		Convey("Rendering is idempotent for identical inputs and timestamp", func() {
			first := Build("Batch A", topics, "720p", stamp)
			second := Build("Batch A", introTopics(), "720p", stamp)
			So(first, ShouldEqual, second)
		})

		Convey("The description line appears only when present", func() {
			So(Build("B", topics, "all", stamp), ShouldNotContainSubstring, "Description:")

			topics[0].Classes[0].Description = mo.Some("Covers the basics")
			So(Build("B", topics, "all", stamp), ShouldContainSubstring, "Description: Covers the basics")
		})
	})

	Convey("Given the all preference", t, func() {
		topics := introTopics()
		text := Build("Batch A", topics, preference.All, stamp)

		Convey("Links render as one flat bulleted list", func() {
			So(text, ShouldNotContainSubstring, "Preferred Quality")
			So(text, ShouldNotContainSubstring, "Other Available Qualities")
			So(text, ShouldContainSubstring, "• http://x/720.mp4 (720p)")
		})
	})

	Convey("Given a preference nothing matches", t, func() {
		topics := introTopics()
		text := Build("Batch A", topics, "1080p", stamp)

		Convey("Links render flat without a preferred group", func() {
			So(text, ShouldNotContainSubstring, "Preferred Quality")
			So(text, ShouldContainSubstring, "• http://x/720.mp4 (720p)")
		})
	})

	Convey("Given a class with pdfs but no valid video link", t, func() {
		topics := []*course.Topic{{
			Name: "Docs Only",
			Classes: []*course.ClassEntry{{
				Title:       "Reading",
				TeacherName: "Unknown Teacher",
				Recordings:  []*course.Recording{{URL: "file:///local.mp4", Quality: "720p"}},
				Pdfs: []*course.PdfLink{
					{URL: "https://cdn.example.com/notes.pdf", Name: "Notes"},
					{URL: "", Name: "Broken"},
				},
			}},
		}}

		text := Build("Batch A", topics, "720p", stamp)

		Convey("The video section is dropped but pdfs and the separator remain", func() {
			So(text, ShouldNotContainSubstring, "Video Links:")
			So(text, ShouldContainSubstring, "PDF Materials:")
			So(text, ShouldContainSubstring, "1. https://cdn.example.com/notes.pdf (Name: Notes)")
			So(text, ShouldNotContainSubstring, "Broken")
			So(strings.Count(text, strings.Repeat("=", 60)), ShouldEqual, 2)
		})
	})

	Convey("Given no topics at all", t, func() {
		text := Build("Empty Batch", nil, "720p", stamp)

		Convey("A header-only report is produced without error", func() {
			So(text, ShouldContainSubstring, "Course: Empty Batch")
			So(text, ShouldNotContainSubstring, "TOPIC:")
		})
	})
}

func TestNewDocument(t *testing.T) {
	Convey("Given a populated course", t, func() {
		doc := NewDocument("Batch A 2024", introTopics(), "720p", stamp)

		Convey("The filename derives from the sanitized title and timestamp", func() {
			So(doc.Filename, ShouldEqual, "Batch_A_2024_20240501_103000.txt")
		})

		Convey("The caption names the course, preference and generation time", func() {
			So(doc.Caption, ShouldContainSubstring, "Batch A 2024")
			So(doc.Caption, ShouldContainSubstring, "720P")
			So(doc.Caption, ShouldContainSubstring, "2024-05-01 10:30:00")
		})

		Convey("The document is not empty", func() {
			So(doc.Empty(), ShouldBeFalse)
		})
	})

	Convey("Given an empty course", t, func() {
		doc := NewDocument("Empty", nil, "720p", stamp)

		Convey("The document reports empty and still renders the header", func() {
			So(doc.Empty(), ShouldBeTrue)
			So(string(doc.Content), ShouldContainSubstring, "Course: Empty")
		})
	})
}
