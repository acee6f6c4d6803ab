// Package report implements quality-aware link selection and deterministic text report rendering.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/preference"
	"github.com/samber/lo"
)

// TimeLayout is the timestamp format stamped into reports and captions.
const TimeLayout = "2006-01-02 15:04:05"

const separatorWidth = 60

var (
	rule     = strings.Repeat("=", separatorWidth)
	thinRule = strings.Repeat("-", separatorWidth)
)

// Build renders the full text report for a course.
//
// Output is strictly deterministic: identical inputs and timestamp produce
// byte-identical text. Empty topic or class lists never fail; an empty course
// yields a header-only report the caller should treat as nothing to deliver.
func Build(courseTitle string, topics []*course.Topic, pref string, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format(TimeLayout))
	fmt.Fprintf(&b, "Course: %s\n", courseTitle)
	fmt.Fprintf(&b, "Quality Preference: %s\n", strings.ToUpper(pref))
	b.WriteString(rule + "\n\n")

	for _, topic := range topics {
		fmt.Fprintf(&b, "TOPIC: %s\n", topic.Name)
		b.WriteString(thinRule + "\n")

		for i, entry := range topic.Classes {
			writeClass(&b, i+1, entry, pref)
		}
	}

	return b.String()
}

func writeClass(b *strings.Builder, position int, entry *course.ClassEntry, pref string) {
	fmt.Fprintf(b, "Class %d: %s\n", position, entry.Title)
	if description, ok := entry.Description.Get(); ok {
		fmt.Fprintf(b, "Description: %s\n", description)
	}
	fmt.Fprintf(b, "Teacher: %s\n\n", entry.TeacherName)

	// A class without a single valid video link drops the whole video section
	// but still renders its PDF section and trailing separator.
	if links := SelectLinks(entry, pref); len(links) > 0 {
		writeVideoSection(b, links, pref)
	}

	writePdfSection(b, entry.Pdfs)

	b.WriteString(rule + "\n\n")
}

func writeVideoSection(b *strings.Builder, links []Link, pref string) {
	b.WriteString("Video Links:\n")

	preferred := lo.Filter(links, func(l Link, _ int) bool { return l.Preferred })

	if pref != preference.All && len(preferred) > 0 {
		fmt.Fprintf(b, "  Preferred Quality (%s):\n", pref)
		for _, link := range preferred {
			fmt.Fprintf(b, "    %s %s (%s)\n", markerFor(link), link.URL, link.Quality)
		}

		b.WriteString("  Other Available Qualities:\n")
		for _, link := range links {
			if link.Preferred {
				continue
			}
			fmt.Fprintf(b, "    %s %s (%s)\n", markerFor(link), link.URL, link.Quality)
		}
	} else {
		for _, link := range links {
			fmt.Fprintf(b, "  %s %s (%s)\n", markerFor(link), link.URL, link.Quality)
		}
	}

	b.WriteString("\n")
}

func writePdfSection(b *strings.Builder, pdfs []*course.PdfLink) {
	valid := lo.Filter(pdfs, func(p *course.PdfLink, _ int) bool { return isHTTPURL(p.URL) })
	if len(valid) == 0 {
		return
	}

	b.WriteString("PDF Materials:\n")
	for i, pdf := range valid {
		fmt.Fprintf(b, "  %d. %s (Name: %s)\n", i+1, pdf.URL, pdf.Name)
	}
	b.WriteString("\n")
}

func markerFor(link Link) string {
	if link.Preferred {
		return "✓"
	}
	return "•"
}
