// Package report implements quality-aware link selection and deterministic text report rendering.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/coursex-bot/coursex/course"
	"github.com/coursex-bot/coursex/util"
)

// Document is a fully assembled report ready for handoff to a delivery sink.
type Document struct {
	// Filename is the suggested name for the uploaded file.
	Filename string
	// Caption accompanies the uploaded file in chat.
	Caption string
	// Content is the UTF-8 report body.
	Content []byte

	classes int
}

// Empty reports whether the document carries no class content at all.
// A header-only report is valid output but nothing worth delivering.
func (d *Document) Empty() bool {
	return d.classes == 0
}

// NewDocument builds the report text and derives its delivery metadata.
func NewDocument(courseTitle string, topics []*course.Topic, pref string, generatedAt time.Time) *Document {
	text := Build(courseTitle, topics, pref, generatedAt)

	classes := 0
	for _, topic := range topics {
		classes += len(topic.Classes)
	}

	stem := util.SanitizeFilename(courseTitle)
	if stem == "" {
		stem = "course"
	}

	return &Document{
		Filename: fmt.Sprintf("%s_%s.txt", stem, generatedAt.Format("20060102_150405")),
		Caption: fmt.Sprintf("%s | Quality: %s | Generated: %s",
			courseTitle, strings.ToUpper(pref), generatedAt.Format(TimeLayout)),
		Content: []byte(text),
		classes: classes,
	}
}
