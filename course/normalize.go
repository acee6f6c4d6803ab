// Package course defines the domain models and normalization rules for remote catalog content.
package course

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/mo"
)

// ErrMalformedPayload indicates the top-level "data" container is missing from a fetched payload.
// Absences anywhere below the root are not errors; they degrade to defaults instead.
var ErrMalformedPayload = errors.New("malformed payload: missing data container")

// Default labels substituted for absent fields during normalization.
const (
	UnknownTeacher = "Unknown Teacher"
	UnknownQuality = "Unknown"
	UnknownPdfName = "Unknown PDF"
	UnknownCourse  = "Unknown Course"
)

// NormalizeCatalog converts a decoded catalog payload into an ordered batch listing.
// The payload root must carry a "data" sequence; entries missing a title receive
// a positional "Batch {i}" placeholder, 1-indexed by source position.
func NormalizeCatalog(raw any) ([]*CourseSummary, error) {
	root, ok := asMap(raw)
	if !ok {
		return nil, ErrMalformedPayload
	}

	items, ok := asSlice(root["data"])
	if !ok {
		return nil, ErrMalformedPayload
	}

	summaries := make([]*CourseSummary, 0, len(items))
	for i, item := range items {
		entry, _ := asMap(item)
		summary := &CourseSummary{
			ID:    stringField(entry, "id"),
			Title: stringField(entry, "title"),
		}
		if summary.Title == "" {
			summary.Title = fmt.Sprintf("Batch %d", i+1)
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// NormalizeDetail converts a decoded course-detail payload into a CourseDetail.
// Strict at the root: a missing "data" container fails with ErrMalformedPayload.
// Lenient below it: every deeper absence defaults per the rules in this package.
func NormalizeDetail(raw any) (*CourseDetail, error) {
	root, ok := asMap(raw)
	if !ok {
		return nil, ErrMalformedPayload
	}

	data, ok := asMap(root["data"])
	if !ok {
		return nil, ErrMalformedPayload
	}

	detail := &CourseDetail{Title: UnknownCourse}
	if courseInfo, ok := asMap(data["course"]); ok {
		if title := stringField(courseInfo, "title"); title != "" {
			detail.Title = title
		}
	}

	rawTopics, _ := asSlice(data["classes"])
	for i, rawTopic := range rawTopics {
		topicEntry, _ := asMap(rawTopic)

		topic := &Topic{Name: stringField(topicEntry, "topicName")}
		if topic.Name == "" {
			topic.Name = fmt.Sprintf("Topic %d", i+1)
		}

		rawClasses, _ := asSlice(topicEntry["classes"])
		for j, rawClass := range rawClasses {
			topic.Classes = append(topic.Classes, normalizeClass(rawClass, j+1))
		}

		detail.Topics = append(detail.Topics, topic)
	}

	return detail, nil
}

func normalizeClass(raw any, position int) *ClassEntry {
	classEntry, _ := asMap(raw)

	entry := &ClassEntry{
		Title:       stringField(classEntry, "title"),
		TeacherName: stringField(classEntry, "teacherName"),
		Description: optionalField(classEntry, "description"),
		ClassLink:   optionalField(classEntry, "class_link"),
	}
	if entry.Title == "" {
		entry.Title = fmt.Sprintf("Class %d", position)
	}
	if entry.TeacherName == "" {
		entry.TeacherName = UnknownTeacher
	}

	recordings, _ := asSlice(classEntry["mp4Recordings"])
	for _, rawRecording := range recordings {
		recordingEntry, _ := asMap(rawRecording)
		recording := &Recording{
			URL:     stringField(recordingEntry, "url"),
			Quality: stringField(recordingEntry, "quality"),
		}
		if recording.Quality == "" {
			recording.Quality = UnknownQuality
		}
		entry.Recordings = append(entry.Recordings, recording)
	}

	pdfs, _ := asSlice(classEntry["classPdf"])
	for _, rawPdf := range pdfs {
		pdfEntry, _ := asMap(rawPdf)
		pdf := &PdfLink{
			URL:  stringField(pdfEntry, "url"),
			Name: stringField(pdfEntry, "name"),
		}
		if pdf.Name == "" {
			pdf.Name = UnknownPdfName
		}
		entry.Pdfs = append(entry.Pdfs, pdf)
	}

	return entry
}

// Payload Accessors - total functions over decoded JSON values; they never fail, they degrade.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// stringField extracts a string representation of a scalar field.
// JSON numbers are accepted so opaque numeric identifiers survive normalization.
func stringField(m map[string]any, field string) string {
	switch value := m[field].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return ""
	}
}

// optionalField extracts a string field as an Option, absent when empty or missing.
func optionalField(m map[string]any, field string) mo.Option[string] {
	if value, ok := m[field].(string); ok && value != "" {
		return mo.Some(value)
	}
	return mo.None[string]()
}
