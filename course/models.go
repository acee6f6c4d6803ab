// Package course defines the domain models and normalization rules for remote catalog content.
package course

import (
	"github.com/samber/mo"
)

// CourseSummary represents a single batch entry from the remote catalog listing.
// Immutable once fetched; it lives for exactly one catalog fetch cycle.
type CourseSummary struct {
	// Opaque identifier assigned by the catalog backend.
	ID string `json:"id"`
	// Display title (e.g. "Batch A"). Never empty after normalization.
	Title string `json:"title"`
}

// String returns the display title of the batch.
func (c *CourseSummary) String() string {
	return c.Title
}

// CourseDetail represents the full nested content of a single course.
// Created once per extraction request and discarded after report generation.
type CourseDetail struct {
	Title  string   `json:"title"`
	Topics []*Topic `json:"topics"`
}

// Topic groups an ordered run of classes under a shared subject name.
type Topic struct {
	Name    string        `json:"name"`
	Classes []*ClassEntry `json:"classes"`
}

// ClassEntry represents one lesson with its recorded media and attached materials.
type ClassEntry struct {
	Title string `json:"title"`
	// Optional free-form description; absent when the backend omits it.
	Description mo.Option[string] `json:"description"`
	// Never empty after normalization.
	TeacherName string `json:"teacherName"`
	// Optional fallback/main video URL published alongside the recordings.
	ClassLink mo.Option[string] `json:"classLink"`
	// Recordings in the exact order the backend returned them.
	Recordings []*Recording `json:"recordings"`
	// Attached PDF materials in original order.
	Pdfs []*PdfLink `json:"pdfs"`
}

// Recording represents a single MP4 stream of a class at a specific quality.
type Recording struct {
	URL string `json:"url"`
	// Quality label (e.g. "720p"). Compared case-insensitively against preferences.
	Quality string `json:"quality"`
}

// String returns the quality or URL for display.
func (r *Recording) String() string {
	if r.Quality != "" {
		return r.Quality
	}
	return r.URL
}

// PdfLink represents a downloadable PDF attached to a class.
type PdfLink struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}
