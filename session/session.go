// Package session tracks per-user progress from catalog fetch through course selection to report delivery.
package session

import (
	"errors"
	"sort"
	"strings"

	"github.com/coursex-bot/coursex/course"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// State identifies the current phase of a selection session.
type State int

const (
	// Idle - no catalog held, nothing to select from.
	Idle State = iota
	// CatalogHeld - a catalog was fetched, awaiting the user's selection.
	CatalogHeld
	// CourseSelected - a valid course was chosen, extraction may proceed.
	CourseSelected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CatalogHeld:
		return "catalog held"
	case CourseSelected:
		return "course selected"
	default:
		return "unknown"
	}
}

// Session-State Violations - recoverable errors surfaced as user-facing messages by the transport.
var (
	ErrNoCatalogLoaded = errors.New("no catalog loaded")
	ErrOutOfRange      = errors.New("selection out of range")
	ErrNoSelection     = errors.New("no course selected")
	ErrNoMatch         = errors.New("no course matches query")
)

// Session is the per-user selection state machine.
//
// A single user's chat turns arrive sequentially, so the session itself
// carries no lock; concurrent isolation between users is the Manager's job.
type Session struct {
	state    State
	catalog  []*course.CourseSummary
	selected *course.CourseSummary
}

// State returns the session's current phase.
func (s *Session) State() State {
	return s.state
}

// Catalog returns the currently held batch listing, in fetch order.
func (s *Session) Catalog() []*course.CourseSummary {
	return s.catalog
}

// Selected returns the chosen course, if any.
func (s *Session) Selected() (*course.CourseSummary, bool) {
	return s.selected, s.selected != nil
}

// LoadCatalog replaces any held catalog and re-enters CatalogHeld.
// Valid from every state; a prior selection is discarded.
func (s *Session) LoadCatalog(summaries []*course.CourseSummary) {
	s.catalog = summaries
	s.selected = nil
	s.state = CatalogHeld
}

// SelectByPosition chooses a course by its 1-based position in the listing.
//
// Out-of-range positions fail with ErrOutOfRange and leave the session in
// CatalogHeld untouched. Selecting without a catalog fails with ErrNoCatalogLoaded.
func (s *Session) SelectByPosition(n int) (*course.CourseSummary, error) {
	if s.state != CatalogHeld {
		return nil, ErrNoCatalogLoaded
	}
	if n < 1 || n > len(s.catalog) {
		return nil, ErrOutOfRange
	}

	s.selected = s.catalog[n-1]
	s.state = CourseSelected
	return s.selected, nil
}

// SelectByTitle chooses a course by fuzzy-matching a title fragment.
// The best-ranked match wins; no match fails with ErrNoMatch and leaves the
// session untouched. State rules mirror SelectByPosition.
func (s *Session) SelectByTitle(query string) (*course.CourseSummary, error) {
	if s.state != CatalogHeld {
		return nil, ErrNoCatalogLoaded
	}

	titles := lo.Map(s.catalog, func(c *course.CourseSummary, _ int) string { return c.Title })
	ranks := fuzzy.RankFindNormalizedFold(strings.TrimSpace(query), titles)
	if len(ranks) == 0 {
		return nil, ErrNoMatch
	}
	sort.Sort(ranks)

	s.selected = s.catalog[ranks[0].OriginalIndex]
	s.state = CourseSelected
	return s.selected, nil
}

// CompleteExtraction marks the selected course as delivered and resets to Idle,
// clearing the held catalog and selection.
func (s *Session) CompleteExtraction() error {
	if s.state != CourseSelected {
		return ErrNoSelection
	}

	s.catalog = nil
	s.selected = nil
	s.state = Idle
	return nil
}
