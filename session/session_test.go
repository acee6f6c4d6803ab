package session

import (
	"errors"
	"testing"

	"github.com/coursex-bot/coursex/course"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleCatalog() []*course.CourseSummary {
	return []*course.CourseSummary{
		{ID: "1", Title: "Batch A"},
		{ID: "2", Title: "Batch B"},
		{ID: "3", Title: "Physics Marathon"},
	}
}

func TestSession(t *testing.T) {
	Convey("Given a fresh session", t, func() {
		s := &Session{}
		So(s.State(), ShouldEqual, Idle)

		Convey("Selecting while idle fails without a transition", func() {
			_, err := s.SelectByPosition(1)
			So(errors.Is(err, ErrNoCatalogLoaded), ShouldBeTrue)
			So(s.State(), ShouldEqual, Idle)

			_, err = s.SelectByTitle("batch")
			So(errors.Is(err, ErrNoCatalogLoaded), ShouldBeTrue)
			So(s.State(), ShouldEqual, Idle)
		})

		Convey("Completing while idle fails", func() {
			So(errors.Is(s.CompleteExtraction(), ErrNoSelection), ShouldBeTrue)
		})

		Convey("When a catalog is loaded", func() {
			s.LoadCatalog(sampleCatalog())
			So(s.State(), ShouldEqual, CatalogHeld)
			So(s.Catalog(), ShouldHaveLength, 3)

			Convey("A valid position selects the course", func() {
				chosen, err := s.SelectByPosition(2)
				So(err, ShouldBeNil)
				So(chosen.Title, ShouldEqual, "Batch B")
				So(s.State(), ShouldEqual, CourseSelected)

				selected, ok := s.Selected()
				So(ok, ShouldBeTrue)
				So(selected.ID, ShouldEqual, "2")
			})

			Convey("Positions outside [1, N] never leave CatalogHeld", func() {
				for _, n := range []int{0, -1, 4, 100} {
					_, err := s.SelectByPosition(n)
					So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
					So(s.State(), ShouldEqual, CatalogHeld)
				}

				_, ok := s.Selected()
				So(ok, ShouldBeFalse)
			})

			Convey("A title fragment selects the best fuzzy match", func() {
				chosen, err := s.SelectByTitle("physics")
				So(err, ShouldBeNil)
				So(chosen.Title, ShouldEqual, "Physics Marathon")
				So(s.State(), ShouldEqual, CourseSelected)
			})

			Convey("An unmatched title fails and leaves the state untouched", func() {
				_, err := s.SelectByTitle("chemistry")
				So(errors.Is(err, ErrNoMatch), ShouldBeTrue)
				So(s.State(), ShouldEqual, CatalogHeld)
			})

			Convey("Completing extraction resets to Idle", func() {
				_, err := s.SelectByPosition(1)
				So(err, ShouldBeNil)

				So(s.CompleteExtraction(), ShouldBeNil)
				So(s.State(), ShouldEqual, Idle)
				So(s.Catalog(), ShouldBeEmpty)

				_, ok := s.Selected()
				So(ok, ShouldBeFalse)
			})

			Convey("Reloading the catalog discards a prior selection", func() {
				_, err := s.SelectByPosition(1)
				So(err, ShouldBeNil)
				So(s.State(), ShouldEqual, CourseSelected)

				s.LoadCatalog(sampleCatalog()[:1])
				So(s.State(), ShouldEqual, CatalogHeld)
				So(s.Catalog(), ShouldHaveLength, 1)

				_, ok := s.Selected()
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestManager(t *testing.T) {
	Convey("Given a session manager", t, func() {
		m := NewManager()

		Convey("First access creates an idle session", func() {
			So(m.Get(1).State(), ShouldEqual, Idle)
		})

		Convey("The same user always gets the same session", func() {
			m.Get(1).LoadCatalog(sampleCatalog())
			So(m.Get(1).State(), ShouldEqual, CatalogHeld)
		})

		Convey("Users are isolated from each other", func() {
			m.Get(1).LoadCatalog(sampleCatalog())
			So(m.Get(2).State(), ShouldEqual, Idle)
		})

		Convey("Reset discards a user's session only", func() {
			m.Get(1).LoadCatalog(sampleCatalog())
			m.Get(2).LoadCatalog(sampleCatalog())
			m.Reset(1)
			So(m.Get(1).State(), ShouldEqual, Idle)
			So(m.Get(2).State(), ShouldEqual, CatalogHeld)
		})
	})
}
