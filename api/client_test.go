package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coursex-bot/coursex/filesystem"
	"github.com/coursex-bot/coursex/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.SetDefault(key.APICacheTTLHours, 0)
}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return &Client{base: server.URL, http: server.Client()}, server
}

func TestCourses(t *testing.T) {
	Convey("Given a healthy catalog backend", t, func() {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [{"id": "a1", "title": "Batch A"}, {"id": "b2"}]}`))
		})
		defer server.Close()

		Convey("Courses returns the normalized listing", func() {
			summaries, err := c.Courses()
			So(err, ShouldBeNil)
			So(summaries, ShouldHaveLength, 2)
			So(summaries[0].Title, ShouldEqual, "Batch A")
			So(summaries[1].Title, ShouldEqual, "Batch 2")
		})
	})

	Convey("Given a backend returning an error status", t, func() {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer server.Close()

		Convey("Courses surfaces the failure", func() {
			_, err := c.Courses()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
		})
	})
}

func TestDetail(t *testing.T) {
	Convey("Given a healthy detail endpoint", t, func() {
		var requested string
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			requested = r.URL.String()
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": {"course": {"title": "Batch A"}, "classes": []}}`))
		})
		defer server.Close()

		Convey("Detail hits the populated classes endpoint", func() {
			detail, err := c.Detail("a1")
			So(err, ShouldBeNil)
			So(detail.Title, ShouldEqual, "Batch A")
			So(requested, ShouldEqual, "/a1/classes?populate=full")
		})
	})

	Convey("Given a payload without a data container", t, func() {
		c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "gone"}`))
		})
		defer server.Close()

		Convey("Detail fails with a malformed payload error", func() {
			_, err := c.Detail("a1")
			So(err, ShouldNotBeNil)
		})
	})
}
