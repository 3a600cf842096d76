package inline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func resultServer(titles ...string) *httptest.Server {
	page := 0
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		results := "[]"
		if page == 0 {
			items := ""
			for i, title := range titles {
				if i > 0 {
					items += ","
				}
				items += fmt.Sprintf(
					`{"channel":"ARD","topic":"Tatort","title":%q,"size":1024,"url_video":"http://cdn/%d.mp4"}`,
					title, i,
				)
			}
			results = "[" + items + "]"
		}
		page++
		fmt.Fprintf(w, `{"result":{"results":%s,"queryInfo":{"totalResults":%d}}}`, results, len(titles))
	}))
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		Convey("Emits a JSON document with annotated, sorted results", func() {
			srv := resultServer("Tatort S02/E01 B", "Tatort S01/E05 A")
			defer srv.Close()

			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Client: &mediathek.Client{HTTP: srv.Client(), Endpoint: srv.URL},
				Query:  "tatort",
				Json:   true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "tatort")
			So(output.Topics, ShouldResemble, []string{"Tatort"})
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].Title, ShouldEqual, "Tatort S01/E05 A")
			So(output.Result[0].Season.MustGet(), ShouldEqual, "01")
		})

		Convey("Produces valid JSON for an empty result set", func() {
			srv := resultServer()
			defer srv.Close()

			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Client: &mediathek.Client{HTTP: srv.Client(), Endpoint: srv.URL},
				Query:  "nothing",
				Json:   true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Restricts output to the requested topic", func() {
			srv := resultServer("Tatort S01/E01 A")
			defer srv.Close()

			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Client: &mediathek.Client{HTTP: srv.Client(), Endpoint: srv.URL},
				Query:  "tatort",
				Topic:  mo.Some("Polizeiruf"),
				Json:   true,
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Result, ShouldHaveLength, 0)
		})

		Convey("Plain mode writes one line per record", func() {
			srv := resultServer("Tatort S01/E01 A")
			defer srv.Close()

			var buf bytes.Buffer
			err := Run(&Options{
				Out:    &buf,
				Client: &mediathek.Client{HTTP: srv.Client(), Endpoint: srv.URL},
				Query:  "tatort",
			})
			So(err, ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Tatort S01E01")
			So(buf.String(), ShouldContainSubstring, "http://cdn/0.mp4")
		})
	})
}
