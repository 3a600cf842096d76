package downloader

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func fileServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		Convey("Streams the response body to the destination file", func() {
			srv := fileServer(http.StatusOK, "video bytes")
			defer srv.Close()

			d := &Downloader{Client: srv.Client(), Out: io.Discard, Quiet: true}
			err := d.Fetch(srv.URL+"/v.mp4", "/downloads", "Show S01E01.mp4")

			So(err, ShouldBeNil)
			data := lo.Must(filesystem.API().ReadFile("/downloads/Show S01E01.mp4"))
			So(string(data), ShouldEqual, "video bytes")
		})

		Convey("A non-200 response is an error and writes nothing", func() {
			srv := fileServer(http.StatusNotFound, "gone")
			defer srv.Close()

			d := &Downloader{Client: srv.Client(), Out: io.Discard, Quiet: true}
			err := d.Fetch(srv.URL+"/missing.mp4", "/downloads", "missing.mp4")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "404")
			exists := lo.Must(filesystem.API().Exists("/downloads/missing.mp4"))
			So(exists, ShouldBeFalse)
		})
	})
}

func TestFetchSubtitle(t *testing.T) {
	Convey("FetchSubtitle", t, func() {
		Convey("Writes the subtitle in one piece", func() {
			srv := fileServer(http.StatusOK, "1\n00:00:01,000 --> 00:00:02,000\nhi\n")
			defer srv.Close()

			d := &Downloader{Client: srv.Client(), Out: io.Discard, Quiet: true}
			err := d.FetchSubtitle(srv.URL+"/s.srt", "/downloads", "Show S01E01.srt")

			So(err, ShouldBeNil)
			data := lo.Must(filesystem.API().ReadFile("/downloads/Show S01E01.srt"))
			So(string(data), ShouldContainSubstring, "00:00:01")
		})

		Convey("A failing subtitle is an error for that item only", func() {
			srv := fileServer(http.StatusInternalServerError, "")
			defer srv.Close()

			d := &Downloader{Client: srv.Client(), Out: io.Discard, Quiet: true}
			So(d.FetchSubtitle(srv.URL+"/s.srt", "/downloads", "x.srt"), ShouldNotBeNil)
		})
	})
}
