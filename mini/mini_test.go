package mini

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mediasan-cli/mediasan/downloader"
	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fixture struct {
	topic string
	title string
}

// pipelineServer serves one result page built from the fixtures, then empty
// pages. Video URLs point back at the same server, which answers any GET
// with a fixed body.
func pipelineServer(fixtures ...fixture) *httptest.Server {
	var srv *httptest.Server
	page := 0
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("video bytes"))
			return
		}

		results := "[]"
		if page == 0 {
			items := ""
			for i, f := range fixtures {
				if i > 0 {
					items += ","
				}
				items += fmt.Sprintf(
					`{"channel":"ARD","topic":%q,"title":%q,"url_video":"%s/%d.mp4"}`,
					f.topic, f.title, srv.URL, i,
				)
			}
			results = "[" + items + "]"
		}
		page++
		fmt.Fprintf(w, `{"result":{"results":%s,"queryInfo":{"totalResults":%d}}}`, results, len(fixtures))
	}))
	return srv
}

func run(srv *httptest.Server, input string, fixtures ...fixture) (*bytes.Buffer, error) {
	var out bytes.Buffer
	err := Run(&Options{
		Query:      "query",
		Folder:     "/downloads",
		Quality:    source.QualityMedium,
		In:         strings.NewReader(input),
		Out:        &out,
		Client:     &mediathek.Client{HTTP: srv.Client(), Endpoint: srv.URL},
		Downloader: &downloader.Downloader{Client: srv.Client(), Out: io.Discard, Quiet: true},
	})
	return &out, err
}

func TestTopicSelection(t *testing.T) {
	Convey("Topic selection", t, func() {
		Convey("Several topics prompt for a 1-based index", func() {
			srv := pipelineServer(
				fixture{"Alpha", "Alpha S01/E01"},
				fixture{"Alpha", "Alpha S01/E02"},
				fixture{"Beta", "Beta S01/E01"},
			)
			defer srv.Close()

			out, err := run(srv, "2\n\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Found 2 topics")
			So(out.String(), ShouldContainSubstring, "Downloaded 1 file")

			exists := lo.Must(filesystem.API().Exists("/downloads/Beta S01E01.mp4"))
			So(exists, ShouldBeTrue)
		})

		Convey("Invalid and out-of-range topic input re-prompts", func() {
			srv := pipelineServer(
				fixture{"Alpha", "Alpha S01/E01"},
				fixture{"Beta", "Beta S01/E01"},
			)
			defer srv.Close()

			out, err := run(srv, "abc\n9\n1\n\n")
			So(err, ShouldBeNil)
			So(strings.Count(out.String(), "enter a number between 1 and 2"), ShouldEqual, 2)
			So(out.String(), ShouldContainSubstring, "Downloaded 1 file")
		})

		Convey("A single topic skips the prompt", func() {
			srv := pipelineServer(fixture{"Gamma", "Gamma S02/E01"})
			defer srv.Close()

			out, err := run(srv, "\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldNotContainSubstring, "Which topic?")
			So(out.String(), ShouldContainSubstring, "Downloaded 1 file")
		})
	})
}

func TestSeasonSelection(t *testing.T) {
	Convey("Season selection", t, func() {
		fixtures := []fixture{
			{"Show", "Show S01/E01"},
			{"Show", "Show S01/E02"},
			{"Show", "Show S02/E01"},
		}

		Convey("Empty input downloads every season", func() {
			srv := pipelineServer(fixtures...)
			defer srv.Close()

			out, err := run(srv, "\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Found 2 seasons")
			So(out.String(), ShouldContainSubstring, "Downloaded 3 files")
		})

		Convey("y confirms all seasons", func() {
			srv := pipelineServer(fixtures...)
			defer srv.Close()

			out, err := run(srv, "y\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Downloaded 3 files")
		})

		Convey("A listed index downloads only that season", func() {
			srv := pipelineServer(fixtures...)
			defer srv.Close()

			out, err := run(srv, "2\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "Downloaded 1 file")

			exists := lo.Must(filesystem.API().Exists("/downloads/Show S02E01.mp4"))
			So(exists, ShouldBeTrue)
		})

		Convey("A numeric choice outside the listed seasons is fatal", func() {
			srv := pipelineServer(fixtures...)
			defer srv.Close()

			_, err := run(srv, "7\n")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "invalid selection: 7")
		})

		Convey("Non-numeric input re-prompts", func() {
			srv := pipelineServer(fixtures...)
			defer srv.Close()

			out, err := run(srv, "maybe\ny\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "enter a season number")
			So(out.String(), ShouldContainSubstring, "Downloaded 3 files")
		})
	})
}

func TestFatalConditions(t *testing.T) {
	Convey("Fatal pipeline conditions", t, func() {
		Convey("No results", func() {
			srv := pipelineServer()
			defer srv.Close()

			_, err := run(srv, "\n")
			So(err, ShouldEqual, ErrNoResults)
		})

		Convey("A topic without any episode marker is unsupported", func() {
			srv := pipelineServer(fixture{"Doku", "Die lange Nacht"})
			defer srv.Close()

			_, err := run(srv, "\n")
			So(err, ShouldEqual, ErrSingleUnsupported)
		})
	})
}

func TestPerItemFailures(t *testing.T) {
	Convey("Per-item download failures are skipped", t, func() {
		Convey("A record without any video URL does not abort the run", func() {
			var srv *httptest.Server
			page := 0
			srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method == http.MethodGet {
					_, _ = w.Write([]byte("video bytes"))
					return
				}
				results := "[]"
				if page == 0 {
					results = fmt.Sprintf(
						`[{"topic":"Show","title":"Show S01/E01"},{"topic":"Show","title":"Show S01/E02","url_video":"%s/1.mp4"}]`,
						srv.URL,
					)
				}
				page++
				fmt.Fprintf(w, `{"result":{"results":%s,"queryInfo":{"totalResults":2}}}`, results)
			}))
			defer srv.Close()

			out, err := run(srv, "\n")
			So(err, ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "no downloadable URL")
			So(out.String(), ShouldContainSubstring, "Downloaded 1 file")
		})
	})
}
