package source

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func titled(titles ...string) []*Record {
	records := make([]*Record, len(titles))
	for i, t := range titles {
		records[i] = &Record{Title: t}
	}
	return records
}

func TestExtractSeasonEpisode(t *testing.T) {
	Convey("ExtractSeasonEpisode", t, func() {
		Convey("Captures the digit groups verbatim", func() {
			records := ExtractSeasonEpisode(titled("Show S1/E03 - Pilot"))
			So(records[0].Season.MustGet(), ShouldEqual, "1")
			So(records[0].Episode.MustGet(), ShouldEqual, "03")
		})

		Convey("Leaves both absent when the title has no marker", func() {
			records := ExtractSeasonEpisode(titled("Making of", "Show Special"))
			for _, r := range records {
				So(r.Season.IsAbsent(), ShouldBeTrue)
				So(r.Episode.IsAbsent(), ShouldBeTrue)
			}
		})

		Convey("Season and episode are present together or not at all", func() {
			records := ExtractSeasonEpisode(titled("Show S12/E104", "Trailer"))
			So(records[0].Season.IsPresent(), ShouldEqual, records[0].Episode.IsPresent())
			So(records[1].Season.IsPresent(), ShouldEqual, records[1].Episode.IsPresent())
		})

		Convey("Is idempotent", func() {
			records := titled("Show S2/E05", "Interview")
			once := ExtractSeasonEpisode(records)
			seasons := []mo.Option[string]{once[0].Season, once[1].Season}
			episodes := []mo.Option[string]{once[0].Episode, once[1].Episode}

			twice := ExtractSeasonEpisode(once)
			So(twice[0].Season, ShouldResemble, seasons[0])
			So(twice[1].Season, ShouldResemble, seasons[1])
			So(twice[0].Episode, ShouldResemble, episodes[0])
			So(twice[1].Episode, ShouldResemble, episodes[1])
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Classify", t, func() {
		records := Classify(titled("Show S1/E01", "Show - Making of"))

		Convey("Marked titles become episodes", func() {
			So(records[0].Kind, ShouldEqual, KindEpisode)
		})

		Convey("Unmarked titles stay standalone", func() {
			So(records[1].Kind, ShouldEqual, KindSingle)
		})
	})
}

func TestIsSeries(t *testing.T) {
	Convey("IsSeries", t, func() {
		Convey("One marked record out of ten is enough", func() {
			records := titled(
				"a", "b", "c", "d", "e",
				"f", "g", "h", "i",
				"Show S3/E07",
			)
			So(IsSeries(records), ShouldBeTrue)
		})

		Convey("No marked record means no series", func() {
			So(IsSeries(titled("a", "b")), ShouldBeFalse)
		})

		Convey("Empty set is not a series", func() {
			So(IsSeries(nil), ShouldBeFalse)
		})
	})
}

func TestSortBySeasonEpisode(t *testing.T) {
	Convey("SortBySeasonEpisode", t, func() {
		Convey("Coerces the absent season to 0 and orders it first", func() {
			records := ExtractSeasonEpisode(titled(
				"Show - Making of",
				"Show S2/E01",
				"Show S1/E01",
			))
			sorted := SortBySeasonEpisode(records)

			So(sorted[0].Season.IsAbsent(), ShouldBeTrue)
			So(sorted[1].Season.MustGet(), ShouldEqual, "1")
			So(sorted[2].Season.MustGet(), ShouldEqual, "2")
		})

		Convey("Sorts episodes numerically within a season", func() {
			records := ExtractSeasonEpisode(titled(
				"Show S1/E10",
				"Show S1/E2",
				"Show S1/E1",
			))
			sorted := SortBySeasonEpisode(records)

			So(sorted[0].Episode.MustGet(), ShouldEqual, "1")
			So(sorted[1].Episode.MustGet(), ShouldEqual, "2")
			So(sorted[2].Episode.MustGet(), ShouldEqual, "10")
		})

		Convey("Is stable for equal keys", func() {
			records := ExtractSeasonEpisode(titled("first", "second", "third"))
			sorted := SortBySeasonEpisode(records)

			So(sorted[0].Title, ShouldEqual, "first")
			So(sorted[1].Title, ShouldEqual, "second")
			So(sorted[2].Title, ShouldEqual, "third")
		})

		Convey("Preserves the captured strings", func() {
			records := ExtractSeasonEpisode(titled("Show S01/E09"))
			sorted := SortBySeasonEpisode(records)

			So(sorted[0].Season.MustGet(), ShouldEqual, "01")
			So(sorted[0].Episode.MustGet(), ShouldEqual, "09")
		})
	})
}

func TestGroupBySeason(t *testing.T) {
	Convey("GroupBySeason", t, func() {
		records := SortBySeasonEpisode(ExtractSeasonEpisode(titled(
			"Show - Making of",
			"Show S1/E01",
			"Show S1/E02",
			"Show S2/E01",
		)))
		group := GroupBySeason(records)

		Convey("One key per distinct season, absent on its own", func() {
			So(group.Len(), ShouldEqual, 3)
			So(group.Keys()[0].IsAbsent(), ShouldBeTrue)
			So(group.Keys()[1].MustGet(), ShouldEqual, "1")
			So(group.Keys()[2].MustGet(), ShouldEqual, "2")
		})

		Convey("Groups keep their episode order", func() {
			season1 := group.Records(mo.Some("1"))
			So(len(season1), ShouldEqual, 2)
			So(season1[0].Episode.MustGet(), ShouldEqual, "01")
			So(season1[1].Episode.MustGet(), ShouldEqual, "02")
		})

		Convey("All concatenates every group in key order", func() {
			all := group.All()
			So(len(all), ShouldEqual, 4)
			So(all[0].Title, ShouldEqual, "Show - Making of")
			So(all[3].Title, ShouldEqual, "Show S2/E01")
		})

		Convey("SeasonLabel renders the absent key as ?", func() {
			So(SeasonLabel(group.Keys()[0]), ShouldEqual, "?")
			So(SeasonLabel(group.Keys()[1]), ShouldEqual, "1")
		})
	})
}
