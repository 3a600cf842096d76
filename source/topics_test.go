package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTopics(t *testing.T) {
	Convey("Topics", t, func() {
		records := []*Record{
			{Topic: "B"},
			{Topic: "A"},
			{Topic: ""},
			{Topic: "A"},
		}

		Convey("Distinct non-empty values in lexicographic order", func() {
			So(Topics(records), ShouldResemble, []string{"A", "B"})
		})

		Convey("An all-empty set yields no topics", func() {
			So(Topics([]*Record{{Topic: ""}}), ShouldBeEmpty)
		})
	})
}

func TestFilterByTopic(t *testing.T) {
	Convey("FilterByTopic", t, func() {
		records := []*Record{
			{Topic: "A", Title: "a1"},
			{Topic: "B", Title: "b1"},
			{Topic: "A", Title: "a2"},
		}

		filtered := FilterByTopic(records, "A")
		So(len(filtered), ShouldEqual, 2)
		So(filtered[0].Title, ShouldEqual, "a1")
		So(filtered[1].Title, ShouldEqual, "a2")
	})
}
