// Package source defines the domain models for search results and their resolution.
package source

import (
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Topics returns the distinct non-empty topic values present in the set,
// in lexicographic order.
func Topics(records []*Record) []string {
	topics := lo.Uniq(lo.FilterMap(records, func(r *Record, _ int) (string, bool) {
		return r.Topic, r.Topic != ""
	}))
	slices.Sort(topics)
	return topics
}

// FilterByTopic returns only the records whose topic equals the given value,
// preserving their order.
func FilterByTopic(records []*Record, topic string) []*Record {
	return lo.Filter(records, func(r *Record, _ int) bool {
		return r.Topic == topic
	})
}
