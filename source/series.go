// Package source defines the domain models for search results and their resolution.
package source

import (
	"regexp"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// episodeMarker matches the "S<season>/E<episode>" convention embedded in titles.
var episodeMarker = regexp.MustCompile(`S(\d+)/E(\d+)`)

// IsSeries reports whether the set as a whole represents a series.
// A single marked title is enough to treat the whole topic as one.
func IsSeries(records []*Record) bool {
	return lo.SomeBy(records, func(r *Record) bool {
		return episodeMarker.MatchString(r.Title)
	})
}

// Classify tags every record as an episode or a standalone asset.
// A mixed set is permitted: some records episodes, some not.
func Classify(records []*Record) []*Record {
	for _, r := range records {
		if episodeMarker.MatchString(r.Title) {
			r.Kind = KindEpisode
		} else {
			r.Kind = KindSingle
		}
	}
	return records
}

// ExtractSeasonEpisode annotates every record with the season and episode
// digit strings captured from its title. Titles without the marker get None
// for both. The captures are kept verbatim, not zero-normalized.
// Pure function of the title: running it twice yields identical fields.
func ExtractSeasonEpisode(records []*Record) []*Record {
	for _, r := range records {
		match := episodeMarker.FindStringSubmatch(r.Title)
		if match == nil {
			r.Season = mo.None[string]()
			r.Episode = mo.None[string]()
			continue
		}
		r.Season = mo.Some(match[1])
		r.Episode = mo.Some(match[2])
	}
	return records
}

// ordinal coerces an optional digit string to an integer for ordering.
// Absent or non-numeric values order as 0; the stored string is never rewritten.
func ordinal(v mo.Option[string]) int {
	s, ok := v.Get()
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// SortBySeasonEpisode stable-sorts records by their (season, episode)
// ordinals. Unidentified episodes order first; ties keep the API's own order.
func SortBySeasonEpisode(records []*Record) []*Record {
	slices.SortStableFunc(records, func(a, b *Record) int {
		if c := ordinal(a.Season) - ordinal(b.Season); c != 0 {
			return c
		}
		return ordinal(a.Episode) - ordinal(b.Episode)
	})
	return records
}

// SeasonGroup partitions a sorted record sequence by extracted season key.
// It is built fresh per topic selection and discarded after a season is chosen.
type SeasonGroup struct {
	keys   []mo.Option[string]
	groups map[mo.Option[string]][]*Record
}

// GroupBySeason partitions records by their season value, preserving the
// intra-group episode order of the input. An absent season is its own key.
func GroupBySeason(records []*Record) *SeasonGroup {
	g := &SeasonGroup{groups: make(map[mo.Option[string]][]*Record)}

	for _, r := range records {
		if _, ok := g.groups[r.Season]; !ok {
			g.keys = append(g.keys, r.Season)
		}
		g.groups[r.Season] = append(g.groups[r.Season], r)
	}

	slices.SortStableFunc(g.keys, func(a, b mo.Option[string]) int {
		return ordinal(a) - ordinal(b)
	})

	return g
}

// Len returns the number of distinct season keys.
func (g *SeasonGroup) Len() int {
	return len(g.keys)
}

// Keys returns the season keys in ascending ordinal order.
func (g *SeasonGroup) Keys() []mo.Option[string] {
	return g.keys
}

// Records returns the ordered episodes belonging to a season key.
func (g *SeasonGroup) Records(key mo.Option[string]) []*Record {
	return g.groups[key]
}

// All returns the concatenation of every group in ascending key order.
func (g *SeasonGroup) All() []*Record {
	var all []*Record
	for _, key := range g.keys {
		all = append(all, g.groups[key]...)
	}
	return all
}

// SeasonLabel renders a season key for display; an absent season shows as "?".
func SeasonLabel(key mo.Option[string]) string {
	if s, ok := key.Get(); ok {
		return s
	}
	return "?"
}
