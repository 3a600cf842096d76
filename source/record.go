// Package source defines the domain models for search results and their resolution.
package source

import (
	"encoding/json"

	"github.com/samber/mo"
)

// Kind classifies a record as a standalone asset or a series episode.
type Kind int

const (
	KindSingle Kind = iota
	KindEpisode
)

// String returns the canonical label of the classification.
func (k Kind) String() string {
	if k == KindEpisode {
		return "episode"
	}
	return "single"
}

// MarshalJSON emits the label instead of the numeric value.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Record represents a single hit returned by the search API.
// The json tags mirror the wire field names of the query endpoint.
type Record struct {
	Channel     string `json:"channel"`
	Topic       string `json:"topic"`
	Title       string `json:"title"`
	Timestamp   int64  `json:"timestamp"`
	Duration    int64  `json:"duration"`
	Size        int64  `json:"size"`
	URLVideoLow string `json:"url_video_low"`
	URLVideo    string `json:"url_video"`
	URLVideoHD  string `json:"url_video_hd"`
	URLSubtitle string `json:"url_subtitle"`
	URLWebsite  string `json:"url_website"`

	// Derived annotations, attached by the resolution pipeline.
	// Season and Episode come from the same title match, so they are
	// either both present or both absent.
	Season  mo.Option[string] `json:"season"`
	Episode mo.Option[string] `json:"episode"`
	Kind    Kind              `json:"kind"`
}

// String returns the record title for display.
func (r *Record) String() string {
	return r.Title
}
