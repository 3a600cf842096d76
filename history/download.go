package history

import (
	"fmt"
	"time"

	"github.com/mediasan-cli/mediasan/source"
	"github.com/samber/mo"
)

// SavedDownload represents a single completed download preserved in the user's history.
type SavedDownload struct {
	Channel      string    `json:"channel"`
	Topic        string    `json:"topic"`
	Title        string    `json:"title"`
	Season       string    `json:"season,omitempty"`
	Episode      string    `json:"episode,omitempty"`
	Quality      string    `json:"quality"`
	Path         string    `json:"path"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

func (s *SavedDownload) encode() string {
	return fmt.Sprintf("%s/%s/%s", s.Topic, s.Season, s.Episode)
}

func (s *SavedDownload) String() string {
	if s.Season == "" {
		return s.Title
	}
	return fmt.Sprintf("%s S%sE%s", s.Topic, s.Season, s.Episode)
}

func newSavedDownload(record *source.Record, quality source.Quality, path string) *SavedDownload {
	return &SavedDownload{
		Channel:      record.Channel,
		Topic:        record.Topic,
		Title:        record.Title,
		Season:       record.Season.OrElse(""),
		Episode:      record.Episode.OrElse(""),
		Quality:      string(quality),
		Path:         path,
		DownloadedAt: time.Now(),
	}
}

// SeasonEpisode exposes the stored season and episode numbers as options,
// absent for single broadcasts.
func (s *SavedDownload) SeasonEpisode() (mo.Option[string], mo.Option[string]) {
	if s.Season == "" {
		return mo.None[string](), mo.None[string]()
	}
	return mo.Some(s.Season), mo.Some(s.Episode)
}
