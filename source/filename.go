// Package source defines the domain models for search results and their resolution.
package source

import "fmt"

// Filename composes the destination filename for a record: the topic,
// followed by an SxxEyy code when the record is an episode, plus the
// resolved extension. Season or episode ordinals of 100 and above simply
// widen past two digits.
func (r *Record) Filename(topic, ext string) string {
	return r.baseName(topic) + ext
}

func (r *Record) baseName(topic string) string {
	if r.Kind != KindEpisode {
		return topic
	}
	return fmt.Sprintf("%s S%02dE%02d", topic, ordinal(r.Season), ordinal(r.Episode))
}
