// Package source defines the domain models for search results and their resolution.
package source

import "regexp"

// Quality enumerates the named URL variants carried by a record. It is a
// lookup key into the record's tier URLs, not a capability hierarchy.
type Quality string

const (
	QualityLow    Quality = "low"
	QualityMedium Quality = "medium"
	QualityHD     Quality = "hd"
)

// fallbackOrder is the fixed chain consulted when the requested tier has no URL.
var fallbackOrder = [...]Quality{QualityHD, QualityMedium, QualityLow}

// ParseQuality maps a user-supplied tier name onto a known Quality.
// Anything unrecognized coerces to medium; ok reports whether the input was
// valid so the caller can surface a warning.
func ParseQuality(s string) (q Quality, ok bool) {
	switch Quality(s) {
	case QualityLow, QualityMedium, QualityHD:
		return Quality(s), true
	default:
		return QualityMedium, false
	}
}

// url returns the record URL backing a tier.
func (r *Record) url(q Quality) string {
	switch q {
	case QualityLow:
		return r.URLVideoLow
	case QualityHD:
		return r.URLVideoHD
	default:
		return r.URLVideo
	}
}

// extensionPattern captures the trailing dot-suffix of a URL.
var extensionPattern = regexp.MustCompile(`\.([a-zA-Z0-9]+)$`)

func extension(url, fallback string) string {
	if m := extensionPattern.FindStringSubmatch(url); m != nil {
		return "." + m[1]
	}
	return fallback
}

// ResolveVideo picks the URL for the requested tier, falling back in the
// fixed order hd, medium, low when it is absent. An empty URL means the
// record carries no video at any tier, which is a per-item failure for the
// caller, never fatal to the run. The extension derives from the chosen URL
// and defaults to ".mp4".
func (r *Record) ResolveVideo(q Quality) (url, ext string) {
	url = r.url(q)
	if url == "" {
		for _, fq := range fallbackOrder {
			if url = r.url(fq); url != "" {
				break
			}
		}
	}
	return url, extension(url, ".mp4")
}

// ResolveSubtitle returns the subtitle URL, empty when the record has none,
// with its extension defaulting to ".srt".
func (r *Record) ResolveSubtitle() (url, ext string) {
	return r.URLSubtitle, extension(r.URLSubtitle, ".srt")
}
