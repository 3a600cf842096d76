// Package history tracks and persists completed downloads.
package history

import (
	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/where"
	"github.com/metafates/gache"
)

// cacher provides a disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedDownload](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedDownload, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedDownload), nil
	}
	return cached, nil
}

// Save persists a completed download to the history registry. Saving the same
// broadcast again overwrites the previous record.
func Save(record *source.Record, quality source.Quality, path string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry := newSavedDownload(record, quality, path)
	saved[entry.encode()] = entry

	return cacher.Set(saved)
}

// Remove permanently deletes a download record from the history registry.
func Remove(entry *SavedDownload) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return cacher.Set(saved)
}
