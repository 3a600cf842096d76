// Package downloader streams remote files to local storage with byte progress reporting.
package downloader

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/mediasan-cli/mediasan/constant"
	"github.com/mediasan-cli/mediasan/filesystem"
	"github.com/mediasan-cli/mediasan/network"
	"github.com/mediasan-cli/mediasan/util"
)

// Downloader performs sequential transfers. It is not safe for concurrent
// use; the pipeline downloads strictly one item at a time.
type Downloader struct {
	Client *http.Client
	Out    io.Writer

	// Quiet suppresses the inline progress bar (tests, piped output).
	Quiet bool
}

// New returns a downloader bound to the shared network client and stdout.
func New() *Downloader {
	return &Downloader{Client: network.Client, Out: os.Stdout}
}

// Fetch streams the file at url into dir/filename, reporting byte progress.
// A non-200 response or a write failure is an error for this item only; the
// caller logs it and moves on to the next item.
func (d *Downloader) Fetch(url, dir, filename string) error {
	resp, err := d.get(url)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	path := filepath.Join(dir, filename)
	f, err := filesystem.API().Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer util.Ignore(f.Close)

	w := io.Writer(f)
	if !d.Quiet {
		meter := newProgressMeter(d.Out, filename, resp.ContentLength)
		defer meter.finish()
		w = io.MultiWriter(f, meter)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// FetchSubtitle retrieves a subtitle file in one piece, without progress.
func (d *Downloader) FetchSubtitle(url, dir, filename string) error {
	resp, err := d.get(url)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return filesystem.API().WriteFile(filepath.Join(dir, filename), data, 0644)
}

func (d *Downloader) get(url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		util.Ignore(resp.Body.Close)
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	return resp, nil
}
