// Package mini implements the interactive search and download pipeline.
package mini

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mediasan-cli/mediasan/color"
	"github.com/mediasan-cli/mediasan/downloader"
	"github.com/mediasan-cli/mediasan/icon"
	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/style"
	"github.com/mediasan-cli/mediasan/util"
)

var truncateAt = 100

type Options struct {
	Query  string
	Folder string

	Quality   source.Quality
	Subtitles bool
	Scope     mediathek.FieldScope
	Future    bool

	In  io.Reader
	Out io.Writer

	Client     *mediathek.Client
	Downloader *downloader.Downloader
}

type mini struct {
	options *Options

	state         state
	statesHistory util.Stack[state]

	in  *bufio.Reader
	out io.Writer

	results  []*source.Record
	topic    string
	group    *source.SeasonGroup
	selected []*source.Record
}

func newMini(options *Options) *mini {
	return &mini{
		options:       options,
		statesHistory: util.Stack[state]{},
		in:            bufio.NewReader(options.In),
		out:           options.Out,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run drives the resolution pipeline from search to download. It returns
// nil after a completed run and an error for any of the fatal conditions;
// per-item download failures are logged and skipped, never returned.
func Run(options *Options) error {
	if options.In == nil {
		options.In = os.Stdin
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Client == nil {
		options.Client = mediathek.New()
	}
	if options.Downloader == nil {
		options.Downloader = downloader.New()
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	m := newMini(options)
	m.state = searchState

	for {
		if err := m.handleState(); err != nil {
			return err
		}

		if m.state == doneState {
			return nil
		}
	}
}

func (m *mini) handleState() error {
	switch m.state {
	case searchState:
		return m.handleSearchState()
	case topicSelectState:
		return m.handleTopicSelectState()
	case seriesState:
		return m.handleSeriesState()
	case seasonSelectState:
		return m.handleSeasonSelectState()
	case downloadState:
		return m.handleDownloadState()
	}

	return nil
}

func (m *mini) title(t string) {
	fmt.Fprintln(m.out, style.Title(t))
}

func (m *mini) fail(t string) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(t))
}

func (m *mini) progress(t string) (eraser func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), style.Faint(t)))
}
