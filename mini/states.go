package mini

import (
	"errors"
	"fmt"

	"github.com/mediasan-cli/mediasan/history"
	"github.com/mediasan-cli/mediasan/icon"
	"github.com/mediasan-cli/mediasan/key"
	"github.com/mediasan-cli/mediasan/log"
	"github.com/mediasan-cli/mediasan/query"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/style"
	"github.com/mediasan-cli/mediasan/util"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/viper"
)

type state int

const (
	searchState state = iota + 1
	topicSelectState
	seriesState
	seasonSelectState
	downloadState
	doneState
)

// Fatal pipeline conditions. Everything else either re-prompts or is a
// per-item skip.
var (
	ErrNoResults         = errors.New("no results found")
	ErrNoTopics          = errors.New("no topics found")
	ErrNoSeasons         = errors.New("no seasons found")
	ErrSingleUnsupported = errors.New("downloading a single broadcast is not implemented yet")
)

func (m *mini) handleSearchState() error {
	erase := m.progress("Searching..")
	records, err := m.options.Client.FetchAll(m.options.Query, m.options.Scope, m.options.Future)
	erase()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		if suggestion, ok := query.Suggest(m.options.Query).Get(); ok {
			fmt.Fprintf(m.out, "%s Did you mean %s?\n", icon.Get(icon.Question), style.Bold(suggestion))
		}
		return ErrNoResults
	}

	_ = query.Remember(m.options.Query, 1)

	m.results = source.Classify(source.ExtractSeasonEpisode(records))
	m.newState(topicSelectState)
	return nil
}

func (m *mini) handleTopicSelectState() error {
	topics := source.Topics(m.results)

	switch len(topics) {
	case 0:
		return ErrNoTopics
	case 1:
		m.topic = topics[0]
	default:
		m.title(fmt.Sprintf("Found %s", util.Quantify(len(topics), "topic", "topics")))
		for i, topic := range topics {
			fmt.Fprintf(m.out, "  %s %s\n",
				style.Faint(fmt.Sprintf("[%d]", i+1)),
				truncate.StringWithTail(topic, uint(truncateAt), "…"),
			)
		}

		choice, err := m.promptIndex("Which topic?", len(topics))
		if err != nil {
			return err
		}
		m.topic = topics[choice-1]
	}

	m.results = source.FilterByTopic(m.results, m.topic)
	m.newState(seriesState)
	return nil
}

func (m *mini) handleSeriesState() error {
	if !source.IsSeries(m.results) {
		return ErrSingleUnsupported
	}

	m.results = source.SortBySeasonEpisode(m.results)
	m.group = source.GroupBySeason(m.results)
	m.newState(seasonSelectState)
	return nil
}

func (m *mini) handleSeasonSelectState() error {
	if m.group.Len() == 0 {
		return ErrNoSeasons
	}

	keys := m.group.Keys()
	m.title(fmt.Sprintf("Found %s", util.Quantify(m.group.Len(), "season", "seasons")))
	for i, k := range keys {
		fmt.Fprintf(m.out, "  %s Season %s %s\n",
			style.Faint(fmt.Sprintf("[%d]", i+1)),
			source.SeasonLabel(k),
			style.Faint(fmt.Sprintf("(%s)", util.Quantify(len(m.group.Records(k)), "episode", "episodes"))),
		)
	}

	for {
		line, err := m.readLine("Download all? [Y/n or season number]")
		if err != nil {
			return err
		}

		switch {
		case line == "" || line == "y" || line == "Y":
			m.selected = m.group.All()
		case isNumeric(line):
			choice := atoi(line)
			if choice < 1 || choice > len(keys) {
				// An explicit numeric selection outside the listed
				// seasons aborts the run instead of re-prompting.
				return fmt.Errorf("invalid selection: %d", choice)
			}
			m.selected = m.group.Records(keys[choice-1])
		default:
			m.fail("enter a season number, or confirm with y")
			continue
		}

		break
	}

	m.newState(downloadState)
	return nil
}

func (m *mini) handleDownloadState() error {
	var fetched int

	for _, record := range m.selected {
		url, ext := record.ResolveVideo(m.options.Quality)
		if url == "" {
			log.Warnf("no downloadable URL for %q", record.Title)
			m.fail(fmt.Sprintf("Skipping %s: no downloadable URL", record.Title))
			continue
		}

		filename := record.Filename(m.topic, ext)
		if err := m.options.Downloader.Fetch(url, m.options.Folder, filename); err != nil {
			log.Errorf("download %q: %v", filename, err)
			m.fail(fmt.Sprintf("Skipping %s: %v", filename, err))
			continue
		}
		fetched++

		if viper.GetBool(key.HistorySaveOnDownload) {
			_ = history.Save(record, m.options.Quality, filename)
		}

		if m.options.Subtitles {
			m.fetchSubtitle(record)
		}
	}

	fmt.Fprintf(m.out, "%s Downloaded %s\n", icon.Get(icon.Success), util.Quantify(fetched, "file", "files"))

	m.newState(doneState)
	return nil
}

func (m *mini) fetchSubtitle(record *source.Record) {
	url, ext := record.ResolveSubtitle()
	if url == "" {
		log.Debugf("no subtitle for %q", record.Title)
		return
	}

	filename := record.Filename(m.topic, ext)
	if err := m.options.Downloader.FetchSubtitle(url, m.options.Folder, filename); err != nil {
		log.Warnf("subtitle %q: %v", filename, err)
		m.fail(fmt.Sprintf("Skipping subtitle %s: %v", filename, err))
	}
}
