package inline

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/mediasan-cli/mediasan/source"
	"github.com/mediasan-cli/mediasan/style"
)

// Run executes a single search and writes the annotated results to the
// configured output. Results run through the full resolution pipeline, so
// series episodes come out classified, numbered and sorted.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	if options.Client == nil {
		options.Client = mediathek.New()
	}

	records, err := options.Client.FetchAll(options.Query, options.Scope, options.Future)
	if err != nil {
		return fmt.Errorf("search failed for %q: %w", options.Query, err)
	}

	if topic, ok := options.Topic.Get(); ok {
		records = source.FilterByTopic(records, topic)
	}

	records = source.Classify(source.ExtractSeasonEpisode(records))
	if source.IsSeries(records) {
		records = source.SortBySeasonEpisode(records)
	}

	topics := source.Topics(records)

	if options.Json {
		return writeJson(options.Out, records, topics, options.Query)
	}

	for _, r := range records {
		printRecord(options.Out, r)
	}

	return nil
}

func printRecord(out io.Writer, r *source.Record) {
	label := r.Title
	if r.Kind == source.KindEpisode {
		label = fmt.Sprintf("%s S%sE%s", r.Topic, r.Season.MustGet(), r.Episode.MustGet())
	}

	url, _ := r.ResolveVideo(source.QualityHD)
	fmt.Fprintf(out, "%s %s %s\n",
		label,
		style.Faint(humanize.IBytes(uint64(r.Size))),
		url,
	)
}

func writeJson(out io.Writer, records []*source.Record, topics []string, query string) error {
	data, err := asJson(records, topics, query)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
