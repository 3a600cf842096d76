package downloader

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/dustin/go-humanize"
	"github.com/mediasan-cli/mediasan/style"
	"github.com/mediasan-cli/mediasan/util"
)

// redrawInterval throttles terminal updates during a transfer.
const redrawInterval = 100 * time.Millisecond

// progressMeter renders an inline transfer bar. It implements io.Writer so it
// can tee alongside the destination file.
type progressMeter struct {
	out      io.Writer
	name     string
	total    int64
	written  int64
	bar      progress.Model
	lastDraw time.Time
}

func newProgressMeter(out io.Writer, name string, total int64) *progressMeter {
	return &progressMeter{
		out:   out,
		name:  name,
		total: total,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

func (p *progressMeter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if time.Since(p.lastDraw) >= redrawInterval {
		p.draw()
		p.lastDraw = time.Now()
	}
	return len(b), nil
}

func (p *progressMeter) draw() {
	if p.total > 0 {
		ratio := float64(p.written) / float64(p.total)
		fmt.Fprintf(p.out, "\r%s %s",
			p.bar.ViewAs(util.Min(ratio, 1)),
			style.Faint(fmt.Sprintf("%s / %s", humanize.IBytes(uint64(p.written)), humanize.IBytes(uint64(p.total)))),
		)
		return
	}

	// Unknown content length: report raw bytes only.
	fmt.Fprintf(p.out, "\r%s", style.Faint(humanize.IBytes(uint64(p.written))))
}

func (p *progressMeter) finish() {
	p.draw()
	fmt.Fprintln(p.out)
}
