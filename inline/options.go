// Package inline provides the application's non-interactive, scriptable execution mode.
package inline

import (
	"io"

	"github.com/mediasan-cli/mediasan/mediathek"
	"github.com/samber/mo"
)

type Options struct {
	Out    io.Writer
	Client *mediathek.Client

	Query  string
	Scope  mediathek.FieldScope
	Future bool

	// Topic restricts the output to a single topic when present.
	Topic mo.Option[string]

	// Json switches from line-oriented output to a single JSON document.
	Json bool
}
