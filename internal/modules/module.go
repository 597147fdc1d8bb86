// Package modules provides the prompt modules and their registry.
package modules

import (
	"context"

	"github.com/opencode-ai/shellprompt/internal/command"
	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/opencode-ai/shellprompt/internal/scan"
	"github.com/opencode-ai/shellprompt/internal/segment"
	"github.com/rs/zerolog"
)

// Module produces the segments for one part of the prompt.
type Module interface {
	// Name is the placeholder name used in the prompt format.
	Name() string

	// Render returns nil output when the module does not apply.
	Render(ctx context.Context, mc *Context) (*Output, error)
}

// Output is what a module contributes to the prompt.
type Output struct {
	Name     string
	Segments []segment.Segment
}

// Context carries everything a module may inspect during one render pass.
type Context struct {
	Dir    string
	Home   string
	Status int
	Config *config.Config
	Exec   command.Executor
	Logger zerolog.Logger

	listing *scan.Listing
	scanned bool
}

// Scan reports whether the working directory matches criteria. The directory
// is listed once per context.
func (c *Context) Scan(criteria scan.Criteria) bool {
	if !c.scanned {
		c.scanned = true
		listing, err := scan.ReadDir(c.Dir)
		if err != nil {
			c.Logger.Debug().Err(err).Str("dir", c.Dir).Msg("scan failed")
		}
		c.listing = listing
	}
	return c.listing.Match(criteria)
}
