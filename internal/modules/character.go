package modules

import (
	"context"
	"fmt"

	"github.com/opencode-ai/shellprompt/internal/segment"
)

// Character shows the prompt symbol, colored by the last exit status.
type Character struct{}

func (Character) Name() string { return "character" }

func (c Character) Render(ctx context.Context, mc *Context) (*Output, error) {
	cfg := mc.Config.Character
	if cfg.Disabled {
		return nil, nil
	}

	symbol, style := cfg.SuccessSymbol, cfg.SuccessStyle
	if mc.Status != 0 {
		symbol, style = cfg.ErrorSymbol, cfg.ErrorStyle
	}

	segments, err := segment.FormatSegments(cfg.Format, "", segment.Resolvers{
		"symbol": func(segment.Query) (segment.Segment, bool) {
			return segment.Segment{Value: symbol, Style: segment.Style(style)}, true
		},
	}.Resolve)
	if err != nil {
		return nil, fmt.Errorf("character format: %w", err)
	}

	return &Output{Name: c.Name(), Segments: segments}, nil
}
