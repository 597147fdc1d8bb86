// Package prompt runs the configured modules and assembles the prompt text.
package prompt

import (
	"context"
	"fmt"
	"time"

	"github.com/opencode-ai/shellprompt/internal/command"
	"github.com/opencode-ai/shellprompt/internal/config"
	"github.com/opencode-ai/shellprompt/internal/modules"
	"github.com/opencode-ai/shellprompt/internal/segment"
	"github.com/opencode-ai/shellprompt/internal/style"
	"github.com/rs/zerolog"
)

// Request describes the shell state the prompt is drawn for.
type Request struct {
	Dir    string
	Home   string
	Status int
}

// Report records what a single module produced during a render pass.
type Report struct {
	Name     string
	Segments []segment.Segment
	Text     string
	Duration time.Duration
	Err      error
}

// Renderer draws prompts.
type Renderer struct {
	cfg      *config.Config
	registry *modules.Registry
	exec     command.Executor
	styles   *style.Renderer
	logger   zerolog.Logger
}

// NewRenderer creates a prompt renderer.
func NewRenderer(cfg *config.Config, registry *modules.Registry, exec command.Executor, styles *style.Renderer, logger zerolog.Logger) *Renderer {
	return &Renderer{
		cfg:      cfg,
		registry: registry,
		exec:     exec,
		styles:   styles,
		logger:   logger,
	}
}

// Render draws the full prompt. Only a malformed top-level format or an
// invalid top-level style is an error; failing modules are left out.
func (r *Renderer) Render(ctx context.Context, req Request) (string, error) {
	text, _, err := r.render(ctx, req)
	return text, err
}

// Explain renders the prompt and reports on every module the format names.
func (r *Renderer) Explain(ctx context.Context, req Request) ([]Report, error) {
	_, reports, err := r.render(ctx, req)
	return reports, err
}

// RenderModule draws a single module regardless of the prompt format.
func (r *Renderer) RenderModule(ctx context.Context, name string, req Request) (string, error) {
	mod := r.registry.Get(name)
	if mod == nil {
		return "", fmt.Errorf("unknown module %q", name)
	}

	report := r.run(ctx, mod, r.newContext(req))
	if report.Err != nil {
		return "", report.Err
	}
	return report.Text, nil
}

func (r *Renderer) render(ctx context.Context, req Request) (string, []Report, error) {
	mc := r.newContext(req)
	reports := make([]Report, 0)

	segments, err := segment.FormatSegments(r.cfg.Format, "", func(name string, q segment.Query) (segment.Segment, bool) {
		mod := r.registry.Get(name)
		if mod == nil {
			r.logger.Debug().Str("module", name).Msg("unknown module in prompt format")
			return segment.Segment{}, false
		}

		report := r.run(ctx, mod, mc)
		reports = append(reports, report)
		if report.Err != nil {
			r.logger.Warn().Err(report.Err).Str("module", name).Msg("module failed")
			return segment.Segment{}, false
		}
		if report.Text == "" {
			return segment.Segment{}, false
		}
		return segment.Segment{Value: report.Text}, true
	})
	if err != nil {
		return "", reports, fmt.Errorf("prompt format: %w", err)
	}

	text, err := r.styles.Render(segments)
	if err != nil {
		return "", reports, fmt.Errorf("prompt style: %w", err)
	}
	return text, reports, nil
}

func (r *Renderer) run(ctx context.Context, mod modules.Module, mc *modules.Context) Report {
	started := time.Now()
	out, err := mod.Render(ctx, mc)
	report := Report{Name: mod.Name(), Duration: time.Since(started), Err: err}
	if err != nil || out == nil {
		return report
	}

	report.Segments = out.Segments
	report.Text, report.Err = r.styles.Render(out.Segments)
	return report
}

func (r *Renderer) newContext(req Request) *modules.Context {
	return &modules.Context{
		Dir:    req.Dir,
		Home:   req.Home,
		Status: req.Status,
		Config: r.cfg,
		Exec:   r.exec,
		Logger: r.logger,
	}
}
