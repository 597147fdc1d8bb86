package modules

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver"
	"github.com/opencode-ai/shellprompt/internal/scan"
	"github.com/opencode-ai/shellprompt/internal/segment"
)

const phpVersionScript = "echo PHP_MAJOR_VERSION.'.'.PHP_MINOR_VERSION.'.'.PHP_RELEASE_VERSION;"

var phpProject = scan.Criteria{
	Files:      []string{"composer.json"},
	Extensions: []string{"php"},
}

// PHP shows the installed PHP version inside PHP projects.
type PHP struct{}

func (PHP) Name() string { return "php" }

func (p PHP) Render(ctx context.Context, mc *Context) (*Output, error) {
	cfg := mc.Config.PHP
	if cfg.Disabled || !mc.Scan(phpProject) {
		return nil, nil
	}

	version, ok := p.version(ctx, mc)
	if !ok {
		return nil, nil
	}

	segments, err := segment.FormatSegments(cfg.Format, segment.Style(cfg.Style), segment.Resolvers{
		"symbol": segment.Static(cfg.Symbol),
		"version": func(q segment.Query) (segment.Segment, bool) {
			return segment.Segment{Value: phpVersionForQuery(version, q)}, true
		},
	}.Resolve)
	if err != nil {
		return nil, fmt.Errorf("php format: %w", err)
	}

	return &Output{Name: p.Name(), Segments: segments}, nil
}

func (PHP) version(ctx context.Context, mc *Context) (*semver.Version, bool) {
	if mc.Exec == nil {
		return nil, false
	}

	stdout, stderr, err := mc.Exec.Exec(ctx, "php", "-r", phpVersionScript)
	if err != nil {
		mc.Logger.Debug().Err(err).Str("stderr", strings.TrimSpace(string(stderr))).Msg("php version lookup failed")
		return nil, false
	}

	raw := strings.TrimSpace(string(stdout))
	version, err := semver.NewVersion(raw)
	if err != nil {
		mc.Logger.Debug().Err(err).Str("output", raw).Msg("unexpected php version output")
		return nil, false
	}
	return version, true
}

// FormatVersion renders a PHP version for display.
func FormatVersion(version string) string {
	return "v" + version
}

func phpVersionForQuery(version *semver.Version, q segment.Query) string {
	switch {
	case q.Has("major"):
		return FormatVersion(strconv.FormatInt(version.Major(), 10))
	case q.Has("minor"):
		return FormatVersion(fmt.Sprintf("%d.%d", version.Major(), version.Minor()))
	default:
		return FormatVersion(version.Original())
	}
}
