package modules

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/opencode-ai/shellprompt/internal/segment"
)

// Directory shows the working directory.
type Directory struct{}

func (Directory) Name() string { return "directory" }

func (d Directory) Render(ctx context.Context, mc *Context) (*Output, error) {
	cfg := mc.Config.Directory
	if cfg.Disabled || mc.Dir == "" {
		return nil, nil
	}

	path := truncatePath(contractHome(mc.Dir, mc.Home), cfg.TruncationLength)
	segments, err := segment.FormatSegments(cfg.Format, segment.Style(cfg.Style), segment.Resolvers{
		"path": segment.Static(path),
	}.Resolve)
	if err != nil {
		return nil, fmt.Errorf("directory format: %w", err)
	}

	return &Output{Name: d.Name(), Segments: segments}, nil
}

func contractHome(dir, home string) string {
	dir = filepath.ToSlash(filepath.Clean(dir))
	if home == "" {
		return dir
	}
	home = filepath.ToSlash(filepath.Clean(home))
	if dir == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(dir, strings.TrimSuffix(home, "/")+"/"); ok {
		return "~/" + rest
	}
	return dir
}

// truncatePath keeps the last length components. Zero disables truncation.
func truncatePath(path string, length int) string {
	if length <= 0 || path == "/" {
		return path
	}
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) <= length {
		return path
	}
	return strings.Join(parts[len(parts)-length:], "/")
}
