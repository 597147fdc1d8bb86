package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/opencode-ai/shellprompt/internal/segment"
)

// Color modes accepted by ProfileFor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ProfileFor picks the color profile for a color mode. In auto mode colors
// are enabled only when the prompt is drawn on a terminal.
func ProfileFor(mode string, terminal bool) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ColorAuto:
		if terminal {
			return termenv.TrueColor, nil
		}
		return termenv.Ascii, nil
	case ColorAlways:
		return termenv.TrueColor, nil
	case ColorNever:
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("unknown color mode %q", mode)
	}
}

// Renderer writes segments as styled text.
type Renderer struct {
	lg      *lipgloss.Renderer
	palette Palette
}

// NewRenderer creates a renderer using the given color profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(profile)
	return &Renderer{lg: lg, palette: DefaultPalette}
}

// Render concatenates segments, applying each segment's style. It fails on
// the first style descriptor that cannot be parsed.
func (r *Renderer) Render(segments []segment.Segment) (string, error) {
	var out strings.Builder
	for _, seg := range segments {
		if seg.Value == "" {
			continue
		}
		if seg.Style == "" {
			out.WriteString(seg.Value)
			continue
		}
		spec, err := Parse(string(seg.Style), r.palette)
		if err != nil {
			return "", fmt.Errorf("segment %q: %w", seg.Name, err)
		}
		if spec.IsZero() {
			out.WriteString(seg.Value)
			continue
		}
		out.WriteString(Build(r.lg, spec).Render(seg.Value))
	}
	return out.String(), nil
}
