// Package style turns segment style descriptors into lipgloss styles.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spec is a parsed style descriptor.
type Spec struct {
	Foreground    string
	Background    string
	Bold          bool
	Italic        bool
	Underline     bool
	Dimmed        bool
	Inverted      bool
	Blink         bool
	Strikethrough bool
}

// IsZero reports whether the spec applies no styling.
func (s Spec) IsZero() bool {
	return s == Spec{}
}

// Parse reads a descriptor such as "bold fg:#ff8800 bg:blue". A bare color
// sets the foreground. "none" clears everything parsed before it.
func Parse(descriptor string, palette Palette) (Spec, error) {
	var spec Spec
	for _, word := range strings.Fields(strings.ToLower(descriptor)) {
		switch word {
		case "none":
			spec = Spec{}
		case "bold":
			spec.Bold = true
		case "italic":
			spec.Italic = true
		case "underline":
			spec.Underline = true
		case "dimmed":
			spec.Dimmed = true
		case "inverted":
			spec.Inverted = true
		case "blink":
			spec.Blink = true
		case "strikethrough":
			spec.Strikethrough = true
		default:
			target := &spec.Foreground
			color := word
			if value, ok := strings.CutPrefix(word, "fg:"); ok {
				color = value
			} else if value, ok := strings.CutPrefix(word, "bg:"); ok {
				target = &spec.Background
				color = value
			}
			resolved, err := parseColor(color, palette)
			if err != nil {
				return Spec{}, fmt.Errorf("style %q: %w", descriptor, err)
			}
			*target = resolved
		}
	}
	return spec, nil
}

func parseColor(value string, palette Palette) (string, error) {
	if value == "none" || value == "" {
		return "", nil
	}
	if mapped, ok := palette[value]; ok {
		return mapped, nil
	}
	if strings.HasPrefix(value, "#") {
		if _, err := strconv.ParseUint(value[1:], 16, 32); err != nil || len(value) != 7 {
			return "", fmt.Errorf("invalid hex color %q", value)
		}
		return value, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("color index %d out of range", n)
		}
		return value, nil
	}
	return "", fmt.Errorf("unknown color or attribute %q", value)
}

// Build converts a spec into a lipgloss style created by renderer.
func Build(renderer *lipgloss.Renderer, spec Spec) lipgloss.Style {
	st := renderer.NewStyle()
	if spec.Foreground != "" {
		st = st.Foreground(lipgloss.Color(spec.Foreground))
	}
	if spec.Background != "" {
		st = st.Background(lipgloss.Color(spec.Background))
	}
	if spec.Bold {
		st = st.Bold(true)
	}
	if spec.Italic {
		st = st.Italic(true)
	}
	if spec.Underline {
		st = st.Underline(true)
	}
	if spec.Dimmed {
		st = st.Faint(true)
	}
	if spec.Inverted {
		st = st.Reverse(true)
	}
	if spec.Blink {
		st = st.Blink(true)
	}
	if spec.Strikethrough {
		st = st.Strikethrough(true)
	}
	return st
}
