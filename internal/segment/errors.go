package segment

import (
	"errors"
	"fmt"
)

// ErrMalformedTemplate is matched by every template syntax error.
var ErrMalformedTemplate = errors.New("malformed template")

// FormatError describes a template that could not be parsed.
type FormatError struct {
	Template string
	Offset   int
	Msg      string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed template %q at offset %d: %s", e.Template, e.Offset, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return ErrMalformedTemplate
}

func malformed(template string, offset int, format string, args ...any) error {
	return &FormatError{
		Template: template,
		Offset:   offset,
		Msg:      fmt.Sprintf(format, args...),
	}
}
