package segment

// FormatSegments renders template into segments, resolving each placeholder
// through resolve. Only template syntax errors are returned; a placeholder
// without a value is skipped. A nil resolver resolves nothing.
func FormatSegments(template string, defaultStyle Style, resolve Resolver) ([]Segment, error) {
	tokens, err := Parse(template)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == TokenText {
			segments = append(segments, Segment{Name: TextName, Value: token.Text})
			continue
		}
		if resolve == nil {
			continue
		}

		seg, ok := resolve(token.Query.Name, token.Query)
		if !ok {
			continue
		}
		if seg.Name == "" {
			seg.Name = token.Query.Name
		}
		if seg.Style == "" {
			seg.Style = placeholderStyle(token.Query, defaultStyle)
		}
		segments = append(segments, seg)
	}

	return segments, nil
}

// StyleFromQuery returns the style set by the placeholder's style modifier.
func StyleFromQuery(q Query) Style {
	value, _ := q.Get(StyleKey)
	return Style(value)
}

func placeholderStyle(q Query, defaultStyle Style) Style {
	if style := StyleFromQuery(q); style != "" {
		return style
	}
	return defaultStyle
}
