package segment

import "strings"

// TokenKind distinguishes literal text from placeholders.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenPlaceholder
)

// Token is one parsed unit of a template.
type Token struct {
	Kind  TokenKind
	Text  string
	Query Query
}

// Parse splits a template into literal and placeholder tokens.
func Parse(template string) ([]Token, error) {
	tokens := make([]Token, 0)
	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: TokenText, Text: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			literal.WriteByte(c)
			i++
			continue
		}

		switch template[i+1] {
		case '$':
			literal.WriteByte('$')
			i += 2
		case '{':
			start := i + 2
			end := strings.IndexByte(template[start:], '}')
			if end < 0 {
				return nil, malformed(template, i, "unterminated placeholder")
			}
			body := template[start : start+end]
			if nested := strings.Index(body, "${"); nested >= 0 {
				return nil, malformed(template, start+nested, "nested placeholder")
			}
			query, err := parseQuery(template, body, start)
			if err != nil {
				return nil, err
			}
			flush()
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Query: query})
			i = start + end + 1
		default:
			literal.WriteByte(c)
			i++
		}
	}
	flush()

	return tokens, nil
}

func parseQuery(template, body string, offset int) (Query, error) {
	name, rest, hasModifiers := strings.Cut(body, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Query{}, malformed(template, offset, "empty placeholder name")
	}
	if !isIdent(name) {
		return Query{}, malformed(template, offset, "invalid placeholder name %q", name)
	}

	query := Query{Name: name}
	if !hasModifiers {
		return query, nil
	}

	offset += len(body) - len(rest)
	seen := make(map[string]struct{})
	for _, part := range strings.Split(rest, ",") {
		key, value, _ := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		switch {
		case key == "":
			return Query{}, malformed(template, offset, "empty modifier key in %q", name)
		case !isIdent(key):
			return Query{}, malformed(template, offset, "invalid modifier %q in %q", key, name)
		}
		if _, dup := seen[key]; dup {
			return Query{}, malformed(template, offset, "duplicate modifier %q in %q", key, name)
		}
		seen[key] = struct{}{}
		query.Modifiers = append(query.Modifiers, Modifier{Key: key, Value: strings.TrimSpace(value)})
		offset += len(part) + 1
	}

	return query, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r == '-' || (r >= '0' && r <= '9')):
		default:
			return false
		}
	}
	return s != ""
}
