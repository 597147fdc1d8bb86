package segment

import "testing"

func TestParse_LiteralsAndPlaceholders(t *testing.T) {
	tokens, err := Parse("via ${symbol}${version:style=bold 147,major} $$5 $x")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}

	if tokens[0].Kind != TokenText || tokens[0].Text != "via " {
		t.Fatalf("unexpected first token: %+v", tokens[0])
	}
	if tokens[1].Kind != TokenPlaceholder || tokens[1].Query.Name != "symbol" {
		t.Fatalf("unexpected symbol token: %+v", tokens[1])
	}

	version := tokens[2].Query
	if version.Name != "version" {
		t.Fatalf("expected version placeholder, got %q", version.Name)
	}
	if style, ok := version.Get("style"); !ok || style != "bold 147" {
		t.Fatalf("unexpected style modifier: %q", style)
	}
	if !version.Has("major") {
		t.Fatalf("expected major flag")
	}
	if version.Has("minor") {
		t.Fatalf("unexpected minor flag")
	}

	if tokens[3].Text != " $5 $x" {
		t.Fatalf("unexpected trailing literal: %q", tokens[3].Text)
	}
}

func TestParse_TrailingDollar(t *testing.T) {
	tokens, err := Parse("cost $")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "cost $" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestParse_StrayCloseBraceIsLiteral(t *testing.T) {
	tokens, err := Parse("a}b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "a}b" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestParse_UnterminatedOffset(t *testing.T) {
	_, err := Parse("abc ${version")
	formatErr, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("expected *FormatError, got %T", err)
	}
	if formatErr.Offset != 4 {
		t.Fatalf("expected offset 4, got %d", formatErr.Offset)
	}
}

func TestQueryString(t *testing.T) {
	tokens, err := Parse("${version:style=bold,major}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := tokens[0].Query.String(); got != "${version:style=bold,major}" {
		t.Fatalf("unexpected query string: %q", got)
	}
}
