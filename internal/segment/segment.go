package segment

import "strings"

// TextName is the synthetic name carried by literal text segments.
const TextName = "_text"

// StyleKey is the modifier key that sets a placeholder's style.
const StyleKey = "style"

// Style is an opaque presentation descriptor such as "bold fg:#ff8800".
// The empty Style means no style.
type Style string

// Segment is one named, styled unit of rendered output.
type Segment struct {
	Name  string
	Value string
	Style Style
}

// Modifier is a single placeholder annotation. Flags have an empty Value.
type Modifier struct {
	Key   string
	Value string
}

// Query is a parsed placeholder.
type Query struct {
	Name      string
	Modifiers []Modifier
}

// Get returns the value of the modifier with the given key.
func (q Query) Get(key string) (string, bool) {
	for _, mod := range q.Modifiers {
		if mod.Key == key {
			return mod.Value, true
		}
	}
	return "", false
}

// Has reports whether the modifier key is present, as a flag or a pair.
func (q Query) Has(key string) bool {
	_, ok := q.Get(key)
	return ok
}

func (q Query) String() string {
	if len(q.Modifiers) == 0 {
		return "${" + q.Name + "}"
	}
	parts := make([]string, 0, len(q.Modifiers))
	for _, mod := range q.Modifiers {
		if mod.Value == "" {
			parts = append(parts, mod.Key)
			continue
		}
		parts = append(parts, mod.Key+"="+mod.Value)
	}
	return "${" + q.Name + ":" + strings.Join(parts, ",") + "}"
}

// Resolver maps a placeholder to a segment. Returning false means the
// placeholder has no value and is left out of the output.
type Resolver func(name string, q Query) (Segment, bool)

// Resolvers dispatches placeholder names to per-name resolver functions.
type Resolvers map[string]func(q Query) (Segment, bool)

// Resolve implements Resolver. Unknown names have no value.
func (r Resolvers) Resolve(name string, q Query) (Segment, bool) {
	fn, ok := r[name]
	if !ok || fn == nil {
		return Segment{}, false
	}
	return fn(q)
}

// Static returns a resolver function that always yields value.
func Static(value string) func(Query) (Segment, bool) {
	return func(Query) (Segment, bool) {
		return Segment{Value: value}, true
	}
}

// Join concatenates segment values without styles.
func Join(segments []Segment) string {
	var out strings.Builder
	for _, seg := range segments {
		out.WriteString(seg.Value)
	}
	return out.String()
}
