// Package textpatch splices key/value lines into TypeScript translation
// objects without parsing the surrounding file.
package textpatch

import (
	"regexp"
	"strings"
)

// Closer terminates the exported translation object.
const Closer = "};"

// quotedValue matches the body of a double-quoted string literal.
const quotedValue = `(?:[^"\\\n]|\\.)`

// Anchor locates the last known entry of a translation object, directly
// followed by the object's closer.
type Anchor struct {
	key string
	re  *regexp.Regexp
}

// Match holds byte offsets into the searched content.
type Match struct {
	// AnchorEnd is the offset just past the anchor entry's closing quote.
	AnchorEnd int
	// CloserStart and CloserEnd delimit the "};" token.
	CloserStart int
	CloserEnd   int
}

// NewAnchor compiles the anchor pattern for key.
func NewAnchor(key string) *Anchor {
	pattern := `("` + regexp.QuoteMeta(Escape(key)) + `":\s*"` + quotedValue + `+")\s*(\};)`
	return &Anchor{key: key, re: regexp.MustCompile(pattern)}
}

// Key returns the anchor entry's key.
func (a *Anchor) Key() string {
	return a.key
}

// Find returns the first anchor occurrence in content.
func (a *Anchor) Find(content string) (Match, bool) {
	loc := a.re.FindStringSubmatchIndex(content)
	if loc == nil {
		return Match{}, false
	}
	return Match{AnchorEnd: loc[3], CloserStart: loc[4], CloserEnd: loc[5]}, true
}

// HasMarker reports whether key already appears as a quoted key in content.
func HasMarker(content, key string) bool {
	return strings.Contains(content, `"`+Escape(key)+`"`)
}

// Splice inserts payload between the anchor entry and the closer. Whitespace
// between them is replaced by the payload; everything else is kept as is.
func Splice(content string, m Match, payload string) string {
	var b strings.Builder
	b.Grow(len(content) + len(payload))
	b.WriteString(content[:m.AnchorEnd])
	b.WriteString(payload)
	b.WriteString(content[m.CloserStart:])
	return b.String()
}
