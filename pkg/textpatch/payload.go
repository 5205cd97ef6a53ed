package textpatch

import "strings"

// Line is one key/value pair to render.
type Line struct {
	Key   string
	Value string
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Escape makes s safe inside a double-quoted TypeScript string literal.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Payload renders lines as a continuation of an object literal: a leading
// comma, an optional comment and one entry per line. It returns "" when
// there is nothing to insert.
func Payload(comment string, lines []Line) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(",\n")
	if comment != "" {
		b.WriteString("  // ")
		b.WriteString(comment)
		b.WriteString("\n")
	}
	for i, l := range lines {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString(`  "`)
		b.WriteString(Escape(l.Key))
		b.WriteString(`": "`)
		b.WriteString(Escape(l.Value))
		b.WriteString(`"`)
	}
	b.WriteString("\n")
	return b.String()
}
