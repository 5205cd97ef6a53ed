package textpatch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ExtractValue returns the unescaped value of the first "key": "value"
// entry in content.
func ExtractValue(content, key string) (string, bool) {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(Escape(key)) + `"\s*:\s*"(` + quotedValue + `*)"`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return Unescape(m[1]), true
}

// Unescape reverses the escapes of a double-quoted string literal body.
// Unknown escapes yield the escaped character itself.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'u':
			if i+4 < len(s) {
				if r, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += 4
					continue
				}
			}
			b.WriteByte('u')
		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size - 1
		}
	}
	return b.String()
}
