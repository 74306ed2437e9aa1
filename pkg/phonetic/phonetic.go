package phonetic

import "strings"

var words = [26]string{
	"alfa", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliett", "kilo", "lima", "mike", "november",
	"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
	"victor", "whiskey", "xray", "yankee", "zulu",
}

// Word returns the phonetic word for an ASCII letter, upper-cased for an
// upper-case letter. It reports false for any other rune.
func Word(r rune) (string, bool) {
	switch {
	case 'a' <= r && r <= 'z':
		return words[r-'a'], true
	case 'A' <= r && r <= 'Z':
		return strings.ToUpper(words[r-'A']), true
	default:
		return "", false
	}
}

// Encode spells s out: every letter becomes its phonetic word, every other
// character is kept as is, and tokens are separated by a single space.
func Encode(s string) string {
	var b strings.Builder
	for i, r := range []rune(s) {
		if i > 0 {
			b.WriteByte(' ')
		}
		if w, ok := Word(r); ok {
			b.WriteString(w)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
