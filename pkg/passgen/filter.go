package passgen

import "strings"

const (
	similarChars     = "1|Il!O0`´';:"
	programmingChars = "$'\"&,?@#<>(){}[]/\\"
)

// Filter holds the active denylist toggles of a request.
type Filter struct {
	AvoidSimilar     bool `json:"avoid_similar"`
	AvoidProgramming bool `json:"avoid_programming"`
}

// Approve reports whether r may be emitted under the given toggles.
// Both denylists reject independently.
func Approve(r rune, avoidSimilar, avoidProgramming bool) bool {
	if avoidSimilar && strings.ContainsRune(similarChars, r) {
		return false
	}
	if avoidProgramming && strings.ContainsRune(programmingChars, r) {
		return false
	}
	return true
}

// Approve reports whether r passes the filter.
func (f Filter) Approve(r rune) bool {
	return Approve(r, f.AvoidSimilar, f.AvoidProgramming)
}

// Active reports whether any denylist is enabled.
func (f Filter) Active() bool {
	return f.AvoidSimilar || f.AvoidProgramming
}

// Admitted counts the characters of a that pass the filter.
func (f Filter) Admitted(a Alphabet) int {
	if !f.Active() {
		return a.Len()
	}
	n := 0
	for _, r := range a.chars {
		if f.Approve(r) {
			n++
		}
	}
	return n
}
