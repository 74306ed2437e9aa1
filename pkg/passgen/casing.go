package passgen

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects how a class-drawn character is cased.
type CaseMode uint8

const (
	// CaseRandom picks lower or upper case with equal probability.
	CaseRandom CaseMode = iota
	// CaseLower forces lower case.
	CaseLower
	// CaseUpper forces upper case.
	CaseUpper
)

func (m CaseMode) String() string {
	switch m {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	default:
		return "random"
	}
}

// ForceLower returns the lower-case form of r. Runes whose mapping is not a
// single rune are returned unchanged.
func ForceLower(r rune) rune {
	return mapRune(cases.Lower(language.Und), r)
}

// ForceUpper returns the upper-case form of r. Runes whose mapping is not a
// single rune (e.g. 'ß') are returned unchanged.
func ForceUpper(r rune) rune {
	return mapRune(cases.Upper(language.Und), r)
}

// RandomCase returns r lowered or uppered by one fair draw from src.
// The existing case of r does not influence the outcome.
func RandomCase(src Source, r rune) rune {
	if src.IntN(2) == 0 {
		return ForceLower(r)
	}
	return ForceUpper(r)
}

// A Caser is stateful, so each call gets its own.
func mapRune(c cases.Caser, r rune) rune {
	if r < utf8.RuneSelf && !isASCIILetter(r) {
		return r
	}
	out := c.String(string(r))
	m, size := utf8.DecodeRuneInString(out)
	if size != len(out) || m == utf8.RuneError {
		return r
	}
	return m
}

func isASCIILetter(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// caseFunc returns the transform applied to a drawn rune for mode m.
func caseFunc(src Source, m CaseMode) func(rune) rune {
	switch m {
	case CaseLower:
		return ForceLower
	case CaseUpper:
		return ForceUpper
	default:
		return func(r rune) rune { return RandomCase(src, r) }
	}
}
