package passgen

import (
	"log/slog"
	"unicode"
)

// Class is a statistics bucket.
type Class uint8

const (
	ClassLower Class = iota
	ClassUpper
	ClassNumeric
	ClassSymbol
	// ClassNone marks draws from pools outside the four tracked alphabets.
	ClassNone
)

func (c Class) String() string {
	switch c {
	case ClassLower:
		return "lowercase"
	case ClassUpper:
		return "uppercase"
	case ClassNumeric:
		return "numeric"
	case ClassSymbol:
		return "symbol"
	case ClassNone:
		return "none"
	default:
		return "unknown"
	}
}

// Stats tallies the accepted class draws of one generated value. A draw
// counts towards a bucket only when it came from Lower, Upper, Digits or
// Symbols; draws from any other pool count only towards Total. Template
// literals are not draws and are not counted.
type Stats struct {
	Lower   int `json:"lowercase"`
	Upper   int `json:"uppercase"`
	Numeric int `json:"numeric"`
	Symbol  int `json:"symbol"`
	Total   int `json:"total"`
}

// record counts one accepted draw of class c that emitted r. Letters drawn
// from Lower or Upper are bucketed by their emitted case.
func (s *Stats) record(c Class, r rune) {
	s.Total++
	switch c {
	case ClassLower, ClassUpper:
		if unicode.IsUpper(r) {
			s.Upper++
		} else {
			s.Lower++
		}
	case ClassNumeric:
		s.Numeric++
	case ClassSymbol:
		s.Symbol++
	}
}

// Count returns the count of class c.
func (s Stats) Count(c Class) int {
	switch c {
	case ClassLower:
		return s.Lower
	case ClassUpper:
		return s.Upper
	case ClassNumeric:
		return s.Numeric
	case ClassSymbol:
		return s.Symbol
	case ClassNone:
		return s.Total - s.Lower - s.Upper - s.Numeric - s.Symbol
	default:
		return 0
	}
}

// Percent returns the share of class c in percent, 0 for an empty value.
func (s Stats) Percent(c Class) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Count(c)) * 100 / float64(s.Total)
}

// LogValue renders the percentage breakdown for structured logs.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64(ClassLower.String(), s.Percent(ClassLower)),
		slog.Float64(ClassUpper.String(), s.Percent(ClassUpper)),
		slog.Float64(ClassNumeric.String(), s.Percent(ClassNumeric)),
		slog.Float64(ClassSymbol.String(), s.Percent(ClassSymbol)),
	)
}
