package passgen

import (
	"slices"
	"strings"
)

// Alphabet is an immutable, ordered pool of candidate characters.
type Alphabet struct {
	name  string
	chars []rune
	// segs maps index ranges to statistics classes; nil means ClassNone.
	segs []segment
}

// segment classifies chars[previous end:end].
type segment struct {
	end   int
	class Class
}

func tracked(name, chars string, c Class) Alphabet {
	a := NewAlphabet(name, chars)
	a.segs = []segment{{end: len(a.chars), class: c}}
	return a
}

// NewAlphabet returns an alphabet holding the runes of chars in order.
// Duplicates are kept; use Unique to drop them.
func NewAlphabet(name, chars string) Alphabet {
	return Alphabet{name: name, chars: []rune(chars)}
}

// Unique returns an alphabet with the distinct runes of chars in order of
// first occurrence.
func Unique(name, chars string) Alphabet {
	seen := make(map[rune]struct{}, len(chars))
	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return Alphabet{name: name, chars: out}
}

// Union concatenates alphabets without removing duplicates. Each character
// keeps the statistics class of the part it came from.
func Union(name string, parts ...Alphabet) Alphabet {
	n := 0
	for _, p := range parts {
		n += len(p.chars)
	}
	chars := make([]rune, 0, n)
	var segs []segment
	for _, p := range parts {
		off := len(chars)
		chars = append(chars, p.chars...)
		if len(p.chars) == 0 {
			continue
		}
		if len(p.segs) == 0 {
			segs = append(segs, segment{end: len(chars), class: ClassNone})
			continue
		}
		for _, sg := range p.segs {
			segs = append(segs, segment{end: off + sg.end, class: sg.class})
		}
	}
	return Alphabet{name: name, chars: chars, segs: segs}
}

// Name returns the alphabet's name, or the character itself for a
// single-character pool.
func (a Alphabet) Name() string { return a.name }

// Len returns the number of characters, duplicates included.
func (a Alphabet) Len() int { return len(a.chars) }

// At returns the rune at index i.
func (a Alphabet) At(i int) rune { return a.chars[i] }

// Runes returns a copy of the alphabet's characters.
func (a Alphabet) Runes() []rune { return slices.Clone(a.chars) }

// Contains reports whether r is one of the alphabet's characters.
func (a Alphabet) Contains(r rune) bool { return slices.Contains(a.chars, r) }

// String returns the characters as a string.
func (a Alphabet) String() string { return string(a.chars) }

// ClassAt returns the statistics class of the character at index i.
func (a Alphabet) ClassAt(i int) Class {
	for _, sg := range a.segs {
		if i < sg.end {
			return sg.class
		}
	}
	return ClassNone
}

// symbolChars must not be reordered: pool indexes are part of the
// generator's observable behaviour under a seeded source.
const symbolChars = "§|!\"@#£¤$%€&/{([)]=}\\`´¨^~'*<>,;.:-_"

// Built-in alphabets.
var (
	Lower      = tracked("lower", "abcdefghijklmnopqrstuvwxyz", ClassLower)
	Upper      = tracked("upper", "ABCDEFGHIJKLMNOPQRSTUVWXYZ", ClassUpper)
	Digits     = tracked("digit", "0123456789", ClassNumeric)
	Hex        = NewAlphabet("hex", "0123456789ABCDEF")
	Octal      = NewAlphabet("octal", "01234567")
	Binary     = NewAlphabet("binary", "01")
	Symbols    = tracked("symbol", symbolChars, ClassSymbol)
	Vowels     = NewAlphabet("vowel", "aeiouy")
	Consonants = NewAlphabet("consonant", "bcdfghjklmnpqrstvwxz")

	Alnum = Union("alnum", Lower, Digits)
	All   = Union("all", Lower, Digits, Symbols)
)

// registry maps template class tags to their pools.
var registry = map[rune]Alphabet{
	'l': Lower,
	'v': Vowels,
	'c': Consonants,
	'd': Digits,
	'h': Hex,
	'o': Octal,
	'b': Binary,
	'a': Alnum,
	'*': All,
	'!': Symbols,
}

// Pool resolves a class tag. An unknown tag resolves to a single-character
// pool holding just that character.
func Pool(tag rune) Alphabet {
	if a, ok := registry[tag]; ok {
		return a
	}
	return Alphabet{name: string(tag), chars: []rune{tag}}
}

// IsTag reports whether r names a built-in class.
func IsTag(r rune) bool {
	_, ok := registry[r]
	return ok
}

// Tags returns the registered class tags in a stable order.
func Tags() string {
	tags := make([]rune, 0, len(registry))
	for t := range registry {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	var b strings.Builder
	for _, t := range tags {
		b.WriteRune(t)
	}
	return b.String()
}
