// Package passgen generates random passwords from configurable character
// pools. It supports three modes:
//
//   • Standard mode draws from any combination of the lower, upper, digit
//     and symbol alphabets, in one of two distributions (ModeTotal or
//     ModeEqual).
//   • Custom-pool mode draws from the distinct characters of a caller
//     supplied string.
//   • Template mode interprets a small pattern language that describes the
//     class and case of every output position.
//
// # Architecture
//
// Alphabets are immutable package-level values looked up by single-rune tags
// (see Pool). A Sampler draws characters by rejection sampling against a
// Filter; before sampling it checks that every pool still has an admitted
// character, so a fully filtered pool fails with ErrEmptyPool instead of
// looping forever.
//
// ModeTotal concatenates the selected alphabets and draws uniformly over the
// result, so larger alphabets and characters repeated across alphabets get
// proportionally more weight. ModeEqual first picks an alphabet uniformly and
// then a character inside it; a rejected character is redrawn from the same
// alphabet.
//
// Templates are compiled into a Program in one pass:
//
//	-X  literal X
//	.X  one character of class X, lower case
//	:X  one character of class X, upper case
//	X   one character of class X with random case, if X is a class tag
//	    (l v c d h o b a * !); any other character is copied verbatim
//
// Filters apply only to class draws, never to literals.
//
// # Usage
//
//	import "github.com/dmitrymomot/passgen/pkg/passgen"
//
//	res, err := passgen.Standard(ctx, 16, passgen.ModeEqual,
//		passgen.Alphabets{Lower: true, Upper: true, Digit: true},
//		passgen.Filter{AvoidSimilar: true}, false)
//
//	res, err = passgen.Template(ctx, ":c.v.c.v.cdd", passgen.Filter{}, false)
//
// Use New with WithSource and WithLogger for a reproducible source or to
// receive the per-call composition breakdown at debug level.
//
// # Error Handling
//
//   • ErrNoAlphabet    – no alphabet selected, or an empty custom pool.
//   • ErrSyntax        – template ends with '-', '.' or ':'.
//   • ErrEmptyPool     – the filter rejects every character of a pool.
//   • ErrInvalidLength – negative length.
//   • ErrUnknownMode   – unparsable mode name.
//
// No partial output is returned with an error.
package passgen
