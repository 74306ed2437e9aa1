// Package phonetic spells strings out with the NATO phonetic alphabet.
//
// Letters map to words ("alfa", "bravo", ...); an upper-case letter yields
// the upper-case word so the case of the source stays recoverable. Digits,
// symbols and non-ASCII characters pass through unchanged.
//
//	phonetic.Encode("Ab3") // "ALFA bravo 3"
package phonetic
