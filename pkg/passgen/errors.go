package passgen

import "errors"

var (
	// ErrNoAlphabet is returned when standard mode selects no alphabet or the
	// custom pool is empty.
	ErrNoAlphabet = errors.New("invalid combination of parameters")

	// ErrSyntax is returned when a template ends with a dangling escape or
	// case modifier.
	ErrSyntax = errors.New("syntax error")

	// ErrEmptyPool is returned when the active filter rejects every character
	// of a selected pool.
	ErrEmptyPool = errors.New("no characters left in pool after filtering")

	// ErrInvalidLength is returned for negative lengths.
	ErrInvalidLength = errors.New("invalid password length")

	// ErrUnknownMode is returned when a mode name cannot be parsed.
	ErrUnknownMode = errors.New("unknown distribution mode")
)
