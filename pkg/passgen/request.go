package passgen

import (
	"fmt"
	"strings"
)

// Mode selects how standard mode distributes draws over the selected
// alphabets.
type Mode uint8

const (
	// ModeTotal draws uniformly from the concatenation of all alphabets.
	ModeTotal Mode = iota
	// ModeEqual gives every alphabet the same chance per position.
	ModeEqual
)

func (m Mode) String() string {
	if m == ModeEqual {
		return "equal"
	}
	return "total"
}

// ParseMode parses "equal" or "total", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "total", "":
		return ModeTotal, nil
	case "equal":
		return ModeEqual, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Alphabets toggles the standard-mode pools.
type Alphabets struct {
	Lower  bool `json:"lower"`
	Upper  bool `json:"upper"`
	Digit  bool `json:"digit"`
	Symbol bool `json:"symbol"`
}

// Pools returns the selected alphabets in a fixed order.
func (a Alphabets) Pools() []Alphabet {
	pools := make([]Alphabet, 0, 4)
	if a.Lower {
		pools = append(pools, Lower)
	}
	if a.Upper {
		pools = append(pools, Upper)
	}
	if a.Digit {
		pools = append(pools, Digits)
	}
	if a.Symbol {
		pools = append(pools, Symbols)
	}
	return pools
}

// Request describes one generation call. A non-empty Template selects
// template mode; otherwise a non-empty CustomPool selects custom-pool mode
// and Mode is ignored; otherwise standard mode runs over Alphabets.
type Request struct {
	Length     int       `json:"length"`
	Mode       Mode      `json:"mode"`
	Alphabets  Alphabets `json:"alphabets"`
	CustomPool string    `json:"custom_pool,omitempty"`
	Template   string    `json:"template,omitempty"`
	Filter     Filter    `json:"filter"`
	Phonetic   bool      `json:"phonetic"`
}

// Kind names the generation mode the request resolves to.
func (r Request) Kind() string {
	switch {
	case r.Template != "":
		return "template"
	case r.CustomPool != "":
		return "custom"
	default:
		return r.Mode.String()
	}
}

// Result is the outcome of one generation call.
type Result struct {
	// Password is the generated string.
	Password string `json:"password"`
	// Phonetic is the phonetic rendering, set only when requested.
	Phonetic string `json:"phonetic,omitempty"`
	Stats    Stats  `json:"stats"`

	phonetic bool
}

// Value returns the string to present: the phonetic rendering when it was
// requested, the password otherwise.
func (r Result) Value() string {
	if r.phonetic {
		return r.Phonetic
	}
	return r.Password
}
