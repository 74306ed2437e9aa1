package passgen

import "fmt"

// Sampler draws admitted characters from pools by rejection sampling.
// Every redraw is an independent uniform draw; nothing is excluded between
// attempts. A Sampler accumulates Stats over its accepted draws and is meant
// for a single generation call.
type Sampler struct {
	src    Source
	filter Filter
	stats  Stats
}

// NewSampler returns a sampler drawing from src under filter f.
// A nil src falls back to DefaultSource.
func NewSampler(src Source, f Filter) *Sampler {
	if src == nil {
		src = DefaultSource
	}
	return &Sampler{src: src, filter: f}
}

// Draw returns one admitted character of a.
func (s *Sampler) Draw(a Alphabet) (rune, error) {
	if err := s.require(a, nil); err != nil {
		return 0, err
	}
	return s.draw(a, nil), nil
}

// Stats returns the statistics of every draw accepted so far.
func (s *Sampler) Stats() Stats { return s.stats }

// Total draws n characters uniformly from the concatenation of pools.
// Characters present in several pools keep every slot they occupy, so they
// are proportionally more likely to be drawn.
func (s *Sampler) Total(pools []Alphabet, n int) ([]rune, error) {
	if len(pools) == 0 {
		return nil, ErrNoAlphabet
	}
	if n < 0 {
		return nil, ErrInvalidLength
	}
	flat := Union("total", pools...)
	if s.filter.Admitted(flat) == 0 {
		return nil, s.emptyPool(pools...)
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = s.draw(flat, nil)
	}
	return out, nil
}

// Equal draws n characters, choosing one of the pools uniformly for each
// position and then a character within it. A rejected character is redrawn
// from the same pool; the pool choice is never re-rolled.
func (s *Sampler) Equal(pools []Alphabet, n int) ([]rune, error) {
	if len(pools) == 0 {
		return nil, ErrNoAlphabet
	}
	if n < 0 {
		return nil, ErrInvalidLength
	}
	for _, p := range pools {
		if err := s.require(p, nil); err != nil {
			return nil, err
		}
	}
	out := make([]rune, n)
	for i := range out {
		p := pools[s.src.IntN(len(pools))]
		out[i] = s.draw(p, nil)
	}
	return out, nil
}

// draw loops until a candidate, after transform, passes the filter, and
// records the accepted draw under the class of its source position.
// Callers must have checked that such a candidate exists.
func (s *Sampler) draw(a Alphabet, transform func(rune) rune) rune {
	for {
		i := s.src.IntN(len(a.chars))
		r := a.chars[i]
		if transform != nil {
			r = transform(r)
		}
		if s.filter.Approve(r) {
			s.stats.record(a.ClassAt(i), r)
			return r
		}
	}
}

// require fails with ErrEmptyPool unless some character of a can pass the
// filter once cased according to mode. A nil mode means no case change.
func (s *Sampler) require(a Alphabet, mode *CaseMode) error {
	if a.Len() == 0 {
		return s.emptyPool(a)
	}
	if !s.filter.Active() {
		return nil
	}
	for _, r := range a.chars {
		if s.admits(r, mode) {
			return nil
		}
	}
	return s.emptyPool(a)
}

func (s *Sampler) admits(r rune, mode *CaseMode) bool {
	if mode == nil {
		return s.filter.Approve(r)
	}
	switch *mode {
	case CaseLower:
		return s.filter.Approve(ForceLower(r))
	case CaseUpper:
		return s.filter.Approve(ForceUpper(r))
	default:
		return s.filter.Approve(ForceLower(r)) || s.filter.Approve(ForceUpper(r))
	}
}

func (s *Sampler) emptyPool(pools ...Alphabet) error {
	names := make([]string, len(pools))
	for i, p := range pools {
		names[i] = p.name
	}
	return fmt.Errorf("%w: %v", ErrEmptyPool, names)
}
