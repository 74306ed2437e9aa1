package passgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

func TestForceCase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 'a', passgen.ForceLower('A'))
	assert.Equal(t, 'a', passgen.ForceLower('a'))
	assert.Equal(t, 'A', passgen.ForceUpper('a'))
	assert.Equal(t, 'É', passgen.ForceUpper('é'))

	for _, r := range "09§€_-" {
		assert.Equal(t, r, passgen.ForceLower(r))
		assert.Equal(t, r, passgen.ForceUpper(r))
	}
}

func TestForceUpperKeepsMultiRuneMappings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 'ß', passgen.ForceUpper('ß'))
}

func TestRandomCase(t *testing.T) {
	t.Parallel()
	src := &seqSource{vals: []int{0, 1}}
	assert.Equal(t, 'q', passgen.RandomCase(src, 'Q'))
	assert.Equal(t, 'Q', passgen.RandomCase(src, 'q'))

	seeded := passgen.NewSeededSource(7)
	upper := 0
	const n = 10000
	for range n {
		if passgen.RandomCase(seeded, 'x') == 'X' {
			upper++
		}
	}
	assert.InDelta(t, 0.5, float64(upper)/n, 0.03)
}

func TestCaseModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "random", passgen.CaseRandom.String())
	assert.Equal(t, "lower", passgen.CaseLower.String())
	assert.Equal(t, "upper", passgen.CaseUpper.String())
}
