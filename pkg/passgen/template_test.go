package passgen_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passgen/pkg/passgen"
)

var alphabetComparer = cmp.Comparer(func(a, b passgen.Alphabet) bool {
	return a.Name() == b.Name() && a.String() == b.String()
})

func TestCompile(t *testing.T) {
	t.Parallel()
	p, err := passgen.Compile(":c.v-x!Z.Q")
	require.NoError(t, err)

	want := []passgen.Instruction{
		{Kind: passgen.OpClass, Rune: 'c', Case: passgen.CaseUpper, Pool: passgen.Consonants},
		{Kind: passgen.OpClass, Rune: 'v', Case: passgen.CaseLower, Pool: passgen.Vowels},
		{Kind: passgen.OpLiteral, Rune: 'x'},
		{Kind: passgen.OpClass, Rune: '!', Case: passgen.CaseRandom, Pool: passgen.Symbols},
		{Kind: passgen.OpLiteral, Rune: 'Z'},
		{Kind: passgen.OpClass, Rune: 'Q', Case: passgen.CaseLower, Pool: passgen.Pool('Q')},
	}
	if diff := cmp.Diff(want, p.Instructions(), alphabetComparer); diff != "" {
		t.Errorf("Compile() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, p.Len())
	assert.Equal(t, ":c.v-x!Z.Q", p.Source())
	assert.Equal(t, `upper(consonant) lower(vowel) literal('x') random(symbol) literal('Z') lower(Q)`, p.String())
}

func TestCompileSyntaxErrors(t *testing.T) {
	t.Parallel()
	for _, tmpl := range []string{"abc-", ".", ":", "ll.", "d:", "-"} {
		t.Run(tmpl, func(t *testing.T) {
			t.Parallel()
			p, err := passgen.Compile(tmpl)
			assert.ErrorIs(t, err, passgen.ErrSyntax)
			assert.Nil(t, p)
		})
	}

	_, err := passgen.Compile("abc-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 3")
}

func TestMustCompilePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { passgen.MustCompile("x:") })
	assert.NotPanics(t, func() { passgen.MustCompile("x:l") })
}

func TestExecute(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, tmpl string, f passgen.Filter, seed uint64) string {
		t.Helper()
		p, err := passgen.Compile(tmpl)
		require.NoError(t, err)
		out, err := p.Execute(passgen.NewSampler(passgen.NewSeededSource(seed), f))
		require.NoError(t, err)
		return out
	}

	t.Run("escapes emit the next rune", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", run(t, "-a-b", passgen.Filter{}, 1))
		assert.Equal(t, "--", run(t, "----", passgen.Filter{}, 1))
		assert.Equal(t, ".:", run(t, "-.-:", passgen.Filter{}, 1))
	})

	t.Run("shape of a syllable template", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`^[BCDFGHJKLMNPQRSTVWXZ][aeiouy][bcdfghjklmnpqrstvwxz][aeiouy][bcdfghjklmnpqrstvwxz][0-9]{2}$`)
		for seed := range uint64(200) {
			out := run(t, ":c.v.c.v.cdd", passgen.Filter{}, seed)
			require.Len(t, []rune(out), 7)
			require.Regexp(t, re, out)
		}
	})

	t.Run("literals bypass filters and case", func(t *testing.T) {
		t.Parallel()
		f := passgen.Filter{AvoidSimilar: true, AvoidProgramming: true}
		assert.Equal(t, "1 I$_€", run(t, "-1 I$_€", f, 1))
		assert.Equal(t, "l", run(t, "-l", f, 1))
	})

	t.Run("class draws honour filters after casing", func(t *testing.T) {
		t.Parallel()
		f := passgen.Filter{AvoidSimilar: true}
		for seed := range uint64(50) {
			out := run(t, strings.Repeat("l", 40), f, seed)
			assert.NotContains(t, out, "l")
			assert.NotContains(t, out, "I")

			out = run(t, strings.Repeat(":l", 40), f, seed)
			assert.NotContains(t, out, "I")
		}
	})

	t.Run("bare tags use random case", func(t *testing.T) {
		t.Parallel()
		out := run(t, strings.Repeat("l", 400), passgen.Filter{}, 3)
		assert.Regexp(t, `[a-z]`, out)
		assert.Regexp(t, `[A-Z]`, out)
	})

	t.Run("modifiers on unknown tags", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "qX", run(t, ".Q:x", passgen.Filter{}, 1))
		assert.Equal(t, "i", run(t, ".I", passgen.Filter{AvoidSimilar: true}, 1))
	})

	t.Run("hex forced lower", func(t *testing.T) {
		t.Parallel()
		out := run(t, strings.Repeat(".h", 100), passgen.Filter{}, 9)
		assert.Regexp(t, `^[0-9a-f]{100}$`, out)
	})

	t.Run("empty template", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", run(t, "", passgen.Filter{}, 1))
	})
}

func TestExecuteEmptyPool(t *testing.T) {
	t.Parallel()
	f := passgen.Filter{AvoidSimilar: true}
	for _, tmpl := range []string{":1", "ll.1", "-xb"} {
		p, err := passgen.Compile(tmpl)
		require.NoError(t, err)
		out, err := p.Execute(passgen.NewSampler(passgen.NewSeededSource(1), f))
		assert.ErrorIs(t, err, passgen.ErrEmptyPool, "template %q", tmpl)
		assert.Empty(t, out)
	}
}
