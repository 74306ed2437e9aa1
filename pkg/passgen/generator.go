package passgen

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/phonetic"
)

// Generator produces passwords. It holds no per-call state and is safe for
// concurrent use when its Source is.
type Generator struct {
	src Source
	log *slog.Logger
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	g := &Generator{
		src: DefaultSource,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate dispatches req to template, custom-pool or standard mode.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	switch {
	case req.Template != "":
		return g.Template(ctx, req.Template, req.Filter, req.Phonetic)
	case req.CustomPool != "":
		return g.Custom(ctx, req.CustomPool, req.Length, req.Filter, req.Phonetic)
	default:
		return g.Standard(ctx, req.Length, req.Mode, req.Alphabets, req.Filter, req.Phonetic)
	}
}

// Standard generates length characters from the selected alphabets.
func (g *Generator) Standard(ctx context.Context, length int, mode Mode, alphabets Alphabets, f Filter, spell bool) (Result, error) {
	return g.run(ctx, mode.String(), spell, func() (string, Stats, error) {
		return g.standard(length, mode, alphabets, f)
	})
}

// Custom generates length characters from the distinct runes of pool.
// The distribution mode does not apply: every distinct rune is equally
// likely.
func (g *Generator) Custom(ctx context.Context, pool string, length int, f Filter, spell bool) (Result, error) {
	return g.run(ctx, "custom", spell, func() (string, Stats, error) {
		return g.custom(pool, length, f)
	})
}

// Template generates a value from a template string. See Compile for the
// template syntax.
func (g *Generator) Template(ctx context.Context, template string, f Filter, spell bool) (Result, error) {
	return g.run(ctx, "template", spell, func() (string, Stats, error) {
		return g.template(template, f)
	})
}

// run wraps one generation with phonetic encoding, statistics and logging.
func (g *Generator) run(ctx context.Context, kind string, spell bool, gen func() (string, Stats, error)) (Result, error) {
	password, stats, err := gen()
	if err != nil {
		g.log.DebugContext(ctx, "password generation failed",
			logger.Mode(kind),
			logger.Error(err),
		)
		return Result{}, err
	}

	res := Result{
		Password: password,
		Stats:    stats,
		phonetic: spell,
	}
	if spell {
		res.Phonetic = phonetic.Encode(password)
	}

	g.log.DebugContext(ctx, "password generated",
		logger.Mode(kind),
		logger.Length(utf8.RuneCountInString(password)),
		logger.Composition(res.Stats),
	)
	return res, nil
}

func (g *Generator) standard(length int, mode Mode, alphabets Alphabets, f Filter) (string, Stats, error) {
	if length < 0 {
		return "", Stats{}, ErrInvalidLength
	}
	pools := alphabets.Pools()
	if len(pools) == 0 {
		return "", Stats{}, ErrNoAlphabet
	}

	s := NewSampler(g.src, f)
	var (
		out []rune
		err error
	)
	switch mode {
	case ModeEqual:
		out, err = s.Equal(pools, length)
	case ModeTotal:
		out, err = s.Total(pools, length)
	default:
		return "", Stats{}, ErrUnknownMode
	}
	if err != nil {
		return "", Stats{}, err
	}
	return string(out), s.Stats(), nil
}

func (g *Generator) custom(pool string, length int, f Filter) (string, Stats, error) {
	if pool == "" {
		return "", Stats{}, ErrNoAlphabet
	}
	if length < 0 {
		return "", Stats{}, ErrInvalidLength
	}
	s := NewSampler(g.src, f)
	out, err := s.Total([]Alphabet{Unique("custom", pool)}, length)
	if err != nil {
		return "", Stats{}, err
	}
	return string(out), s.Stats(), nil
}

func (g *Generator) template(template string, f Filter) (string, Stats, error) {
	p, err := Compile(template)
	if err != nil {
		return "", Stats{}, err
	}
	s := NewSampler(g.src, f)
	out, err := p.Execute(s)
	if err != nil {
		return "", Stats{}, err
	}
	return out, s.Stats(), nil
}

var defaultGenerator = New()

// Generate runs req on a Generator using DefaultSource and no logger.
func Generate(ctx context.Context, req Request) (Result, error) {
	return defaultGenerator.Generate(ctx, req)
}

// Standard is Generator.Standard on the default generator.
func Standard(ctx context.Context, length int, mode Mode, alphabets Alphabets, f Filter, spell bool) (Result, error) {
	return defaultGenerator.Standard(ctx, length, mode, alphabets, f, spell)
}

// Custom is Generator.Custom on the default generator.
func Custom(ctx context.Context, pool string, length int, f Filter, spell bool) (Result, error) {
	return defaultGenerator.Custom(ctx, pool, length, f, spell)
}

// Template is Generator.Template on the default generator.
func Template(ctx context.Context, template string, f Filter, spell bool) (Result, error) {
	return defaultGenerator.Template(ctx, template, f, spell)
}
