package passgen

import "log/slog"

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Nil is ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithLogger sets the logger receiving per-call statistics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}
