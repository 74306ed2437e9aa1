package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/passgen/pkg/config"
	"github.com/dmitrymomot/passgen/pkg/logger"
	"github.com/dmitrymomot/passgen/pkg/passgen"
	"github.com/dmitrymomot/passgen/pkg/qrcode"
)

type rootOptions struct {
	envFile string
	verbose bool
	qrFile  string
	seed    uint64
	crypto  bool

	length           int
	mode             string
	lower            bool
	upper            bool
	digits           bool
	symbols          bool
	custom           string
	template         string
	avoidSimilar     bool
	avoidProgramming bool
	phonetic         bool
	count            int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate random passwords",
		Long: `passgen draws passwords from character classes, a custom pool or a
template such as ":c.v.c.v.cdd". Defaults come from PASSGEN_* environment
variables and an optional .env file; flags override them.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.envFile, "env-file", "", "load settings from this .env file (default ./.env if present)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log diagnostics and composition statistics to stderr")

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "n", 16, "password length")
	f.StringVar(&opts.mode, "mode", "total", "distribution over alphabets: equal or total")
	f.BoolVar(&opts.lower, "lower", true, "include lowercase letters")
	f.BoolVar(&opts.upper, "upper", true, "include uppercase letters")
	f.BoolVar(&opts.digits, "digits", true, "include digits")
	f.BoolVar(&opts.symbols, "symbols", false, "include symbols")
	f.StringVar(&opts.custom, "custom", "", "draw from the distinct characters of this string")
	f.StringVarP(&opts.template, "template", "t", "", "generate from a template; see the check command")
	f.BoolVar(&opts.avoidSimilar, "avoid-similar", false, "exclude look-alike characters such as 1, l, I, 0, O")
	f.BoolVar(&opts.avoidProgramming, "avoid-programming", false, "exclude characters that need escaping in code and shells")
	f.BoolVar(&opts.phonetic, "phonetic", false, "print the phonetic spelling instead of the password")
	f.IntVarP(&opts.count, "count", "c", 1, "number of passwords to generate")
	f.StringVar(&opts.qrFile, "qr", "", "write a PNG QR code of the last password to this file")
	f.Uint64Var(&opts.seed, "seed", 0, "seed a deterministic generator (not for real secrets)")
	f.BoolVar(&opts.crypto, "crypto", false, "draw from crypto/rand")
	cmd.MarkFlagsMutuallyExclusive("seed", "crypto")

	cmd.AddCommand(newServeCmd(opts), newPhoneticCmd(), newCheckCmd())
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts.envFile)
	if err != nil {
		return err
	}
	opts.apply(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	req, err := cfg.Request()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, opts.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	gen := passgen.New(
		passgen.WithSource(opts.source(cmd)),
		passgen.WithLogger(log),
	)

	out := cmd.OutOrStdout()
	var last passgen.Result
	for range cfg.Count {
		res, err := gen.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, res.Value()); err != nil {
			return err
		}
		last = res
	}

	switch {
	case opts.qrFile == "":
	case last.Password == "":
		log.WarnContext(cmd.Context(), "qr code skipped: empty password", slog.String("path", opts.qrFile))
	default:
		if err := qrcode.WriteFile(opts.qrFile, last.Password, qrcode.DefaultSize); err != nil {
			return err
		}
		log.InfoContext(cmd.Context(), "qr code written", slog.String("path", opts.qrFile))
	}
	return nil
}

// apply copies explicitly set flags over cfg.
func (o *rootOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("length") {
		cfg.Length = o.length
	}
	if changed("mode") {
		cfg.Mode = o.mode
	}
	if changed("lower") {
		cfg.Lower = o.lower
	}
	if changed("upper") {
		cfg.Upper = o.upper
	}
	if changed("digits") {
		cfg.Digit = o.digits
	}
	if changed("symbols") {
		cfg.Symbol = o.symbols
	}
	if changed("custom") {
		cfg.CustomPool = o.custom
	}
	if changed("template") {
		cfg.Template = o.template
	}
	if changed("avoid-similar") {
		cfg.AvoidSimilar = o.avoidSimilar
	}
	if changed("avoid-programming") {
		cfg.AvoidProgramming = o.avoidProgramming
	}
	if changed("phonetic") {
		cfg.Phonetic = o.phonetic
	}
	if changed("count") {
		cfg.Count = o.count
	}
}

func (o *rootOptions) source(cmd *cobra.Command) passgen.Source {
	switch {
	case cmd.Flags().Changed("seed"):
		return passgen.NewSeededSource(o.seed)
	case o.crypto:
		return passgen.CryptoSource
	default:
		return passgen.DefaultSource
	}
}

func loadConfig(envFile string) (config.Config, error) {
	if envFile != "" {
		return config.Load(envFile)
	}
	return config.Load()
}

// newLogger builds the stderr logger. Verbose forces debug level, which is
// where the generator reports composition statistics.
func newLogger(cfg config.Config, verbose bool, w io.Writer, extra ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	opts := append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithService("passgen"),
	}, extra...)
	return logger.New(opts...), nil
}
