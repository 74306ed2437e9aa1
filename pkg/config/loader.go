package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/passgen/pkg/httpserver"
	"github.com/dmitrymomot/passgen/pkg/passgen"
)

// Prefix is prepended to every environment variable name.
const Prefix = "PASSGEN_"

const (
	// MaxCount caps how many values one invocation may generate.
	MaxCount = 1000
	// MaxLength caps the length of one generated value.
	MaxLength = 4096
)

// Config holds generator defaults and service settings.
type Config struct {
	Length           int    `env:"LENGTH" envDefault:"16"`
	Mode             string `env:"MODE" envDefault:"total"`
	Lower            bool   `env:"LOWER" envDefault:"true"`
	Upper            bool   `env:"UPPER" envDefault:"true"`
	Digit            bool   `env:"DIGIT" envDefault:"true"`
	Symbol           bool   `env:"SYMBOL" envDefault:"false"`
	CustomPool       string `env:"CUSTOM_POOL"`
	Template         string `env:"TEMPLATE"`
	AvoidSimilar     bool   `env:"AVOID_SIMILAR"`
	AvoidProgramming bool   `env:"AVOID_PROGRAMMING"`
	Phonetic         bool   `env:"PHONETIC"`
	Count            int    `env:"COUNT" envDefault:"1"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	HTTP httpserver.Config `envPrefix:"HTTP_"`
}

// Load reads the given .env files, or ./.env when none are named, and then
// parses PASSGEN_* variables. Variables already set in the process win over
// file values. A missing default .env is not an error; a missing named file
// is.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Join(ErrLoadEnv, err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrLoadEnv, err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Length < 0 || c.Length > MaxLength {
		return fmt.Errorf("%w: length %d not in 0..%d", ErrInvalidConfig, c.Length, MaxLength)
	}
	if c.Count < 1 || c.Count > MaxCount {
		return fmt.Errorf("%w: count %d not in 1..%d", ErrInvalidConfig, c.Count, MaxCount)
	}
	if _, err := passgen.ParseMode(c.Mode); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// Request converts the generator fields into a passgen.Request.
func (c Config) Request() (passgen.Request, error) {
	mode, err := passgen.ParseMode(c.Mode)
	if err != nil {
		return passgen.Request{}, err
	}
	return passgen.Request{
		Length: c.Length,
		Mode:   mode,
		Alphabets: passgen.Alphabets{
			Lower:  c.Lower,
			Upper:  c.Upper,
			Digit:  c.Digit,
			Symbol: c.Symbol,
		},
		CustomPool: c.CustomPool,
		Template:   c.Template,
		Filter: passgen.Filter{
			AvoidSimilar:     c.AvoidSimilar,
			AvoidProgramming: c.AvoidProgramming,
		},
		Phonetic: c.Phonetic,
	}, nil
}
