package simplify

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

// Config bounds the work done by the simplifier.
type Config struct {
	// MaxExponent bounds the magnitude of exponents evaluated exactly.
	MaxExponent int64
	// MaxDivisorInput is the largest radicand whose divisors are
	// enumerated when extracting roots.
	MaxDivisorInput int64
	// MaxBinomialTerms bounds the number of terms of a multinomial
	// expansion.
	MaxBinomialTerms int64
	// MaxBinomialExponent bounds the exponent of an expanded power.
	MaxBinomialExponent int64
	// MaxRootDegree bounds the root degree of the radical terms that
	// trigger an automatic binomial expansion.
	MaxRootDegree int64
	// MaxCommonRootExponent bounds the exponent used when merging
	// radicals into one common root.
	MaxCommonRootExponent int64
	// MaxOperatorTerms bounds the number of terms of a symbolic sum or
	// product written out explicitly.
	MaxOperatorTerms int64
	// MaxIterations caps the rewriting passes of one simplification.
	MaxIterations int
	// MaxMultipleAngle bounds n in the expansion of sin(n*x).
	MaxMultipleAngle int64

	Debug bool
}

// DefaultConfig returns the limits used by Simplify.
func DefaultConfig() Config {
	return Config{
		MaxExponent:           500,
		MaxDivisorInput:       1000000000,
		MaxBinomialTerms:      200,
		MaxBinomialExponent:   20,
		MaxRootDegree:         4,
		MaxCommonRootExponent: 100,
		MaxOperatorTerms:      20,
		MaxIterations:         500,
		MaxMultipleAngle:      10,
	}
}

// ConfigWrapper is the layout of a configuration file: all settings
// live in a [Simplify] section.
type ConfigWrapper struct {
	Simplify Config
}

// DefaultConfigWrapper returns a wrapper holding DefaultConfig, so
// that settings missing from a file keep their defaults.
func DefaultConfigWrapper() *ConfigWrapper {
	return &ConfigWrapper{Simplify: DefaultConfig()}
}

// CheckInit validates the limits.
func (c *Config) CheckInit() error {
	positive := []struct {
		name string
		v    int64
	}{
		{"MaxExponent", c.MaxExponent},
		{"MaxDivisorInput", c.MaxDivisorInput},
		{"MaxBinomialTerms", c.MaxBinomialTerms},
		{"MaxBinomialExponent", c.MaxBinomialExponent},
		{"MaxRootDegree", c.MaxRootDegree},
		{"MaxCommonRootExponent", c.MaxCommonRootExponent},
		{"MaxIterations", int64(c.MaxIterations)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.Errorf("%s must be positive, got %d", p.name, p.v)
		}
	}
	if c.MaxOperatorTerms < 0 {
		return errors.Errorf("MaxOperatorTerms must not be negative, got %d", c.MaxOperatorTerms)
	}
	if c.MaxMultipleAngle < 2 {
		return errors.Errorf("MaxMultipleAngle must be at least 2, got %d", c.MaxMultipleAngle)
	}
	return nil
}

// ReadConfig reads an INI style configuration file. Unset values keep
// their defaults.
func ReadConfig(fname string) (Config, error) {
	wrap := DefaultConfigWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return Config{}, errors.Wrapf(err, "reading config %q", fname)
	}
	if err := wrap.Simplify.CheckInit(); err != nil {
		return Config{}, errors.Wrapf(err, "config %q", fname)
	}
	return wrap.Simplify, nil
}

// ReadConfigString parses configuration text in the format accepted by
// ReadConfig.
func ReadConfigString(text string) (Config, error) {
	wrap := DefaultConfigWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	if err := wrap.Simplify.CheckInit(); err != nil {
		return Config{}, err
	}
	return wrap.Simplify, nil
}
