// Package config loads the hamcircuit command configuration from TOML.
//
// Example:
//
//	input = "graphs/petersen.csv"
//	start = 1
//
//	[policy]
//	strict_closure = false
//	explicit_stack = true
//
//	[limits]
//	max_expansions = 1000000
//	timeout = "30s"
//
//	[cache]
//	enabled = true
//	dir = "/var/cache/hamcircuit"
package config

import (
	"context"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/hamcircuit/hamilton"
)

var (
	// ErrUnknownKey indicates a key in the file that no field consumes.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrBadTimeout indicates an unparsable or negative limits.timeout.
	ErrBadTimeout = errors.New("config: bad timeout")

	// ErrBadCache indicates an enabled cache without a directory.
	ErrBadCache = errors.New("config: cache enabled without dir")
)

// DefaultStart is the start vertex used when none is configured.
const DefaultStart = 1

// Config is the full command configuration.
type Config struct {
	Input  string `toml:"input"` // "" or "-" means stdin
	Start  int    `toml:"start"`
	Policy Policy `toml:"policy"`
	Limits Limits `toml:"limits"`
	Cache  Cache  `toml:"cache"`
}

// Policy selects search behaviour.
type Policy struct {
	StrictClosure bool `toml:"strict_closure"`
	ExplicitStack bool `toml:"explicit_stack"`
}

// Limits bound the search. Zero values mean unlimited.
type Limits struct {
	MaxExpansions int64  `toml:"max_expansions"`
	Timeout       string `toml:"timeout"`
}

// Cache configures the on-disk result cache.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the configuration used without a file: stdin, start 1,
// recursive search, no limits, no cache.
func Default() Config {
	return Config{Start: DefaultStart}
}

// Decode parses TOML text over the defaults.
func Decode(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

// LoadFile parses the TOML file at path over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: decode %s", path)
	}
	if err = checkUndecoded(md); err != nil {
		return Config{}, errors.Wrap(err, path)
	}

	return cfg, cfg.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return errors.Wrap(ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks field combinations that TOML typing cannot express.
func (c Config) Validate() error {
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return ErrBadCache
	}

	return nil
}

// Timeout parses Limits.Timeout; "" yields 0 (no deadline).
func (c Config) Timeout() (time.Duration, error) {
	if c.Limits.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Limits.Timeout)
	if err != nil {
		return 0, errors.Wrapf(ErrBadTimeout, "%q: %v", c.Limits.Timeout, err)
	}
	if d < 0 {
		return 0, errors.Wrapf(ErrBadTimeout, "%q is negative", c.Limits.Timeout)
	}

	return d, nil
}

// SearchOptions translates the configuration into hamilton options bound to
// ctx. The returned cancel func must be called once the search is done.
func (c Config) SearchOptions(ctx context.Context) ([]hamilton.Option, context.CancelFunc, error) {
	timeout, err := c.Timeout()
	if err != nil {
		return nil, nil, err
	}

	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}

	opts := []hamilton.Option{hamilton.WithContext(ctx)}
	if c.Limits.MaxExpansions > 0 {
		opts = append(opts, hamilton.WithMaxExpansions(c.Limits.MaxExpansions))
	}
	if c.Policy.StrictClosure {
		opts = append(opts, hamilton.WithStrictClosure())
	}
	if c.Policy.ExplicitStack {
		opts = append(opts, hamilton.WithExplicitStack())
	}

	return opts, cancel, nil
}
