// Package config loads lobster.toml: the log level, extra builtin
// enumerations and the class definitions the command line tool lays out.
package config

import (
	"os"

	"github.com/pelletier/go-toml"
	"go.uber.org/zap/zapcore"

	"github.com/you-not-fish/lobster/internal/errors"
	"github.com/you-not-fish/lobster/internal/types"
)

// FileName is the conventional configuration file name.
const FileName = "lobster.toml"

// Config is the decoded configuration.
type Config struct {
	LogLevel string        `toml:"log-level,omitempty"`
	MaxSize  int64         `toml:"max-size,omitempty"`
	Enums    []EnumConfig  `toml:"enum"`
	Classes  []ClassConfig `toml:"class"`
}

// EnumConfig declares a builtin enumeration.
type EnumConfig struct {
	Name   string   `toml:"name"`
	Values []string `toml:"values"`
}

// ClassConfig declares a class. Base, if set, must name a class declared
// earlier in the file.
type ClassConfig struct {
	Name    string         `toml:"name"`
	Base    string         `toml:"base,omitempty"`
	Members []MemberConfig `toml:"member"`
}

// MemberConfig declares a data member. Type is a declaration specifier
// sequence such as "const unsigned int"; a positive Length makes the
// member an array of that type.
type MemberConfig struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Length int64  `toml:"length,omitempty"`
}

// Default returns the configuration used when no file is given. It
// declares the card game enumerations used by the course exercises.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Enums: []EnumConfig{
			{
				Name: "Rank",
				Values: []string{"TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT",
					"NINE", "TEN", "JACK", "QUEEN", "KING", "ACE"},
			},
			{
				Name:   "Suit",
				Values: []string{"SPADES", "HEARTS", "CLUBS", "DIAMONDS"},
			},
		},
	}
}

// Load reads the file at path and merges it over Default. Enumerations
// with a default's name replace it; classes are appended in file order.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Cause(err).
			Detail("cannot read %s", path).
			Build()
	}
	return Parse(buf)
}

// Parse decodes TOML text and merges it over Default.
func Parse(buf []byte) (*Config, error) {
	file := &Config{}
	if err := toml.Unmarshal(buf, file); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidData, err, "malformed TOML")
	}

	cfg := Default()
	cfg.merge(file)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.MaxSize != 0 {
		c.MaxSize = o.MaxSize
	}
	for _, e := range o.Enums {
		replaced := false
		for i := range c.Enums {
			if c.Enums[i].Name == e.Name {
				c.Enums[i] = e
				replaced = true
				break
			}
		}
		if !replaced {
			c.Enums = append(c.Enums, e)
		}
	}
	c.Classes = append(c.Classes, o.Classes...)
}

// Validate checks names for presence and uniqueness.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxSize < 0 {
		return invalid("max-size must not be negative, got %d", c.MaxSize)
	}

	seen := make(map[string]bool)
	for i, e := range c.Enums {
		if e.Name == "" {
			return invalid("enum #%d has no name", i+1).WithPrefix("enum")
		}
		if seen[e.Name] {
			return invalid("%s declared more than once", e.Name).WithPrefix("enum")
		}
		seen[e.Name] = true
		if len(e.Values) == 0 {
			return invalid("enum has no values").WithPrefix("enum", e.Name)
		}
		values := make(map[string]bool, len(e.Values))
		for _, v := range e.Values {
			if values[v] {
				return invalid("duplicate value %s", v).WithPrefix("enum", e.Name)
			}
			values[v] = true
		}
	}

	for i, cl := range c.Classes {
		if cl.Name == "" {
			return invalid("class #%d has no name", i+1).WithPrefix("class")
		}
		if seen[cl.Name] {
			return invalid("%s declared more than once", cl.Name).WithPrefix("class")
		}
		seen[cl.Name] = true
		members := make(map[string]bool, len(cl.Members))
		for j, m := range cl.Members {
			if m.Name == "" {
				return invalid("member #%d has no name", j+1).WithPrefix("class", cl.Name)
			}
			if members[m.Name] {
				return invalid("duplicate member %s", m.Name).WithPrefix("class", cl.Name)
			}
			members[m.Name] = true
			if m.Length < 0 {
				return invalid("negative array length %d", m.Length).WithPrefix("class", cl.Name, m.Name)
			}
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c *Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("log-level").
			Value(c.LogLevel).
			Cause(err).
			Detail("unknown log level %q", c.LogLevel).
			Build()
	}
	return lvl, nil
}

// ContextOptions returns the options that set up a types.Context for
// this configuration.
func (c *Config) ContextOptions() []types.Option {
	var opts []types.Option
	for _, e := range c.Enums {
		opts = append(opts, types.WithEnum(e.Name, e.Values...))
	}
	if c.MaxSize > 0 {
		opts = append(opts, types.WithMaxSize(c.MaxSize))
	}
	return opts
}

// NewContext returns a fresh types.Context configured by c.
func (c *Config) NewContext() *types.Context {
	return types.NewContext(c.ContextOptions()...)
}

func invalid(format string, args ...any) *errors.Error {
	return errors.New(errors.PhaseConfig, errors.KindInvalidInput).Detail(format, args...).Build()
}
