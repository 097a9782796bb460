// Package config loads session settings from defaults, an optional TOML file and flags
package config

import (
	"flag"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/snake/parameter"
)

// Duration is a time.Duration written as a string in TOML ("100ms")
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the settings fixed for a session
type Config struct {
	TickInterval Duration `toml:"tick_interval"`
	PollTimeout  Duration `toml:"poll_timeout"`
	Growth       string   `toml:"growth"`
	Food         string   `toml:"food"`
	Seed         uint64   `toml:"seed"` // 0 seeds from the clock
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickInterval: Duration{parameter.TickInterval},
		PollTimeout:  Duration{parameter.PollTimeout},
		Growth:       parameter.GrowthHeading,
		Food:         parameter.FoodPermissive,
	}
}

// Load reads path over the defaults; keys not known to Config are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate rejects settings the game loop cannot run with
func (c Config) Validate() error {
	if c.TickInterval.Duration <= 0 {
		return errors.Errorf("tick_interval must be positive, got %v", c.TickInterval.Duration)
	}
	if c.PollTimeout.Duration <= 0 {
		return errors.Errorf("poll_timeout must be positive, got %v", c.PollTimeout.Duration)
	}
	switch c.Growth {
	case parameter.GrowthHeading, parameter.GrowthTrailing:
	default:
		return errors.Errorf("growth must be %q or %q, got %q", parameter.GrowthHeading, parameter.GrowthTrailing, c.Growth)
	}
	switch c.Food {
	case parameter.FoodPermissive, parameter.FoodAvoidBody:
	default:
		return errors.Errorf("food must be %q or %q, got %q", parameter.FoodPermissive, parameter.FoodAvoidBody, c.Food)
	}
	return nil
}

// Flag names registered by RegisterFlags
const (
	FlagConfig = "config"
	FlagTick   = "tick"
	FlagPoll   = "poll"
	FlagGrowth = "growth"
	FlagFood   = "food"
	FlagSeed   = "seed"
)

// RegisterFlags defines the settings flags on fs
func RegisterFlags(fs *flag.FlagSet) {
	def := Default()
	fs.String(FlagConfig, "", "TOML settings file")
	fs.Duration(FlagTick, def.TickInterval.Duration, "simulation tick interval")
	fs.Duration(FlagPoll, def.PollTimeout.Duration, "max wait for a key within a tick")
	fs.String(FlagGrowth, def.Growth, "tail growth: heading or trailing")
	fs.String(FlagFood, def.Food, "food placement: permissive or avoid-body")
	fs.Uint64(FlagSeed, 0, "food RNG seed, 0 for time-based")
}

// FromFlags builds the config from defaults, the -config file, then explicitly set flags
func FromFlags(fs *flag.FlagSet) (Config, error) {
	cfg := Default()
	if f := fs.Lookup(FlagConfig); f != nil && f.Value.String() != "" {
		loaded, err := Load(f.Value.String())
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case FlagTick:
			cfg.TickInterval.Duration, err = time.ParseDuration(v)
		case FlagPoll:
			cfg.PollTimeout.Duration, err = time.ParseDuration(v)
		case FlagGrowth:
			cfg.Growth = v
		case FlagFood:
			cfg.Food = v
		case FlagSeed:
			cfg.Seed, err = strconv.ParseUint(v, 10, 64)
		}
		if err != nil {
			err = errors.Wrapf(err, "flag -%s", f.Name)
		}
	})
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}
