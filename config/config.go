package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hit-and-run/audio"
	"github.com/lixenwraith/hit-and-run/input"
	"github.com/lixenwraith/hit-and-run/parameter"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "HITRUN_"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// SimConfig tunes the simulation host
type SimConfig struct {
	TickRate    int     `toml:"tick_rate"`
	Seed        uint64  `toml:"seed"` // 0 seeds from the clock
	BossEvery   int     `toml:"boss_every"`
	FieldWidth  float64 `toml:"field_width"`  // headless only; the terminal sets the field otherwise
	FieldHeight float64 `toml:"field_height"` // headless only
}

// DisplayConfig maps terminal cells to field units
type DisplayConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// AudioSection is the [audio] table
type AudioSection struct {
	Enabled    bool               `toml:"enabled"`
	Volume     float64            `toml:"volume"`
	SampleRate int                `toml:"sample_rate"`
	Effects    map[string]float64 `toml:"effects"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Config is the full program configuration
type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioSection  `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	// Keys overrides bindings, e.g. x = "reset"; "none" unbinds
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	ac := audio.DefaultAudioConfig()
	return &Config{
		Sim: SimConfig{
			TickRate:    parameter.TickRateDefault,
			BossEvery:   parameter.BossEveryDefault,
			FieldWidth:  parameter.FieldWidthDefault,
			FieldHeight: parameter.FieldHeightDefault,
		},
		Display: DisplayConfig{
			CellWidth:  parameter.CellWidthDefault,
			CellHeight: parameter.CellHeightDefault,
		},
		Audio: AudioSection{
			Enabled:    ac.Enabled,
			Volume:     ac.MasterVolume,
			SampleRate: ac.SampleRate,
		},
		Log: LogConfig{Dir: parameter.LogDirDefault},
	}
}

// Load layers defaults, the optional TOML file at path and HITRUN_* environment overrides, then validates
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a TOML file over the current values; unknown keys are rejected
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays HITRUN_* variables read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}
	parseInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	parseBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}

	parseInt("TICK_RATE", &c.Sim.TickRate)
	parseInt("BOSS_EVERY", &c.Sim.BossEvery)
	if v, ok := get("SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Sim.Seed = n
		}
	}

	parseBool("AUDIO_ENABLED", &c.Audio.Enabled)
	// Master volume is given as 0-100
	if v, ok := get("MASTER_VOLUME"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMASTER_VOLUME: %w", EnvPrefix, err))
		} else {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		}
	}
	// Effect volumes are a JSON object, e.g. {"shot":0.2,"kill":1}
	if v, ok := get("SFX_VOLUMES"); ok {
		var vols map[string]float64
		if err := json.Unmarshal([]byte(v), &vols); err != nil {
			errs = append(errs, fmt.Errorf("%sSFX_VOLUMES: %w", EnvPrefix, err))
		} else {
			if c.Audio.Effects == nil {
				c.Audio.Effects = make(map[string]float64, len(vols))
			}
			for k, vol := range vols {
				c.Audio.Effects[k] = vol
			}
		}
	}

	parseBool("DEBUG", &c.Log.Debug)
	if v, ok := get("LOG_DIR"); ok {
		c.Log.Dir = v
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Validate rejects values the host cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sim.tick_rate must be positive, got %d", c.Sim.TickRate))
	}
	if c.Sim.BossEvery < 0 {
		errs = append(errs, fmt.Errorf("sim.boss_every must not be negative, got %d", c.Sim.BossEvery))
	}
	if c.Sim.FieldWidth <= 0 || c.Sim.FieldHeight <= 0 {
		errs = append(errs, fmt.Errorf("sim field must be positive, got %vx%v", c.Sim.FieldWidth, c.Sim.FieldHeight))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("display cell size must be positive, got %vx%v", c.Display.CellWidth, c.Display.CellHeight))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0,1], got %v", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if _, err := c.AudioConfig(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.KeyTable(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// AudioConfig converts the [audio] table into the sound manager's config
func (c *Config) AudioConfig() (*audio.AudioConfig, error) {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	ac.SampleRate = c.Audio.SampleRate
	if err := ac.SetEffectVolumes(c.Audio.Effects); err != nil {
		return nil, fmt.Errorf("audio.effects: %w", err)
	}
	return ac, nil
}

// KeyTable applies [keys] over the default bindings
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt, err := input.DefaultKeyTable().WithBindings(c.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return kt, nil
}
