package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jsphweid/gripdex/constants"
	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/model"
)

type Config struct {
	Tuning    string            `toml:"tuning,omitempty"`
	OutDir    string            `toml:"out_dir,omitempty"`
	Limit     int               `toml:"limit,omitempty"`
	Server    ServerConfig      `toml:"server"`
	Generator model.GripOptions `toml:"generator"`
}

type ServerConfig struct {
	Addr           string   `toml:"addr,omitempty"`
	CacheSize      int      `toml:"cache_size,omitempty"`
	AllowedOrigins []string `toml:"allowed_origins,omitempty"`
}

// DefaultConfigPath returns ~/.config/gripdex/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "gripdex", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := cfg.ResolvedTuning(); err != nil {
		return cfg, err
	}
	if err := cfg.GeneratorOptions().Validate(); err != nil {
		return cfg, fmt.Errorf("generator config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the zero Config,
// which resolves to the defaults.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// ResolvedTuning prefers the environment, then the file, then standard tuning.
func (c Config) ResolvedTuning() (model.Tuning, error) {
	s := pick(constants.GetTuning(), c.Tuning)
	if s == "" {
		return model.StandardTuning, nil
	}
	t, err := model.ParseTuning(s)
	if err != nil {
		return t, fmt.Errorf("tuning %q: %w", s, err)
	}
	return t, nil
}

func (c Config) ResolvedAddr() string {
	if os.Getenv(constants.AddrEnv) != "" {
		return constants.GetAddr()
	}
	return pick(c.Server.Addr, constants.DefaultAddr)
}

func (c Config) ResolvedOutDir() string {
	if os.Getenv(constants.OutDirEnv) != "" {
		return constants.GetOutDir()
	}
	return pick(c.OutDir, constants.DefaultOutDir)
}

func (c Config) ResolvedLimit() int {
	if c.Limit > 0 {
		return c.Limit
	}
	return constants.DefaultLimit
}

func (c Config) ResolvedCacheSize() int {
	if c.Server.CacheSize > 0 {
		return c.Server.CacheSize
	}
	return constants.CacheSize
}

// ResolvedAllowedOrigins returns the configured CORS origins, all origins
// when none are set.
func (c Config) ResolvedAllowedOrigins() []string {
	if len(c.Server.AllowedOrigins) > 0 {
		return c.Server.AllowedOrigins
	}
	return []string{"*"}
}

// GeneratorOptions layers the [generator] table over the defaults.
func (c Config) GeneratorOptions() grip.Options {
	return grip.DefaultOptions().Override(&c.Generator)
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// GripOptionsOf spells out every generator option, for writing a complete
// [generator] table.
func GripOptionsOf(o grip.Options) model.GripOptions {
	return model.GripOptions{
		MinFret:                 &o.MinFret,
		MaxFret:                 &o.MaxFret,
		MinimalPlayableStrings:  &o.MinimalPlayableStrings,
		AllowBarre:              &o.AllowBarre,
		AllowInversions:         &o.AllowInversions,
		AllowIncompleteChords:   &o.AllowIncompleteChords,
		AllowMutedStringsInside: &o.AllowMutedStringsInside,
		AllowDuplicateNotes:     &o.AllowDuplicateNotes,
		WindowSpan:              &o.WindowSpan,
		FingerBudget:            &o.FingerBudget,
		RootForcedVariant:       &o.RootForcedVariant,
	}
}
