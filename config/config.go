// Package config provides configuration types, defaults and loading for matreg.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/matreg/codec"
)

// Config holds all configuration options for matreg.
type Config struct {
	DataDir  string         `mapstructure:"data_dir" yaml:"data_dir"` // base for relative read/write paths
	Registry RegistryConfig `mapstructure:"registry" yaml:"registry"`
	Codec    CodecConfig    `mapstructure:"codec" yaml:"codec"`
	Random   RandomConfig   `mapstructure:"random" yaml:"random"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	REPL     REPLConfig     `mapstructure:"repl" yaml:"repl"`
}

// RegistryConfig sizes the slot table.
type RegistryConfig struct {
	Capacity    int  `mapstructure:"capacity" yaml:"capacity"`
	UniqueNames bool `mapstructure:"unique_names" yaml:"unique_names"` // false allows ambiguous live names
}

// CodecConfig selects the on-disk layout and the decode element cap.
type CodecConfig struct {
	Format      string `mapstructure:"format" yaml:"format"` // "v1" (default) or "legacy"
	MaxElements uint64 `mapstructure:"max_elements" yaml:"max_elements"`
}

// RandomConfig seeds the random fill generator.
type RandomConfig struct {
	Seed uint64 `mapstructure:"seed" yaml:"seed"` // 0 means seed from the clock
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
	Development bool   `mapstructure:"development" yaml:"development"`
	File        string `mapstructure:"file" yaml:"file"` // empty logs to stderr
}

// REPLConfig configures the interactive shell.
type REPLConfig struct {
	Prompt    string `mapstructure:"prompt" yaml:"prompt"`
	Bootstrap bool   `mapstructure:"bootstrap" yaml:"bootstrap"` // create, fill and write temp_mat at start
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir:  ".",
		Registry: RegistryConfig{Capacity: 10, UniqueNames: true},
		Codec:    CodecConfig{Format: "v1", MaxElements: 1 << 24},
		Log:      LogConfig{Level: "warn"},
		REPL:     REPLConfig{Prompt: "> ", Bootstrap: true},
	}
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"capacity":  "registry.capacity",
	"format":    "codec.format",
	"log-level": "log.level",
	"seed":      "random.seed",
}

// Load resolves configuration from defaults, the config file, MATREG_*
// environment variables and flags (highest precedence).
//
// Config lookup order when path is empty:
//  1. .matreg/config.yaml (current directory)
//  2. ~/.config/matreg/config.yaml (user config)
//
// A missing file in the lookup locations is not an error; a missing explicit
// path is.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix("matreg")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else if _, err := os.Stat(filepath.Join(".matreg", "config.yaml")); err == nil {
		v.SetConfigFile(filepath.Join(".matreg", "config.yaml"))
	} else {
		home, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(home, ".config", "matreg"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("data_dir", d.DataDir)
	v.SetDefault("registry.capacity", d.Registry.Capacity)
	v.SetDefault("registry.unique_names", d.Registry.UniqueNames)
	v.SetDefault("codec.format", d.Codec.Format)
	v.SetDefault("codec.max_elements", d.Codec.MaxElements)
	v.SetDefault("random.seed", d.Random.Seed)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("repl.prompt", d.REPL.Prompt)
	v.SetDefault("repl.bootstrap", d.REPL.Bootstrap)
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	if c.Registry.Capacity < 1 {
		return fmt.Errorf("invalid config: registry.capacity must be >= 1, got %d", c.Registry.Capacity)
	}
	if _, err := codec.ParseFormat(c.Codec.Format); err != nil {
		return fmt.Errorf("invalid config: codec.format: %w", err)
	}
	if c.Codec.MaxElements < 1 {
		return fmt.Errorf("invalid config: codec.max_elements must be >= 1")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level: %w", err)
	}

	return nil
}

// CodecOptions converts the codec section into codec options.
// Call after Validate.
func (c Config) CodecOptions() []codec.Option {
	f, _ := codec.ParseFormat(c.Codec.Format)

	return []codec.Option{codec.WithFormat(f), codec.WithMaxElements(c.Codec.MaxElements)}
}
