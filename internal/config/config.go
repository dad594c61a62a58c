// Package config resolves graphstat's runtime settings from flags, the
// environment and an optional YAML file, and builds the process logger.
//
// Precedence (highest first): explicitly set flag, GRAPHSTAT_* environment
// variable, config file, built-in default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by Load.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeySeed      = "seed"
	KeyWorkers   = "workers"

	// EnvPrefix namespaces environment variables: log.level → GRAPHSTAT_LOG_LEVEL.
	EnvPrefix = "GRAPHSTAT"
	// DefaultFileName is looked up in the user's home directory when no
	// --config path is given.
	DefaultFileName = ".graphstat.yaml"

	defaultLogLevel  = "warn"
	defaultLogFormat = FormatText
	defaultWorkers   = 4
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalidConfig wraps every validation failure in Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Config is the resolved configuration.
type Config struct {
	Log LogConfig
	// Seed is the rng master seed; meaningful only when Seeded is true.
	Seed   uint64
	Seeded bool
	// Workers is the rng worker count for the rng and sample commands.
	Workers int
	// File is the config file actually read, empty if none.
	File string
}

// SetDefaults registers built-in defaults and environment lookup on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
	v.SetDefault(KeyWorkers, defaultWorkers)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads the config file into v and returns the validated Config.
//
// With cfgFile set, the file must exist and parse. Without it,
// $HOME/.graphstat.yaml is read when present and silently skipped otherwise.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	explicit := cfgFile != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			cfgFile = filepath.Join(home, DefaultFileName)
		}
	}

	var cfg Config
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		err := v.ReadInConfig()
		switch {
		case err == nil:
			cfg.File = v.ConfigFileUsed()
		case !explicit && isNotFound(err):
			// optional default file
		default:
			return Config{}, fmt.Errorf("config: read %s: %w", cfgFile, err)
		}
	}

	cfg.Log = LogConfig{
		Level:  strings.ToLower(v.GetString(KeyLogLevel)),
		Format: strings.ToLower(v.GetString(KeyLogFormat)),
	}
	cfg.Workers = v.GetInt(KeyWorkers)
	if v.IsSet(KeySeed) {
		cfg.Seed = v.GetUint64(KeySeed)
		cfg.Seeded = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%s=%q (want %s|%s): %w", KeyLogFormat, c.Log.Format, FormatText, FormatJSON, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%s=%d (want ≥ 1): %w", KeyWorkers, c.Workers, ErrInvalidConfig)
	}

	return nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}
