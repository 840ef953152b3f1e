// Package config loads the runtime configuration of the iterbridge tooling.
//
// Values are resolved in the following order, later ones winning:
//   - built-in defaults
//   - an optional TOML file
//   - ITERBRIDGE_ prefixed environment variables (ITERBRIDGE_LOGGING_LEVEL, ITERBRIDGE_SNAPSHOT_PATH, ...)
package config

import (
	"io"
	"math"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"go.llib.dev/iterbridge/pkg/errorkit"
	"go.llib.dev/iterbridge/pkg/logging"
)

const EnvPrefix = "ITERBRIDGE"

const ErrInvalid errorkit.Error = "invalid configuration"

type Config struct {
	Logging  logging.Config `toml:"logging" mapstructure:"logging"`
	Iter     IterConfig     `toml:"iter" mapstructure:"iter"`
	Snapshot SnapshotConfig `toml:"snapshot" mapstructure:"snapshot"`
}

type IterConfig struct {
	// MaxIndex is the overflow ceiling of sequence iterator cursors.
	MaxIndex int `toml:"max_index" mapstructure:"max_index"`
}

type SnapshotConfig struct {
	// Path of the bolt database file.
	Path string `toml:"path" mapstructure:"path"`
	// Bucket is the name of the bolt bucket that holds the records.
	Bucket string `toml:"bucket" mapstructure:"bucket"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Iter.MaxIndex == 0 {
		c.Iter.MaxIndex = math.MaxInt
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "iterbridge.db"
	}
	if c.Snapshot.Bucket == "" {
		c.Snapshot.Bucket = "snapshots"
	}
}

func (c Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return ErrInvalid.Wrap(err)
	}
	if c.Iter.MaxIndex < 0 {
		return ErrInvalid.F("iter.max_index must not be negative (got: %d)", c.Iter.MaxIndex)
	}
	if strings.TrimSpace(c.Snapshot.Bucket) == "" {
		return ErrInvalid.F("snapshot.bucket must not be empty")
	}
	return nil
}

// Load reads the configuration.
// An empty path skips the file, and only the defaults and the environment are used.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about.
	def := Default()
	v.SetDefault("logging.level", def.Logging.Level.String())
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("logging.timestamp", def.Logging.Timestamp)
	v.SetDefault("iter.max_index", def.Iter.MaxIndex)
	v.SetDefault("snapshot.path", def.Snapshot.Path)
	v.SetDefault("snapshot.bucket", def.Snapshot.Bucket)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, ErrInvalid.F("failed to read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, ErrInvalid.Wrap(err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Encode writes the configuration as TOML.
func Encode(w io.Writer, c Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(c)
}
