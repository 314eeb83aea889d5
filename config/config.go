package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/streamkit/database"
	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/logger"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. STREAMKIT_LOGGER_LEVEL overrides logger.level.
const EnvPrefix = "STREAMKIT"

// Config holds configuration for the utility layer.
type Config struct {
	Logger   logger.Config   `yaml:"logger" mapstructure:"logger"`
	Database database.Config `yaml:"database" mapstructure:"database"`
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Logger.ApplyDefaults()
	c.Database.ApplyDefaults()
}

// Options controls where Load looks for configuration.
type Options struct {
	// ConfigFile is an explicit YAML file path. Optional.
	ConfigFile string
	// EnvFile is an explicit .env file path loaded before reading
	// environment overrides. Optional.
	EnvFile string
}

// Load reads configuration from the given YAML file (when present) and
// applies environment variable overrides, then fills in defaults.
// A missing config file is not an error: defaults plus environment win.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if _, err := os.Stat(opts.EnvFile); err == nil {
			if err := godotenv.Load(opts.EnvFile); err != nil {
				return nil, errors.FileError(opts.EnvFile, err)
			}
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register keys so environment overrides are visible to Unmarshal.
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.timestamp", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.dbname", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, errors.FileError(opts.ConfigFile, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.InvalidInput("config", "unable to decode configuration").WithCause(err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
