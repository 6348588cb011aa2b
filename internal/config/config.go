package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool-level settings.
type Config struct {
	// ManifestFile is the default manifest file name.
	ManifestFile string `mapstructure:"manifest_file"`
	// SkipFile is the default skip file name.
	SkipFile string `mapstructure:"skip_file"`
	// LogLevel is the default log level (trace, debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from defaults, an optional .mani.yaml in the
// working directory, and MANI_* environment variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("manifest_file", "MANIFEST")
	v.SetDefault("skip_file", "MANIFEST.SKIP")
	v.SetDefault("log_level", "warn")

	v.SetConfigName(".mani")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("MANI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
