package commands

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the CLI's file-based settings.
type Config struct {
	FeedLibrary      string  `mapstructure:"feed_library"`
	Profiles         string  `mapstructure:"profiles"`
	Format           string  `mapstructure:"format"`
	SubstitutionRate float64 `mapstructure:"substitution_rate"`
}

// LoadConfig reads rantsoen.yaml from the given path (or the working
// directory) and materializes a Config. A missing file yields the defaults;
// settings are data, not secrets, so there is no environment fallback.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("format", "text")
	v.SetDefault("substitution_rate", 0.0) // 0 = table default

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("rantsoen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A present-but-broken default config should not be ignored.
			return nil, fmt.Errorf("failed to read rantsoen.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
