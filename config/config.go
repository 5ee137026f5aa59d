// Package config loads engine configuration from defaults, an optional
// wordrack.yaml, and WORDRACK_* environment variables, in that order of
// precedence.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Store selects the persistence backend: "memory", "sqlite" or "redis".
	Store string `mapstructure:"store"`

	// SQLitePath is the database file used when Store is "sqlite".
	SQLitePath string `mapstructure:"sqlite-path"`

	// RedisURL is the connection URL used when Store is "redis".
	RedisURL string `mapstructure:"redis-url"`

	// LexiconPath points at a newline-separated word list. Empty means
	// no dictionary is loaded and word checks report not-ready.
	LexiconPath string `mapstructure:"lexicon-path"`

	// LexiconName labels the loaded lexicon in logs and game output.
	LexiconName string `mapstructure:"lexicon-name"`

	// DefaultLetterDistribution names the tile distribution for new games.
	DefaultLetterDistribution string `mapstructure:"default-letter-distribution"`

	// DistributionPath optionally points at a CSV tile distribution that
	// overrides the built-in one.
	DistributionPath string `mapstructure:"distribution-path"`

	Debug bool `mapstructure:"debug"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("store", "sqlite")
	v.SetDefault("sqlite-path", "wordrack.db")
	v.SetDefault("redis-url", "redis://localhost:6379")
	v.SetDefault("lexicon-path", "")
	v.SetDefault("lexicon-name", "NWL23")
	v.SetDefault("default-letter-distribution", "English")
	v.SetDefault("distribution-path", "")
	v.SetDefault("debug", false)

	v.SetConfigName("wordrack")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.wordrack")

	v.SetEnvPrefix("WORDRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
