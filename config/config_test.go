package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)

	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.Store, "sqlite")
	is.Equal(cfg.SQLitePath, "wordrack.db")
	is.Equal(cfg.DefaultLetterDistribution, "English")
	is.Equal(cfg.Debug, false)
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)

	t.Setenv("WORDRACK_STORE", "redis")
	t.Setenv("WORDRACK_REDIS_URL", "redis://example:6380")
	t.Setenv("WORDRACK_DEBUG", "true")
	t.Setenv("WORDRACK_LEXICON_NAME", "CSW24")

	cfg, err := Load()
	is.NoErr(err)
	is.Equal(cfg.Store, "redis")
	is.Equal(cfg.RedisURL, "redis://example:6380")
	is.Equal(cfg.Debug, true)
	is.Equal(cfg.LexiconName, "CSW24")
}
