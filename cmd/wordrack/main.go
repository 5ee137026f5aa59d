package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordrack/wordrack/config"
	"github.com/wordrack/wordrack/lexicon"
	"github.com/wordrack/wordrack/shell"
	"github.com/wordrack/wordrack/store"
	"github.com/wordrack/wordrack/store/memstore"
	"github.com/wordrack/wordrack/store/redisstore"
	"github.com/wordrack/wordrack/store/sqlitestore"
	"github.com/wordrack/wordrack/tiles"
)

var GitVersion string

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store).Msg("opening store")
	}

	lex := loadLexicon(cfg)
	dist := loadDistribution(cfg)

	idleConnsClosed := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(idleConnsClosed)
	}()

	ctx := context.Background()
	sc := shell.NewShellController(st, lex, dist)
	sc.Resume(ctx)
	go sc.Loop(ctx, sig)

	<-idleConnsClosed
	sc.Cleanup()
	log.Info().Msg("shutting down")
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store {
	case "memory":
		return memstore.New(), nil
	case "redis":
		rcfg := redisstore.DefaultConfig()
		rcfg.URL = cfg.RedisURL
		return redisstore.New(rcfg)
	case "sqlite":
		return sqlitestore.Open(cfg.SQLitePath)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
}

// loadLexicon reads the configured word list. With no list configured,
// or an unreadable one, the dictionary stays unready and the modes that
// check words refuse submissions until a list is provided.
func loadLexicon(cfg *config.Config) lexicon.Lexicon {
	if cfg.LexiconPath == "" {
		log.Info().Msg("no lexicon configured; only freeplay moves can be submitted")
		return lexicon.NewSet(cfg.LexiconName)
	}
	f, err := os.Open(cfg.LexiconPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.LexiconPath).Msg("cannot open lexicon")
		return lexicon.NewSet(cfg.LexiconName)
	}
	defer f.Close()
	lex, err := lexicon.ScanSet(cfg.LexiconName, f)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.LexiconPath).Msg("cannot read lexicon")
		return lexicon.NewSet(cfg.LexiconName)
	}
	log.Info().Str("lexicon", cfg.LexiconName).Msg("lexicon loaded")
	return lex
}

func loadDistribution(cfg *config.Config) *tiles.LetterDistribution {
	if cfg.DistributionPath == "" {
		return tiles.EnglishLetterDistribution()
	}
	f, err := os.Open(cfg.DistributionPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DistributionPath).Msg("cannot open tile distribution; using English")
		return tiles.EnglishLetterDistribution()
	}
	defer f.Close()
	ld, err := tiles.ScanLetterDistribution(f)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DistributionPath).Msg("cannot read tile distribution; using English")
		return tiles.EnglishLetterDistribution()
	}
	return ld
}
