package main

import (
	"fmt"
	"time"

	"github.com/at-ishikawa/wordbook/internal/confidence"
	"github.com/at-ishikawa/wordbook/internal/config"
	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/dictionary/freedict"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newManager builds the store, fetcher and scorer from the configuration
// and applies the --language override when one was given.
func newManager(cfg *config.Config) (*dictionary.Manager, error) {
	store := lexicon.NewStore(cfg.Lexicon.DictionaryFile, cfg.Lexicon.LanguagesFile)
	store.Load()

	fetcher := freedict.NewClient(freedict.Config{
		BaseURL:        cfg.Fetcher.BaseURL,
		Timeout:        time.Duration(cfg.Fetcher.TimeoutSeconds) * time.Second,
		RetryAttempts:  cfg.Fetcher.RetryAttempts,
		CacheDirectory: cfg.Fetcher.CacheDirectory,
	})
	scorer := confidence.NewScorer(confidence.Config{
		HighMultiplier:    cfg.Confidence.HighMultiplier,
		PartialMultiplier: cfg.Confidence.PartialMultiplier,
		MaxConfidence:     cfg.Confidence.MaxConfidence,
	})

	manager := dictionary.NewManager(store, fetcher, scorer, dictionary.Config{
		DefaultLanguage: cfg.DefaultLanguage,
		ExportCSVPath:   cfg.Lexicon.ExportCSVPath(),
		FetchTimeout:    time.Duration(cfg.Fetcher.TimeoutSeconds) * time.Second,
	})
	if languageFlag != "" {
		if err := manager.SetLanguage(languageFlag); err != nil {
			return nil, fmt.Errorf("manager.SetLanguage(%s) > %w", languageFlag, err)
		}
	}
	return manager, nil
}
