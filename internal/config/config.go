package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	DefaultLanguage string           `mapstructure:"default_language" validate:"required,langcode"`
	Lexicon         LexiconConfig    `mapstructure:"lexicon"`
	Fetcher         FetcherConfig    `mapstructure:"fetcher"`
	Confidence      ConfidenceConfig `mapstructure:"confidence"`
	Database        DatabaseConfig   `mapstructure:"database"`
}

type LexiconConfig struct {
	DictionaryFile  string `mapstructure:"dictionary_file" validate:"required"`
	LanguagesFile   string `mapstructure:"languages_file" validate:"required"`
	ExportDirectory string `mapstructure:"export_directory" validate:"required"`
}

type FetcherConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
	RetryAttempts  uint   `mapstructure:"retry_attempts"`
	CacheDirectory string `mapstructure:"cache_directory"`
}

type ConfidenceConfig struct {
	HighMultiplier    float64 `mapstructure:"high_multiplier" validate:"gt=0"`
	PartialMultiplier float64 `mapstructure:"partial_multiplier" validate:"gt=0"`
	MaxConfidence     float64 `mapstructure:"max_confidence" validate:"gt=0"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

// ExportCSVPath is the default CSV mirror location under the configured
// export directory.
func (c LexiconConfig) ExportCSVPath() string {
	return filepath.Join(c.ExportDirectory, "dictionary_export.csv")
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	v.SetDefault("default_language", "en")
	v.SetDefault("lexicon.dictionary_file", filepath.Join("data", "dictionary.json"))
	v.SetDefault("lexicon.languages_file", filepath.Join("data", "languages.json"))
	v.SetDefault("lexicon.export_directory", filepath.Join("data", "export"))
	v.SetDefault("fetcher.base_url", "https://api.dictionaryapi.dev/api/v2/entries")
	v.SetDefault("fetcher.timeout_seconds", 5)
	v.SetDefault("fetcher.retry_attempts", 2)
	v.SetDefault("fetcher.cache_directory", filepath.Join("data", "cache"))
	v.SetDefault("confidence.high_multiplier", 2.0)
	v.SetDefault("confidence.partial_multiplier", 1.5)
	v.SetDefault("confidence.max_confidence", 100.0)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordbook")

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "WORDBOOK_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBOOK_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "WORDBOOK_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBOOK_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate() > %w", err)
	}

	return &cfg, nil
}
