// Package freedict fetches word entries from the Free Dictionary API.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"

type Config struct {
	BaseURL string
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration
	// RetryAttempts is the number of retries after the first attempt.
	RetryAttempts uint
	// CacheDirectory enables the per-word response cache when non-empty.
	CacheDirectory string
}

// Client implements dictionary.Fetcher against the Free Dictionary API.
type Client struct {
	httpClient       *resty.Client
	cache            *FileCache
	maxRetryAttempts uint
}

var _ dictionary.Fetcher = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	c := &Client{
		httpClient:       client,
		maxRetryAttempts: config.RetryAttempts,
	}
	if config.CacheDirectory != "" {
		c.cache = NewFileCache(config.CacheDirectory)
	}
	return c
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type apiEntry struct {
	Word     string       `json:"word"`
	Meanings []apiMeaning `json:"meanings"`
}

type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Fetch implements dictionary.Fetcher. A word the upstream does not know
// (HTTP 404) or an entry without all three fields returns (nil, nil).
func (client *Client) Fetch(ctx context.Context, word, language string) (*lexicon.Entry, error) {
	request := func() ([]byte, error) {
		return client.request(ctx, word, language)
	}

	var body []byte
	var err error
	if client.cache != nil {
		body, err = client.cache.cache(language, word, request)
	} else {
		body, err = request()
	}
	if err != nil {
		return nil, fmt.Errorf("freedict request(%s, %s) > %w", word, language, err)
	}
	if body == nil {
		return nil, nil
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return mapEntry(entries), nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors) and rate limiting
	if strings.Contains(errStr, "response error 5") {
		return true
	}
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// request performs the upstream call with retries. Nil contents mean the
// word is unknown upstream.
func (client *Client) request(ctx context.Context, word, language string) ([]byte, error) {
	var contents []byte
	if err := retry.Do(
		func() error {
			body, err := client.get(ctx, word, language)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			contents = body
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return nil, err
	}
	return contents, nil
}

func (client *Client) get(ctx context.Context, word, language string) ([]byte, error) {
	response, err := client.httpClient.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/%s/%s", url.PathEscape(language), url.PathEscape(word)))
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if response.IsError() {
		return nil, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	slog.Debug("freedict response",
		slog.String("word", word),
		slog.String("language", language),
		slog.Int("status", response.StatusCode()),
	)
	return response.Bytes(), nil
}

// mapEntry keeps the first definition of the first meaning, the way the
// store has always consumed this API. Anything less than a complete
// entry is unusable.
func mapEntry(entries []apiEntry) *lexicon.Entry {
	if len(entries) == 0 || len(entries[0].Meanings) == 0 {
		return nil
	}
	meaning := entries[0].Meanings[0]
	if len(meaning.Definitions) == 0 {
		return nil
	}

	entry := lexicon.Entry{
		Definition:   meaning.Definitions[0].Definition,
		PartOfSpeech: meaning.PartOfSpeech,
		Example:      meaning.Definitions[0].Example,
	}.Trimmed()
	if !entry.IsComplete() {
		return nil
	}
	return &entry
}
