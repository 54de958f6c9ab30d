package dictionary

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/wordbook/internal/confidence"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

const (
	defaultLanguage     = "en"
	defaultFetchTimeout = 5 * time.Second
	exportFileName      = "dictionary_export.csv"
)

// Config tunes a Manager. Zero fields keep the defaults.
type Config struct {
	// DefaultLanguage is the active language until SetLanguage changes it.
	DefaultLanguage string
	// ExportCSVPath is where the CSV mirror is regenerated after every
	// mutation and where ExportCSV writes when no path is given.
	ExportCSVPath string
	// FetchTimeout bounds a single external definition lookup.
	FetchTimeout time.Duration
}

// Manager owns every dictionary operation. A single mutex is held across
// mutate, persist and mirror regeneration, so concurrent readers never
// observe a save in progress and memory always reflects the last
// attempted save.
type Manager struct {
	mu      sync.Mutex
	store   *lexicon.Store
	fetcher Fetcher
	scorer  *confidence.Scorer

	language      string
	exportCSVPath string
	fetchTimeout  time.Duration
}

func NewManager(store *lexicon.Store, fetcher Fetcher, scorer *confidence.Scorer, config Config) *Manager {
	manager := &Manager{
		store:         store,
		fetcher:       fetcher,
		scorer:        scorer,
		language:      lexicon.Normalize(config.DefaultLanguage),
		exportCSVPath: config.ExportCSVPath,
		fetchTimeout:  config.FetchTimeout,
	}
	if manager.language == "" {
		manager.language = defaultLanguage
	}
	if manager.exportCSVPath == "" {
		manager.exportCSVPath = filepath.Join("data", "export", exportFileName)
	}
	if manager.fetchTimeout <= 0 {
		manager.fetchTimeout = defaultFetchTimeout
	}
	if manager.scorer == nil {
		manager.scorer = confidence.NewScorer(confidence.Config{})
	}
	return manager
}

// Language returns the active language code.
func (m *Manager) Language() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.language
}

// SetLanguage switches the active language. The code must exist in the
// language registry.
func (m *Manager) SetLanguage(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := lexicon.Normalize(code)
	if _, ok := m.store.Language(normalized); !ok {
		return fmt.Errorf("language %q is not registered: %w", normalized, lexicon.ErrNotFound)
	}
	m.language = normalized
	return nil
}

// AddWord inserts a word into a language. When any of the three entry
// fields is blank the external source is consulted with a bounded
// timeout; a fetch that yields nothing usable fails with
// lexicon.ErrUpstreamNotFound and leaves the store unchanged.
func (m *Manager) AddWord(ctx context.Context, word, language string, partial lexicon.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, lang, err := normalizeKeys(word, language)
	if err != nil {
		return err
	}
	if _, ok := m.store.Get(lang, w); ok {
		return fmt.Errorf("%q in language %q: %w", w, lang, lexicon.ErrConflict)
	}

	entry := partial.Trimmed()
	if entry.Definition == "" || entry.PartOfSpeech == "" || entry.Example == "" {
		fetched := m.fetch(ctx, w, lang)
		if fetched == nil {
			return fmt.Errorf("no definition and example found for %q, please provide them manually: %w",
				w, lexicon.ErrUpstreamNotFound)
		}
		entry = *fetched
	}

	m.store.Set(lang, w, entry)
	slog.Info("word added", slog.String("word", w), slog.String("language", lang))
	return m.persist(lang)
}

// ManualAddWord inserts a word with all three fields supplied by the
// caller. There is no fetch fallback; a blank field fails validation.
func (m *Manager) ManualAddWord(word, language, definition, partOfSpeech, example string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, lang, err := normalizeKeys(word, language)
	if err != nil {
		return err
	}

	entry := lexicon.Entry{
		Definition:   definition,
		PartOfSpeech: partOfSpeech,
		Example:      example,
	}.Trimmed()
	if !entry.IsComplete() {
		return fmt.Errorf("definition, part of speech and example are all required: %w", lexicon.ErrValidation)
	}
	if _, ok := m.store.Get(lang, w); ok {
		return fmt.Errorf("%q in language %q: %w", w, lang, lexicon.ErrConflict)
	}

	m.store.Set(lang, w, entry)
	slog.Info("word added manually", slog.String("word", w), slog.String("language", lang))
	return m.persist(lang)
}

// RemoveWord deletes a word from a language.
func (m *Manager) RemoveWord(word, language string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, lang, err := normalizeKeys(word, language)
	if err != nil {
		return err
	}
	if !m.store.Delete(lang, w) {
		return fmt.Errorf("%q in language %q: %w", w, lang, lexicon.ErrNotFound)
	}

	slog.Info("word removed", slog.String("word", w), slog.String("language", lang))
	return m.persist(lang)
}

// GetDefinition returns the entry for a word, without mutating anything.
func (m *Manager) GetDefinition(word, language string) (lexicon.Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Get(lexicon.Normalize(language), lexicon.Normalize(word))
}

// Description is the read view of one word: its entry plus the
// confidence score for how much text backs it.
type Description struct {
	Word       string
	Language   string
	Entry      lexicon.Entry
	Confidence float64
}

// ExampleText returns the stored usage example, or a fallback sentence
// when the entry has none.
func (d Description) ExampleText() string {
	if strings.TrimSpace(d.Entry.Example) != "" {
		return d.Entry.Example
	}
	return fmt.Sprintf("No usage example found for %q.", d.Word)
}

// Describe looks a word up and scores its entry.
func (m *Manager) Describe(word, language string) (Description, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := lexicon.Normalize(word)
	lang := lexicon.Normalize(language)
	entry, ok := m.store.Get(lang, w)
	if !ok {
		return Description{}, false
	}
	return Description{
		Word:       w,
		Language:   lang,
		Entry:      entry,
		Confidence: m.scorer.Score(entry.Definition, entry.Example),
	}, true
}

// ListWords returns the words of one language in lexicographic order,
// and false when the language is unknown.
func (m *Manager) ListWords(language string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Words(lexicon.Normalize(language))
}

// ListEntries returns the word and entry pairs of one language sorted by
// word, and false when the language is unknown.
func (m *Manager) ListEntries(language string) ([]lexicon.WordEntry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Entries(lexicon.Normalize(language))
}

// ListLanguages returns the registry records sorted by code.
func (m *Manager) ListLanguages() []lexicon.Language {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.RegistryLanguages()
}

// WriteSnapshot dumps the whole lexicon as YAML for review and versioning.
func (m *Manager) WriteSnapshot(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.WriteSnapshot(path); err != nil {
		return fmt.Errorf("store.WriteSnapshot(%s) > %w", path, err)
	}
	return nil
}

// ExportCSV serializes one language to CSV. An empty path means the
// configured mirror path. An unknown language fails without creating a
// file.
func (m *Manager) ExportCSV(language, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path == "" {
		path = m.exportCSVPath
	}
	lang := lexicon.Normalize(language)
	if err := m.store.WriteCSV(lang, path); err != nil {
		return fmt.Errorf("store.WriteCSV(%s) > %w", lang, err)
	}
	return nil
}

// ImportResult counts the outcome of a CSV import.
type ImportResult struct {
	Added   int
	Skipped int
}

// Message renders the user-facing import summary.
func (r ImportResult) Message() string {
	return fmt.Sprintf("Dictionary imported successfully. %d added, %d skipped.", r.Added, r.Skipped)
}

// ImportCSV merges rows from a CSV file into one language. The whole
// file is parsed before anything is committed, so a malformed file fails
// with no mutation at all. A row is skipped when its word, definition or
// part of speech is blank after trimming, or when the word already
// exists in the bucket; existing entries are never overwritten, and a
// duplicate inside the file is skipped on its second occurrence. The
// store persists once after all rows, and the mirror regenerates once.
func (m *Manager) ImportCSV(path, language string) (ImportResult, error) {
	var result ImportResult

	rows, err := lexicon.ReadCSV(path)
	if err != nil {
		return result, fmt.Errorf("lexicon.ReadCSV(%s) > %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	lang := lexicon.Normalize(language)
	if lang == "" {
		return result, fmt.Errorf("language must not be empty: %w", lexicon.ErrValidation)
	}
	m.store.EnsureLanguage(lang)

	for _, row := range rows {
		w := lexicon.Normalize(row.Word)
		entry := row.Entry.Trimmed()
		if w == "" || entry.Definition == "" || entry.PartOfSpeech == "" {
			result.Skipped++
			continue
		}
		if _, ok := m.store.Get(lang, w); ok {
			result.Skipped++
			continue
		}
		m.store.Set(lang, w, entry)
		result.Added++
	}

	slog.Info("dictionary imported",
		slog.String("path", path),
		slog.String("language", lang),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
	)
	return result, m.persist(lang)
}

// fetch consults the external source under the configured timeout. Any
// failure, timeout or incomplete result is treated as "no data".
func (m *Manager) fetch(ctx context.Context, word, language string) *lexicon.Entry {
	if m.fetcher == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, m.fetchTimeout)
	defer cancel()

	entry, err := m.fetcher.Fetch(ctx, word, language)
	if err != nil {
		slog.Warn("definition fetch failed",
			slog.String("word", word),
			slog.String("language", language),
			slog.Any("error", err),
		)
		return nil
	}
	if entry == nil {
		return nil
	}

	trimmed := entry.Trimmed()
	if !trimmed.IsComplete() {
		slog.Warn("fetched entry is incomplete, rejecting",
			slog.String("word", word),
			slog.String("language", language),
		)
		return nil
	}
	return &trimmed
}

// persist saves both backing files and regenerates the CSV mirror for
// the mutated language. A failed save keeps the in-memory state so the
// caller may retry; a failed mirror write is logged and not fatal.
func (m *Manager) persist(language string) error {
	if err := m.store.Save(); err != nil {
		return fmt.Errorf("store.Save() > %w", err)
	}
	if err := m.store.WriteCSV(language, m.exportCSVPath); err != nil {
		slog.Warn("csv mirror regeneration failed",
			slog.String("language", language),
			slog.Any("error", err),
		)
	}
	return nil
}

func normalizeKeys(word, language string) (string, string, error) {
	w := lexicon.Normalize(word)
	if w == "" {
		return "", "", fmt.Errorf("word must not be empty: %w", lexicon.ErrValidation)
	}
	lang := lexicon.Normalize(language)
	if lang == "" {
		return "", "", fmt.Errorf("language must not be empty: %w", lexicon.ErrValidation)
	}
	return w, lang, nil
}
