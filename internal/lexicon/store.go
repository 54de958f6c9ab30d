package lexicon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/at-ishikawa/wordbook/internal/assets"
)

const backupTimestampLayout = "20060102150405"

// Store owns the in-memory lexicon and language registry together with
// their backing files. It provides raw access only; business rules such
// as uniqueness and fetch fallback live in the dictionary manager, which
// also serializes access. Store itself is not safe for concurrent use.
type Store struct {
	dictionaryPath string
	languagesPath  string

	lexicon  Lexicon
	registry Registry
}

func NewStore(dictionaryPath, languagesPath string) *Store {
	return &Store{
		dictionaryPath: dictionaryPath,
		languagesPath:  languagesPath,
		lexicon:        Lexicon{},
		registry:       Registry{},
	}
}

// Load reads both backing files. A missing or malformed file degrades to
// an empty structure so the process always starts; a missing languages
// file falls back to the embedded default registry instead.
func (s *Store) Load() {
	lexicon, err := readJSONFile[Lexicon](s.dictionaryPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("dictionary file is unreadable, starting empty",
				slog.String("path", s.dictionaryPath),
				slog.Any("error", err),
			)
		}
		lexicon = Lexicon{}
	}
	s.lexicon = lexicon

	registry, err := readJSONFile[Registry](s.languagesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			registry = defaultRegistry()
		} else {
			slog.Warn("languages file is unreadable, starting empty",
				slog.String("path", s.languagesPath),
				slog.Any("error", err),
			)
			registry = Registry{}
		}
	}
	s.registry = registry
}

func defaultRegistry() Registry {
	var registry Registry
	if err := json.Unmarshal(assets.LanguageSeed(), &registry); err != nil {
		slog.Warn("embedded language seed is malformed, starting empty", slog.Any("error", err))
		return Registry{}
	}
	return registry
}

// Save persists both structures. Each backing file that already exists is
// first copied to a timestamped sibling backup, then overwritten; both
// files are re-parsed afterwards to confirm they are well-formed. On any
// failure the in-memory state is left intact so the caller may retry, and
// already written files are not rolled back.
func (s *Store) Save() error {
	timestamp := time.Now().Format(backupTimestampLayout)

	if err := backupFile(s.dictionaryPath, timestamp); err != nil {
		return fmt.Errorf("backupFile(%s) > %w", s.dictionaryPath, err)
	}
	if err := writeJSONFile(s.dictionaryPath, s.lexicon); err != nil {
		return fmt.Errorf("writeJSONFile(%s) > %w", s.dictionaryPath, err)
	}

	if err := backupFile(s.languagesPath, timestamp); err != nil {
		return fmt.Errorf("backupFile(%s) > %w", s.languagesPath, err)
	}
	if err := writeJSONFile(s.languagesPath, s.registry); err != nil {
		return fmt.Errorf("writeJSONFile(%s) > %w", s.languagesPath, err)
	}

	for _, path := range []string{s.dictionaryPath, s.languagesPath} {
		if !s.Validate(path) {
			return fmt.Errorf("file %s did not re-parse after save", path)
		}
	}
	return nil
}

// Validate reports whether the file at path parses as well-formed JSON.
func (s *Store) Validate(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Valid(data)
}

// backupFile copies path to <path>.backup.<timestamp> when it exists.
// Backups are never pruned.
func backupFile(path, timestamp string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("os.Stat > %w", err)
	}

	source, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = source.Close()
	}()

	backupPath := fmt.Sprintf("%s.backup.%s", path, timestamp)
	backup, err := os.Create(backupPath)
	if err != nil {
		return fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = backup.Close()
	}()

	if _, err := io.Copy(backup, source); err != nil {
		return fmt.Errorf("io.Copy > %w", err)
	}
	return nil
}

// Get returns the entry for a normalized (language, word) pair.
func (s *Store) Get(language, word string) (Entry, bool) {
	entry, ok := s.lexicon[language][word]
	return entry, ok
}

// Set stores an entry, creating the language bucket when absent.
func (s *Store) Set(language, word string, entry Entry) {
	s.EnsureLanguage(language)
	s.lexicon[language][word] = entry
}

// Delete removes a word and reports whether it was present.
func (s *Store) Delete(language, word string) bool {
	bucket, ok := s.lexicon[language]
	if !ok {
		return false
	}
	if _, ok := bucket[word]; !ok {
		return false
	}
	delete(bucket, word)
	return true
}

// EnsureLanguage creates an empty bucket for the language when absent.
func (s *Store) EnsureLanguage(language string) {
	if _, ok := s.lexicon[language]; !ok {
		s.lexicon[language] = map[string]Entry{}
	}
}

// HasLanguage reports whether the lexicon holds a bucket for the language.
func (s *Store) HasLanguage(language string) bool {
	_, ok := s.lexicon[language]
	return ok
}

// Words returns the words of one language in lexicographic order, and
// false when the language is unknown.
func (s *Store) Words(language string) ([]string, bool) {
	bucket, ok := s.lexicon[language]
	if !ok {
		return nil, false
	}
	words := make([]string, 0, len(bucket))
	for word := range bucket {
		words = append(words, word)
	}
	sort.Strings(words)
	return words, true
}

// Entries returns word/entry pairs of one language sorted by word, and
// false when the language is unknown.
func (s *Store) Entries(language string) ([]WordEntry, bool) {
	words, ok := s.Words(language)
	if !ok {
		return nil, false
	}
	entries := make([]WordEntry, 0, len(words))
	for _, word := range words {
		entries = append(entries, WordEntry{Word: word, Entry: s.lexicon[language][word]})
	}
	return entries, true
}

// Lexicon returns the in-memory lexicon. Callers must not mutate it.
func (s *Store) Lexicon() Lexicon {
	return s.lexicon
}

// Language returns the registry record for a code.
func (s *Store) Language(code string) (Language, bool) {
	language, ok := s.registry[code]
	return language, ok
}

// RegistryLanguages returns all registry records sorted by code.
func (s *Store) RegistryLanguages() []Language {
	codes := make([]string, 0, len(s.registry))
	for code := range s.registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	languages := make([]Language, 0, len(codes))
	for _, code := range codes {
		languages = append(languages, s.registry[code])
	}
	return languages
}
