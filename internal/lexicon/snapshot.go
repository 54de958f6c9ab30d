package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// SnapshotEntry is one row of the whole-lexicon YAML dump.
type SnapshotEntry struct {
	Language     string `yaml:"language"`
	Word         string `yaml:"word"`
	Definition   string `yaml:"definition"`
	PartOfSpeech string `yaml:"part_of_speech"`
	Example      string `yaml:"example"`
}

// WriteSnapshot dumps every language's entries to a YAML file at path,
// sorted by language then word, for review and versioning outside the
// backing files.
func (s *Store) WriteSnapshot(path string) error {
	languages := make([]string, 0, len(s.lexicon))
	for language := range s.lexicon {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	var snapshot []SnapshotEntry
	for _, language := range languages {
		entries, _ := s.Entries(language)
		for _, we := range entries {
			snapshot = append(snapshot, SnapshotEntry{
				Language:     language,
				Word:         we.Word,
				Definition:   we.Entry.Definition,
				PartOfSpeech: we.Entry.PartOfSpeech,
				Example:      we.Entry.Example,
			})
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := writeYamlFile(path, snapshot); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", path, err)
	}
	return nil
}

// ReadSnapshot loads a YAML dump back into a Lexicon. Rows are applied in
// file order, so a duplicated (language, word) pair keeps the last row.
func ReadSnapshot(path string) (Lexicon, error) {
	snapshot, err := readYamlFile[[]SnapshotEntry](path)
	if err != nil {
		return nil, fmt.Errorf("readYamlFile(%s) > %w", path, err)
	}

	lex := Lexicon{}
	for _, row := range snapshot {
		language := Normalize(row.Language)
		word := Normalize(row.Word)
		if language == "" || word == "" {
			continue
		}
		if _, ok := lex[language]; !ok {
			lex[language] = map[string]Entry{}
		}
		lex[language][word] = Entry{
			Definition:   row.Definition,
			PartOfSpeech: row.PartOfSpeech,
			Example:      row.Example,
		}
	}
	return lex, nil
}
