package lexicon

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// csvColumns is the fixed column set of the CSV mirror and of import files.
var csvColumns = []string{"word", "definition", "part_of_speech", "example"}

// WriteCSV serializes one language's entries to a CSV file at path,
// header first, one row per word in lexicographic order. An unknown
// language fails without creating the file; an empty bucket produces a
// header-only file.
func (s *Store) WriteCSV(language, path string) error {
	entries, ok := s.Entries(language)
	if !ok {
		return fmt.Errorf("language %q: %w", language, ErrNotFound)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvColumns); err != nil {
		return fmt.Errorf("writer.Write(header) > %w", err)
	}
	for _, we := range entries {
		record := []string{we.Word, we.Entry.Definition, we.Entry.PartOfSpeech, we.Entry.Example}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writer.Write(%s) > %w", we.Word, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("writer.Flush > %w", err)
	}
	return nil
}

// ReadCSV parses an entire import file before anything is committed and
// returns its rows with fields untouched. The first record must be the
// exact mirror header and every row must have the same four fields;
// anything else is malformed and fails the whole read.
func ReadCSV(path string) ([]WordEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(csvColumns)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reader.ReadAll > %w: %w", ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s has no header row: %w", path, ErrValidation)
	}
	for i, column := range csvColumns {
		if records[0][i] != column {
			return nil, fmt.Errorf("unexpected header %v: %w", records[0], ErrValidation)
		}
	}

	rows := make([]WordEntry, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, WordEntry{
			Word: record[0],
			Entry: Entry{
				Definition:   record[1],
				PartOfSpeech: record[2],
				Example:      record[3],
			},
		})
	}
	return rows, nil
}
