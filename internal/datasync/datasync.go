// Package datasync pushes the file-backed lexicon into a database for
// querying outside this tool.
package datasync

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

//go:generate mockgen -source=datasync.go -destination=../mocks/datasync/mock_repository.go -package=mock_datasync

// WordRecord is one lexicon entry as stored in the words table.
type WordRecord struct {
	Language     string    `db:"language"`
	Word         string    `db:"word"`
	Definition   string    `db:"definition"`
	PartOfSpeech string    `db:"part_of_speech"`
	Example      string    `db:"example"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// WordRepository defines operations for managing word records.
type WordRepository interface {
	FindByWord(ctx context.Context, language, word string) (*WordRecord, error)
	Upsert(ctx context.Context, record *WordRecord) error
}

// DBWordRepository implements WordRepository using MySQL.
type DBWordRepository struct {
	db *sqlx.DB
}

// NewDBWordRepository creates a new DBWordRepository.
func NewDBWordRepository(db *sqlx.DB) *DBWordRepository {
	return &DBWordRepository{db: db}
}

// FindByWord returns a word record, or nil if not found.
func (r *DBWordRepository) FindByWord(ctx context.Context, language, word string) (*WordRecord, error) {
	var record WordRecord
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM words WHERE language = ? AND word = ?", language, word)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(words) > %w", err)
	}
	return &record, nil
}

// Upsert inserts or updates a word record.
func (r *DBWordRepository) Upsert(ctx context.Context, record *WordRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO words (language, word, definition, part_of_speech, example)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE definition = VALUES(definition), part_of_speech = VALUES(part_of_speech), example = VALUES(example)`,
		record.Language, record.Word, record.Definition, record.PartOfSpeech, record.Example)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert word) > %w", err)
	}
	return nil
}

// ImportResult tracks counts for an import run.
type ImportResult struct {
	WordsNew     int
	WordsSkipped int
	WordsUpdated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads the in-memory lexicon and writes to the database.
type Importer struct {
	wordRepo WordRepository
	writer   io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(wordRepo WordRepository, writer io.Writer) *Importer {
	return &Importer{
		wordRepo: wordRepo,
		writer:   writer,
	}
}

// ImportLexicon imports every language's entries, languages and words in
// sorted order so the output is deterministic.
func (imp *Importer) ImportLexicon(ctx context.Context, lex lexicon.Lexicon, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	languages := make([]string, 0, len(lex))
	for language := range lex {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		bucket := lex[language]
		words := make([]string, 0, len(bucket))
		for word := range bucket {
			words = append(words, word)
		}
		sort.Strings(words)

		for _, word := range words {
			if err := imp.importWord(ctx, language, word, bucket[word], opts, &result); err != nil {
				return nil, fmt.Errorf("importWord(%s, %s) > %w", language, word, err)
			}
		}
	}

	return &result, nil
}

func (imp *Importer) importWord(ctx context.Context, language, word string, entry lexicon.Entry, opts ImportOptions, result *ImportResult) error {
	existing, err := imp.wordRepo.FindByWord(ctx, language, word)
	if err != nil {
		return fmt.Errorf("FindByWord(%s, %s) > %w", language, word, err)
	}

	record := &WordRecord{
		Language:     language,
		Word:         word,
		Definition:   entry.Definition,
		PartOfSpeech: entry.PartOfSpeech,
		Example:      entry.Example,
	}

	if existing != nil {
		if !opts.UpdateExisting {
			fmt.Fprintf(imp.writer, "  [SKIP]  %q (%s)\n", word, language)
			result.WordsSkipped++
			return nil
		}
		if !opts.DryRun {
			if err := imp.wordRepo.Upsert(ctx, record); err != nil {
				return fmt.Errorf("Upsert() > %w", err)
			}
		}
		fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%s)\n", word, language)
		result.WordsUpdated++
		return nil
	}

	if !opts.DryRun {
		if err := imp.wordRepo.Upsert(ctx, record); err != nil {
			return fmt.Errorf("Upsert() > %w", err)
		}
	}
	fmt.Fprintf(imp.writer, "  [NEW]  %q (%s)\n", word, language)
	result.WordsNew++
	return nil
}
