package datasync

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
	mock_datasync "github.com/at-ishikawa/wordbook/internal/mocks/datasync"
)

func TestImporter_ImportLexicon(t *testing.T) {
	lex := lexicon.Lexicon{
		"en": {
			"book": {Definition: "A written work.", PartOfSpeech: "noun", Example: "She read a book."},
		},
	}

	t.Run("creates new words", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(nil, nil)
		wordRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, record *WordRecord) error {
				assert.Equal(t, "en", record.Language)
				assert.Equal(t, "book", record.Word)
				assert.Equal(t, "A written work.", record.Definition)
				assert.Equal(t, "noun", record.PartOfSpeech)
				assert.Equal(t, "She read a book.", record.Example)
				return nil
			})

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsNew: 1}, result)
		assert.Equal(t, "  [NEW]  \"book\" (en)\n", buf.String())
	})

	t.Run("skips existing words by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(&WordRecord{
			Language: "en",
			Word:     "book",
		}, nil)

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsSkipped: 1}, result)
		assert.Equal(t, "  [SKIP]  \"book\" (en)\n", buf.String())
	})

	t.Run("updates existing words when asked to", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(&WordRecord{
			Language:   "en",
			Word:       "book",
			Definition: "An old definition.",
		}, nil)
		wordRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, record *WordRecord) error {
				assert.Equal(t, "A written work.", record.Definition)
				return nil
			})

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{UpdateExisting: true})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsUpdated: 1}, result)
		assert.Equal(t, "  [UPDATE]  \"book\" (en)\n", buf.String())
	})

	t.Run("dry run counts without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(nil, nil)

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{DryRun: true})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsNew: 1}, result)
		assert.Equal(t, "  [NEW]  \"book\" (en)\n", buf.String())
	})

	t.Run("dry run update touches nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(&WordRecord{
			Language: "en",
			Word:     "book",
		}, nil)

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{DryRun: true, UpdateExisting: true})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsUpdated: 1}, result)
	})

	t.Run("languages and words are imported in sorted order", func(t *testing.T) {
		multi := lexicon.Lexicon{
			"pt": {
				"livro": {Definition: "Uma obra escrita.", PartOfSpeech: "substantivo", Example: "Ela leu um livro."},
			},
			"en": {
				"pen":  {Definition: "A writing tool.", PartOfSpeech: "noun", Example: "The pen leaks."},
				"book": {Definition: "A written work.", PartOfSpeech: "noun", Example: "She read a book."},
			},
		}

		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
		wordRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), multi, ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{WordsNew: 3}, result)
		assert.Equal(t,
			"  [NEW]  \"book\" (en)\n"+
				"  [NEW]  \"pen\" (en)\n"+
				"  [NEW]  \"livro\" (pt)\n",
			buf.String())
	})

	t.Run("lookup failure stops the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(nil, errors.New("connection lost"))

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		_, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FindByWord(en, book)")
		assert.Contains(t, err.Error(), "connection lost")
	})

	t.Run("write failure stops the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)
		wordRepo.EXPECT().FindByWord(gomock.Any(), "en", "book").Return(nil, nil)
		wordRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		_, err := importer.ImportLexicon(context.Background(), lex, ImportOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Upsert()")
	})

	t.Run("empty lexicon imports nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		wordRepo := mock_datasync.NewMockWordRepository(ctrl)

		var buf bytes.Buffer
		importer := NewImporter(wordRepo, &buf)
		result, err := importer.ImportLexicon(context.Background(), lexicon.Lexicon{}, ImportOptions{})
		require.NoError(t, err)
		assert.Equal(t, &ImportResult{}, result)
		assert.Empty(t, buf.String())
	})
}
