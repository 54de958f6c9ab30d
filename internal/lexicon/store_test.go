package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	tmpDir := t.TempDir()
	return NewStore(
		filepath.Join(tmpDir, "dictionary.json"),
		filepath.Join(tmpDir, "languages.json"),
	), tmpDir
}

func TestStore_Load(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(t *testing.T, dictionaryPath, languagesPath string)
		wantWords     map[string][]string
		wantLanguages []string
	}{
		{
			name:  "missing files start empty with the seeded registry",
			setup: func(t *testing.T, dictionaryPath, languagesPath string) {},
			wantWords: map[string][]string{
				"en": nil,
			},
			wantLanguages: []string{"en", "es", "fr", "pt"},
		},
		{
			name: "valid files load",
			setup: func(t *testing.T, dictionaryPath, languagesPath string) {
				require.NoError(t, os.WriteFile(dictionaryPath, []byte(
					`{"en": {"book": {"definition": "A written work.", "part_of_speech": "noun", "example": "She read a book."}}}`,
				), 0644))
				require.NoError(t, os.WriteFile(languagesPath, []byte(
					`{"de": {"name": "Deutsch", "code": "de", "synthesis_code": "de"}}`,
				), 0644))
			},
			wantWords: map[string][]string{
				"en": {"book"},
			},
			wantLanguages: []string{"de"},
		},
		{
			name: "malformed dictionary starts empty",
			setup: func(t *testing.T, dictionaryPath, languagesPath string) {
				require.NoError(t, os.WriteFile(dictionaryPath, []byte(`{"en": broken`), 0644))
			},
			wantWords: map[string][]string{
				"en": nil,
			},
			wantLanguages: []string{"en", "es", "fr", "pt"},
		},
		{
			name: "malformed languages file starts with an empty registry",
			setup: func(t *testing.T, dictionaryPath, languagesPath string) {
				require.NoError(t, os.WriteFile(languagesPath, []byte(`not json`), 0644))
			},
			wantWords: map[string][]string{
				"en": nil,
			},
			wantLanguages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)
			tt.setup(t, store.dictionaryPath, store.languagesPath)

			store.Load()

			for language, want := range tt.wantWords {
				words, ok := store.Words(language)
				if want == nil {
					assert.False(t, ok, "language %q should be absent", language)
					continue
				}
				require.True(t, ok)
				assert.Equal(t, want, words)
			}

			var codes []string
			for _, language := range store.RegistryLanguages() {
				codes = append(codes, language.Code)
			}
			assert.Equal(t, tt.wantLanguages, codes)
		})
	}
}

func TestStore_Load_seededRegistryNamesLanguages(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()

	english, ok := store.Language("en")
	require.True(t, ok)
	assert.Equal(t, Language{Name: "English", Code: "en", SynthesisCode: "en"}, english)
}

func TestStore_Save(t *testing.T) {
	entry := Entry{Definition: "A written work.", PartOfSpeech: "noun", Example: "She read a book."}

	t.Run("first save creates both files without backups", func(t *testing.T) {
		store, tmpDir := newTestStore(t)
		store.Load()
		store.Set("en", "book", entry)

		require.NoError(t, store.Save())

		assert.True(t, store.Validate(store.dictionaryPath))
		assert.True(t, store.Validate(store.languagesPath))

		backups, err := filepath.Glob(filepath.Join(tmpDir, "*.backup.*"))
		require.NoError(t, err)
		assert.Empty(t, backups)
	})

	t.Run("saving over existing files writes timestamped backups", func(t *testing.T) {
		store, tmpDir := newTestStore(t)
		store.Load()
		store.Set("en", "book", entry)
		require.NoError(t, store.Save())

		firstContents, err := os.ReadFile(store.dictionaryPath)
		require.NoError(t, err)

		store.Set("en", "pen", Entry{Definition: "A writing tool.", PartOfSpeech: "noun", Example: "The pen leaks."})
		require.NoError(t, store.Save())

		backups, err := filepath.Glob(filepath.Join(tmpDir, "dictionary.json.backup.*"))
		require.NoError(t, err)
		require.NotEmpty(t, backups)

		backupContents, err := os.ReadFile(backups[0])
		require.NoError(t, err)
		assert.Equal(t, string(firstContents), string(backupContents))

		languageBackups, err := filepath.Glob(filepath.Join(tmpDir, "languages.json.backup.*"))
		require.NoError(t, err)
		assert.NotEmpty(t, languageBackups)
	})

	t.Run("saved files reload with the same content", func(t *testing.T) {
		store, _ := newTestStore(t)
		store.Load()
		store.Set("pt", "livro", Entry{Definition: "Obra escrita.", PartOfSpeech: "substantivo", Example: "Ela leu um livro."})
		require.NoError(t, store.Save())

		reloaded := NewStore(store.dictionaryPath, store.languagesPath)
		reloaded.Load()

		got, ok := reloaded.Get("pt", "livro")
		require.True(t, ok)
		assert.Equal(t, "Obra escrita.", got.Definition)

		_, ok = reloaded.Language("en")
		assert.True(t, ok, "the seeded registry should survive a save and reload")
	})
}

func TestStore_Validate(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		missing  bool
		want     bool
	}{
		{
			name:     "well-formed json",
			contents: `{"en": {}}`,
			want:     true,
		},
		{
			name:     "malformed json",
			contents: `{"en": `,
			want:     false,
		},
		{
			name:    "missing file",
			missing: true,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, tmpDir := newTestStore(t)
			path := filepath.Join(tmpDir, "candidate.json")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))
			}
			assert.Equal(t, tt.want, store.Validate(path))
		})
	}
}

func TestStore_accessors(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()

	_, ok := store.Get("en", "book")
	assert.False(t, ok)

	store.Set("en", "pen", Entry{Definition: "A writing tool."})
	store.Set("en", "book", Entry{Definition: "A written work."})

	words, ok := store.Words("en")
	require.True(t, ok)
	assert.Equal(t, []string{"book", "pen"}, words)

	entries, ok := store.Entries("en")
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "book", entries[0].Word)
	assert.Equal(t, "A written work.", entries[0].Entry.Definition)

	_, ok = store.Entries("pt")
	assert.False(t, ok)

	assert.True(t, store.Delete("en", "pen"))
	assert.False(t, store.Delete("en", "pen"))
	assert.False(t, store.Delete("pt", "livro"))

	store.EnsureLanguage("pt")
	assert.True(t, store.HasLanguage("pt"))
	words, ok = store.Words("pt")
	require.True(t, ok)
	assert.Empty(t, words)
}
