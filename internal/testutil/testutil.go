// Package testutil provides shared test helpers for creating config files and lexicon fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"data", "export", "cache"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`default_language: en
lexicon:
  dictionary_file: %s
  languages_file: %s
  export_directory: %s
fetcher:
  base_url: https://api.dictionaryapi.dev/api/v2/entries
  timeout_seconds: 1
  retry_attempts: 0
  cache_directory: %s
`,
		filepath.Join(tmpDir, "data", "dictionary.json"),
		filepath.Join(tmpDir, "data", "languages.json"),
		filepath.Join(tmpDir, "export"),
		filepath.Join(tmpDir, "cache"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SeedDictionary writes a dictionary file containing the given lexicon.
func SeedDictionary(t *testing.T, path string, lex lexicon.Lexicon) {
	t.Helper()
	writeJSONFixture(t, path, lex)
}

// SeedRegistry writes a languages file containing the given registry.
func SeedRegistry(t *testing.T, path string, registry lexicon.Registry) {
	t.Helper()
	writeJSONFixture(t, path, registry)
}

func writeJSONFixture(t *testing.T, path string, value any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	contents, err := json.Marshal(value)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, contents, 0644))
}
