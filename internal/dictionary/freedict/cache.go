package freedict

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileCache stores raw upstream responses as one JSON file per word,
// grouped in a directory per language.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(language, word string) string {
	return filepath.Join(f.rootDir, language, word+".json")
}

// cache returns the cached response for a word, calling fetch and
// storing its result on a miss. A nil fetch result means the upstream
// has nothing for this word and is not cached.
func (cache *FileCache) cache(language, word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(language, word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := os.ReadFile(localFilePath)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile > %w", err)
		}
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch %q > %w", word, err)
	}
	if contents == nil {
		return nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(localFilePath), 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	if err := os.WriteFile(localFilePath, contents, 0644); err != nil {
		return contents, fmt.Errorf("os.WriteFile > %w", err)
	}
	return contents, nil
}
