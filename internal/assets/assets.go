// Package assets holds data files compiled into the binary.
package assets

import (
	_ "embed"
)

//go:embed seed/languages.json
var languageSeed []byte

// LanguageSeed returns the default language registry used when no
// languages file exists yet.
func LanguageSeed() []byte {
	return languageSeed
}
