// Package lexicon holds the per-language word store and its persistence.
package lexicon

import "strings"

// Entry is the definition record for one word in one language.
type Entry struct {
	Definition   string `json:"definition" yaml:"definition"`
	PartOfSpeech string `json:"part_of_speech" yaml:"part_of_speech"`
	Example      string `json:"example" yaml:"example"`
}

// IsComplete reports whether all three fields are non-blank.
// Fetched entries must be complete; manually validated paths may
// allow an empty example.
func (e Entry) IsComplete() bool {
	return strings.TrimSpace(e.Definition) != "" &&
		strings.TrimSpace(e.PartOfSpeech) != "" &&
		strings.TrimSpace(e.Example) != ""
}

// Trimmed returns a copy of the entry with surrounding whitespace removed
// from every field.
func (e Entry) Trimmed() Entry {
	return Entry{
		Definition:   strings.TrimSpace(e.Definition),
		PartOfSpeech: strings.TrimSpace(e.PartOfSpeech),
		Example:      strings.TrimSpace(e.Example),
	}
}

// Lexicon maps a language code to that language's word entries.
// Language codes and words are always in normalized form (see Normalize).
type Lexicon map[string]map[string]Entry

// Language is one language registry record.
type Language struct {
	Name          string `json:"name" yaml:"name"`
	Code          string `json:"code" yaml:"code"`
	SynthesisCode string `json:"synthesis_code" yaml:"synthesis_code"`
}

// Registry maps a language code to its metadata. The lexicon tolerates
// language codes that are absent from the registry.
type Registry map[string]Language

// WordEntry pairs a word with its entry, used for ordered views of one
// language bucket.
type WordEntry struct {
	Word  string
	Entry Entry
}

// Normalize lower-cases and trims a word or language code. Every lookup
// and mutation key goes through this first, so the store never holds two
// words differing only by case or surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
