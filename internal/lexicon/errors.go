package lexicon

import "errors"

// Sentinel error kinds for dictionary operations. Callers branch with
// errors.Is instead of matching message text.
var (
	// ErrValidation marks rejected input, such as an empty word or a
	// missing mandatory field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks an insertion of a word that already exists in
	// the target language.
	ErrConflict = errors.New("word already exists")

	// ErrNotFound marks a lookup, removal or export against a word or
	// language the store does not hold.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamNotFound marks an add that fell back to the external
	// source and got nothing usable back. The word must be entered
	// manually.
	ErrUpstreamNotFound = errors.New("no definition found upstream")
)
