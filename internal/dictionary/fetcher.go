// Package dictionary orchestrates the lexicon store, the external
// definition source and the confidence scorer behind the user-facing
// dictionary operations.
package dictionary

import (
	"context"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

//go:generate mockgen -source=fetcher.go -destination=../mocks/dictionary/mock_fetcher.go -package=mock_dictionary

// Fetcher looks a word up in an external definition source.
// Implementations return (nil, nil) when the source has no usable entry,
// apply their own network timeout, and never panic.
type Fetcher interface {
	Fetch(ctx context.Context, word, language string) (*lexicon.Entry, error)
}
