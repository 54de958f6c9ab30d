// Package confidence scores how much textual content backs an answer.
package confidence

import (
	"log/slog"
	"math"
	"strings"
)

const (
	defaultHighMultiplier    = 2.0
	defaultPartialMultiplier = 1.5
	defaultMaxConfidence     = 100.0
)

// Config overrides the scoring multipliers. Zero fields keep the
// defaults.
type Config struct {
	HighMultiplier    float64
	PartialMultiplier float64
	MaxConfidence     float64
}

type Scorer struct {
	highMultiplier    float64
	partialMultiplier float64
	maxConfidence     float64
}

func NewScorer(config Config) *Scorer {
	scorer := &Scorer{
		highMultiplier:    config.HighMultiplier,
		partialMultiplier: config.PartialMultiplier,
		maxConfidence:     config.MaxConfidence,
	}
	if scorer.highMultiplier <= 0 {
		scorer.highMultiplier = defaultHighMultiplier
	}
	if scorer.partialMultiplier <= 0 {
		scorer.partialMultiplier = defaultPartialMultiplier
	}
	if scorer.maxConfidence <= 0 {
		scorer.maxConfidence = defaultMaxConfidence
	}
	return scorer
}

// Score returns a value in [0, max confidence] from the word counts of
// the definition and example. Both non-empty texts score with the high
// multiplier on the combined count, exactly one with the partial
// multiplier, neither scores 0. Words are split on Unicode whitespace
// runs, so whitespace-only text counts as empty and scripts without
// space separators count one word per contiguous run.
//
// Score never fails and never panics; callers holding non-string values
// convert them with fmt.Sprint first.
func (s *Scorer) Score(definition, example string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("confidence scoring failed, scoring 0", slog.Any("panic", r))
			score = 0
		}
	}()

	definitionWords := len(strings.Fields(definition))
	exampleWords := len(strings.Fields(example))

	switch {
	case definitionWords > 0 && exampleWords > 0:
		score = float64(definitionWords+exampleWords) * s.highMultiplier
	case definitionWords > 0:
		score = float64(definitionWords) * s.partialMultiplier
	case exampleWords > 0:
		score = float64(exampleWords) * s.partialMultiplier
	default:
		return 0
	}
	return math.Min(score, s.maxConfidence)
}

// MaxConfidence returns the configured upper bound.
func (s *Scorer) MaxConfidence() float64 {
	return s.maxConfidence
}
