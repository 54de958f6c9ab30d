// Package cli renders dictionary command output for terminals.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordbook/internal/dictionary"
	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

// Renderer writes colored, human-readable command output.
type Renderer struct {
	writer io.Writer
	bold   *color.Color
	italic *color.Color
	yellow *color.Color
	green  *color.Color
	red    *color.Color
}

func NewRenderer(writer io.Writer) *Renderer {
	return &Renderer{
		writer: writer,
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		yellow: color.New(color.FgYellow),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
	}
}

// ShowDescription prints one word's entry with its confidence score. The
// score is green at or above threshold, red below it.
func (r *Renderer) ShowDescription(description dictionary.Description, threshold float64) {
	r.bold.Fprint(r.writer, description.Word)
	r.yellow.Fprintf(r.writer, " (%s)\n", description.Entry.PartOfSpeech)
	fmt.Fprintf(r.writer, "  %s\n", description.Entry.Definition)
	r.italic.Fprintf(r.writer, "  %s\n", description.ExampleText())

	scoreColor := r.green
	if description.Confidence < threshold {
		scoreColor = r.red
	}
	scoreColor.Fprintf(r.writer, "  confidence: %.1f\n", description.Confidence)
}

// ShowNotFound prints the miss message for a lookup.
func (r *Renderer) ShowNotFound(word, language string) {
	r.red.Fprintf(r.writer, "No entry for %q in the %q dictionary.\n", word, language)
}

// ShowWords prints every word of one language, one per line.
func (r *Renderer) ShowWords(language string, words []string) {
	if len(words) == 0 {
		fmt.Fprintf(r.writer, "The %q dictionary is empty.\n", language)
		return
	}

	r.bold.Fprintf(r.writer, "%d words in %q:\n", len(words), language)
	for _, word := range words {
		fmt.Fprintf(r.writer, "  %s\n", word)
	}
}

// ShowLanguages prints the language registry sorted the way it is given.
func (r *Renderer) ShowLanguages(languages []lexicon.Language) {
	for _, language := range languages {
		r.bold.Fprintf(r.writer, "%-8s", language.Code)
		fmt.Fprintf(r.writer, " %s", language.Name)
		if language.SynthesisCode != "" {
			r.italic.Fprintf(r.writer, " (synthesis: %s)", language.SynthesisCode)
		}
		fmt.Fprintln(r.writer)
	}
}
