// Package converter renders lexicon data into document formats.
package converter

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

// StudySheet renders one language's entries as a Markdown table, one row
// per word in the order given.
func StudySheet(language string, entries []lexicon.WordEntry) string {
	var sheet strings.Builder
	fmt.Fprintf(&sheet, "# Dictionary (%s)\n\n", language)
	fmt.Fprintf(&sheet, "%d words\n\n", len(entries))
	sheet.WriteString("| Word | Part of speech | Definition | Example |\n")
	sheet.WriteString("| --- | --- | --- | --- |\n")

	for _, we := range entries {
		fmt.Fprintf(&sheet, "| %s | %s | %s | %s |\n",
			tableCell(we.Word),
			tableCell(we.Entry.PartOfSpeech),
			tableCell(we.Entry.Definition),
			tableCell(we.Entry.Example),
		)
	}
	return sheet.String()
}

// tableCell makes a value safe inside a Markdown table row.
func tableCell(value string) string {
	value = strings.ReplaceAll(value, "|", `\|`)
	value = strings.ReplaceAll(value, "\r\n", " ")
	value = strings.ReplaceAll(value, "\n", " ")
	return value
}
