package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/wordbook/internal/lexicon"
)

func TestStudySheet(t *testing.T) {
	tests := []struct {
		name     string
		language string
		entries  []lexicon.WordEntry
		want     string
	}{
		{
			name:     "renders one row per entry",
			language: "en",
			entries: []lexicon.WordEntry{
				{
					Word: "book",
					Entry: lexicon.Entry{
						Definition:   "A written work.",
						PartOfSpeech: "noun",
						Example:      "She read a book.",
					},
				},
				{
					Word: "pen",
					Entry: lexicon.Entry{
						Definition:   "A writing tool.",
						PartOfSpeech: "noun",
						Example:      "The pen leaks.",
					},
				},
			},
			want: "# Dictionary (en)\n\n" +
				"2 words\n\n" +
				"| Word | Part of speech | Definition | Example |\n" +
				"| --- | --- | --- | --- |\n" +
				"| book | noun | A written work. | She read a book. |\n" +
				"| pen | noun | A writing tool. | The pen leaks. |\n",
		},
		{
			name:     "empty dictionary renders only the header",
			language: "pt",
			entries:  nil,
			want: "# Dictionary (pt)\n\n" +
				"0 words\n\n" +
				"| Word | Part of speech | Definition | Example |\n" +
				"| --- | --- | --- | --- |\n",
		},
		{
			name:     "pipes and newlines cannot break the table",
			language: "en",
			entries: []lexicon.WordEntry{
				{
					Word: "pipe",
					Entry: lexicon.Entry{
						Definition:   "A vertical bar | character.",
						PartOfSpeech: "noun",
						Example:      "First line.\nSecond line.",
					},
				},
			},
			want: "# Dictionary (en)\n\n" +
				"1 words\n\n" +
				"| Word | Part of speech | Definition | Example |\n" +
				"| --- | --- | --- | --- |\n" +
				"| pipe | noun | A vertical bar \\| character. | First line. Second line. |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StudySheet(tt.language, tt.entries))
		})
	}
}
