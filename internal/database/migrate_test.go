package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     []string
	}{
		{
			name:     "single statement with trailing semicolon",
			contents: "CREATE TABLE words (word VARCHAR(255));\n",
			want:     []string{"CREATE TABLE words (word VARCHAR(255))"},
		},
		{
			name:     "multiple statements",
			contents: "CREATE TABLE a (id INT);\nCREATE TABLE b (id INT);",
			want: []string{
				"CREATE TABLE a (id INT)",
				"CREATE TABLE b (id INT)",
			},
		},
		{
			name:     "blank fragments are dropped",
			contents: ";;\n  ;\n",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitStatements(tt.contents))
		})
	}
}
