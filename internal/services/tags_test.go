package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"sorted and trimmed", " Sci-Fi, Action ,Drama", []string{"Action", "Drama", "Sci-Fi"}},
		{"duplicates dropped", "Drama, Drama,Drama ", []string{"Drama"}},
		{"inner whitespace collapsed", "Film   Noir,  Science \t Fiction", []string{"Film Noir", "Science Fiction"}},
		{"case preserved", "drama, Drama", []string{"Drama", "drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.text))
		})
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "Action, Sci-Fi", FormatTags([]string{"Action", "Sci-Fi"}))
	assert.Equal(t, []string{"Action", "Sci-Fi"}, ParseTags(FormatTags([]string{"Sci-Fi", "Action"})))
}
