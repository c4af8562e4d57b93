package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "My First Post", "my-first-post"},
		{"punctuation collapses", "Hello, World! Again", "hello-world-again"},
		{"whitespace runs", "Too   many    spaces", "too-many-spaces"},
		{"leading and trailing junk", "  ...Framed Moments!  ", "framed-moments"},
		{"numbers preserved", "Top 10 Lagos Spots", "top-10-lagos-spots"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	inputs := []string{
		"My First Post",
		"Finding Your Identity Through the Lens",
		"Top 10 Lagos Spots!",
	}

	for _, input := range inputs {
		once := GenerateSlug(input)
		assert.Equal(t, once, GenerateSlug(once))
	}
}
