package testhelper

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/parsedutch/nlcst"
)

func TestTrimIndent(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			name: "tabs below the shared indent become two spaces",
			src: `
		title: Kofschip
		items:
			- een
	`,
			expected: "title: Kofschip\nitems:\n  - een",
		},
		{
			name: "spaces below the shared indent are kept",
			src: `
		Root
		  Paragraph

		    Sentence
	`,
			expected: "Root\n  Paragraph\n\n    Sentence",
		},
		{
			name:     "single line",
			src:      "Root",
			expected: "Root",
		},
		{
			name:     "empty",
			src:      "",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, TrimIndent(t, test.src))
		})
	}
}

func helperLine() string {
	return caller(2)
}

func TestCaller(t *testing.T) {
	assert.True(t, strings.HasPrefix(helperLine(), "(helper_test.go:"))
}

func TestOutline(t *testing.T) {
	text := nlcst.NewLeaf(nlcst.Text, "t", nil)
	apostrophe := nlcst.NewLeaf(nlcst.Symbol, "’", nil)

	sentence := nlcst.NewParent(nlcst.Sentence, []*nlcst.Node{
		nlcst.NewParent(nlcst.Word, []*nlcst.Node{apostrophe, text}),
		nlcst.NewLeaf(nlcst.WhiteSpace, "\n", nil),
		nlcst.NewLeaf(nlcst.Punctuation, "!", nil),
	})

	assert.Equal(t, "Sentence\n  Word(Symbol\"’\" Text\"t\")\n  WhiteSpace\"\\n\"\n  Punctuation\"!\"", Outline(sentence))

	AssertOutline(t, `
		Sentence
		  Word(Symbol"’" Text"t")
		  WhiteSpace"\n"
		  Punctuation"!"
	`, sentence)
}
