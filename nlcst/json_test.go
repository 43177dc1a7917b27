package nlcst

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestMarshalJSON(t *testing.T) {
	word := NewParent(Word, []*Node{NewLeaf(Text, "St", nil), NewLeaf(Punctuation, ".", nil)})

	data, err := json.Marshal(word)
	assert.NoError(t, err)
	assert.Equal(t, `{"type":"WordNode","children":[{"type":"TextNode","value":"St"},{"type":"PunctuationNode","value":"."}]}`, string(data))

	data, err = json.Marshal(&Node{Kind: Sentence})
	assert.NoError(t, err)
	assert.Equal(t, `{"type":"SentenceNode","children":[]}`, string(data))

	data, err = json.Marshal(NewLeaf(WhiteSpace, "", pos(1, 1)))
	assert.NoError(t, err)
	assert.Equal(t, `{"type":"WhiteSpaceNode","value":"","position":{"start":{"line":1,"column":1,"offset":0},"end":{"line":1,"column":1,"offset":0}}}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	original := sampleSentence()

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var decoded Node
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, Equal(original, &decoded))
}

func TestUnmarshalJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{name: "unknown type", input: `{"type":"SourceNode"}`, expected: ErrUnknownNodeType},
		{name: "parent with value", input: `{"type":"WordNode","value":"x"}`, expected: ErrInvalidTree},
		{name: "leaf with children", input: `{"type":"TextNode","children":[]}`, expected: ErrInvalidTree},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var node Node
			err := json.Unmarshal([]byte(test.input), &node)
			assert.True(t, errors.Is(err, test.expected))
		})
	}
}
