package fixture

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shibukawa/parsedutch"
	"github.com/shibukawa/parsedutch/nlcst"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kofschip.json")

	node := parsedutch.New().Parse("'t Kofschip & co.")

	require.NoError(t, Save(path, node))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "{\n  \"type\": \"RootNode\",\n"))
	require.True(t, strings.HasSuffix(string(data), "}\n"))
	require.Contains(t, string(data), `"value": "&"`)

	loaded, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Compare(node, loaded))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)

	path := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"EmojiNode","value":"x"}`), 0o644))

	_, err = Load(path)
	require.ErrorIs(t, err, nlcst.ErrUnknownNodeType)
}

func TestCompare(t *testing.T) {
	p := parsedutch.New(parsedutch.WithPosition(false))

	tests := []struct {
		name     string
		expected *nlcst.Node
		actual   *nlcst.Node
		message  string
	}{
		{
			name:     "equal",
			expected: p.Parse("Een zin."),
			actual:   p.Parse("Een zin."),
		},
		{
			name:     "different value",
			expected: p.Parse("Een zin."),
			actual:   p.Parse("Een zon."),
			message:  `/RootNode[0]/ParagraphNode[0]/SentenceNode[2]/WordNode[0]/TextNode: expected value "zin", got "zon"`,
		},
		{
			name:     "different kind",
			expected: p.TokenizeSentence("St. Augustinus."),
			actual:   p.TokenizeParagraph("St. Augustinus."),
			message:  "/SentenceNode: expected SentenceNode, got ParagraphNode",
		},
		{
			name:     "different child count",
			expected: p.TokenizeSentence("Een zin"),
			actual:   p.TokenizeSentence("Een"),
			message:  "/SentenceNode: expected 3 children, got 1",
		},
		{
			name:     "position presence",
			expected: p.Parse("Een"),
			actual:   parsedutch.New().Parse("Een"),
			message:  "/RootNode: expected position none, got 1:1-1:4",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := Compare(test.expected, test.actual)
			if test.message == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrMismatch)
			require.Contains(t, err.Error(), test.message)
		})
	}
}

func TestRegenerate(t *testing.T) {
	dir := t.TempDir()
	p := parsedutch.New()

	stale := map[string]*nlcst.Node{
		// split as the plain base tokenizer would, before the merges
		"root.json":      plainRoot("St. Augustinus."),
		"paragraph.json": nlcst.NewParent(nlcst.Paragraph, []*nlcst.Node{sentence("Kom 'ns!")}),
		"sentence.json":  sentence("D' eedlen"),
		"word.json":      p.TokenizeWord("Kofschip"),
	}

	for name, node := range stale {
		require.NoError(t, Save(filepath.Join(dir, name), node))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.json"), []byte("not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# fixtures\n"), 0o644))

	written, err := Regenerate(dir, p)
	require.NoError(t, err)
	require.Len(t, written, 4)

	expected := map[string]*nlcst.Node{
		"root.json":      p.Parse("St. Augustinus."),
		"paragraph.json": p.TokenizeParagraph("Kom 'ns!"),
		"sentence.json":  p.TokenizeSentence("D' eedlen"),
		"word.json":      p.TokenizeWord("Kofschip"),
	}

	for name, node := range expected {
		loaded, err := Load(filepath.Join(dir, name))
		require.NoError(t, err)
		require.NoError(t, Compare(node, loaded), name)
	}

	hidden, err := os.ReadFile(filepath.Join(dir, ".hidden.json"))
	require.NoError(t, err)
	require.Equal(t, "not json", string(hidden))
}

func TestRegenerateIsStable(t *testing.T) {
	dir := t.TempDir()
	p := parsedutch.New()
	path := filepath.Join(dir, "root.json")

	require.NoError(t, Save(path, p.Parse("Z. Em. de Hoogwaardige Heer. Wat deed ’ie?")))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = Regenerate(dir, p)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestReparseUnsupportedRoot(t *testing.T) {
	_, err := Reparse(nlcst.NewLeaf(nlcst.Text, "los", nil), parsedutch.New())
	require.ErrorIs(t, err, ErrUnsupportedRoot)
}

func TestRegenerateMissingDir(t *testing.T) {
	_, err := Regenerate(filepath.Join(t.TempDir(), "missing"), parsedutch.New())
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

// sentence builds a sentence of unmerged word, white space and punctuation
// leaves without positions.
func sentence(text string) *nlcst.Node {
	var children []*nlcst.Node

	for _, field := range strings.SplitAfter(text, " ") {
		word := strings.TrimSuffix(field, " ")
		if word != "" {
			children = append(children, nlcst.NewParent(nlcst.Word, []*nlcst.Node{nlcst.NewLeaf(nlcst.Text, word, nil)}))
		}

		if strings.HasSuffix(field, " ") {
			children = append(children, nlcst.NewLeaf(nlcst.WhiteSpace, " ", nil))
		}
	}

	return nlcst.NewParent(nlcst.Sentence, children)
}

func plainRoot(text string) *nlcst.Node {
	return nlcst.NewParent(nlcst.Root, []*nlcst.Node{
		nlcst.NewParent(nlcst.Paragraph, []*nlcst.Node{sentence(text)}),
	})
}
