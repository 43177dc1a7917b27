package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/parsedutch"
	"github.com/shibukawa/parsedutch/fixture"
	"github.com/shibukawa/parsedutch/nlcst"
)

type command interface {
	Run(ctx *Context) error
}

// run executes cmd with stdin as input and returns what it wrote to stdout.
func run(t *testing.T, ctx *Context, cmd command, stdin string) (string, error) {
	t.Helper()

	color.NoColor = true

	var stdout bytes.Buffer

	ctx.Stdin = strings.NewReader(stdin)
	ctx.Stdout = &stdout

	if ctx.Config == "" {
		ctx.Config = filepath.Join(t.TempDir(), "parsedutch.yaml")
	}

	err := cmd.Run(ctx)

	return stdout.String(), err
}

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestParseCmd(t *testing.T) {
	t.Run("stdin to json", func(t *testing.T) {
		out, err := run(t, &Context{Quiet: true}, &ParseCmd{Level: "root", Format: "json"}, "St. Augustinus. 't Kofschip!")
		require.NoError(t, err)

		var root nlcst.Node
		require.NoError(t, json.Unmarshal([]byte(out), &root))
		require.NoError(t, fixture.Compare(parsedutch.New().Parse("St. Augustinus. 't Kofschip!"), &root))
	})

	t.Run("file without positions", func(t *testing.T) {
		path := writeTemp(t, t.TempDir(), "zin.txt", "D' eedlen's.")

		out, err := run(t, &Context{Quiet: true}, &ParseCmd{Input: path, NoPosition: true, Level: "root", Format: "json"}, "")
		require.NoError(t, err)
		require.NotContains(t, out, `"position"`)
		require.True(t, strings.HasSuffix(out, "}\n"))
	})

	t.Run("sentence level", func(t *testing.T) {
		out, err := run(t, &Context{Quiet: true}, &ParseCmd{NoPosition: true, Level: "sentence", Format: "json"}, "Wat deed 'ie?")
		require.NoError(t, err)

		var sentence nlcst.Node
		require.NoError(t, json.Unmarshal([]byte(out), &sentence))
		require.Equal(t, nlcst.Sentence, sentence.Kind)
		require.Equal(t, "'ie", nlcst.ToString(sentence.Children[4]))
	})

	t.Run("yaml output", func(t *testing.T) {
		out, err := run(t, &Context{Quiet: true}, &ParseCmd{NoPosition: true, Level: "word", Format: "yaml"}, "Kofschip")
		require.NoError(t, err)

		var word map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(out), &word))
		require.Equal(t, "WordNode", word["type"])

		children, ok := word["children"].([]any)
		require.True(t, ok)
		require.Len(t, children, 1)
		require.Equal(t, map[string]any{"type": "TextNode", "value": "Kofschip"}, children[0])
		require.True(t, strings.HasPrefix(out, "type: WordNode\n"))
	})

	t.Run("markdown", func(t *testing.T) {
		input := "# 't Kofschip\n\nSt. Augustinus. Enquête!\n"

		out, err := run(t, &Context{Quiet: true}, &ParseCmd{NoPosition: true, Level: "root", Format: "json", Markdown: true}, input)
		require.NoError(t, err)

		var blocks []struct {
			Kind string      `json:"kind"`
			Line int         `json:"line"`
			Tree *nlcst.Node `json:"tree"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &blocks))
		require.Len(t, blocks, 2)

		require.Equal(t, "heading", blocks[0].Kind)
		require.Equal(t, 1, blocks[0].Line)
		require.Equal(t, "'t Kofschip", nlcst.ToString(blocks[0].Tree))

		require.Equal(t, "paragraph", blocks[1].Kind)
		require.Equal(t, 3, blocks[1].Line)
		require.Equal(t, nlcst.Paragraph, blocks[1].Tree.Kind)
		require.Len(t, blocks[1].Tree.Children, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, &Context{Quiet: true}, &ParseCmd{Input: filepath.Join(t.TempDir(), "missing.txt"), Level: "root", Format: "json"}, "")
		require.ErrorIs(t, err, ErrInputFileNotExist)
	})

	t.Run("invalid config", func(t *testing.T) {
		config := writeTemp(t, t.TempDir(), "parsedutch.yaml", "position: misschien\n")

		_, err := run(t, &Context{Config: config, Quiet: true}, &ParseCmd{Level: "root", Format: "json"}, "Tekst.")
		require.ErrorIs(t, err, parsedutch.ErrInvalidConfig)
	})
}

func TestCheckCmd(t *testing.T) {
	path := writeTemp(t, t.TempDir(), "tekst.txt", "Z. Em. de Hoogwaardige Heer. Een andere zin!\n\nD' eedlen's.\n")

	out, err := run(t, &Context{}, &CheckCmd{Input: path}, "")
	require.NoError(t, err)
	require.Contains(t, out, "✓ "+path)
	require.Contains(t, out, "Paragraphs: 2")
	require.Contains(t, out, "Sentences: 3")
	require.Contains(t, out, "Words: 10")

	out, err = run(t, &Context{Quiet: true}, &CheckCmd{}, "Wat deed 'ie?")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestRegenerateCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kofschip.json")

	p := parsedutch.New()
	require.NoError(t, fixture.Save(path, p.TokenizeSentence("Wat deed 'ie")))

	t.Run("explicit dir", func(t *testing.T) {
		out, err := run(t, &Context{}, &RegenerateCmd{Dir: dir}, "")
		require.NoError(t, err)
		require.Contains(t, out, "Regenerated: "+path)
		require.Contains(t, out, "Regeneration completed for 1 fixture(s)")
	})

	t.Run("dir from config", func(t *testing.T) {
		config := writeTemp(t, t.TempDir(), "parsedutch.yaml", "fixtures:\n  dir: "+dir+"\n")

		out, err := run(t, &Context{Config: config, Quiet: true}, &RegenerateCmd{}, "")
		require.NoError(t, err)
		require.Empty(t, out)

		loaded, err := fixture.Load(path)
		require.NoError(t, err)
		require.NoError(t, fixture.Compare(p.TokenizeSentence("Wat deed 'ie"), loaded))
	})
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, &Context{}, &VersionCmd{}, "")
	require.NoError(t, err)
	require.Equal(t, "parsedutch "+Version+"\n", out)
}
