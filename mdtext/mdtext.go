// Package mdtext extracts the prose of a Markdown document so it can be
// tokenized without the markup.
package mdtext

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// ErrInvalidFrontMatter is returned for an unterminated or malformed front matter block.
var ErrInvalidFrontMatter = errors.New("invalid front matter")

// BlockKind is the kind of an extracted block.
type BlockKind string

const (
	ParagraphBlock BlockKind = "paragraph"
	HeadingBlock   BlockKind = "heading"
)

// Block is the plain text of one paragraph or heading.
type Block struct {
	Kind BlockKind
	// Level is the heading level, 0 for paragraphs.
	Level int
	// Line is the 1-based line the block starts on in the original content.
	Line int
	Text string
}

// Document is the result of Extract.
type Document struct {
	FrontMatter map[string]any
	Blocks      []Block
}

// Extract parses Markdown content and returns its front matter and the text
// of its paragraphs and headings in document order. Soft and hard line breaks
// inside a block are kept as "\n".
func Extract(content []byte) (*Document, error) {
	frontMatter, body, err := parseFrontMatter(string(content))
	if err != nil {
		return nil, err
	}

	lineOffset := strings.Count(string(content[:len(content)-len(body)]), "\n")
	source := []byte(body)

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	result := &Document{FrontMatter: frontMatter}

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		var block Block

		switch node := n.(type) {
		case *ast.Heading:
			block = Block{Kind: HeadingBlock, Level: node.Level}
		case *ast.Paragraph, *ast.TextBlock:
			block = Block{Kind: ParagraphBlock}
		default:
			return ast.WalkContinue, nil
		}

		block.Text = extractText(n, source)
		if block.Text == "" {
			return ast.WalkSkipChildren, nil
		}

		block.Line = lineOffset + lineOf(n, source)
		result.Blocks = append(result.Blocks, block)

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk markdown: %w", err)
	}

	return result, nil
}

// parseFrontMatter splits a leading "---" delimited YAML block from content.
// Content without front matter yields an empty map and content unchanged.
func parseFrontMatter(content string) (map[string]any, string, error) {
	if !strings.HasPrefix(content, "---\n") {
		return map[string]any{}, content, nil
	}

	endIndex := strings.Index(content[4:], "\n---")
	if endIndex == -1 {
		return nil, "", ErrInvalidFrontMatter
	}

	endIndex += 4

	frontMatter := map[string]any{}

	err := yaml.Unmarshal([]byte(content[4:endIndex]), &frontMatter)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}

	if frontMatter == nil {
		frontMatter = map[string]any{}
	}

	return frontMatter, content[endIndex+4:], nil
}

func extractText(node ast.Node, source []byte) string {
	var result strings.Builder

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch textNode := n.(type) {
		case *ast.Text:
			result.Write(textNode.Segment.Value(source))

			if textNode.SoftLineBreak() || textNode.HardLineBreak() {
				result.WriteByte('\n')
			}
		case *ast.String:
			result.Write(textNode.Value)
		case *ast.AutoLink:
			result.Write(textNode.Label(source))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(result.String())
}

// lineOf returns the 1-based line of the first text line of node.
func lineOf(node ast.Node, source []byte) int {
	if node.Lines() == nil || node.Lines().Len() == 0 {
		return 1
	}

	start := node.Lines().At(0).Start

	return bytes.Count(source[:start], []byte("\n")) + 1
}
