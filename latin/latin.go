// Package latin builds NLCST trees for Latin-script text.
//
// It is the generic base tokenizer the Dutch passes run on top of: it knows
// about words, white space, punctuation and sentence terminals, but nothing
// about language-specific exceptions.
package latin

import (
	"strings"

	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/tokenizer"
)

// Parser tokenizes text into NLCST trees.
type Parser struct {
	position bool
}

// New creates a Parser. When position is false no node carries a position.
func New(position bool) *Parser {
	return &Parser{position: position}
}

// Position reports whether returned nodes carry positions.
func (p *Parser) Position() bool {
	return p.position
}

// TokenizeRoot tokenizes a whole document into a RootNode.
func (p *Parser) TokenizeRoot(text string) *nlcst.Node {
	nodes := mergeSentenceTokens(leaves(text))

	var children []*nlcst.Node

	start := 0
	for i, node := range nodes {
		if node.Kind == nlcst.WhiteSpace && lineBreaks(node.Value) >= 2 {
			children = append(children, paragraphs(nodes[start:i])...)
			children = append(children, node)
			start = i + 1
		}
	}

	children = append(children, paragraphs(nodes[start:])...)

	return p.finish(nlcst.Root, children)
}

// TokenizeParagraph tokenizes text into a single ParagraphNode.
func (p *Parser) TokenizeParagraph(text string) *nlcst.Node {
	nodes := mergeSentenceTokens(leaves(text))
	return p.finish(nlcst.Paragraph, sentences(nodes))
}

// TokenizeSentence tokenizes text into a single SentenceNode.
func (p *Parser) TokenizeSentence(text string) *nlcst.Node {
	return p.finish(nlcst.Sentence, mergeSentenceTokens(leaves(text)))
}

// TokenizeWord wraps text in a WordNode.
func (p *Parser) TokenizeWord(text string) *nlcst.Node {
	var children []*nlcst.Node
	if text != "" {
		children = []*nlcst.Node{
			nlcst.NewLeaf(nlcst.Text, text, &nlcst.Position{
				Start: nlcst.Point{Line: 1, Column: 1, Offset: 0},
				End:   endOf(text),
			}),
		}
	}

	return p.finish(nlcst.Word, children)
}

func (p *Parser) finish(kind nlcst.Kind, children []*nlcst.Node) *nlcst.Node {
	if children == nil {
		children = []*nlcst.Node{}
	}

	node := nlcst.NewParent(kind, children)
	if node.Position == nil {
		origin := nlcst.Point{Line: 1, Column: 1, Offset: 0}
		node.Position = &nlcst.Position{Start: origin, End: origin}
	}

	if !p.position {
		return nlcst.Clean(node)
	}

	return node
}

// leaves converts the token stream into sentence-level nodes: words wrapping
// a single text node, and white space, punctuation and symbol leaves.
func leaves(text string) []*nlcst.Node {
	tokens := tokenizer.NewTextTokenizer(text).AllTokens()
	nodes := make([]*nlcst.Node, 0, len(tokens))

	for _, token := range tokens {
		pos := &nlcst.Position{
			Start: point(token.Position),
			End:   point(token.End),
		}

		switch token.Type {
		case tokenizer.WORD:
			text := nlcst.NewLeaf(nlcst.Text, token.Value, pos)
			nodes = append(nodes, nlcst.NewParent(nlcst.Word, []*nlcst.Node{text}))
		case tokenizer.WHITESPACE:
			nodes = append(nodes, nlcst.NewLeaf(nlcst.WhiteSpace, token.Value, pos))
		case tokenizer.PUNCTUATION:
			nodes = append(nodes, nlcst.NewLeaf(nlcst.Punctuation, token.Value, pos))
		case tokenizer.SYMBOL:
			nodes = append(nodes, nlcst.NewLeaf(nlcst.Symbol, token.Value, pos))
		}
	}

	return nodes
}

func point(pos tokenizer.Position) nlcst.Point {
	return nlcst.Point{
		Line:   pos.Line,
		Column: pos.Column,
		Offset: pos.Offset,
	}
}

func endOf(text string) nlcst.Point {
	tokens := tokenizer.NewTextTokenizer(text).AllTokens()
	if len(tokens) == 0 {
		return nlcst.Point{Line: 1, Column: 1, Offset: 0}
	}

	return point(tokens[len(tokens)-1].End)
}

// lineBreaks counts line endings; "\r\n" counts once.
func lineBreaks(value string) int {
	value = strings.ReplaceAll(value, "\r\n", "\n")
	return strings.Count(value, "\n") + strings.Count(value, "\r")
}
