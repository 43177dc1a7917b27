package parsercommon

import (
	"slices"
	"strings"

	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/tokenizer"
)

// Entity is the value a sibling node carries through the parser combinators.
type Entity struct {
	Node *nlcst.Node
	// AfterWord is set when the previous sibling is a word.
	AfterWord bool
}

var (
	// Word parses a word node.
	Word = PrimitiveType("word", nlcst.Word)
	// Apostrophe parses a straight or curly apostrophe leaf.
	Apostrophe = ValueType("apostrophe", IsApostrophe)
)

// PrimitiveType matches one node of the given kinds.
func PrimitiveType(typeName string, kinds ...nlcst.Kind) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && slices.Contains(kinds, tokens[0].Val.Node.Kind) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// ValueType matches one node accepted by match.
func ValueType(typeName string, match func(node *nlcst.Node) bool) pc.Parser[Entity] {
	return func(pctx *pc.ParseContext[Entity], tokens []pc.Token[Entity]) (int, []pc.Token[Entity], error) {
		if len(tokens) > 0 && match(tokens[0].Val.Node) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// IsApostrophe reports whether node is a punctuation or symbol leaf holding a
// straight or curly apostrophe.
func IsApostrophe(node *nlcst.Node) bool {
	if node == nil || (node.Kind != nlcst.Symbol && node.Kind != nlcst.Punctuation) {
		return false
	}

	return node.Value == string(tokenizer.Apostrophe) || node.Value == string(tokenizer.RightSingleMark)
}

// IsPeriod reports whether node is a full stop.
func IsPeriod(node *nlcst.Node) bool {
	return node != nil && node.Kind == nlcst.Punctuation && node.Value == "."
}

// Stem returns the text of a word without a trailing full stop.
func Stem(word *nlcst.Node) string {
	return strings.TrimSuffix(nlcst.ToString(word), ".")
}

// EndsWithPeriod reports whether the last child of a word is a full stop.
func EndsWithPeriod(word *nlcst.Node) bool {
	return word != nil && word.Kind == nlcst.Word && IsPeriod(word.LastChild())
}

// ToParserToken wraps sibling nodes into parser tokens.
func ToParserToken(nodes []*nlcst.Node) []pc.Token[Entity] {
	results := make([]pc.Token[Entity], len(nodes))

	for i, node := range nodes {
		pcToken := pc.Token[Entity]{
			Type: node.Kind.String(),
			Val: Entity{
				Node:      node,
				AfterWord: i > 0 && nodes[i-1].Kind == nlcst.Word,
			},
			Raw: nlcst.ToString(node),
		}

		if node.Position != nil {
			pcToken.Pos = &pc.Pos{
				Line:  node.Position.Start.Line,
				Col:   node.Position.Start.Column,
				Index: node.Position.Start.Offset,
			}
		}

		results[i] = pcToken
	}

	return results
}

// ToNodes unwraps parser tokens.
func ToNodes(entities []pc.Token[Entity]) []*nlcst.Node {
	results := make([]*nlcst.Node, 0, len(entities))
	for _, entity := range entities {
		results = append(results, entity.Val.Node)
	}

	return results
}
