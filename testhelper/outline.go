package testhelper

import (
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/shibukawa/parsedutch/nlcst"
)

// Outline renders a tree one node per line, indented by two spaces per level.
// Words are printed on one line together with their children:
//
//	Sentence
//	  Word(Symbol"'" Text"t")
//	  WhiteSpace" "
func Outline(node *nlcst.Node) string {
	var builder strings.Builder
	writeOutline(&builder, node, 0)

	return strings.TrimRight(builder.String(), "\n")
}

func writeOutline(builder *strings.Builder, node *nlcst.Node, depth int) {
	builder.WriteString(strings.Repeat("  ", depth))

	switch {
	case node.Kind == nlcst.Word:
		builder.WriteString("Word(")

		for i, child := range node.Children {
			if i > 0 {
				builder.WriteString(" ")
			}

			builder.WriteString(leaf(child))
		}

		builder.WriteString(")\n")
	case node.Kind.IsParent():
		builder.WriteString(shortName(node.Kind))
		builder.WriteString("\n")

		for _, child := range node.Children {
			writeOutline(builder, child, depth+1)
		}
	default:
		builder.WriteString(leaf(node))
		builder.WriteString("\n")
	}
}

func leaf(node *nlcst.Node) string {
	if node.Kind.IsParent() {
		return shortName(node.Kind) + "(" + strconv.Quote(nlcst.ToString(node)) + ")"
	}

	return shortName(node.Kind) + strconv.Quote(node.Value)
}

func shortName(kind nlcst.Kind) string {
	return strings.TrimSuffix(kind.String(), "Node")
}

// AssertOutline compares the outline of node with expected, which is written
// as an indented raw string and normalized with TrimIndent.
func AssertOutline(t *testing.T, expected string, node *nlcst.Node) {
	t.Helper()

	assert.Equal(t, TrimIndent(t, expected), Outline(node), caller(2))
}
