package nlcst

import "strings"

// ToString concatenates the values of all leaves below the given nodes in
// document order.
func ToString(nodes ...*Node) string {
	var builder strings.Builder
	for _, node := range nodes {
		writeValue(&builder, node)
	}

	return builder.String()
}

func writeValue(builder *strings.Builder, node *Node) {
	if node == nil {
		return
	}

	if !node.Kind.IsParent() {
		builder.WriteString(node.Value)
		return
	}

	for _, child := range node.Children {
		writeValue(builder, child)
	}
}

// Clean returns a deep copy of node without any position information.
func Clean(node *Node) *Node {
	if node == nil {
		return nil
	}

	result := &Node{
		Kind:  node.Kind,
		Value: node.Value,
	}

	if node.Children != nil {
		result.Children = make([]*Node, len(node.Children))
		for i, child := range node.Children {
			result.Children[i] = Clean(child)
		}
	}

	return result
}

// Visit calls fn for node and all of its descendants in document order.
// Returning false from fn skips the children of that node.
func Visit(node *Node, fn func(node *Node) bool) {
	if node == nil {
		return
	}

	if !fn(node) {
		return
	}

	for _, child := range node.Children {
		Visit(child, fn)
	}
}

// Count returns the number of nodes of the given kind in the tree.
func Count(node *Node, kind Kind) int {
	count := 0

	Visit(node, func(n *Node) bool {
		if n.Kind == kind {
			count++
		}

		return true
	})

	return count
}

// Equal reports whether two trees have the same shape, values and positions.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.Kind != b.Kind || a.Value != b.Value || len(a.Children) != len(b.Children) {
		return false
	}

	if (a.Position == nil) != (b.Position == nil) {
		return false
	}

	if a.Position != nil && *a.Position != *b.Position {
		return false
	}

	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}

	return true
}
