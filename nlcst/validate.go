package nlcst

import (
	"fmt"
	"slices"
)

var allowedChildren = map[Kind][]Kind{
	Root:      {Paragraph, WhiteSpace},
	Paragraph: {Sentence, WhiteSpace},
	Sentence:  {Word, Punctuation, WhiteSpace, Symbol},
	Word:      {Text, Symbol, Punctuation},
}

// Validate checks the structural rules of a tree: which kinds may appear under
// which parents, that leaves hold no children and parents no value, and that
// positions, where present, never run backwards.
func Validate(node *Node) error {
	return validate(node, "")
}

func validate(node *Node, path string) error {
	if node == nil {
		return fmt.Errorf("%w: nil node at %s", ErrInvalidTree, displayPath(path))
	}

	path = path + "/" + node.Kind.String()

	if node.Position != nil {
		if node.Position.End.Offset < node.Position.Start.Offset {
			return fmt.Errorf("%w: position ends before it starts at %s", ErrInvalidTree, path)
		}
	}

	if !node.Kind.IsParent() {
		if len(node.Children) > 0 {
			return fmt.Errorf("%w: leaf with children at %s", ErrInvalidTree, path)
		}

		return nil
	}

	if node.Value != "" {
		return fmt.Errorf("%w: parent with value at %s", ErrInvalidTree, path)
	}

	allowed := allowedChildren[node.Kind]

	var previous *Position
	for i, child := range node.Children {
		if child == nil {
			return fmt.Errorf("%w: nil child %d at %s", ErrInvalidTree, i, path)
		}

		if !slices.Contains(allowed, child.Kind) {
			return fmt.Errorf("%w: %s is not allowed in %s at %s", ErrInvalidTree, child.Kind, node.Kind, path)
		}

		if child.Position != nil && previous != nil && child.Position.Start.Offset < previous.End.Offset {
			return fmt.Errorf("%w: overlapping siblings at %s[%d]", ErrInvalidTree, path, i)
		}

		if child.Position != nil {
			previous = child.Position
		}

		err := validate(child, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return err
		}
	}

	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}

	return path
}
