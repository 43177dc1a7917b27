package nlcst

// Kind is the discriminant of a Node.
type Kind int

const (
	Root Kind = iota
	Paragraph
	Sentence
	Word
	Punctuation
	WhiteSpace
	Symbol
	Text
)

// String returns the NLCST type name of the kind ("RootNode", "WordNode", ...).
func (k Kind) String() string {
	switch k {
	case Root:
		return "RootNode"
	case Paragraph:
		return "ParagraphNode"
	case Sentence:
		return "SentenceNode"
	case Word:
		return "WordNode"
	case Punctuation:
		return "PunctuationNode"
	case WhiteSpace:
		return "WhiteSpaceNode"
	case Symbol:
		return "SymbolNode"
	case Text:
		return "TextNode"
	default:
		return "UNKNOWN"
	}
}

// IsParent reports whether nodes of this kind hold children instead of a value.
func (k Kind) IsParent() bool {
	switch k {
	case Root, Paragraph, Sentence, Word:
		return true
	default:
		return false
	}
}

// KindOf returns the kind for an NLCST type name.
func KindOf(typeName string) (Kind, bool) {
	switch typeName {
	case "RootNode":
		return Root, true
	case "ParagraphNode":
		return Paragraph, true
	case "SentenceNode":
		return Sentence, true
	case "WordNode":
		return Word, true
	case "PunctuationNode":
		return Punctuation, true
	case "WhiteSpaceNode":
		return WhiteSpace, true
	case "SymbolNode":
		return Symbol, true
	case "TextNode":
		return Text, true
	default:
		return 0, false
	}
}

// Point is a place in the source text.
// Line and Column are 1-based, Column counts runes, Offset is a byte index.
type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Position is the span a node covers in the source text.
type Position struct {
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// Node is one element of a natural language concrete syntax tree.
//
// Parent kinds use Children, leaf kinds use Value. Nodes handed out by the
// parser are never modified afterwards, so callers may keep them around.
type Node struct {
	Kind     Kind
	Value    string
	Children []*Node
	Position *Position
}

// NewParent creates a parent node. The position spans the children when all of
// them carry one.
func NewParent(kind Kind, children []*Node) *Node {
	return &Node{
		Kind:     kind,
		Children: children,
		Position: Span(children),
	}
}

// NewLeaf creates a leaf node.
func NewLeaf(kind Kind, value string, pos *Position) *Node {
	return &Node{
		Kind:     kind,
		Value:    value,
		Position: pos,
	}
}

// Span returns the position from the start of the first node to the end of the
// last one, or nil when either end has no position.
func Span(nodes []*Node) *Position {
	if len(nodes) == 0 {
		return nil
	}

	first := nodes[0].Position
	last := nodes[len(nodes)-1].Position

	if first == nil || last == nil {
		return nil
	}

	return &Position{Start: first.Start, End: last.End}
}

// WithChildren returns a copy of n holding the given children. The position is
// recomputed from the children when n had one.
func (n *Node) WithChildren(children []*Node) *Node {
	result := &Node{
		Kind:     n.Kind,
		Children: children,
	}

	if n.Position != nil {
		if span := Span(children); span != nil {
			result.Position = span
		} else {
			pos := *n.Position
			result.Position = &pos
		}
	}

	return result
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}

	return n.Children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}

	return n.Children[len(n.Children)-1]
}
