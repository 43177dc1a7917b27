package nlcst

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnknownNodeType = errors.New("unknown node type")
	ErrInvalidTree     = errors.New("invalid nlcst tree")
)

type jsonNode struct {
	Type     string    `json:"type"`
	Children *[]*Node  `json:"children,omitempty"`
	Value    *string   `json:"value,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// MarshalJSON encodes the node in the NLCST JSON shape: parents carry
// "children", leaves carry "value", and "position" is omitted when absent.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := jsonNode{
		Type:     n.Kind.String(),
		Position: n.Position,
	}

	if n.Kind.IsParent() {
		children := n.Children
		if children == nil {
			children = []*Node{}
		}

		out.Children = &children
	} else {
		value := n.Value
		out.Value = &value
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes a node from the NLCST JSON shape.
func (n *Node) UnmarshalJSON(data []byte) error {
	var in jsonNode

	err := json.Unmarshal(data, &in)
	if err != nil {
		return err
	}

	kind, ok := KindOf(in.Type)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNodeType, in.Type)
	}

	n.Kind = kind
	n.Position = in.Position
	n.Value = ""
	n.Children = nil

	if kind.IsParent() {
		if in.Value != nil {
			return fmt.Errorf("%w: %s must not have a value", ErrInvalidTree, in.Type)
		}

		n.Children = []*Node{}
		if in.Children != nil {
			n.Children = *in.Children
		}

		return nil
	}

	if in.Children != nil {
		return fmt.Errorf("%w: %s must not have children", ErrInvalidTree, in.Type)
	}

	if in.Value != nil {
		n.Value = *in.Value
	}

	return nil
}
