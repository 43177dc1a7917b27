// Package fixture reads, writes and regenerates JSON tree fixtures.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/shibukawa/parsedutch/nlcst"
)

// Load reads a JSON fixture.
func Load(path string) (*nlcst.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	var node nlcst.Node

	err = json.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixture %s: %w", path, err)
	}

	return &node, nil
}

// Marshal encodes node as two-space indented JSON with a trailing newline.
func Marshal(node *nlcst.Node) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode fixture: %w", err)
	}

	return buf.Bytes(), nil
}

// Save writes node to path in the fixture format.
func Save(path string, node *nlcst.Node) error {
	data, err := Marshal(node)
	if err != nil {
		return err
	}

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write fixture %s: %w", path, err)
	}

	return nil
}

// Compare returns nil when both trees are equal, or an ErrMismatch naming the
// first path where they differ.
func Compare(expected, actual *nlcst.Node) error {
	return compare(expected, actual, "")
}

func compare(expected, actual *nlcst.Node, path string) error {
	if expected == nil || actual == nil {
		if expected == actual {
			return nil
		}

		return fmt.Errorf("%w at %s: node presence differs", ErrMismatch, displayPath(path))
	}

	path = path + "/" + expected.Kind.String()

	if expected.Kind != actual.Kind {
		return fmt.Errorf("%w at %s: expected %s, got %s", ErrMismatch, path, expected.Kind, actual.Kind)
	}

	if expected.Value != actual.Value {
		return fmt.Errorf("%w at %s: expected value %q, got %q", ErrMismatch, path, expected.Value, actual.Value)
	}

	if (expected.Position == nil) != (actual.Position == nil) ||
		(expected.Position != nil && *expected.Position != *actual.Position) {
		return fmt.Errorf("%w at %s: expected position %s, got %s", ErrMismatch, path,
			formatPosition(expected.Position), formatPosition(actual.Position))
	}

	for i := range min(len(expected.Children), len(actual.Children)) {
		err := compare(expected.Children[i], actual.Children[i], fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return err
		}
	}

	if len(expected.Children) != len(actual.Children) {
		return fmt.Errorf("%w at %s: expected %d children, got %d", ErrMismatch, path,
			len(expected.Children), len(actual.Children))
	}

	return nil
}

func formatPosition(pos *nlcst.Position) string {
	if pos == nil {
		return "none"
	}

	return fmt.Sprintf("%d:%d-%d:%d", pos.Start.Line, pos.Start.Column, pos.End.Line, pos.End.Column)
}

func displayPath(path string) string {
	if path == "" {
		return "/"
	}

	return path
}
