package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/shibukawa/parsedutch/fixture"
	"github.com/shibukawa/parsedutch/nlcst"
)

// markdownBlock is one parsed paragraph or heading of a Markdown document.
type markdownBlock struct {
	Kind string      `json:"kind"`
	Line int         `json:"line"`
	Tree *nlcst.Node `json:"tree"`
}

func writeTree(w io.Writer, format string, node *nlcst.Node) error {
	if format == "yaml" {
		return writeYAML(w, nodeMap(node))
	}

	data, err := fixture.Marshal(node)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func writeBlocks(w io.Writer, format string, blocks []markdownBlock) error {
	if format == "yaml" {
		items := make([]any, 0, len(blocks))
		for _, block := range blocks {
			items = append(items, yaml.MapSlice{
				{Key: "kind", Value: block.Kind},
				{Key: "line", Value: block.Line},
				{Key: "tree", Value: nodeMap(block.Tree)},
			})
		}

		return writeYAML(w, items)
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(blocks)
	if err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	_, err = w.Write(data)

	return err
}

// nodeMap mirrors the JSON shape of node with ordered keys.
func nodeMap(node *nlcst.Node) yaml.MapSlice {
	result := yaml.MapSlice{{Key: "type", Value: node.Kind.String()}}

	if node.Kind.IsParent() {
		children := make([]any, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, nodeMap(child))
		}

		result = append(result, yaml.MapItem{Key: "children", Value: children})
	} else {
		result = append(result, yaml.MapItem{Key: "value", Value: node.Value})
	}

	if node.Position != nil {
		result = append(result, yaml.MapItem{Key: "position", Value: yaml.MapSlice{
			{Key: "start", Value: pointMap(node.Position.Start)},
			{Key: "end", Value: pointMap(node.Position.End)},
		}})
	}

	return result
}

func pointMap(p nlcst.Point) yaml.MapSlice {
	return yaml.MapSlice{
		{Key: "line", Value: p.Line},
		{Key: "column", Value: p.Column},
		{Key: "offset", Value: p.Offset},
	}
}
