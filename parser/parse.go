// Package parser runs the Dutch merge passes over trees produced by the base
// tokenizer.
package parser

import (
	"log/slog"

	"github.com/shibukawa/parsedutch/exceptions"
	"github.com/shibukawa/parsedutch/internal/logging"
	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/parser/abbreviation"
	"github.com/shibukawa/parsedutch/parser/elision"
)

// Pass rewrites the children of every node of one kind.
type Pass struct {
	Name  string
	Kind  nlcst.Kind
	Apply func(children []*nlcst.Node) []*nlcst.Node
}

// Pipeline is an ordered list of passes. It holds no mutable state and can be
// shared between goroutines.
type Pipeline struct {
	passes []Pass
	logger *slog.Logger
}

// NewPipeline creates the Dutch pipeline: elision on every sentence, then
// abbreviation on every paragraph.
func NewPipeline(tables *exceptions.Tables, logger *slog.Logger) *Pipeline {
	if tables == nil {
		tables = exceptions.Default()
	}

	return New(logger,
		Pass{
			Name: "elision",
			Kind: nlcst.Sentence,
			Apply: func(children []*nlcst.Node) []*nlcst.Node {
				return elision.Execute(children, tables)
			},
		},
		Pass{
			Name: "abbreviation",
			Kind: nlcst.Paragraph,
			Apply: func(children []*nlcst.Node) []*nlcst.Node {
				return abbreviation.Execute(children, tables)
			},
		},
	)
}

// New creates a pipeline from arbitrary passes.
func New(logger *slog.Logger, passes ...Pass) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}

	return &Pipeline{
		passes: passes,
		logger: logger,
	}
}

// Passes returns the names of the passes in execution order.
func (p *Pipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}

	return names
}

// Run applies every pass to node in order and returns the resulting tree.
// node itself is not modified.
func (p *Pipeline) Run(node *nlcst.Node) *nlcst.Node {
	for _, pass := range p.passes {
		node = Transform(node, pass.Kind, p.logged(pass))
	}

	return node
}

func (p *Pipeline) logged(pass Pass) func([]*nlcst.Node) []*nlcst.Node {
	return func(children []*nlcst.Node) []*nlcst.Node {
		result := pass.Apply(children)
		if !sameNodes(children, result) {
			p.logger.Debug("merge pass applied",
				slog.String("pass", pass.Name),
				slog.String("node", pass.Kind.String()),
				slog.Int("before", len(children)),
				slog.Int("after", len(result)),
			)
		}

		return result
	}
}

// Transform walks the tree depth first and replaces the children of every
// node of the given kind with apply(children), descendants first. Ancestors
// of a changed node are rebuilt with a position spanning their new children;
// untouched subtrees are shared with the input.
func Transform(node *nlcst.Node, kind nlcst.Kind, apply func(children []*nlcst.Node) []*nlcst.Node) *nlcst.Node {
	if node == nil || !node.Kind.IsParent() {
		return node
	}

	children := node.Children

	var rebuilt []*nlcst.Node
	for i, child := range children {
		result := Transform(child, kind, apply)
		if result == child && rebuilt == nil {
			continue
		}

		if rebuilt == nil {
			rebuilt = make([]*nlcst.Node, len(children))
			copy(rebuilt, children[:i])
		}

		rebuilt[i] = result
	}

	if rebuilt != nil {
		children = rebuilt
	}

	if node.Kind == kind {
		children = apply(children)
	}

	if sameNodes(children, node.Children) {
		return node
	}

	return node.WithChildren(children)
}

func sameNodes(a, b []*nlcst.Node) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
