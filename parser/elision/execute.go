// Package elision merges apostrophes into the elided words next to them,
// such as 's, 't and d'.
package elision

import (
	pc "github.com/shibukawa/parsercombinator"

	"github.com/shibukawa/parsedutch/exceptions"
	"github.com/shibukawa/parsedutch/nlcst"
	cmn "github.com/shibukawa/parsedutch/parser/parsercommon"
)

// Execute returns the children of a sentence with every elided form merged
// into one word. The input slice is returned as is when nothing matches.
func Execute(children []*nlcst.Node, tables *exceptions.Tables) []*nlcst.Node {
	if len(children) < 2 {
		return children
	}

	pctx := pc.NewParseContext[cmn.Entity]()
	elision := pc.Or(initial(tables), final(tables))

	tokens := cmn.ToParserToken(children)

	var result []*nlcst.Node

	changed := false
	for len(tokens) > 0 {
		skipped, match, _, remained, ok := pc.Find(pctx, elision, tokens)
		if !ok {
			break
		}

		changed = true

		result = append(result, cmn.ToNodes(skipped)...)
		result = append(result, merge(cmn.ToNodes(match)))

		tokens = remained
		if len(tokens) > 0 {
			tokens[0].Val.AfterWord = true
		}
	}

	if !changed {
		return children
	}

	return append(result, cmn.ToNodes(tokens)...)
}

// initial matches an apostrophe that does not follow a word, followed by a
// word starting with an initial elided form: 's-Gravenhage, 't, '70s.
func initial(tables *exceptions.Tables) pc.Parser[cmn.Entity] {
	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		if len(tokens) < 2 || tokens[0].Val.AfterWord {
			return 0, nil, pc.ErrNotMatch
		}

		if _, _, err := cmn.Apostrophe(pctx, tokens); err != nil {
			return 0, nil, pc.ErrNotMatch
		}

		word := tokens[1].Val.Node
		if word.Kind != nlcst.Word {
			return 0, nil, pc.ErrNotMatch
		}

		first := word.FirstChild()
		if first == nil || first.Kind != nlcst.Text || !tables.IsInitialElision(first.Value) {
			return 0, nil, pc.ErrNotMatch
		}

		return 2, tokens[:2], nil
	}
}

// final matches a word ending in a final elided form followed by an
// apostrophe that is not directly followed by another word: d'.
func final(tables *exceptions.Tables) pc.Parser[cmn.Entity] {
	return func(pctx *pc.ParseContext[cmn.Entity], tokens []pc.Token[cmn.Entity]) (int, []pc.Token[cmn.Entity], error) {
		if len(tokens) < 2 {
			return 0, nil, pc.ErrNotMatch
		}

		if _, _, err := cmn.Word(pctx, tokens); err != nil {
			return 0, nil, pc.ErrNotMatch
		}

		last := tokens[0].Val.Node.LastChild()
		if last == nil || last.Kind != nlcst.Text || !tables.IsFinalElision(last.Value) {
			return 0, nil, pc.ErrNotMatch
		}

		if _, _, err := cmn.Apostrophe(pctx, tokens[1:]); err != nil {
			return 0, nil, pc.ErrNotMatch
		}

		if len(tokens) > 2 && tokens[2].Val.Node.Kind == nlcst.Word {
			return 0, nil, pc.ErrNotMatch
		}

		return 2, tokens[:2], nil
	}
}

// merge builds the word for a matched apostrophe and word pair, keeping the
// original order of their content.
func merge(pair []*nlcst.Node) *nlcst.Node {
	var children []*nlcst.Node

	for _, node := range pair {
		if node.Kind == nlcst.Word {
			children = append(children, node.Children...)
		} else {
			children = append(children, node)
		}
	}

	return nlcst.NewParent(nlcst.Word, children)
}
