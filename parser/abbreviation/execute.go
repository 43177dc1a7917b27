// Package abbreviation joins sentences that were split at the full stop of
// an abbreviation, such as "St." or "Z. Em.".
package abbreviation

import (
	"slices"

	"github.com/shibukawa/parsedutch/exceptions"
	"github.com/shibukawa/parsedutch/nlcst"
	cmn "github.com/shibukawa/parsedutch/parser/parsercommon"
)

// entry is one sentence-level node of a paragraph in reading order.
type entry struct {
	node *nlcst.Node
	// sentence is the ordinal of the owning sentence, -1 for white space
	// between sentences.
	sentence int
}

// unit is an abbreviation candidate: a word followed by a full stop, or a
// word that already holds its full stop.
type unit struct {
	stems []string
	word  int
	// period is the index of a separate full stop, -1 when the word holds it.
	period int
}

type paragraph struct {
	entries []entry
	// last holds the entry index of the last child of each sentence.
	last []int
}

// Execute returns the children of a paragraph with sentences that end in an
// abbreviation joined to the sentence after them. The input slice is returned
// as is when nothing matches.
func Execute(children []*nlcst.Node, tables *exceptions.Tables) []*nlcst.Node {
	p := flatten(children)
	if len(p.last) < 2 {
		return children
	}

	joined := make([]bool, len(p.last))
	folds := make(map[int]bool)

	changed := false
	for k := 0; k < len(p.last)-1; k++ {
		if p.last[k] < 0 || !p.followedBySentence(k) {
			continue
		}

		matched, first, ok := p.match(p.last[k], tables)
		if !ok {
			continue
		}

		changed = true

		for _, period := range matched {
			folds[period] = true
		}

		for s := first; s <= k; s++ {
			joined[s] = true
		}
	}

	if !changed {
		return children
	}

	return p.rebuild(children, joined, folds)
}

func flatten(children []*nlcst.Node) *paragraph {
	p := &paragraph{}

	for _, child := range children {
		if child.Kind != nlcst.Sentence {
			p.entries = append(p.entries, entry{node: child, sentence: -1})
			continue
		}

		if len(child.Children) == 0 {
			p.last = append(p.last, -1)
			continue
		}

		ordinal := len(p.last)
		for _, node := range child.Children {
			p.entries = append(p.entries, entry{node: node, sentence: ordinal})
		}

		p.last = append(p.last, len(p.entries)-1)
	}

	return p
}

// followedBySentence reports whether only white space separates sentence k
// from the next one.
func (p *paragraph) followedBySentence(k int) bool {
	for i := p.last[k] + 1; i < len(p.entries); i++ {
		e := p.entries[i]
		if e.sentence == k+1 {
			return true
		}

		if e.node.Kind != nlcst.WhiteSpace {
			return false
		}
	}

	return false
}

// match walks back from the entry at end through consecutive abbreviation
// units and checks them against the configured sequences, longest first. It
// returns the full stops to fold into their words and the first sentence the
// match reaches into.
func (p *paragraph) match(end int, tables *exceptions.Tables) ([]int, int, bool) {
	tail, ok := p.unitAt(end)
	if !ok {
		return nil, 0, false
	}

	candidates := tables.Abbreviations(tail.stems[len(tail.stems)-1])
	if len(candidates) == 0 {
		return nil, 0, false
	}

	units := []unit{tail}

	count := len(tail.stems)
	for count < tables.MaxAbbreviationLength() {
		i := units[len(units)-1].word - 1
		if i >= 0 && p.entries[i].node.Kind == nlcst.WhiteSpace {
			i--
		}

		u, ok := p.unitAt(i)
		if !ok {
			// partial sequences break here without a match
			break
		}

		units = append(units, u)
		count += len(u.stems)
	}

	for _, candidate := range candidates {
		if used, ok := matchUnits(units, candidate); ok {
			var periods []int
			for _, u := range units[:used] {
				if u.period >= 0 {
					periods = append(periods, u.period)
				}
			}

			return periods, p.entries[units[used-1].word].sentence, true
		}
	}

	return nil, 0, false
}

// matchUnits checks that the stems of the last units, read backwards, spell
// out candidate exactly. It returns the number of units used.
func matchUnits(units []unit, candidate []string) (int, bool) {
	remaining := candidate

	for i, u := range units {
		if len(u.stems) > len(remaining) {
			return 0, false
		}

		if !slices.Equal(u.stems, remaining[len(remaining)-len(u.stems):]) {
			return 0, false
		}

		remaining = remaining[:len(remaining)-len(u.stems)]
		if len(remaining) == 0 {
			return i + 1, true
		}
	}

	return 0, false
}

func (p *paragraph) unitAt(i int) (unit, bool) {
	if i < 0 || p.entries[i].sentence < 0 {
		return unit{}, false
	}

	node := p.entries[i].node

	if cmn.IsPeriod(node) && i > 0 {
		previous := p.entries[i-1]
		if previous.sentence == p.entries[i].sentence && previous.node.Kind == nlcst.Word {
			stems := exceptions.SplitAbbreviation(cmn.Stem(previous.node))
			return unit{stems: stems, word: i - 1, period: i}, len(stems) > 0
		}

		return unit{}, false
	}

	if cmn.EndsWithPeriod(node) {
		stems := exceptions.SplitAbbreviation(cmn.Stem(node))
		return unit{stems: stems, word: i, period: -1}, len(stems) > 0
	}

	return unit{}, false
}

// rebuild creates the new paragraph children. Sentences untouched by a match
// are reused as they are.
func (p *paragraph) rebuild(children []*nlcst.Node, joined []bool, folds map[int]bool) []*nlcst.Node {
	result := make([]*nlcst.Node, 0, len(children))

	var pending []*nlcst.Node

	index := 0
	ordinal := 0

	for _, child := range children {
		if child.Kind != nlcst.Sentence {
			index++

			if pending != nil {
				pending = append(pending, child)
			} else {
				result = append(result, child)
			}

			continue
		}

		sentence := p.foldPeriods(child, index, folds)
		index += len(child.Children)

		if pending == nil && !joined[ordinal] {
			result = append(result, sentence)
			ordinal++

			continue
		}

		pending = append(pending, sentence.Children...)

		if !joined[ordinal] {
			result = append(result, nlcst.NewParent(nlcst.Sentence, pending))
			pending = nil
		}

		ordinal++
	}

	return result
}

// foldPeriods moves each folded full stop into the word before it. The
// sentence is returned as is when it holds no folded full stop.
func (p *paragraph) foldPeriods(sentence *nlcst.Node, offset int, folds map[int]bool) *nlcst.Node {
	var children []*nlcst.Node

	for i := 0; i < len(sentence.Children); i++ {
		node := sentence.Children[i]

		if i+1 < len(sentence.Children) && folds[offset+i+1] {
			wordChildren := slices.Concat(node.Children, []*nlcst.Node{sentence.Children[i+1]})
			node = nlcst.NewParent(nlcst.Word, wordChildren)
			i++
		}

		children = append(children, node)
	}

	if len(children) == len(sentence.Children) {
		return sentence
	}

	return sentence.WithChildren(children)
}
