package latin

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/tokenizer"
)

var (
	terminalMarkers = []string{".", "?", "!", "…", "‽"}
	closingMarks    = []string{")", "]", "}", "\"", "”", "»", "'", "’"}
	innerWordJoins  = []string{"-", "'", "’", "&", "_", "/"}
	numberJoins     = []string{".", ","}
)

// mergeSentenceTokens applies the word-level merges to a run of sentence
// children, in order: initialisms, inner word symbols, word-initial curly
// apostrophes.
func mergeSentenceTokens(nodes []*nlcst.Node) []*nlcst.Node {
	nodes = mergeInitialisms(nodes)
	nodes = mergeInnerWordSymbols(nodes)
	nodes = mergeInitialCurlyApostrophes(nodes)

	return nodes
}

// mergeInitialisms joins runs such as "d.w.z." where single letters alternate
// with full stops into one word, final full stop included.
func mergeInitialisms(nodes []*nlcst.Node) []*nlcst.Node {
	result := make([]*nlcst.Node, 0, len(nodes))

	for i := 0; i < len(nodes); {
		end := i
		for end+1 < len(nodes) && isSingleLetterWord(nodes[end]) && isValue(nodes[end+1], nlcst.Punctuation, ".") {
			end += 2
		}

		// at least two letter/full stop pairs, not glued to a preceding word
		if end-i >= 4 && (len(result) == 0 || result[len(result)-1].Kind != nlcst.Word) {
			var children []*nlcst.Node
			for _, node := range nodes[i:end] {
				if node.Kind == nlcst.Word {
					children = append(children, node.Children...)
				} else {
					children = append(children, node)
				}
			}

			result = append(result, nlcst.NewParent(nlcst.Word, children))
			i = end

			continue
		}

		result = append(result, nodes[i])
		i++
	}

	return result
}

// mergeInnerWordSymbols joins words connected by a hyphen, apostrophe,
// ampersand, underscore or slash ("s-Gravenhage", "eedlen's"), and numbers
// connected by a full stop or comma ("3,5").
func mergeInnerWordSymbols(nodes []*nlcst.Node) []*nlcst.Node {
	result := make([]*nlcst.Node, 0, len(nodes))

	for i := 0; i < len(nodes); i++ {
		node := nodes[i]

		if len(result) > 0 && i+1 < len(nodes) && isInnerJoin(result[len(result)-1], node, nodes[i+1]) {
			previous := result[len(result)-1]
			next := nodes[i+1]

			children := make([]*nlcst.Node, 0, len(previous.Children)+1+len(next.Children))
			children = append(children, previous.Children...)
			children = append(children, node)
			children = append(children, next.Children...)

			result[len(result)-1] = nlcst.NewParent(nlcst.Word, children)
			i++

			continue
		}

		result = append(result, node)
	}

	return result
}

func isInnerJoin(previous, join, next *nlcst.Node) bool {
	if previous.Kind != nlcst.Word || next.Kind != nlcst.Word {
		return false
	}

	if join.Kind != nlcst.Punctuation && join.Kind != nlcst.Symbol {
		return false
	}

	if isOneOf(join.Value, innerWordJoins) {
		return true
	}

	return isOneOf(join.Value, numberJoins) && endsWithDigit(previous) && startsWithDigit(next)
}

// mergeInitialCurlyApostrophes attaches a right single quotation mark to the
// word it directly precedes, when no word precedes it. A straight apostrophe
// is ambiguous with an opening quote and stays separate.
func mergeInitialCurlyApostrophes(nodes []*nlcst.Node) []*nlcst.Node {
	result := make([]*nlcst.Node, 0, len(nodes))

	for i := 0; i < len(nodes); i++ {
		node := nodes[i]

		if node.Kind == nlcst.Symbol && node.Value == string(tokenizer.RightSingleMark) &&
			i+1 < len(nodes) && nodes[i+1].Kind == nlcst.Word &&
			(len(result) == 0 || result[len(result)-1].Kind != nlcst.Word) {
			next := nodes[i+1]

			children := make([]*nlcst.Node, 0, len(next.Children)+1)
			children = append(children, node)
			children = append(children, next.Children...)

			result = append(result, nlcst.NewParent(nlcst.Word, children))
			i++

			continue
		}

		result = append(result, node)
	}

	return result
}

type span struct {
	start, end int
}

// sentences splits paragraph content into sentences after terminal markers
// and lifts white space at either end of a sentence into the paragraph.
func sentences(nodes []*nlcst.Node) []*nlcst.Node {
	spans := splitSentences(nodes)
	spans = mergeContinuations(nodes, spans)

	var result []*nlcst.Node
	for _, s := range spans {
		result = append(result, liftWhiteSpace(nlcst.Sentence, nodes[s.start:s.end])...)
	}

	return result
}

// paragraphs builds the root-level children for one paragraph's content.
func paragraphs(nodes []*nlcst.Node) []*nlcst.Node {
	if len(nodes) == 0 {
		return nil
	}

	start, end := trimWhiteSpace(nodes)
	if start == end {
		return nodes
	}

	result := make([]*nlcst.Node, 0, start+1+len(nodes)-end)
	result = append(result, nodes[:start]...)
	result = append(result, nlcst.NewParent(nlcst.Paragraph, sentences(nodes[start:end])))
	result = append(result, nodes[end:]...)

	return result
}

func splitSentences(nodes []*nlcst.Node) []span {
	var spans []span

	start := 0
	for i := 0; i < len(nodes); i++ {
		if !isTerminal(nodes[i]) {
			continue
		}

		end := i + 1
		for end < len(nodes) && (isTerminal(nodes[end]) || isClosing(nodes[end])) {
			end++
		}

		if end == len(nodes) || nodes[end].Kind == nlcst.WhiteSpace {
			spans = append(spans, span{start: start, end: end})
			start = end
		}

		i = end - 1
	}

	if start < len(nodes) {
		spans = append(spans, span{start: start, end: len(nodes)})
	}

	return spans
}

// mergeContinuations joins a sentence into the previous one when it holds no
// word, or when its first word starts with a lower case letter or a digit. A
// word led by an apostrophe ('t, '70s) starts with the apostrophe, whichever
// glyph it is and whether or not it is attached yet.
func mergeContinuations(nodes []*nlcst.Node, spans []span) []span {
	if len(spans) < 2 {
		return spans
	}

	result := []span{spans[0]}
	for _, s := range spans[1:] {
		if isContinuation(nodes[s.start:s.end]) {
			result[len(result)-1].end = s.end
			continue
		}

		result = append(result, s)
	}

	return result
}

func isContinuation(nodes []*nlcst.Node) bool {
	for i, node := range nodes {
		switch node.Kind {
		case nlcst.WhiteSpace:
			continue
		case nlcst.Punctuation, nlcst.Symbol:
			if isApostrophe(node) && i+1 < len(nodes) && nodes[i+1].Kind == nlcst.Word {
				return false
			}

			continue
		case nlcst.Word:
			r, _ := utf8.DecodeRuneInString(nlcst.ToString(node))
			return unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}

	return true
}

// liftWhiteSpace wraps nodes in a parent of the given kind, leaving white
// space at both ends outside of it.
func liftWhiteSpace(kind nlcst.Kind, nodes []*nlcst.Node) []*nlcst.Node {
	start, end := trimWhiteSpace(nodes)
	if start == end {
		return nodes
	}

	result := make([]*nlcst.Node, 0, start+1+len(nodes)-end)
	result = append(result, nodes[:start]...)
	result = append(result, nlcst.NewParent(kind, nodes[start:end]))
	result = append(result, nodes[end:]...)

	return result
}

func trimWhiteSpace(nodes []*nlcst.Node) (int, int) {
	start := 0
	for start < len(nodes) && nodes[start].Kind == nlcst.WhiteSpace {
		start++
	}

	end := len(nodes)
	for end > start && nodes[end-1].Kind == nlcst.WhiteSpace {
		end--
	}

	return start, end
}

func isTerminal(node *nlcst.Node) bool {
	return node.Kind == nlcst.Punctuation && isOneOf(node.Value, terminalMarkers)
}

func isClosing(node *nlcst.Node) bool {
	return (node.Kind == nlcst.Punctuation || node.Kind == nlcst.Symbol) && isOneOf(node.Value, closingMarks)
}

func isApostrophe(node *nlcst.Node) bool {
	r, size := utf8.DecodeRuneInString(node.Value)
	return size > 0 && size == len(node.Value) && tokenizer.IsApostrophe(r)
}

func isValue(node *nlcst.Node, kind nlcst.Kind, value string) bool {
	return node.Kind == kind && node.Value == value
}

func isSingleLetterWord(node *nlcst.Node) bool {
	if node.Kind != nlcst.Word || len(node.Children) != 1 {
		return false
	}

	value := node.Children[0].Value
	r, size := utf8.DecodeRuneInString(value)

	return size == len(value) && unicode.IsLetter(r)
}

func startsWithDigit(node *nlcst.Node) bool {
	r, _ := utf8.DecodeRuneInString(nlcst.ToString(node))
	return unicode.IsDigit(r)
}

func endsWithDigit(node *nlcst.Node) bool {
	r, _ := utf8.DecodeLastRuneInString(nlcst.ToString(node))
	return unicode.IsDigit(r)
}

func isOneOf(value string, candidates []string) bool {
	for _, candidate := range candidates {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}

	return false
}
