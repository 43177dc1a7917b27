package tokenizer

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

const (
	Apostrophe      = '\''
	RightSingleMark = '’'
)

// TokenIterator uses Go 1.23 iterator pattern
type TokenIterator iter.Seq[Token]

// TextTokenizer splits natural language text into word, white space,
// punctuation and symbol tokens.
type TextTokenizer struct {
	input string
}

// NewTextTokenizer creates a new TextTokenizer
func NewTextTokenizer(input string) *TextTokenizer {
	return &TextTokenizer{input: input}
}

// Tokens returns an iterator of tokens. The final token is always EOF.
func (t *TextTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		for {
			token := tokenizer.nextToken()
			if !yield(token) || token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, without the trailing EOF
func (t *TextTokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 64)

	for token := range t.Tokens() {
		if token.Type == EOF {
			break
		}

		tokens = append(tokens, token)
	}

	return tokens
}

// IsWordRune reports whether r belongs to a word token
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// IsApostrophe reports whether r is one of the two apostrophe glyphs
func IsApostrophe(r rune) bool {
	return r == Apostrophe || r == RightSingleMark
}

// Internal tokenizer implementation
type tokenizer struct {
	input  string
	offset int
	line   int
	column int
}

func (t *tokenizer) position() Position {
	return Position{
		Line:   t.line,
		Column: t.column,
		Offset: t.offset,
	}
}

// peek returns the rune at the current offset and its width
func (t *tokenizer) peek() (rune, int) {
	if t.offset >= len(t.input) {
		return utf8.RuneError, 0
	}

	return utf8.DecodeRuneInString(t.input[t.offset:])
}

// advance consumes one rune and keeps line and column in step
func (t *tokenizer) advance(r rune, width int) {
	t.offset += width

	switch r {
	case '\n':
		t.line++
		t.column = 1
	case '\r':
		// "\r\n" counts once, on the "\n"
		if next, _ := t.peek(); next == '\n' {
			t.column++
		} else {
			t.line++
			t.column = 1
		}
	default:
		t.column++
	}
}

// nextToken gets the next token
func (t *tokenizer) nextToken() Token {
	start := t.position()

	r, width := t.peek()
	if width == 0 {
		return Token{Type: EOF, Position: start, End: start}
	}

	var tokenType TokenType

	switch {
	case unicode.IsSpace(r):
		tokenType = WHITESPACE
		t.readWhile(unicode.IsSpace)
	case IsWordRune(r):
		tokenType = WORD
		t.readWhile(IsWordRune)
	case IsApostrophe(r):
		tokenType = SYMBOL
		t.advance(r, width)
	case unicode.IsPunct(r):
		tokenType = PUNCTUATION
		t.advance(r, width)
	default:
		tokenType = SYMBOL
		t.advance(r, width)
	}

	return Token{
		Type:     tokenType,
		Value:    t.input[start.Offset:t.offset],
		Position: start,
		End:      t.position(),
	}
}

// readWhile consumes runes as long as accept returns true
func (t *tokenizer) readWhile(accept func(rune) bool) {
	for {
		r, width := t.peek()
		if width == 0 || !accept(r) {
			return
		}

		t.advance(r, width)
	}
}
