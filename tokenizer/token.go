package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	EOF TokenType = iota
	WHITESPACE
	WORD        // letters, digits and combining marks
	PUNCTUATION // one punctuation rune
	SYMBOL      // one rune that is neither word, space nor punctuation; apostrophes
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case WORD:
		return "WORD"
	case PUNCTUATION:
		return "PUNCTUATION"
	case SYMBOL:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the source text
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position // first rune
	End      Position // just after the last rune
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
