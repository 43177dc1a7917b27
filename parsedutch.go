// Package parsedutch parses Dutch text into natural language concrete syntax
// trees (NLCST).
//
// Text is tokenized by a generic Latin-script tokenizer first. Two passes then
// correct what that tokenizer gets wrong for Dutch: apostrophes of elided
// forms ('s, 't, d') are merged into their words, and sentences split at the
// full stop of an abbreviation ("St.", "Z. Em.") are joined again.
//
//	p := parsedutch.New()
//	root := p.Parse("'s-Gravenhage. St. Augustinus.")
package parsedutch

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/shibukawa/parsedutch/exceptions"
	"github.com/shibukawa/parsedutch/internal/logging"
	"github.com/shibukawa/parsedutch/latin"
	"github.com/shibukawa/parsedutch/nlcst"
	"github.com/shibukawa/parsedutch/parser"
)

// BaseTokenizer builds raw trees before the Dutch passes run.
type BaseTokenizer interface {
	TokenizeRoot(text string) *nlcst.Node
	TokenizeParagraph(text string) *nlcst.Node
	TokenizeSentence(text string) *nlcst.Node
	TokenizeWord(text string) *nlcst.Node
}

// Source is a file-like wrapper exposing its text content.
type Source interface {
	String() string
}

// Parser parses Dutch text. It holds no mutable state and is safe for
// concurrent use.
type Parser struct {
	position bool
	base     BaseTokenizer
	pipeline *parser.Pipeline
	logger   *slog.Logger
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	o := options{position: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = logging.Discard()
	}

	if o.base == nil {
		o.base = latin.New(o.position)
	}

	tables := exceptions.Default()
	if len(o.abbreviations) > 0 {
		tables = exceptions.New(o.abbreviations...)
	}

	return &Parser{
		position: o.position,
		base:     o.base,
		pipeline: parser.NewPipeline(tables, o.logger),
		logger:   o.logger,
	}
}

// NewWithConfig creates a Parser from a loaded configuration. A nil config
// means the defaults. Options are applied after the configuration, so they
// win over it.
func NewWithConfig(config *Config, opts ...Option) (*Parser, error) {
	if config == nil {
		config = getDefaultConfig()
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	format, err := logging.ParseFormat(config.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}

	logger := logging.New(os.Stderr, level, format)

	base := []Option{
		WithPosition(config.PositionEnabled()),
		WithAbbreviations(config.Abbreviations...),
		WithLogger(logger),
	}

	return New(append(base, opts...)...), nil
}

// Position reports whether returned nodes carry positions.
func (p *Parser) Position() bool {
	return p.position
}

// Parse tokenizes text into a RootNode and applies the Dutch passes.
func (p *Parser) Parse(text string) *nlcst.Node {
	return p.run(p.base.TokenizeRoot(text))
}

// ParseSource parses the text content of src.
func (p *Parser) ParseSource(src Source) *nlcst.Node {
	return p.Parse(src.String())
}

// TokenizeParagraph tokenizes text into a ParagraphNode and applies the Dutch
// passes.
func (p *Parser) TokenizeParagraph(text string) *nlcst.Node {
	return p.run(p.base.TokenizeParagraph(text))
}

// TokenizeSentence tokenizes text into a SentenceNode and applies the elision
// pass.
func (p *Parser) TokenizeSentence(text string) *nlcst.Node {
	return p.run(p.base.TokenizeSentence(text))
}

// TokenizeWord tokenizes text into a WordNode.
func (p *Parser) TokenizeWord(text string) *nlcst.Node {
	return p.run(p.base.TokenizeWord(text))
}

func (p *Parser) run(node *nlcst.Node) *nlcst.Node {
	node = p.pipeline.Run(node)

	// a custom base tokenizer may ignore the position setting
	if !p.position && node != nil && node.Position != nil {
		node = nlcst.Clean(node)
	}

	return node
}
