package parsedutch

import "log/slog"

// Option configures a Parser.
type Option func(*options)

type options struct {
	position      bool
	abbreviations []string
	logger        *slog.Logger
	base          BaseTokenizer
}

// WithPosition controls whether returned nodes carry positions. The default
// is true.
func WithPosition(position bool) Option {
	return func(o *options) {
		o.position = position
	}
}

// WithAbbreviations adds abbreviations to the built-in table, in the notation
// "blz" or "t.a.v.".
func WithAbbreviations(abbreviations ...string) Option {
	return func(o *options) {
		o.abbreviations = append(o.abbreviations, abbreviations...)
	}
}

// WithLogger sets the logger that receives a debug record for every merge.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBaseTokenizer replaces the built-in Latin tokenizer.
func WithBaseTokenizer(base BaseTokenizer) Option {
	return func(o *options) {
		o.base = base
	}
}
