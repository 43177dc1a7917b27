// Package exceptions holds the read-only lookup tables of Dutch
// abbreviations and elided word forms.
package exceptions

import (
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// abbreviations lists stems that may be followed by a full stop without
// ending the sentence. Stems joined with a dot form a sequence that has to
// match consecutive (word, full stop) pairs, such as "Z. Em.".
var abbreviations = []string{
	// titles and forms of address
	"st", "z", "em", "dhr", "mevr", "mej", "mr", "dr", "drs", "ir", "ing",
	"prof", "sr", "jr", "zr", "mgr", "ds", "kard", "pres", "gen", "kol",
	"lt", "kapt", "adm", "z.em", "z.h", "h.k.h", "h.m",
	// months
	"jan", "feb", "mrt", "apr", "jun", "jul", "aug", "sep", "sept", "okt",
	"nov", "dec",
	// days
	"ma", "di", "wo", "do", "vr", "za", "zo",
	// addresses
	"str", "ln", "pl", "gem", "prov", "nr", "bus", "postb",
	// common words
	"bijv", "bv", "ca", "enz", "etc", "evt", "vgl", "zgn", "nl", "resp",
	"ong", "jl", "blz", "pag", "fig", "tel", "afd", "max", "min", "incl",
	"excl", "m.a.w", "o.a", "i.p.v", "t.a.v", "a.s",
}

var (
	// initialElisions are forms written with a leading apostrophe.
	initialElisions = []string{"s", "t", "n", "ns", "er", "em", "ie", "tis", "twas"}
	// finalElisions are forms written with a trailing apostrophe.
	finalElisions = []string{"d"}

	decade = regexp.MustCompile(`^[0-9]{2}s$`)
)

// Tables answers exception lookups. A Tables value is never modified after
// New returns, so it can be shared between goroutines.
type Tables struct {
	abbreviations map[string][][]string
	maxLength     int
	initial       map[string]struct{}
	final         map[string]struct{}
}

var (
	defaultTables *Tables
	defaultOnce   sync.Once
)

// Default returns the built-in tables.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = New()
	})

	return defaultTables
}

// New builds tables from the built-in lists plus extra abbreviations, given
// in the same notation ("blz", "t.a.v.").
func New(extra ...string) *Tables {
	t := &Tables{
		abbreviations: make(map[string][][]string),
		initial:       toSet(initialElisions),
		final:         toSet(finalElisions),
	}

	for _, entry := range abbreviations {
		t.addAbbreviation(entry)
	}

	for _, entry := range extra {
		t.addAbbreviation(entry)
	}

	// longest sequences first so that callers prefer the widest match
	for stem := range t.abbreviations {
		slices.SortStableFunc(t.abbreviations[stem], func(a, b []string) int {
			return len(b) - len(a)
		})
	}

	return t
}

func (t *Tables) addAbbreviation(entry string) {
	stems := SplitAbbreviation(entry)
	if len(stems) == 0 {
		return
	}

	last := stems[len(stems)-1]
	for _, existing := range t.abbreviations[last] {
		if slices.Equal(existing, stems) {
			return
		}
	}

	t.abbreviations[last] = append(t.abbreviations[last], stems)
	t.maxLength = max(t.maxLength, len(stems))
}

// SplitAbbreviation turns "Z. Em." or "z.em" into the folded stems
// ["z", "em"]. It returns nil when no stem remains.
func SplitAbbreviation(entry string) []string {
	var stems []string

	for _, part := range strings.Split(entry, ".") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		stems = append(stems, Fold(part))
	}

	return stems
}

// Abbreviations returns the stem sequences ending in lastStem, longest first.
// The result must not be modified.
func (t *Tables) Abbreviations(lastStem string) [][]string {
	return t.abbreviations[Fold(lastStem)]
}

// IsAbbreviation reports whether stem on its own is a known abbreviation.
func (t *Tables) IsAbbreviation(stem string) bool {
	for _, sequence := range t.Abbreviations(stem) {
		if len(sequence) == 1 {
			return true
		}
	}

	return false
}

// MaxAbbreviationLength is the number of stems in the longest sequence.
func (t *Tables) MaxAbbreviationLength() int {
	return t.maxLength
}

// IsInitialElision reports whether stem, written after an apostrophe, is an
// elided form such as 's, 't or '70s.
func (t *Tables) IsInitialElision(stem string) bool {
	folded := Fold(stem)
	if _, ok := t.initial[folded]; ok {
		return true
	}

	return decade.MatchString(folded)
}

// IsFinalElision reports whether stem, written before an apostrophe, is an
// elided form such as d'.
func (t *Tables) IsFinalElision(stem string) bool {
	_, ok := t.final[Fold(stem)]
	return ok
}

// Fold returns the case folded form of s used for every table lookup.
func Fold(s string) string {
	// a Caser keeps state, so each call gets its own
	return cases.Fold().String(s)
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}

	return set
}
