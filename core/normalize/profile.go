package normalize

import (
	"fmt"
	"sort"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
)

// Profile names a bundle of text transformations.
type Profile struct {
	Name string `json:"name"`
	// Clean runs the Cleaner before any other step.
	Clean bool `json:"clean"`
	// StripWhitespace removes all whitespace and the zero-width/format characters.
	StripWhitespace bool `json:"strip_whitespace"`
	// StripQuotes removes straight and typographic quotation marks.
	StripQuotes bool `json:"strip_quotes"`
	// StripSemicolons removes ';'.
	StripSemicolons bool `json:"strip_semicolons"`
	// StripLoneQuestionMarks removes '?' surrounded by whitespace or text boundaries.
	StripLoneQuestionMarks bool `json:"strip_lone_question_marks"`
	// CanonicalGlyphs maps ellipsis, dash and vertical-bar variants to one representative.
	CanonicalGlyphs bool `json:"canonical_glyphs"`
	// FoldCase applies Unicode case folding.
	FoldCase bool `json:"fold_case"`
	// CollapseSeparators drops the separators / - . , ; : where whitespace delimits them;
	// separators inside a token ("1.2") are kept.
	CollapseSeparators bool `json:"collapse_separators"`
}

const (
	ProfileDefault          = "default"
	ProfileStrictWording    = "strict-wording"
	ProfileSymbolTolerant   = "symbol-tolerant"
	ProfileLegacyIdentifier = "legacy-identifier"
)

var (
	// Default is the profile used by free-text comparisons.
	Default = Profile{
		Name:                   ProfileDefault,
		StripWhitespace:        true,
		StripQuotes:            true,
		StripSemicolons:        true,
		StripLoneQuestionMarks: true,
		CanonicalGlyphs:        true,
	}

	// StrictWording keeps '?' and placeholder markers so substitutions count as changes.
	StrictWording = Profile{
		Name:            ProfileStrictWording,
		StripWhitespace: true,
		StripQuotes:     true,
		StripSemicolons: true,
		CanonicalGlyphs: true,
	}

	// SymbolTolerant additionally ignores embedded-object markers and exporter glyph substitutions.
	SymbolTolerant = Profile{
		Name:                   ProfileSymbolTolerant,
		Clean:                  true,
		StripWhitespace:        true,
		StripQuotes:            true,
		StripSemicolons:        true,
		StripLoneQuestionMarks: true,
		CanonicalGlyphs:        true,
	}

	// LegacyIdentifier trades precision for tolerance on identifier-like fields.
	LegacyIdentifier = Profile{
		Name:                   ProfileLegacyIdentifier,
		StripWhitespace:        true,
		StripQuotes:            true,
		StripSemicolons:        true,
		StripLoneQuestionMarks: true,
		CanonicalGlyphs:        true,
		FoldCase:               true,
		CollapseSeparators:     true,
	}
)

var profiles = map[string]Profile{
	ProfileDefault:          Default,
	ProfileStrictWording:    StrictWording,
	ProfileSymbolTolerant:   SymbolTolerant,
	ProfileLegacyIdentifier: LegacyIdentifier,
}

// Lookup returns the named profile. An empty name selects Default.
func Lookup(name string) (Profile, error) {
	if name == "" {
		return Default, nil
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", errors.ErrUnknownProfile, name)
	}
	return p, nil
}

// Names lists the registered profile names in lexical order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
