package normalize

import (
	"regexp"
	"strings"
)

// Placeholder is the rune that unrepresentable glyphs are mapped to.
const Placeholder = '?'

var markerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<{1,2}\s*(?:ERR)?OR:\s*embedded\s+object.*?(?:does not exist|could not be imported)\s*>{0,2}`),
	regexp.MustCompile(`OLE\s*Object`),
}

// DefaultSymbols lists glyphs that exporters render or substitute inconsistently.
var DefaultSymbols = []rune{
	'\u00B5', '\u03BC', // micro sign, mu
	'\u2126', '\u03A9', // ohm sign, omega
	'\u2206', '\u0394', // increment, delta
	'α', 'β', 'γ', 'λ', 'π', 'σ', 'τ', 'φ', 'ω',
	'±', '≤', '≥', '≠', '√', '∞',
	'\uFFFD',
}

// Cleaner removes embedded-object placeholders and maps special glyphs to a shared placeholder.
type Cleaner struct {
	placeholder rune
	symbols     map[rune]bool
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithPlaceholder sets the rune special glyphs are mapped to.
func WithPlaceholder(r rune) CleanerOption {
	return func(c *Cleaner) { c.placeholder = r }
}

// WithSymbols replaces the symbol table.
func WithSymbols(symbols ...rune) CleanerOption {
	return func(c *Cleaner) {
		c.symbols = make(map[rune]bool, len(symbols))
		for _, r := range symbols {
			c.symbols[r] = true
		}
	}
}

// NewCleaner creates a Cleaner with DefaultSymbols and Placeholder unless overridden.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{placeholder: Placeholder}
	WithSymbols(DefaultSymbols...)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCleaner = NewCleaner()

// DefaultCleaner returns the shared Cleaner used by the symbol-tolerant profile.
func DefaultCleaner() *Cleaner { return defaultCleaner }

// Clean applies the default Cleaner.
func Clean(text string) string { return defaultCleaner.Clean(text) }

// Clean strips markers, maps symbols and collapses whitespace until the text is stable.
func (c *Cleaner) Clean(text string) string {
	out := c.pass(text)
	// Later passes only remove markers and spaces, so the loop ends.
	for {
		next := c.pass(out)
		if next == out {
			return out
		}
		out = next
	}
}

func (c *Cleaner) pass(s string) string {
	for _, re := range markerPatterns {
		s = re.ReplaceAllString(s, " ")
	}
	s = strings.Map(func(r rune) rune {
		if c.symbols[r] {
			return c.placeholder
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}
