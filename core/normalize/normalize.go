package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quoteRunes = map[rune]bool{
	'"': true, '\'': true,
	'«': true, '»': true, '´': true,
	'‘': true, '’': true, '‚': true, '‛': true,
	'“': true, '”': true, '„': true, '‟': true,
	'′': true, '″': true, '‹': true, '›': true,
	'＂': true, '＇': true,
}

// spacedSeparators matches a separator run with whitespace on at least one side.
var spacedSeparators = regexp.MustCompile(`\s+[/.,;:-]+\s*|[/.,;:-]+\s+`)

var glyphReplacer = strings.NewReplacer(
	"…", "...", "⋯", "...",
	"‐", "-", "‑", "-", "‒", "-", "–", "-", "—", "-", "―", "-",
	"−", "-",
	"⏐", "|", "│", "|", "┃", "|", "¦", "|",
	"½", "|", // one exporter renders the vertical bar as ½
)

// isFormat reports the invisible characters exporters leave behind.
func isFormat(r rune) bool {
	return r == '\u00AD' || (r >= '\u200B' && r <= '\u200F') || r == '\uFEFF'
}

// Normalize canonicalizes text under the profile.
func Normalize(text string, p Profile) string {
	out := p.apply(text)
	// Passes after the first only delete runes, so the loop ends.
	for {
		next := p.apply(out)
		if next == out {
			return out
		}
		out = next
	}
}

// NormalizeValue normalizes a cell value; absent and empty values yield "".
func NormalizeValue(v record.Value, p Profile) string {
	if v.IsBlank() {
		return ""
	}
	return Normalize(v.String(), p)
}

func (p Profile) apply(s string) string {
	if p.Clean {
		s = defaultCleaner.Clean(s)
	}
	s = norm.NFC.String(s)

	s, _, _ = transform.String(runes.Remove(runes.Predicate(p.removable)), s)

	if p.CanonicalGlyphs {
		s = glyphReplacer.Replace(s)
	}
	if p.StripLoneQuestionMarks {
		s = stripLoneQuestionMarks(s)
	}
	if p.FoldCase {
		s = cases.Fold().String(s)
	}
	if p.CollapseSeparators {
		s = spacedSeparators.ReplaceAllString(s, " ")
	}
	if p.StripWhitespace {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	return norm.NFC.String(s)
}

// removable covers the runes deleted before context-sensitive steps run.
func (p Profile) removable(r rune) bool {
	switch {
	case p.StripWhitespace && isFormat(r):
		return true
	case p.StripQuotes && quoteRunes[r]:
		return true
	case p.StripSemicolons && r == ';':
		return true
	}
	return false
}

func stripLoneQuestionMarks(s string) string {
	if !strings.ContainsRune(s, '?') {
		return s
	}
	rs := []rune(s)
	out := make([]rune, 0, len(rs))
	for i, r := range rs {
		if r == '?' {
			leftOpen := i == 0 || unicode.IsSpace(rs[i-1])
			rightOpen := i == len(rs)-1 || unicode.IsSpace(rs[i+1])
			if leftOpen && rightOpen {
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}

var displayQuotes = strings.NewReplacer(
	"‘", "'", "’", "'", "‚", "'", "‛", "'",
	"“", "\"", "”", "\"", "„", "\"", "‟", "\"",
)

// Display prepares text for presentation: canonical glyphs, straight quotes and single spaces.
// Unlike Normalize it keeps the text readable.
func Display(text string) string {
	s := norm.NFC.String(text)
	s = strings.Map(func(r rune) rune {
		if isFormat(r) {
			return -1
		}
		return r
	}, s)
	s = glyphReplacer.Replace(s)
	s = displayQuotes.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
