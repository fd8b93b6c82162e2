package match

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// DefaultPrefixPattern strips ordering codes such as "LAH_0010_" from container names.
const DefaultPrefixPattern = `^[A-Z]+_\d+_`

// SimilarityThreshold is the minimum Levenshtein similarity for a suggestion.
const SimilarityThreshold = 0.75

var (
	separatorRun = regexp.MustCompile(`[ _.]+`)
	idTokenRe    = regexp.MustCompile(`^[A-Za-z0-9.]+`)
)

// FuzzyOptions configures a FuzzyIndex.
type FuzzyOptions struct {
	// PrefixPattern is stripped from the last path segment of every entry. Empty disables it.
	PrefixPattern string `mapstructure:"prefix_pattern" json:"prefix_pattern"`
	// CaseSensitive disables case folding.
	CaseSensitive bool `mapstructure:"case_sensitive" json:"case_sensitive"`
}

type fuzzyEntry struct {
	name string
	key  string
}

// FuzzyIndex answers prefix lookups over a fixed list of reference names.
type FuzzyIndex struct {
	entries []fuzzyEntry
	prefix  *regexp.Regexp
	fold    bool
}

// NewFuzzyIndex builds an index over entries, preserving their order.
func NewFuzzyIndex(entries []string, opts FuzzyOptions) (*FuzzyIndex, error) {
	ix := &FuzzyIndex{fold: !opts.CaseSensitive}
	if opts.PrefixPattern != "" {
		re, err := regexp.Compile(opts.PrefixPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix pattern %q: %w", opts.PrefixPattern, err)
		}
		ix.prefix = re
	}
	ix.entries = make([]fuzzyEntry, len(entries))
	for i, e := range entries {
		ix.entries[i] = fuzzyEntry{name: e, key: ix.EntryKey(e)}
	}
	return ix, nil
}

// Len returns the number of entries.
func (ix *FuzzyIndex) Len() int { return len(ix.entries) }

// EntryKey reduces a reference name to its comparable form: last path segment,
// ordering prefix removed, separators unified.
func (ix *FuzzyIndex) EntryKey(name string) string {
	seg := strings.TrimSpace(name)
	seg = path.Base(strings.ReplaceAll(seg, `\`, "/"))
	if seg == "." || seg == "/" {
		seg = ""
	}
	if ix.prefix != nil {
		seg = ix.prefix.ReplaceAllString(seg, "")
	}
	return ix.canonical(seg)
}

func (ix *FuzzyIndex) canonical(s string) string {
	s = separatorRun.ReplaceAllString(strings.TrimSpace(s), ".")
	if ix.fold {
		s = cases.Fold().String(s)
	}
	return s
}

// CanonicalName unifies separators and folds case the way lookups do.
func CanonicalName(s string) string {
	return cases.Fold().String(separatorRun.ReplaceAllString(strings.TrimSpace(s), "."))
}

// IDToken returns the leading alphanumeric-and-dot run of a name.
func IDToken(name string) string {
	return idTokenRe.FindString(strings.TrimSpace(name))
}

// Lookup returns the first entry matching the candidate.
func (ix *FuzzyIndex) Lookup(candidate string) (string, bool) {
	pos := ix.find(candidate, true)
	if len(pos) == 0 {
		return "", false
	}
	return ix.entries[pos[0]].name, true
}

// LookupAll returns every entry matching the candidate, in index order.
func (ix *FuzzyIndex) LookupAll(candidate string) []string {
	pos := ix.find(candidate, false)
	out := make([]string, len(pos))
	for i, p := range pos {
		out[i] = ix.entries[p].name
	}
	return out
}

// find returns entry positions whose key starts with the candidate; failing that,
// positions whose key starts with the candidate's identifier token followed by a separator.
func (ix *FuzzyIndex) find(candidate string, first bool) []int {
	c := ix.canonical(candidate)
	if c == "" {
		return nil
	}
	if pos := ix.scan(first, func(key string) bool { return strings.HasPrefix(key, c) }); len(pos) > 0 {
		return pos
	}

	id := ix.canonical(IDToken(candidate))
	if id == "" || id == c {
		return nil
	}
	probe := id + "."
	return ix.scan(first, func(key string) bool {
		return key == id || strings.HasPrefix(key, probe)
	})
}

func (ix *FuzzyIndex) scan(first bool, ok func(key string) bool) []int {
	var pos []int
	for i, e := range ix.entries {
		if e.key == "" || !ok(e.key) {
			continue
		}
		pos = append(pos, i)
		if first {
			break
		}
	}
	return pos
}

// Suggest lists entries that resemble an unmatched candidate: keys containing its identifier
// token, or keys whose leading part is within SimilarityThreshold of the candidate.
// Closest first, at most limit (0 = all).
func (ix *FuzzyIndex) Suggest(candidate string, limit int) []string {
	c := ix.canonical(candidate)
	if c == "" {
		return nil
	}
	id := ix.canonical(IDToken(candidate))
	width := len([]rune(c))

	type scored struct {
		name string
		dist int
		pos  int
	}
	var hits []scored
	seen := make(map[string]bool)
	for i, e := range ix.entries {
		if e.key == "" || seen[e.name] {
			continue
		}
		dist := levenshtein.ComputeDistance(c, head(e.key, width))
		related := id != "" && strings.Contains(e.key, id)
		if !related && 1-float64(dist)/float64(width) < SimilarityThreshold {
			continue
		}
		seen[e.name] = true
		hits = append(hits, scored{name: e.name, dist: dist, pos: i})
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}
		return hits[a].pos < hits[b].pos
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

// head returns the first n runes of s.
func head(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
