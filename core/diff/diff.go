package diff

import (
	"html"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/finding"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/normalize"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"

	"github.com/pmezard/go-difflib/difflib"
)

// OpKind is the kind of an edit operation.
type OpKind string

const (
	OpEqual   OpKind = "equal"
	OpReplace OpKind = "replace"
	OpInsert  OpKind = "insert"
	OpDelete  OpKind = "delete"
)

var opKinds = map[byte]OpKind{'e': OpEqual, 'r': OpReplace, 'i': OpInsert, 'd': OpDelete}

// Op is one edit operation with the text it covers on each side.
type Op struct {
	Kind OpKind `json:"kind"`
	A    string `json:"a"`
	B    string `json:"b"`
}

// Ops computes the character-level edit script turning a into b.
func Ops(a, b string) []Op {
	ra, rb := splitRunes(a), splitRunes(b)
	m := difflib.NewMatcherWithJunk(ra, rb, false, nil)

	codes := m.GetOpCodes()
	ops := make([]Op, 0, len(codes))
	for _, c := range codes {
		ops = append(ops, Op{
			Kind: opKinds[c.Tag],
			A:    strings.Join(ra[c.I1:c.I2], ""),
			B:    strings.Join(rb[c.J1:c.J2], ""),
		})
	}
	return ops
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Markup wraps deleted and inserted spans.
type Markup struct {
	DeleteOpen  string
	DeleteClose string
	InsertOpen  string
	InsertClose string
	// Escape is applied to every text span; nil leaves text unchanged.
	Escape func(string) string
}

var (
	// Brackets marks spans with [deleted]...[/deleted] and [inserted]...[/inserted].
	Brackets = Markup{
		DeleteOpen:  "[deleted]",
		DeleteClose: "[/deleted]",
		InsertOpen:  "[inserted]",
		InsertClose: "[/inserted]",
	}

	// HTML marks spans with the diff-del and diff-add classes and escapes text.
	HTML = Markup{
		DeleteOpen:  `<span class="diff-del">`,
		DeleteClose: "</span>",
		InsertOpen:  `<span class="diff-add">`,
		InsertClose: "</span>",
		Escape:      html.EscapeString,
	}
)

func (m Markup) text(s string) string {
	if m.Escape == nil {
		return s
	}
	return m.Escape(s)
}

func (m Markup) deleted(s string) string  { return m.DeleteOpen + m.text(s) + m.DeleteClose }
func (m Markup) inserted(s string) string { return m.InsertOpen + m.text(s) + m.InsertClose }

// Renderer produces marked-up versions of two values.
type Renderer struct {
	Markup Markup
}

// New creates a Renderer.
func New(m Markup) *Renderer {
	return &Renderer{Markup: m}
}

// Text diffs prose character by character after display normalization.
func (r *Renderer) Text(a, b string) (string, string) {
	a, b = normalize.Display(a), normalize.Display(b)
	if marked, ok := r.oneSided(a, b); ok {
		return marked[0], marked[1]
	}
	if a == b {
		return r.Markup.text(a), r.Markup.text(b)
	}

	var left, right strings.Builder
	for _, op := range Ops(a, b) {
		switch op.Kind {
		case OpEqual:
			left.WriteString(r.Markup.text(op.A))
			right.WriteString(r.Markup.text(op.B))
		case OpReplace:
			left.WriteString(r.Markup.deleted(op.A))
			right.WriteString(r.Markup.inserted(op.B))
		case OpDelete:
			left.WriteString(r.Markup.deleted(op.A))
		case OpInsert:
			right.WriteString(r.Markup.inserted(op.B))
		}
	}
	return left.String(), right.String()
}

// Value compares categorical values whole.
func (r *Renderer) Value(a, b string) (string, string) {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == b {
		return r.Markup.text(a), r.Markup.text(b)
	}
	if marked, ok := r.oneSided(a, b); ok {
		return marked[0], marked[1]
	}
	return r.Markup.deleted(a), r.Markup.inserted(b)
}

// Pair renders a finding's text pair with the comparison its kind asks for.
func (r *Renderer) Pair(p finding.TextPair) (string, string) {
	if p.Categorical {
		return r.Value(p.Source, p.Reference)
	}
	return r.Text(p.Source, p.Reference)
}

func (r *Renderer) oneSided(a, b string) ([2]string, bool) {
	switch {
	case a != "" && b == "":
		return [2]string{r.Markup.deleted(a), r.Markup.inserted(record.EmptyToken)}, true
	case a == "" && b != "":
		return [2]string{r.Markup.deleted(record.EmptyToken), r.Markup.inserted(b)}, true
	}
	return [2]string{}, false
}
