package rules

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
)

// Registry holds rule definitions in registration order.
type Registry struct {
	defs  []Definition
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds definitions. Blank or duplicate ids and missing predicates are rejected;
// nothing is added when any definition is invalid.
func (r *Registry) Register(defs ...Definition) error {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return fmt.Errorf("rule without id: %q", d.Title)
		}
		if d.Predicate == nil {
			return fmt.Errorf("rule %s has no predicate", id)
		}
		switch d.Arity {
		case Unary, Pair, Unmatched:
		default:
			return fmt.Errorf("rule %s has unknown arity %q", id, d.Arity)
		}
		if _, ok := r.index[id]; ok || seen[id] {
			return fmt.Errorf("%w: %s", errors.ErrDuplicateRule, id)
		}
		seen[id] = true
	}
	for _, d := range defs {
		d.ID = strings.TrimSpace(d.ID)
		if d.Locus == "" {
			d.Locus = LocusSource
		}
		r.index[d.ID] = len(r.defs)
		r.defs = append(r.defs, d)
	}
	return nil
}

// MustRegister is Register that panics on error, for static rule sets.
func (r *Registry) MustRegister(defs ...Definition) *Registry {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
	return r
}

// Get returns a definition by id.
func (r *Registry) Get(id string) (Definition, bool) {
	i, ok := r.index[id]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// All returns the definitions in registration order.
func (r *Registry) All() []Definition {
	return append([]Definition(nil), r.defs...)
}

// Len returns the number of registered rules.
func (r *Registry) Len() int { return len(r.defs) }
