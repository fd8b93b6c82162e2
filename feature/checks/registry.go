package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/ppe"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/sdv01"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/feature/checks/ssp"
)

// Params holds the value lists of every project. Empty lists keep the project defaults.
type Params struct {
	PPE   ppe.Params   `json:"ppe"`
	SSP   ssp.Params   `json:"ssp"`
	SDV01 sdv01.Params `json:"sdv01"`
}

// Registry maps project names to their rule families.
type Registry struct {
	adapters map[string]reconcile.Adapter
}

// NewRegistry creates a registry holding the PPE, SSP and SDV01 rule families.
func NewRegistry(params Params) *Registry {
	r := &Registry{adapters: make(map[string]reconcile.Adapter)}
	r.add(ppe.New(params.PPE))
	r.add(ssp.New(params.SSP))
	r.add(sdv01.New(params.SDV01))
	return r
}

func (r *Registry) add(a reconcile.Adapter) {
	r.adapters[strings.ToLower(a.Name())] = a
}

// Lookup returns the rule family of a project. Names are matched case-insensitively.
func (r *Registry) Lookup(project string) (reconcile.Adapter, error) {
	a, ok := r.adapters[strings.ToLower(strings.TrimSpace(project))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", errors.ErrUnknownProject, project, strings.Join(r.Projects(), ", "))
	}
	return a, nil
}

// Projects returns the registered project names in alphabetical order.
func (r *Registry) Projects() []string {
	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry(Params{})

// Lookup returns the rule family of a project with default parameters.
func Lookup(project string) (reconcile.Adapter, error) {
	return defaultRegistry.Lookup(project)
}

// Projects returns the names of the built-in projects.
func Projects() []string {
	return defaultRegistry.Projects()
}
