package reconcile

import (
	"fmt"
	"strings"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/errors"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/match"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/record"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/rules"
)

// Direction selects which rule set of a project applies.
type Direction string

const (
	// Import checks a customer export before it is taken over into the supplier database.
	Import Direction = "import"
	// Export checks a supplier export before it is sent back to the customer.
	Export Direction = "export"
)

// ParseDirection parses "import" or "export", ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case Import:
		return Import, nil
	case Export:
		return Export, nil
	}
	return "", fmt.Errorf("%w %q", errors.ErrUnknownDirection, s)
}

// Adapter defines the interface for project-specific rule families.
// Each adapter knows the rules of one project (e.g., PPE, SSP, SDV01) and the key
// attributes its datasets are matched on.
type Adapter interface {
	// Name returns the unique project name (e.g., "ppe", "sdv01").
	Name() string

	// Rules returns the rule definitions for a direction, in evaluation order.
	// A direction without rules returns an empty slice.
	Rules(direction Direction) []rules.Definition

	// Keys returns the match configuration for the given schemas.
	// Adapters whose key attribute depends on the export flavour inspect the schemas here.
	Keys(source, reference record.Schema) match.Config
}
