// Package errors provides the error taxonomy of the reconciliation core.
//
// Expected conditions (schema gaps, blank identifiers) are represented by sentinels so
// callers can classify diagnostics with errors.Is. Fatal conditions carry the dataset side
// and the invariant that could not hold.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New is an alias for the standard library errors.New.
var New = errors.New

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// As is an alias for the standard library errors.As.
var As = errors.As

var (
	// ErrSchemaGap indicates that a rule's required attributes are missing from a dataset.
	ErrSchemaGap = errors.New("schema gap")

	// ErrMalformedIdentifier indicates a blank identifier cell.
	ErrMalformedIdentifier = errors.New("malformed identifier")

	// ErrInvariantViolation indicates input on which the reconciliation cannot produce trustworthy results.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrUnknownProject indicates that no rule family is registered under the requested project name.
	ErrUnknownProject = errors.New("unknown project")

	// ErrUnknownDirection indicates a check direction other than import or export.
	ErrUnknownDirection = errors.New("unknown check direction")

	// ErrUnknownProfile indicates that no normalization profile exists under the requested name.
	ErrUnknownProfile = errors.New("unknown normalization profile")

	// ErrInvalidDataset indicates a dataset document that cannot be turned into records.
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrDuplicateRule indicates that a rule id was registered twice.
	ErrDuplicateRule = errors.New("duplicate rule")
)

// InvariantViolationError reports a fatal input problem for one side of a reconciliation run.
type InvariantViolationError struct {
	Side      string
	Dataset   string
	Invariant string
	Err       error
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	var b strings.Builder
	b.WriteString("invariant violation on ")
	b.WriteString(e.Side)
	b.WriteString(" dataset")
	if e.Dataset != "" {
		fmt.Fprintf(&b, " %q", e.Dataset)
	}
	b.WriteString(": ")
	b.WriteString(e.Invariant)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap implements errors.Unwrap
func (e *InvariantViolationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *InvariantViolationError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// NewInvariantViolation creates a new InvariantViolationError.
func NewInvariantViolation(side, dataset, invariant string) *InvariantViolationError {
	return &InvariantViolationError{Side: side, Dataset: dataset, Invariant: invariant}
}

// SchemaGapError describes attributes a rule needs but a dataset does not provide.
type SchemaGapError struct {
	RuleID  string
	Side    string
	Missing []string
}

// Error implements the error interface
func (e *SchemaGapError) Error() string {
	return fmt.Sprintf("rule %s skipped: %s dataset lacks %s", e.RuleID, e.Side, strings.Join(e.Missing, ", "))
}

// Is implements errors.Is support
func (e *SchemaGapError) Is(target error) bool {
	return target == ErrSchemaGap
}

// NewSchemaGap creates a new SchemaGapError.
func NewSchemaGap(ruleID, side string, missing []string) *SchemaGapError {
	return &SchemaGapError{RuleID: ruleID, Side: side, Missing: missing}
}

// DatasetError reports a dataset document that could not be decoded into records.
type DatasetError struct {
	Location string
	Message  string
	Err      error
}

// Error implements the error interface
func (e *DatasetError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dataset %s: %s: %v", e.Location, e.Message, e.Err)
	}
	return fmt.Sprintf("dataset %s: %s", e.Location, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *DatasetError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DatasetError) Is(target error) bool {
	return target == ErrInvalidDataset
}

// NewDatasetError creates a new DatasetError.
func NewDatasetError(location, message string, err error) *DatasetError {
	return &DatasetError{Location: location, Message: message, Err: err}
}
