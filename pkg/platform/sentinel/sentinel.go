package sentinel

import (
	"errors"
	"fmt"
)

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrConflict: write collided with an existing record
// - ErrUnavailable: service or resource temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)

// DuplicateError reports a uniqueness violation at the storage layer,
// carrying the name of the violated constraint so callers can tell which
// rule fired. It matches ErrConflict under errors.Is.
type DuplicateError struct {
	Constraint string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate record: violates %s", e.Constraint)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrConflict }

// Duplicate wraps a constraint name as a DuplicateError.
func Duplicate(constraint string) error {
	return &DuplicateError{Constraint: constraint}
}

// CheckError reports a CHECK constraint violation at the storage layer. It
// matches ErrInvalid under errors.Is.
type CheckError struct {
	Constraint string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("invalid record: violates %s", e.Constraint)
}

func (e *CheckError) Is(target error) bool { return target == ErrInvalid }

// Check wraps a constraint name as a CheckError.
func Check(constraint string) error {
	return &CheckError{Constraint: constraint}
}

// ErrInvalid marks a record the storage layer rejected on a CHECK
// constraint. The validation engine normally catches these first; the store
// is the second line of defense.
var ErrInvalid = errors.New("invalid")

// ConstraintOf extracts the violated constraint name from err, if it carries
// one.
func ConstraintOf(err error) string {
	var de *DuplicateError
	if errors.As(err, &de) {
		return de.Constraint
	}
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
