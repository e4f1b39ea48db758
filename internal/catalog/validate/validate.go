// Package validate implements the catalog's validation engine: free
// functions over immutable candidate records, returning either the
// normalized record or a coded domain error for the first rule that fails.
//
// Rules run in a fixed order - field and code checks, then derivation, then
// cross-field rules, then uniqueness - and short-circuit on the first
// failure, so later rules may assume earlier ones passed. Uniqueness checks
// go through narrow read-only lookup interfaces; the engine is pure given a
// snapshot of store state. The storage layer independently enforces the
// same uniqueness and check constraints as a second line of defense.
package validate

import (
	"context"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
)

// CandidateLookup answers identity queries for stored candidates.
type CandidateLookup interface {
	// ListByName returns stored candidates whose first and last names match
	// case-insensitively.
	ListByName(ctx context.Context, firstName, lastName string) ([]*models.Candidate, error)
}

// EndorserLookup answers identity queries for stored endorsers.
type EndorserLookup interface {
	// FindByAbbreviation returns the endorser holding the given short code,
	// or sentinel.ErrNotFound.
	FindByAbbreviation(ctx context.Context, abbreviation string) (*models.Endorser, error)
}

// MeasureLookup answers identity queries for stored measures.
type MeasureLookup interface {
	// FindByKey returns the measure matching the case-insensitive
	// (name, election date, state) triple, or sentinel.ErrNotFound.
	FindByKey(ctx context.Context, name string, electionDate models.Date, state string) (*models.Measure, error)
}

// SeatLookup answers identity queries for stored seats.
type SeatLookup interface {
	// ListByLevel returns every stored seat at the given level.
	ListByLevel(ctx context.Context, level models.Level) ([]*models.Seat, error)
}

// MeasureEndorsementLookup answers identity queries for stored measure
// endorsements.
type MeasureEndorsementLookup interface {
	// FindByKey returns the endorsement matching (endorser, election date,
	// measure), or sentinel.ErrNotFound.
	FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, measureID uuid.UUID) (*models.MeasureEndorsement, error)
}

// SeatEndorsementLookup answers identity queries for stored seat
// endorsements.
type SeatEndorsementLookup interface {
	// FindByKey returns the endorsement matching (endorser, election date,
	// seat), or sentinel.ErrNotFound.
	FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, seatID uuid.UUID) (*models.SeatEndorsement, error)
}
