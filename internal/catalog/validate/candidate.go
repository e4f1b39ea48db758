package validate

import (
	"context"
	"strings"

	"voterguide/internal/catalog/models"
	dErrors "voterguide/pkg/domain-errors"
)

// Candidate validates a candidate record, applying the default party when
// none is set, and scans stored candidates for an identity duplicate.
func Candidate(ctx context.Context, candidate models.Candidate, lookup CandidateLookup) (models.Candidate, error) {
	candidate.FirstName = strings.TrimSpace(candidate.FirstName)
	candidate.MiddleName = strings.TrimSpace(candidate.MiddleName)
	candidate.LastName = strings.TrimSpace(candidate.LastName)

	if candidate.FirstName == "" {
		return candidate, fieldError("first_name", "is required")
	}
	if len(candidate.FirstName) > models.MaxNameLen {
		return candidate, tooLong("first_name", models.MaxNameLen)
	}
	if len(candidate.MiddleName) > models.MaxNameLen {
		return candidate, tooLong("middle_name", models.MaxNameLen)
	}
	if len(candidate.LastName) > models.MaxNameLen {
		return candidate, tooLong("last_name", models.MaxNameLen)
	}

	if candidate.Party == "" {
		candidate.Party = models.PartyUnknown
	}
	if !candidate.Party.Valid() {
		return candidate, fieldError("party", "is not a recognized party code")
	}

	if err := candidateUnique(ctx, &candidate, lookup); err != nil {
		return candidate, err
	}
	return candidate, nil
}

// candidateUnique enforces the layered identity rules: candidates with a
// known date of birth are unique on the case-insensitive (first, last, dob)
// triple; candidates without one are unique on the name pair alone. An
// unset last name or date of birth matches another unset value, never a set
// one.
func candidateUnique(ctx context.Context, candidate *models.Candidate, lookup CandidateLookup) error {
	matches, err := lookup.ListByName(ctx, candidate.FirstName, candidate.LastName)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check candidate uniqueness")
	}
	for _, other := range matches {
		if other.ID == candidate.ID {
			continue
		}
		switch {
		case candidate.DateOfBirth == nil && other.DateOfBirth == nil:
			return duplicateOf(models.ConstraintCandidateUniqueFirstLastNullDOB)
		case candidate.DateOfBirth != nil && other.DateOfBirth != nil &&
			candidate.DateOfBirth.Equal(*other.DateOfBirth):
			return duplicateOf(models.ConstraintCandidateUniqueFirstLastDOB)
		}
	}
	return nil
}

func duplicateOf(constraint string) error {
	return dErrors.Newf(dErrors.CodeConflict, "duplicate record: violates %s", constraint)
}
