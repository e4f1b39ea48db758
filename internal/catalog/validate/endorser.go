package validate

import (
	"context"
	"errors"
	"strings"

	"voterguide/internal/catalog/models"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/sentinel"
)

// Endorser validates an endorsing organization and checks its abbreviation
// is not already taken.
func Endorser(ctx context.Context, endorser models.Endorser, lookup EndorserLookup) (models.Endorser, error) {
	endorser.Name = strings.TrimSpace(endorser.Name)
	endorser.Abbreviation = strings.TrimSpace(endorser.Abbreviation)

	if endorser.Name == "" {
		return endorser, fieldError("name", "is required")
	}
	if len(endorser.Name) > models.MaxNameLen {
		return endorser, tooLong("name", models.MaxNameLen)
	}
	if endorser.Abbreviation == "" {
		return endorser, fieldError("abbreviation", "is required")
	}
	if len(endorser.Abbreviation) > models.MaxAbbreviationLen {
		return endorser, tooLong("abbreviation", models.MaxAbbreviationLen)
	}

	existing, err := lookup.FindByAbbreviation(ctx, endorser.Abbreviation)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return endorser, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check endorser uniqueness")
	}
	if existing != nil && existing.ID != endorser.ID {
		return endorser, duplicateOf(models.ConstraintEndorserUniqueAbbreviation)
	}
	return endorser, nil
}
