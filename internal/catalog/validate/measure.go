package validate

import (
	"context"
	"errors"
	"strings"

	"voterguide/internal/catalog/models"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/sentinel"
)

// Measure validates a ballot measure record and scans stored measures for a
// key-triple duplicate.
func Measure(ctx context.Context, measure models.Measure, lookup MeasureLookup) (models.Measure, error) {
	measure.Name = strings.TrimSpace(measure.Name)

	if measure.Name == "" {
		return measure, fieldError("name", "is required")
	}
	if len(measure.Name) > models.MaxNameLen {
		return measure, tooLong("name", models.MaxNameLen)
	}
	if len(measure.City) > models.MaxPlaceLen {
		return measure, tooLong("city", models.MaxPlaceLen)
	}
	if len(measure.County) > models.MaxPlaceLen {
		return measure, tooLong("county", models.MaxPlaceLen)
	}
	if !measure.Level.Valid() {
		return measure, fieldError("level", "is not a valid level code")
	}
	if measure.State == "" {
		return measure, fieldError("state", "is required")
	}
	if !models.ValidState(measure.State) {
		return measure, dErrors.Newf(dErrors.CodeValidation,
			"State value is invalid. Must be one of %s", strings.Join(models.StateCodes(), ", "))
	}
	if measure.ElectionDate.IsZero() {
		return measure, fieldError("election_date", "is required")
	}

	existing, err := lookup.FindByKey(ctx, measure.Name, measure.ElectionDate, measure.State)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return measure, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check measure uniqueness")
	}
	if existing != nil && existing.ID != measure.ID {
		return measure, duplicateOf(models.ConstraintMeasureUniqueNameDateState)
	}
	return measure, nil
}
