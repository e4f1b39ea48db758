package validate

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/sentinel"
)

// MeasureEndorsement validates an endorsement of a ballot measure, applying
// the default recommendation and checking the (endorser, election date,
// measure) key against stored rows. Changing url or recommendation without
// changing the key is an update to the same row, never a second row: the
// duplicate scan excludes self.
func MeasureEndorsement(ctx context.Context, e models.MeasureEndorsement, lookup MeasureEndorsementLookup) (models.MeasureEndorsement, error) {
	if e.EndorserID == uuid.Nil {
		return e, fieldError("endorser", "is required")
	}
	if e.MeasureID == uuid.Nil {
		return e, fieldError("measure", "is required")
	}
	if e.ElectionDate.IsZero() {
		return e, fieldError("election_date", "is required")
	}
	if len(e.URL) > models.MaxURLLen {
		return e, tooLong("url", models.MaxURLLen)
	}
	if e.Recommendation == "" {
		e.Recommendation = models.RecommendNone
	}
	if !e.Recommendation.Valid() {
		return e, fieldError("recommendation", "is not a valid recommendation code")
	}

	existing, err := lookup.FindByKey(ctx, e.EndorserID, e.ElectionDate, e.MeasureID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return e, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check endorsement uniqueness")
	}
	if existing != nil && existing.ID != e.ID {
		return e, duplicateOf(models.ConstraintMeasureEndorsementUnique)
	}
	return e, nil
}

// SeatEndorsement validates an endorsement of candidates for a seat,
// checking the (endorser, election date, seat) key against stored rows.
func SeatEndorsement(ctx context.Context, e models.SeatEndorsement, lookup SeatEndorsementLookup) (models.SeatEndorsement, error) {
	if e.EndorserID == uuid.Nil {
		return e, fieldError("endorser", "is required")
	}
	if e.SeatID == uuid.Nil {
		return e, fieldError("seat", "is required")
	}
	if e.ElectionDate.IsZero() {
		return e, fieldError("election_date", "is required")
	}
	if len(e.URL) > models.MaxURLLen {
		return e, tooLong("url", models.MaxURLLen)
	}
	for _, id := range e.CandidateIDs {
		if id == uuid.Nil {
			return e, fieldError("candidates", "contains an invalid reference")
		}
	}

	existing, err := lookup.FindByKey(ctx, e.EndorserID, e.ElectionDate, e.SeatID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return e, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check endorsement uniqueness")
	}
	if existing != nil && existing.ID != e.ID {
		return e, duplicateOf(models.ConstraintSeatEndorsementUnique)
	}
	return e, nil
}
