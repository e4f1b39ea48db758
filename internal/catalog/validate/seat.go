package validate

import (
	"context"
	"strings"

	"voterguide/internal/catalog/models"
	dErrors "voterguide/pkg/domain-errors"
)

// Seat runs the full seat rule chain and returns the record with defaults
// derived. The returned seat is what must be persisted: a record arriving
// with body=House and no role comes back with role "Representative", exactly
// as if the caller had set it.
func Seat(ctx context.Context, seat models.Seat, lookup SeatLookup) (models.Seat, error) {
	if err := seatFieldChecks(&seat); err != nil {
		return seat, err
	}

	// Derive the role or reject before any cross-field rule runs, so the
	// rest of the chain sees a complete record.
	if seat.Role == "" {
		switch seat.Body {
		case models.BodyHouse:
			seat.Role = "Representative"
		case models.BodySenate:
			seat.Role = "Senator"
		default:
			return seat, dErrors.New(dErrors.CodeValidation,
				"Role could not be determined and must be set explicitly.")
		}
	}

	if seat.State != "" && !models.ValidState(seat.State) {
		return seat, dErrors.Newf(dErrors.CodeValidation,
			"State value is invalid. Must be one of %s", strings.Join(models.StateCodes(), ", "))
	}

	if seat.Body != "" && !seat.Body.Valid() {
		bodies := make([]string, 0, len(models.BodyValues()))
		for _, b := range models.BodyValues() {
			bodies = append(bodies, string(b))
		}
		return seat, dErrors.Newf(dErrors.CodeValidation,
			"Body value is invalid. Must be one of %s", strings.Join(bodies, ", "))
	}

	// Non-Federal roles need a state, and the location field matching the
	// level.
	if seat.Level != models.LevelFederal {
		if seat.State == "" {
			return seat, dErrors.New(dErrors.CodeValidation,
				"State field must be set for all non-Federal roles.")
		}
		if seat.Level == models.LevelCity && seat.City == "" {
			return seat, dErrors.New(dErrors.CodeValidation,
				"City field must be set for seats with level of City.")
		}
		if seat.Level == models.LevelCounty && seat.County == "" {
			return seat, dErrors.New(dErrors.CodeValidation,
				"County field must be set for seats with level of County.")
		}
	}

	if seat.Branch == models.BranchLegislative {
		if seat.State == "" {
			return seat, dErrors.New(dErrors.CodeValidation,
				"State field must be set for all seats in the legislature.")
		}
		if seat.Body == "" {
			return seat, dErrors.New(dErrors.CodeValidation,
				"Body field must be set for all seats in the legislature.")
		}
	}

	// Every House seat and every state senator has a district.
	houseSeat := seat.Body == models.BodyHouse
	stateSenator := seat.Body == models.BodySenate && seat.Level == models.LevelState
	if (houseSeat || stateSenator) && seat.District == nil {
		return seat, dErrors.New(dErrors.CodeValidation,
			"District field must be set for all seats in the House of Representatives, and all state senators.")
	}

	if err := seatUnique(ctx, &seat, lookup); err != nil {
		return seat, err
	}

	return seat, nil
}

func seatFieldChecks(seat *models.Seat) error {
	if !seat.Level.Valid() {
		return fieldError("level", "is not a valid level code")
	}
	if seat.Branch != "" && !seat.Branch.Valid() {
		return fieldError("branch", "is not a valid branch code")
	}
	if len(seat.Role) > models.MaxRoleLen {
		return tooLong("role", models.MaxRoleLen)
	}
	if len(seat.City) > models.MaxPlaceLen {
		return tooLong("city", models.MaxPlaceLen)
	}
	if len(seat.County) > models.MaxPlaceLen {
		return tooLong("county", models.MaxPlaceLen)
	}
	if seat.District != nil && *seat.District <= 0 {
		return fieldError("district", "must be a positive number")
	}
	return nil
}

// seatUnique scans stored seats for an exact-tuple duplicate, comparing the
// literal post-derivation values with blank equal to blank. Self is excluded
// so updates that keep the identity tuple succeed.
func seatUnique(ctx context.Context, seat *models.Seat, lookup SeatLookup) error {
	existing, err := lookup.ListByLevel(ctx, seat.Level)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check seat uniqueness")
	}
	for _, other := range existing {
		if other.ID == seat.ID {
			continue
		}
		if seat.IdentityEquals(other) {
			return dErrors.Newf(dErrors.CodeConflict,
				"Seat must be unique at the provided level of %s", seat.Level)
		}
	}
	return nil
}

func fieldError(field, problem string) error {
	return dErrors.Newf(dErrors.CodeValidation, "%s %s", field, problem)
}

func tooLong(field string, max int) error {
	return dErrors.Newf(dErrors.CodeValidation, "%s value too long: at most %d characters", field, max)
}
