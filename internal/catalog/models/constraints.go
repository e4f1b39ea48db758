package models

// Constraint names shared between the validation engine, the storage
// schema, and error reporting. The engine names the same constraint the
// database would when it catches a duplicate first, so callers see one
// vocabulary regardless of which layer fired.
const (
	ConstraintCandidateUniqueFirstLastDOB     = "candidate_unique_first_last_dob"
	ConstraintCandidateUniqueFirstLastNullDOB = "candidate_unique_first_last_null_dob"

	ConstraintEndorserUniqueAbbreviation = "endorser_unique_abbreviation"

	ConstraintMeasureUniqueNameDateState = "measure_unique_name_date_state"
	ConstraintMeasureLevelValid          = "measure_level_valid"
	ConstraintMeasureStateValid          = "measure_state_valid"

	ConstraintSeatUniqueRoleLevelNullState = "seat_unique_role_level_null_state"
	ConstraintSeatLevelValid               = "seat_level_valid"

	ConstraintMeasureEndorsementUnique = "measure_endorsement_unique_endorser_election_date_measure"
	ConstraintSeatEndorsementUnique    = "seat_endorsement_unique_endorser_election_date_seat"
)

// Field length limits, enforced by the validation engine and mirrored by
// the storage schema's varchar widths.
const (
	MaxNameLen         = 120
	MaxAbbreviationLen = 20
	MaxRoleLen         = 200
	MaxPlaceLen        = 200
	MaxURLLen          = 200
)
