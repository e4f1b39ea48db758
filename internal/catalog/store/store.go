// Package store holds the catalog's storage schema and the shared plumbing
// its per-entity stores build on. Each entity ships a memory store for
// tests and development and a PostgreSQL store for production; both honor
// the same uniqueness rules and return the same sentinel errors.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/platform/tx"
)

// DBTX is the querying surface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Querier returns the transaction carried by ctx when there is one, so a
// store called inside a tx.Runner callback joins the enclosing transaction.
func Querier(ctx context.Context, db *sql.DB) DBTX {
	if sqlTx, ok := tx.From(ctx); ok {
		return sqlTx
	}
	return db
}

// MapError translates driver errors into sentinel errors. Unique and check
// violations keep the violated constraint's name so callers can tell which
// rule fired.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return sentinel.Duplicate(pqErr.Constraint)
		case "23514":
			return sentinel.Check(pqErr.Constraint)
		}
	}
	return err
}

// Migrate applies the catalog schema. Every statement is idempotent, so the
// server can run it on every start.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// schemaStatements builds the DDL from the model vocabularies, so the check
// constraints always reject exactly what the validation engine rejects.
func schemaStatements() []string {
	return []string{
		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS seats (
	id UUID PRIMARY KEY,
	level VARCHAR(1) NOT NULL,
	branch VARCHAR(1) NOT NULL DEFAULT '',
	role VARCHAR(%d) NOT NULL,
	body VARCHAR(1) NOT NULL DEFAULT '',
	district INTEGER,
	state VARCHAR(2),
	city VARCHAR(%d) NOT NULL DEFAULT '',
	county VARCHAR(%d) NOT NULL DEFAULT '',
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	CONSTRAINT %s CHECK (level IN (%s))
)`, models.MaxRoleLen, models.MaxPlaceLen, models.MaxPlaceLen,
			models.ConstraintSeatLevelValid, quotedLevels()),

		fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON seats (lower(role), level)
	WHERE state IS NULL`, models.ConstraintSeatUniqueRoleLevelNullState),

		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS candidates (
	id UUID PRIMARY KEY,
	first_name VARCHAR(%d) NOT NULL,
	middle_name VARCHAR(%d) NOT NULL DEFAULT '',
	last_name VARCHAR(%d) NOT NULL DEFAULT '',
	date_of_birth DATE,
	party VARCHAR(1) NOT NULL DEFAULT 'U',
	running_for_seat UUID REFERENCES seats(id) ON DELETE SET NULL,
	seat UUID REFERENCES seats(id) ON DELETE SET NULL,
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL
)`, models.MaxNameLen, models.MaxNameLen, models.MaxNameLen),

		fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON candidates (lower(first_name), lower(last_name), date_of_birth)
	WHERE date_of_birth IS NOT NULL`, models.ConstraintCandidateUniqueFirstLastDOB),

		fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON candidates (lower(first_name), lower(last_name))
	WHERE date_of_birth IS NULL`, models.ConstraintCandidateUniqueFirstLastNullDOB),

		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS endorsers (
	id UUID PRIMARY KEY,
	name VARCHAR(%d) NOT NULL,
	abbreviation VARCHAR(%d) NOT NULL,
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL
)`, models.MaxNameLen, models.MaxAbbreviationLen),

		fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON endorsers (lower(abbreviation))`, models.ConstraintEndorserUniqueAbbreviation),

		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS measures (
	id UUID PRIMARY KEY,
	name VARCHAR(%d) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	level VARCHAR(1) NOT NULL,
	city VARCHAR(%d) NOT NULL DEFAULT '',
	county VARCHAR(%d) NOT NULL DEFAULT '',
	state VARCHAR(2) NOT NULL,
	election_date DATE NOT NULL,
	passed BOOLEAN,
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	CONSTRAINT %s CHECK (level IN (%s)),
	CONSTRAINT %s CHECK (state IN (%s))
)`, models.MaxNameLen, models.MaxPlaceLen, models.MaxPlaceLen,
			models.ConstraintMeasureLevelValid, quotedLevels(),
			models.ConstraintMeasureStateValid, quotedStates()),

		fmt.Sprintf(`
CREATE UNIQUE INDEX IF NOT EXISTS %s
	ON measures (lower(name), election_date, state)`, models.ConstraintMeasureUniqueNameDateState),

		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS measure_endorsements (
	id UUID PRIMARY KEY,
	endorser UUID NOT NULL REFERENCES endorsers(id) ON DELETE CASCADE,
	measure UUID NOT NULL REFERENCES measures(id) ON DELETE CASCADE,
	election_date DATE NOT NULL,
	url VARCHAR(%d) NOT NULL DEFAULT '',
	recommendation VARCHAR(1) NOT NULL DEFAULT 'U',
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	CONSTRAINT %s UNIQUE (endorser, election_date, measure)
)`, models.MaxURLLen, models.ConstraintMeasureEndorsementUnique),

		fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS seat_endorsements (
	id UUID PRIMARY KEY,
	endorser UUID NOT NULL REFERENCES endorsers(id) ON DELETE CASCADE,
	seat UUID NOT NULL REFERENCES seats(id) ON DELETE CASCADE,
	election_date DATE NOT NULL,
	url VARCHAR(%d) NOT NULL DEFAULT '',
	created TIMESTAMPTZ NOT NULL,
	last_updated TIMESTAMPTZ NOT NULL,
	CONSTRAINT %s UNIQUE (endorser, election_date, seat)
)`, models.MaxURLLen, models.ConstraintSeatEndorsementUnique),

		`
CREATE TABLE IF NOT EXISTS seat_endorsement_candidates (
	endorsement UUID NOT NULL REFERENCES seat_endorsements(id) ON DELETE CASCADE,
	candidate UUID NOT NULL REFERENCES candidates(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	PRIMARY KEY (endorsement, candidate)
)`,
	}
}

func quotedLevels() string {
	quoted := make([]string, 0, len(models.LevelValues()))
	for _, level := range models.LevelValues() {
		quoted = append(quoted, "'"+string(level)+"'")
	}
	return strings.Join(quoted, ", ")
}

func quotedStates() string {
	quoted := make([]string, 0, len(models.StateCodes()))
	for _, state := range models.StateCodes() {
		quoted = append(quoted, "'"+state+"'")
	}
	return strings.Join(quoted, ", ")
}
