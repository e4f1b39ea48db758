package candidate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists candidates in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed candidate store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const candidateColumns = `id, first_name, middle_name, last_name, date_of_birth, party, running_for_seat, seat, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, candidate *models.Candidate) error {
	query := `
		INSERT INTO candidates (` + candidateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		candidate.ID, candidate.FirstName, candidate.MiddleName, candidate.LastName,
		nullDate(candidate.DateOfBirth), string(candidate.Party),
		nullUUID(candidate.RunningForSeatID), nullUUID(candidate.SeatID),
		candidate.Created, candidate.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create candidate: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
	candidate, err := scanCandidate(row)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", store.MapError(err))
	}
	return candidate, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Candidate, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", store.MapError(err))
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (s *PostgresStore) Update(ctx context.Context, candidate *models.Candidate) error {
	query := `
		UPDATE candidates SET
			first_name = $2, middle_name = $3, last_name = $4, date_of_birth = $5,
			party = $6, running_for_seat = $7, seat = $8, last_updated = $9
		WHERE id = $1
	`
	result, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		candidate.ID, candidate.FirstName, candidate.MiddleName, candidate.LastName,
		nullDate(candidate.DateOfBirth), string(candidate.Party),
		nullUUID(candidate.RunningForSeatID), nullUUID(candidate.SeatID),
		candidate.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update candidate: %w", store.MapError(err))
	}
	return requireRow(result, "candidate")
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", store.MapError(err))
	}
	return requireRow(result, "candidate")
}

func (s *PostgresStore) ListByName(ctx context.Context, firstName, lastName string) ([]*models.Candidate, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 WHERE lower(first_name) = lower($1) AND lower(last_name) = lower($2)
		 ORDER BY created, id`, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("list candidates by name: %w", store.MapError(err))
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func (s *PostgresStore) ClearSeatRefs(ctx context.Context, seatID uuid.UUID) error {
	query := `
		UPDATE candidates SET
			running_for_seat = CASE WHEN running_for_seat = $1 THEN NULL ELSE running_for_seat END,
			seat = CASE WHEN seat = $1 THEN NULL ELSE seat END
		WHERE running_for_seat = $1 OR seat = $1
	`
	if _, err := store.Querier(ctx, s.db).ExecContext(ctx, query, seatID); err != nil {
		return fmt.Errorf("clear candidate seat refs: %w", store.MapError(err))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCandidate(row rowScanner) (*models.Candidate, error) {
	var (
		candidate  models.Candidate
		dob        sql.NullTime
		party      string
		runningFor uuid.NullUUID
		seat       uuid.NullUUID
	)
	err := row.Scan(&candidate.ID, &candidate.FirstName, &candidate.MiddleName,
		&candidate.LastName, &dob, &party, &runningFor, &seat,
		&candidate.Created, &candidate.LastUpdated)
	if err != nil {
		return nil, err
	}
	candidate.Party = models.Party(party)
	if dob.Valid {
		d := models.DateOf(dob.Time)
		candidate.DateOfBirth = &d
	}
	if runningFor.Valid {
		id := runningFor.UUID
		candidate.RunningForSeatID = &id
	}
	if seat.Valid {
		id := seat.UUID
		candidate.SeatID = &id
	}
	return &candidate, nil
}

func collectCandidates(rows *sql.Rows) ([]*models.Candidate, error) {
	var out []*models.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

func nullDate(d *models.Date) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.Time, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func requireRow(result sql.Result, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s not found: %w", entity, sentinel.ErrNotFound)
	}
	return nil
}
