package seatendorsement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists seat endorsements in PostgreSQL. The endorsed
// candidate list lives in a join table keyed by position, so its order
// survives the round trip.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed seat endorsement store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const columns = `id, endorser, seat, election_date, url, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, endorsement *models.SeatEndorsement) error {
	q := store.Querier(ctx, s.db)
	query := `
		INSERT INTO seat_endorsements (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.ExecContext(ctx, query,
		endorsement.ID, endorsement.EndorserID, endorsement.SeatID,
		endorsement.ElectionDate.Time, endorsement.URL,
		endorsement.Created, endorsement.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create seat endorsement: %w", store.MapError(err))
	}
	if err := insertCandidates(ctx, q, endorsement.ID, endorsement.CandidateIDs); err != nil {
		return err
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.SeatEndorsement, error) {
	q := store.Querier(ctx, s.db)
	row := q.QueryRowContext(ctx,
		`SELECT `+columns+` FROM seat_endorsements WHERE id = $1`, id)
	endorsement, err := scanEndorsement(row)
	if err != nil {
		return nil, fmt.Errorf("get seat endorsement: %w", store.MapError(err))
	}
	candidates, err := loadCandidates(ctx, q, endorsement.ID)
	if err != nil {
		return nil, err
	}
	endorsement.CandidateIDs = candidates[endorsement.ID]
	return endorsement, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.SeatEndorsement, error) {
	q := store.Querier(ctx, s.db)
	rows, err := q.QueryContext(ctx,
		`SELECT `+columns+` FROM seat_endorsements ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list seat endorsements: %w", store.MapError(err))
	}
	defer rows.Close()

	var out []*models.SeatEndorsement
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		endorsement, err := scanEndorsement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seat endorsement: %w", err)
		}
		out = append(out, endorsement)
		ids = append(ids, endorsement.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat endorsements: %w", err)
	}
	candidates, err := loadCandidates(ctx, q, ids...)
	if err != nil {
		return nil, err
	}
	for _, endorsement := range out {
		endorsement.CandidateIDs = candidates[endorsement.ID]
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, endorsement *models.SeatEndorsement) error {
	q := store.Querier(ctx, s.db)
	query := `
		UPDATE seat_endorsements SET
			endorser = $2, seat = $3, election_date = $4, url = $5, last_updated = $6
		WHERE id = $1
	`
	result, err := q.ExecContext(ctx, query,
		endorsement.ID, endorsement.EndorserID, endorsement.SeatID,
		endorsement.ElectionDate.Time, endorsement.URL, endorsement.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update seat endorsement: %w", store.MapError(err))
	}
	if err := requireRow(result); err != nil {
		return err
	}
	if _, err := q.ExecContext(ctx,
		`DELETE FROM seat_endorsement_candidates WHERE endorsement = $1`, endorsement.ID); err != nil {
		return fmt.Errorf("clear seat endorsement candidates: %w", store.MapError(err))
	}
	return insertCandidates(ctx, q, endorsement.ID, endorsement.CandidateIDs)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM seat_endorsements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seat endorsement: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, seatID uuid.UUID) (*models.SeatEndorsement, error) {
	q := store.Querier(ctx, s.db)
	row := q.QueryRowContext(ctx,
		`SELECT `+columns+` FROM seat_endorsements
		 WHERE endorser = $1 AND election_date = $2 AND seat = $3`,
		endorserID, electionDate.Time, seatID)
	endorsement, err := scanEndorsement(row)
	if err != nil {
		return nil, fmt.Errorf("find seat endorsement by key: %w", store.MapError(err))
	}
	candidates, err := loadCandidates(ctx, q, endorsement.ID)
	if err != nil {
		return nil, err
	}
	endorsement.CandidateIDs = candidates[endorsement.ID]
	return endorsement, nil
}

func (s *PostgresStore) DeleteByEndorser(ctx context.Context, endorserID uuid.UUID) error {
	_, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM seat_endorsements WHERE endorser = $1`, endorserID)
	if err != nil {
		return fmt.Errorf("delete seat endorsements by endorser: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) DeleteBySeat(ctx context.Context, seatID uuid.UUID) error {
	_, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM seat_endorsements WHERE seat = $1`, seatID)
	if err != nil {
		return fmt.Errorf("delete seat endorsements by seat: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) RemoveCandidate(ctx context.Context, candidateID uuid.UUID) error {
	_, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM seat_endorsement_candidates WHERE candidate = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("remove candidate from seat endorsements: %w", store.MapError(err))
	}
	return nil
}

// insertCandidates writes the ordered candidate list in one round trip.
func insertCandidates(ctx context.Context, q store.DBTX, endorsementID uuid.UUID, candidateIDs []uuid.UUID) error {
	if len(candidateIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO seat_endorsement_candidates (endorsement, candidate, position)
		SELECT $1, c.id, c.ord
		FROM unnest($2::uuid[]) WITH ORDINALITY AS c(id, ord)
	`
	if _, err := q.ExecContext(ctx, query, endorsementID, pq.Array(candidateIDs)); err != nil {
		return fmt.Errorf("insert seat endorsement candidates: %w", store.MapError(err))
	}
	return nil
}

// loadCandidates fetches candidate lists for the given endorsements, keyed
// by endorsement and ordered by position.
func loadCandidates(ctx context.Context, q store.DBTX, endorsementIDs ...uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	out := make(map[uuid.UUID][]uuid.UUID, len(endorsementIDs))
	if len(endorsementIDs) == 0 {
		return out, nil
	}
	rows, err := q.QueryContext(ctx, `
		SELECT endorsement, candidate
		FROM seat_endorsement_candidates
		WHERE endorsement = ANY($1::uuid[])
		ORDER BY endorsement, position
	`, pq.Array(endorsementIDs))
	if err != nil {
		return nil, fmt.Errorf("load seat endorsement candidates: %w", store.MapError(err))
	}
	defer rows.Close()
	for rows.Next() {
		var endorsementID, candidateID uuid.UUID
		if err := rows.Scan(&endorsementID, &candidateID); err != nil {
			return nil, fmt.Errorf("scan seat endorsement candidate: %w", err)
		}
		out[endorsementID] = append(out[endorsementID], candidateID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seat endorsement candidates: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEndorsement(row rowScanner) (*models.SeatEndorsement, error) {
	var (
		endorsement  models.SeatEndorsement
		electionDate sql.NullTime
	)
	err := row.Scan(&endorsement.ID, &endorsement.EndorserID, &endorsement.SeatID,
		&electionDate, &endorsement.URL, &endorsement.Created, &endorsement.LastUpdated)
	if err != nil {
		return nil, err
	}
	if electionDate.Valid {
		endorsement.ElectionDate = models.DateOf(electionDate.Time)
	}
	return &endorsement, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("seat endorsement not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
