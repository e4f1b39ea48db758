package measureendorsement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists measure endorsements in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed measure endorsement store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const columns = `id, endorser, measure, election_date, url, recommendation, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, endorsement *models.MeasureEndorsement) error {
	query := `
		INSERT INTO measure_endorsements (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		endorsement.ID, endorsement.EndorserID, endorsement.MeasureID,
		endorsement.ElectionDate.Time, endorsement.URL,
		string(endorsement.Recommendation), endorsement.Created, endorsement.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create measure endorsement: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.MeasureEndorsement, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM measure_endorsements WHERE id = $1`, id)
	endorsement, err := scanEndorsement(row)
	if err != nil {
		return nil, fmt.Errorf("get measure endorsement: %w", store.MapError(err))
	}
	return endorsement, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.MeasureEndorsement, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+columns+` FROM measure_endorsements ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list measure endorsements: %w", store.MapError(err))
	}
	defer rows.Close()

	var out []*models.MeasureEndorsement
	for rows.Next() {
		endorsement, err := scanEndorsement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measure endorsement: %w", err)
		}
		out = append(out, endorsement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measure endorsements: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, endorsement *models.MeasureEndorsement) error {
	query := `
		UPDATE measure_endorsements SET
			endorser = $2, measure = $3, election_date = $4, url = $5,
			recommendation = $6, last_updated = $7
		WHERE id = $1
	`
	result, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		endorsement.ID, endorsement.EndorserID, endorsement.MeasureID,
		endorsement.ElectionDate.Time, endorsement.URL,
		string(endorsement.Recommendation), endorsement.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update measure endorsement: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM measure_endorsements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete measure endorsement: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, measureID uuid.UUID) (*models.MeasureEndorsement, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+columns+` FROM measure_endorsements
		 WHERE endorser = $1 AND election_date = $2 AND measure = $3`,
		endorserID, electionDate.Time, measureID)
	endorsement, err := scanEndorsement(row)
	if err != nil {
		return nil, fmt.Errorf("find measure endorsement by key: %w", store.MapError(err))
	}
	return endorsement, nil
}

func (s *PostgresStore) DeleteByEndorser(ctx context.Context, endorserID uuid.UUID) error {
	_, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM measure_endorsements WHERE endorser = $1`, endorserID)
	if err != nil {
		return fmt.Errorf("delete measure endorsements by endorser: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) DeleteByMeasure(ctx context.Context, measureID uuid.UUID) error {
	_, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM measure_endorsements WHERE measure = $1`, measureID)
	if err != nil {
		return fmt.Errorf("delete measure endorsements by measure: %w", store.MapError(err))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEndorsement(row rowScanner) (*models.MeasureEndorsement, error) {
	var (
		endorsement    models.MeasureEndorsement
		electionDate   sql.NullTime
		recommendation string
	)
	err := row.Scan(&endorsement.ID, &endorsement.EndorserID, &endorsement.MeasureID,
		&electionDate, &endorsement.URL, &recommendation,
		&endorsement.Created, &endorsement.LastUpdated)
	if err != nil {
		return nil, err
	}
	if electionDate.Valid {
		endorsement.ElectionDate = models.DateOf(electionDate.Time)
	}
	endorsement.Recommendation = models.Recommendation(recommendation)
	return &endorsement, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("measure endorsement not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
