package endorser

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists endorsers in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed endorser store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const endorserColumns = `id, name, abbreviation, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, endorser *models.Endorser) error {
	query := `INSERT INTO endorsers (` + endorserColumns + `) VALUES ($1, $2, $3, $4, $5)`
	_, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		endorser.ID, endorser.Name, endorser.Abbreviation, endorser.Created, endorser.LastUpdated)
	if err != nil {
		return fmt.Errorf("create endorser: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.Endorser, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+endorserColumns+` FROM endorsers WHERE id = $1`, id)
	var endorser models.Endorser
	err := row.Scan(&endorser.ID, &endorser.Name, &endorser.Abbreviation,
		&endorser.Created, &endorser.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("get endorser: %w", store.MapError(err))
	}
	return &endorser, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Endorser, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+endorserColumns+` FROM endorsers ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list endorsers: %w", store.MapError(err))
	}
	defer rows.Close()

	var out []*models.Endorser
	for rows.Next() {
		var endorser models.Endorser
		if err := rows.Scan(&endorser.ID, &endorser.Name, &endorser.Abbreviation,
			&endorser.Created, &endorser.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan endorser: %w", err)
		}
		out = append(out, &endorser)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate endorsers: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, endorser *models.Endorser) error {
	query := `UPDATE endorsers SET name = $2, abbreviation = $3, last_updated = $4 WHERE id = $1`
	result, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		endorser.ID, endorser.Name, endorser.Abbreviation, endorser.LastUpdated)
	if err != nil {
		return fmt.Errorf("update endorser: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM endorsers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete endorser: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) FindByAbbreviation(ctx context.Context, abbreviation string) (*models.Endorser, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+endorserColumns+` FROM endorsers WHERE lower(abbreviation) = lower($1)`, abbreviation)
	var endorser models.Endorser
	err := row.Scan(&endorser.ID, &endorser.Name, &endorser.Abbreviation,
		&endorser.Created, &endorser.LastUpdated)
	if err != nil {
		return nil, fmt.Errorf("find endorser by abbreviation: %w", store.MapError(err))
	}
	return &endorser, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("endorser not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
