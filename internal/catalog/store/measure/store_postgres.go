package measure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists measures in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed measure store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const measureColumns = `id, name, description, level, city, county, state, election_date, passed, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, measure *models.Measure) error {
	query := `
		INSERT INTO measures (` + measureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		measure.ID, measure.Name, measure.Description, string(measure.Level),
		measure.City, measure.County, measure.State, measure.ElectionDate.Time,
		nullBool(measure.Passed), measure.Created, measure.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create measure: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.Measure, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+measureColumns+` FROM measures WHERE id = $1`, id)
	measure, err := scanMeasure(row)
	if err != nil {
		return nil, fmt.Errorf("get measure: %w", store.MapError(err))
	}
	return measure, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Measure, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+measureColumns+` FROM measures ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list measures: %w", store.MapError(err))
	}
	defer rows.Close()

	var out []*models.Measure
	for rows.Next() {
		measure, err := scanMeasure(rows)
		if err != nil {
			return nil, fmt.Errorf("scan measure: %w", err)
		}
		out = append(out, measure)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate measures: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Update(ctx context.Context, measure *models.Measure) error {
	query := `
		UPDATE measures SET
			name = $2, description = $3, level = $4, city = $5, county = $6,
			state = $7, election_date = $8, passed = $9, last_updated = $10
		WHERE id = $1
	`
	result, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		measure.ID, measure.Name, measure.Description, string(measure.Level),
		measure.City, measure.County, measure.State, measure.ElectionDate.Time,
		nullBool(measure.Passed), measure.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update measure: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM measures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete measure: %w", store.MapError(err))
	}
	return requireRow(result)
}

func (s *PostgresStore) FindByKey(ctx context.Context, name string, electionDate models.Date, state string) (*models.Measure, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+measureColumns+` FROM measures
		 WHERE lower(name) = lower($1) AND election_date = $2 AND state = $3`,
		name, electionDate.Time, state)
	measure, err := scanMeasure(row)
	if err != nil {
		return nil, fmt.Errorf("find measure by key: %w", store.MapError(err))
	}
	return measure, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeasure(row rowScanner) (*models.Measure, error) {
	var (
		measure      models.Measure
		level        string
		electionDate sql.NullTime
		passed       sql.NullBool
	)
	err := row.Scan(&measure.ID, &measure.Name, &measure.Description, &level,
		&measure.City, &measure.County, &measure.State, &electionDate, &passed,
		&measure.Created, &measure.LastUpdated)
	if err != nil {
		return nil, err
	}
	measure.Level = models.Level(level)
	if electionDate.Valid {
		measure.ElectionDate = models.DateOf(electionDate.Time)
	}
	if passed.Valid {
		value := passed.Bool
		measure.Passed = &value
	}
	return &measure, nil
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("measure not found: %w", sentinel.ErrNotFound)
	}
	return nil
}
