package seat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/pkg/platform/sentinel"
)

// PostgresStore persists seats in PostgreSQL. A blank state is stored as
// NULL so the partial unique index on stateless seats applies.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed seat store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const seatColumns = `id, level, branch, role, body, district, state, city, county, created, last_updated`

func (s *PostgresStore) Create(ctx context.Context, seat *models.Seat) error {
	query := `
		INSERT INTO seats (` + seatColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11)
	`
	_, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		seat.ID, string(seat.Level), string(seat.Branch), seat.Role, string(seat.Body),
		nullInt(seat.District), seat.State, seat.City, seat.County,
		seat.Created, seat.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create seat: %w", store.MapError(err))
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*models.Seat, error) {
	row := store.Querier(ctx, s.db).QueryRowContext(ctx,
		`SELECT `+seatColumns+` FROM seats WHERE id = $1`, id)
	seat, err := scanSeat(row)
	if err != nil {
		return nil, fmt.Errorf("get seat: %w", store.MapError(err))
	}
	return seat, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Seat, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+seatColumns+` FROM seats ORDER BY created, id`)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", store.MapError(err))
	}
	defer rows.Close()
	return collectSeats(rows)
}

func (s *PostgresStore) Update(ctx context.Context, seat *models.Seat) error {
	query := `
		UPDATE seats SET
			level = $2, branch = $3, role = $4, body = $5, district = $6,
			state = NULLIF($7, ''), city = $8, county = $9, last_updated = $10
		WHERE id = $1
	`
	result, err := store.Querier(ctx, s.db).ExecContext(ctx, query,
		seat.ID, string(seat.Level), string(seat.Branch), seat.Role, string(seat.Body),
		nullInt(seat.District), seat.State, seat.City, seat.County, seat.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("update seat: %w", store.MapError(err))
	}
	return requireRow(result, "seat")
}

func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := store.Querier(ctx, s.db).ExecContext(ctx,
		`DELETE FROM seats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seat: %w", store.MapError(err))
	}
	return requireRow(result, "seat")
}

func (s *PostgresStore) ListByLevel(ctx context.Context, level models.Level) ([]*models.Seat, error) {
	rows, err := store.Querier(ctx, s.db).QueryContext(ctx,
		`SELECT `+seatColumns+` FROM seats WHERE level = $1 ORDER BY created, id`, string(level))
	if err != nil {
		return nil, fmt.Errorf("list seats by level: %w", store.MapError(err))
	}
	defer rows.Close()
	return collectSeats(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeat(row rowScanner) (*models.Seat, error) {
	var (
		seat     models.Seat
		level    string
		branch   string
		body     string
		district sql.NullInt64
		state    sql.NullString
	)
	err := row.Scan(&seat.ID, &level, &branch, &seat.Role, &body, &district,
		&state, &seat.City, &seat.County, &seat.Created, &seat.LastUpdated)
	if err != nil {
		return nil, err
	}
	seat.Level = models.Level(level)
	seat.Branch = models.Branch(branch)
	seat.Body = models.LegislativeBody(body)
	if district.Valid {
		n := int(district.Int64)
		seat.District = &n
	}
	seat.State = state.String
	return &seat, nil
}

func collectSeats(rows *sql.Rows) ([]*models.Seat, error) {
	var out []*models.Seat
	for rows.Next() {
		seat, err := scanSeat(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seat: %w", err)
		}
		out = append(out, seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate seats: %w", err)
	}
	return out, nil
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
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
