package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"voterguide/internal/catalog/service"
	"voterguide/internal/catalog/store"
	candidatestore "voterguide/internal/catalog/store/candidate"
	endorserstore "voterguide/internal/catalog/store/endorser"
	measurestore "voterguide/internal/catalog/store/measure"
	measureendorsement "voterguide/internal/catalog/store/measure-endorsement"
	seatstore "voterguide/internal/catalog/store/seat"
	seatendorsement "voterguide/internal/catalog/store/seat-endorsement"
	"voterguide/internal/platform/config"
	"voterguide/pkg/platform/tx"
)

// buildStores selects the storage backend from config. With a DATABASE_URL
// it opens PostgreSQL, runs migrations, and returns stores sharing one
// transaction runner; without one it returns the in-memory set.
func buildStores(ctx context.Context, cfg config.Server) (service.Stores, tx.Runner, func(), error) {
	if cfg.DatabaseURL == "" {
		stores := service.Stores{
			Candidates:          candidatestore.NewMemory(),
			Seats:               seatstore.NewMemory(),
			Endorsers:           endorserstore.NewMemory(),
			Measures:            measurestore.NewMemory(),
			MeasureEndorsements: measureendorsement.NewMemory(),
			SeatEndorsements:    seatendorsement.NewMemory(),
		}
		return stores, tx.NoopRunner{}, func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return service.Stores{}, nil, nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return service.Stores{}, nil, nil, fmt.Errorf("ping database: %w", err)
	}
	if err := store.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return service.Stores{}, nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	stores := service.Stores{
		Candidates:          candidatestore.NewPostgres(db),
		Seats:               seatstore.NewPostgres(db),
		Endorsers:           endorserstore.NewPostgres(db),
		Measures:            measurestore.NewPostgres(db),
		MeasureEndorsements: measureendorsement.NewPostgres(db),
		SeatEndorsements:    seatendorsement.NewPostgres(db),
	}
	return stores, tx.NewSQLRunner(db), func() { _ = db.Close() }, nil
}
