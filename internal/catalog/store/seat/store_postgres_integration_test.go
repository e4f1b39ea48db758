//go:build integration

package seat_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/internal/catalog/store/seat"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/testutil/containers"
)

type PostgresSeatStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *seat.PostgresStore
}

func TestPostgresSeatStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSeatStoreSuite))
}

func (s *PostgresSeatStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.postgres.DB))
	s.store = seat.NewPostgres(s.postgres.DB)
}

func (s *PostgresSeatStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"seat_endorsement_candidates", "seat_endorsements", "candidates", "seats")
	s.Require().NoError(err)
}

func newSeat(role string, level models.Level, state string) *models.Seat {
	now := time.Now().UTC()
	return &models.Seat{
		ID:          uuid.New(),
		Level:       level,
		Branch:      models.BranchExecutive,
		Role:        role,
		State:       state,
		Created:     now,
		LastUpdated: now,
	}
}

func (s *PostgresSeatStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	district := 2
	house := &models.Seat{
		ID: uuid.New(), Level: models.LevelFederal, Branch: models.BranchLegislative,
		Role: "Representative", Body: models.BodyHouse, District: &district, State: "MN",
		Created: time.Now().UTC(), LastUpdated: time.Now().UTC(),
	}
	s.Require().NoError(s.store.Create(ctx, house))

	found, err := s.store.Get(ctx, house.ID)
	s.Require().NoError(err)
	s.Equal("Representative", found.Role)
	s.Equal(models.BodyHouse, found.Body)
	s.Require().NotNil(found.District)
	s.Equal(2, *found.District)
	s.Equal("MN", found.State)
}

func (s *PostgresSeatStoreSuite) TestBlankStateStoredAsNull() {
	ctx := context.Background()
	president := newSeat("President", models.LevelFederal, "")
	s.Require().NoError(s.store.Create(ctx, president))

	found, err := s.store.Get(ctx, president.ID)
	s.Require().NoError(err)
	s.Equal("", found.State)

	var stateIsNull bool
	err = s.postgres.DB.QueryRowContext(ctx,
		`SELECT state IS NULL FROM seats WHERE id = $1`, president.ID).Scan(&stateIsNull)
	s.Require().NoError(err)
	s.True(stateIsNull)
}

func (s *PostgresSeatStoreSuite) TestStatelessUniqueIndex() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newSeat("President", models.LevelFederal, "")))

	err := s.store.Create(ctx, newSeat("PRESIDENT", models.LevelFederal, ""))
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintSeatUniqueRoleLevelNullState, sentinel.ConstraintOf(err))

	// With a state set the partial index does not apply.
	s.NoError(s.store.Create(ctx, newSeat("Governor", models.LevelState, "OR")))
	s.NoError(s.store.Create(ctx, newSeat("Governor", models.LevelState, "WA")))
}

func (s *PostgresSeatStoreSuite) TestLevelCheckConstraint() {
	ctx := context.Background()
	bad := newSeat("Governor", models.Level("X"), "OR")

	err := s.store.Create(ctx, bad)
	s.Require().ErrorIs(err, sentinel.ErrInvalid)
	s.Equal(models.ConstraintSeatLevelValid, sentinel.ConstraintOf(err))
}

func (s *PostgresSeatStoreSuite) TestListByLevel() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newSeat("President", models.LevelFederal, "")))
	s.Require().NoError(s.store.Create(ctx, newSeat("Governor", models.LevelState, "OR")))

	federal, err := s.store.ListByLevel(ctx, models.LevelFederal)
	s.Require().NoError(err)
	s.Require().Len(federal, 1)
	s.Equal("President", federal[0].Role)
}
