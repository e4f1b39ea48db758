//go:build integration

package seatendorsement_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/internal/catalog/store/candidate"
	"voterguide/internal/catalog/store/endorser"
	"voterguide/internal/catalog/store/seat"
	seatendorsement "voterguide/internal/catalog/store/seat-endorsement"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/testutil/containers"
)

type PostgresSeatEndorsementSuite struct {
	suite.Suite
	postgres   *containers.PostgresContainer
	store      *seatendorsement.PostgresStore
	seats      *seat.PostgresStore
	endorsers  *endorser.PostgresStore
	candidates *candidate.PostgresStore
}

func TestPostgresSeatEndorsementSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSeatEndorsementSuite))
}

func (s *PostgresSeatEndorsementSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.postgres.DB))
	s.store = seatendorsement.NewPostgres(s.postgres.DB)
	s.seats = seat.NewPostgres(s.postgres.DB)
	s.endorsers = endorser.NewPostgres(s.postgres.DB)
	s.candidates = candidate.NewPostgres(s.postgres.DB)
}

func (s *PostgresSeatEndorsementSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"seat_endorsement_candidates", "seat_endorsements", "candidates", "seats", "endorsers")
	s.Require().NoError(err)
}

// seed creates an endorser, a seat, and n candidates, returning the
// candidate IDs in creation order.
func (s *PostgresSeatEndorsementSuite) seed(n int) (*models.Endorser, *models.Seat, []uuid.UUID) {
	ctx := context.Background()
	now := time.Now().UTC()

	org := &models.Endorser{
		ID: uuid.New(), Name: "Basic Rights Oregon", Abbreviation: "BRO",
		Created: now, LastUpdated: now,
	}
	s.Require().NoError(s.endorsers.Create(ctx, org))

	governor := &models.Seat{
		ID: uuid.New(), Level: models.LevelState, Branch: models.BranchExecutive,
		Role: "Governor", State: "OR", Created: now, LastUpdated: now,
	}
	s.Require().NoError(s.seats.Create(ctx, governor))

	names := []string{"Donna", "Cameron", "Gordon", "Joe", "John"}
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		c := &models.Candidate{
			ID: uuid.New(), FirstName: names[i%len(names)], LastName: "Candidate",
			MiddleName: string(rune('A' + i)), Party: models.PartyUnknown,
			Created: now, LastUpdated: now,
		}
		s.Require().NoError(s.candidates.Create(ctx, c))
		ids = append(ids, c.ID)
	}
	return org, governor, ids
}

func (s *PostgresSeatEndorsementSuite) TestCandidateOrderSurvivesRoundTrip() {
	ctx := context.Background()
	org, governor, ids := s.seed(3)
	now := time.Now().UTC()

	// Deliberately not in creation order.
	ordered := []uuid.UUID{ids[2], ids[0], ids[1]}
	endorsement := &models.SeatEndorsement{
		ID: uuid.New(), EndorserID: org.ID, SeatID: governor.ID,
		ElectionDate: models.NewDate(2022, time.November, 8),
		URL:          "https://example.com/endorsements",
		CandidateIDs: ordered,
		Created:      now, LastUpdated: now,
	}
	s.Require().NoError(s.store.Create(ctx, endorsement))

	found, err := s.store.Get(ctx, endorsement.ID)
	s.Require().NoError(err)
	s.Equal(ordered, found.CandidateIDs)

	listed, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(ordered, listed[0].CandidateIDs)
}

func (s *PostgresSeatEndorsementSuite) TestKeyUniqueConstraint() {
	ctx := context.Background()
	org, governor, _ := s.seed(0)
	now := time.Now().UTC()
	date := models.NewDate(2022, time.November, 8)

	first := &models.SeatEndorsement{
		ID: uuid.New(), EndorserID: org.ID, SeatID: governor.ID,
		ElectionDate: date, Created: now, LastUpdated: now,
	}
	s.Require().NoError(s.store.Create(ctx, first))

	second := &models.SeatEndorsement{
		ID: uuid.New(), EndorserID: org.ID, SeatID: governor.ID,
		ElectionDate: date, Created: now, LastUpdated: now,
	}
	err := s.store.Create(ctx, second)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintSeatEndorsementUnique, sentinel.ConstraintOf(err))
}

func (s *PostgresSeatEndorsementSuite) TestUpdateReplacesCandidateList() {
	ctx := context.Background()
	org, governor, ids := s.seed(3)
	now := time.Now().UTC()

	endorsement := &models.SeatEndorsement{
		ID: uuid.New(), EndorserID: org.ID, SeatID: governor.ID,
		ElectionDate: models.NewDate(2022, time.November, 8),
		CandidateIDs: []uuid.UUID{ids[0]},
		Created:      now, LastUpdated: now,
	}
	s.Require().NoError(s.store.Create(ctx, endorsement))

	endorsement.CandidateIDs = []uuid.UUID{ids[2], ids[1]}
	s.Require().NoError(s.store.Update(ctx, endorsement))

	found, err := s.store.Get(ctx, endorsement.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{ids[2], ids[1]}, found.CandidateIDs)
}

func (s *PostgresSeatEndorsementSuite) TestRemoveCandidate() {
	ctx := context.Background()
	org, governor, ids := s.seed(2)
	now := time.Now().UTC()

	endorsement := &models.SeatEndorsement{
		ID: uuid.New(), EndorserID: org.ID, SeatID: governor.ID,
		ElectionDate: models.NewDate(2022, time.November, 8),
		CandidateIDs: ids,
		Created:      now, LastUpdated: now,
	}
	s.Require().NoError(s.store.Create(ctx, endorsement))

	s.Require().NoError(s.store.RemoveCandidate(ctx, ids[0]))

	found, err := s.store.Get(ctx, endorsement.ID)
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{ids[1]}, found.CandidateIDs)
}
