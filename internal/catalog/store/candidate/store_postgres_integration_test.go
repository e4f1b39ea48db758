//go:build integration

package candidate_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/store"
	"voterguide/internal/catalog/store/candidate"
	"voterguide/internal/catalog/store/seat"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/testutil/containers"
)

type PostgresCandidateStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *candidate.PostgresStore
	seats    *seat.PostgresStore
}

func TestPostgresCandidateStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresCandidateStoreSuite))
}

func (s *PostgresCandidateStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.Require().NoError(store.Migrate(context.Background(), s.postgres.DB))
	s.store = candidate.NewPostgres(s.postgres.DB)
	s.seats = seat.NewPostgres(s.postgres.DB)
}

func (s *PostgresCandidateStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(),
		"seat_endorsement_candidates", "seat_endorsements", "candidates", "seats")
	s.Require().NoError(err)
}

func newCandidate(first, last string) *models.Candidate {
	now := time.Now().UTC()
	return &models.Candidate{
		ID:          uuid.New(),
		FirstName:   first,
		LastName:    last,
		Party:       models.PartyUnknown,
		Created:     now,
		LastUpdated: now,
	}
}

func (s *PostgresCandidateStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	dob := models.NewDate(1930, time.January, 1)
	boz := newCandidate("John", "Bosworth")
	boz.MiddleName = "Cardiff"
	boz.DateOfBirth = &dob
	boz.Party = models.PartyDemocrat
	s.Require().NoError(s.store.Create(ctx, boz))

	found, err := s.store.Get(ctx, boz.ID)
	s.Require().NoError(err)
	s.Equal("John Cardiff Bosworth", found.FullName())
	s.Require().NotNil(found.DateOfBirth)
	s.True(found.DateOfBirth.Equal(dob))
	s.Equal(models.PartyDemocrat, found.Party)
}

func (s *PostgresCandidateStoreSuite) TestNullDOBUniqueIndex() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newCandidate("Gordon", "Clark")))

	err := s.store.Create(ctx, newCandidate("GORDON", "clark"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintCandidateUniqueFirstLastNullDOB, sentinel.ConstraintOf(err))
}

func (s *PostgresCandidateStoreSuite) TestDOBUniqueIndex() {
	ctx := context.Background()
	dob := models.NewDate(1971, time.March, 14)

	first := newCandidate("Gordon", "Clark")
	first.DateOfBirth = &dob
	s.Require().NoError(s.store.Create(ctx, first))

	second := newCandidate("Gordon", "Clark")
	second.DateOfBirth = &dob
	err := s.store.Create(ctx, second)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintCandidateUniqueFirstLastDOB, sentinel.ConstraintOf(err))

	// A different birth date is a different person.
	otherDOB := models.NewDate(1980, time.June, 2)
	third := newCandidate("Gordon", "Clark")
	third.DateOfBirth = &otherDOB
	s.NoError(s.store.Create(ctx, third))

	// As is an unknown one.
	s.NoError(s.store.Create(ctx, newCandidate("Gordon", "Clark")))
}

func (s *PostgresCandidateStoreSuite) TestSeatRefs() {
	ctx := context.Background()
	now := time.Now().UTC()
	governor := &models.Seat{
		ID: uuid.New(), Level: models.LevelState, Branch: models.BranchExecutive,
		Role: "Governor", State: "OR", Created: now, LastUpdated: now,
	}
	s.Require().NoError(s.seats.Create(ctx, governor))

	running := newCandidate("Donna", "Emerson")
	running.RunningForSeatID = &governor.ID
	s.Require().NoError(s.store.Create(ctx, running))

	found, err := s.store.Get(ctx, running.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.RunningForSeatID)
	s.Equal(governor.ID, *found.RunningForSeatID)

	s.Require().NoError(s.store.ClearSeatRefs(ctx, governor.ID))

	found, err = s.store.Get(ctx, running.ID)
	s.Require().NoError(err)
	s.Nil(found.RunningForSeatID)
}

func (s *PostgresCandidateStoreSuite) TestListByName() {
	ctx := context.Background()
	boz := newCandidate("John", "Bosworth")
	s.Require().NoError(s.store.Create(ctx, boz))
	s.Require().NoError(s.store.Create(ctx, newCandidate("Donna", "Emerson")))

	matches, err := s.store.ListByName(ctx, "JOHN", "bosworth")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal(boz.ID, matches[0].ID)
}
