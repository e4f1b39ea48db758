package candidate

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

type CandidateStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestCandidateStoreSuite(t *testing.T) {
	suite.Run(t, new(CandidateStoreSuite))
}

func (s *CandidateStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *CandidateStoreSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *CandidateStoreSuite) newCandidate(first, last string) *models.Candidate {
	return &models.Candidate{
		ID:        uuid.New(),
		FirstName: first,
		LastName:  last,
		Party:     models.PartyUnknown,
		Created:   time.Now(),
	}
}

func (s *CandidateStoreSuite) TestCRUD() {
	s.Run("creates and gets a candidate", func() {
		candidate := s.newCandidate("Donna", "Emerson")
		s.Require().NoError(s.store.Create(s.ctx, candidate))

		found, err := s.store.Get(s.ctx, candidate.ID)
		s.Require().NoError(err)
		s.Equal("Donna", found.FirstName)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.Get(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("updates an existing candidate", func() {
		candidate := s.newCandidate("Cameron", "Howe")
		s.Require().NoError(s.store.Create(s.ctx, candidate))

		candidate.Party = models.PartyIndependent
		s.Require().NoError(s.store.Update(s.ctx, candidate))

		found, err := s.store.Get(s.ctx, candidate.ID)
		s.Require().NoError(err)
		s.Equal(models.PartyIndependent, found.Party)
	})

	s.Run("update of a missing candidate returns ErrNotFound", func() {
		err := s.store.Update(s.ctx, s.newCandidate("Joe", "MacMillan"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deletes a candidate", func() {
		candidate := s.newCandidate("John", "Bosworth")
		s.Require().NoError(s.store.Create(s.ctx, candidate))
		s.Require().NoError(s.store.Delete(s.ctx, candidate.ID))

		_, err := s.store.Get(s.ctx, candidate.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *CandidateStoreSuite) TestIdentityRules() {
	s.Run("rejects duplicate name pair when neither has a birth date", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newCandidate("Gordon", "Clark")))

		err := s.store.Create(s.ctx, s.newCandidate("gordon", "clark"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
		s.Equal(models.ConstraintCandidateUniqueFirstLastNullDOB, sentinel.ConstraintOf(err))
	})

	s.Run("rejects duplicate name and birth date triple", func() {
		dob := models.NewDate(1971, time.March, 14)
		first := s.newCandidate("Gordon", "Clark")
		first.DateOfBirth = &dob
		s.Require().NoError(s.store.Create(s.ctx, first))

		second := s.newCandidate("Gordon", "Clark")
		second.DateOfBirth = &dob
		err := s.store.Create(s.ctx, second)
		s.Require().ErrorIs(err, sentinel.ErrConflict)
		s.Equal(models.ConstraintCandidateUniqueFirstLastDOB, sentinel.ConstraintOf(err))
	})

	s.Run("allows same name with different birth dates", func() {
		dob1 := models.NewDate(1971, time.March, 14)
		dob2 := models.NewDate(1980, time.June, 2)
		first := s.newCandidate("Gordon", "Clark")
		first.DateOfBirth = &dob1
		second := s.newCandidate("Gordon", "Clark")
		second.DateOfBirth = &dob2

		s.Require().NoError(s.store.Create(s.ctx, first))
		s.NoError(s.store.Create(s.ctx, second))
	})

	s.Run("known birth date does not collide with unknown", func() {
		dob := models.NewDate(1971, time.March, 14)
		first := s.newCandidate("Gordon", "Clark")
		second := s.newCandidate("Gordon", "Clark")
		second.DateOfBirth = &dob

		s.Require().NoError(s.store.Create(s.ctx, first))
		s.NoError(s.store.Create(s.ctx, second))
	})

	s.Run("update keeping identity does not collide with itself", func() {
		candidate := s.newCandidate("Donna", "Emerson")
		s.Require().NoError(s.store.Create(s.ctx, candidate))

		candidate.Party = models.PartyDemocrat
		s.NoError(s.store.Update(s.ctx, candidate))
	})
}

func (s *CandidateStoreSuite) TestListByName() {
	s.Require().NoError(s.store.Create(s.ctx, s.newCandidate("Donna", "Emerson")))
	boz := s.newCandidate("John", "Bosworth")
	s.Require().NoError(s.store.Create(s.ctx, boz))

	matches, err := s.store.ListByName(s.ctx, "JOHN", "bosworth")
	s.Require().NoError(err)
	s.Require().Len(matches, 1)
	s.Equal(boz.ID, matches[0].ID)

	matches, err = s.store.ListByName(s.ctx, "Ryan", "Ray")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *CandidateStoreSuite) TestClearSeatRefs() {
	seatID := uuid.New()
	running := s.newCandidate("Donna", "Emerson")
	running.RunningForSeatID = &seatID
	holder := s.newCandidate("John", "Bosworth")
	holder.SeatID = &seatID
	other := s.newCandidate("Cameron", "Howe")
	otherSeat := uuid.New()
	other.SeatID = &otherSeat

	s.Require().NoError(s.store.Create(s.ctx, running))
	s.Require().NoError(s.store.Create(s.ctx, holder))
	s.Require().NoError(s.store.Create(s.ctx, other))

	s.Require().NoError(s.store.ClearSeatRefs(s.ctx, seatID))

	found, err := s.store.Get(s.ctx, running.ID)
	s.Require().NoError(err)
	s.Nil(found.RunningForSeatID)

	found, err = s.store.Get(s.ctx, holder.ID)
	s.Require().NoError(err)
	s.Nil(found.SeatID)

	found, err = s.store.Get(s.ctx, other.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.SeatID)
	s.Equal(otherSeat, *found.SeatID)
}
