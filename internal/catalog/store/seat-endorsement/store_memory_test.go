package seatendorsement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

type SeatEndorsementStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestSeatEndorsementStoreSuite(t *testing.T) {
	suite.Run(t, new(SeatEndorsementStoreSuite))
}

func (s *SeatEndorsementStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *SeatEndorsementStoreSuite) newEndorsement(candidates ...uuid.UUID) *models.SeatEndorsement {
	return &models.SeatEndorsement{
		ID:           uuid.New(),
		EndorserID:   uuid.New(),
		SeatID:       uuid.New(),
		ElectionDate: models.NewDate(2022, time.November, 8),
		CandidateIDs: candidates,
		Created:      time.Now(),
	}
}

func (s *SeatEndorsementStoreSuite) TestCRUD() {
	s.Run("creates and gets an endorsement preserving candidate order", func() {
		first, second, third := uuid.New(), uuid.New(), uuid.New()
		endorsement := s.newEndorsement(first, second, third)
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		found, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{first, second, third}, found.CandidateIDs)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.Get(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("update replaces the candidate list", func() {
		endorsement := s.newEndorsement(uuid.New())
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		replacement := uuid.New()
		endorsement.CandidateIDs = []uuid.UUID{replacement}
		s.Require().NoError(s.store.Update(s.ctx, endorsement))

		found, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{replacement}, found.CandidateIDs)
	})
}

func (s *SeatEndorsementStoreSuite) TestKeyUniqueness() {
	endorsement := s.newEndorsement()
	s.Require().NoError(s.store.Create(s.ctx, endorsement))

	duplicate := s.newEndorsement()
	duplicate.EndorserID = endorsement.EndorserID
	duplicate.SeatID = endorsement.SeatID
	err := s.store.Create(s.ctx, duplicate)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintSeatEndorsementUnique, sentinel.ConstraintOf(err))

	found, err := s.store.FindByKey(s.ctx, endorsement.EndorserID, endorsement.ElectionDate, endorsement.SeatID)
	s.Require().NoError(err)
	s.Equal(endorsement.ID, found.ID)
}

func (s *SeatEndorsementStoreSuite) TestCascades() {
	s.Run("deletes by endorser", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		s.Require().NoError(s.store.DeleteByEndorser(s.ctx, endorsement.EndorserID))
		_, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deletes by seat", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		s.Require().NoError(s.store.DeleteBySeat(s.ctx, endorsement.SeatID))
		_, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("removes a deleted candidate from every list", func() {
		gone := uuid.New()
		kept := uuid.New()
		endorsement := s.newEndorsement(kept, gone)
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		s.Require().NoError(s.store.RemoveCandidate(s.ctx, gone))

		found, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{kept}, found.CandidateIDs)
	})
}
