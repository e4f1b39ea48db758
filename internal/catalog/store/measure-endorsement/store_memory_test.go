package measureendorsement

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

type MeasureEndorsementStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestMeasureEndorsementStoreSuite(t *testing.T) {
	suite.Run(t, new(MeasureEndorsementStoreSuite))
}

func (s *MeasureEndorsementStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *MeasureEndorsementStoreSuite) newEndorsement() *models.MeasureEndorsement {
	return &models.MeasureEndorsement{
		ID:             uuid.New(),
		EndorserID:     uuid.New(),
		MeasureID:      uuid.New(),
		ElectionDate:   models.NewDate(2022, time.November, 8),
		Recommendation: models.RecommendYes,
		Created:        time.Now(),
	}
}

func (s *MeasureEndorsementStoreSuite) TestCRUD() {
	s.Run("creates and gets an endorsement", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		found, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().NoError(err)
		s.Equal(models.RecommendYes, found.Recommendation)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.Get(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("updates the recommendation", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		endorsement.Recommendation = models.RecommendNo
		s.Require().NoError(s.store.Update(s.ctx, endorsement))

		found, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().NoError(err)
		s.Equal(models.RecommendNo, found.Recommendation)
	})
}

func (s *MeasureEndorsementStoreSuite) TestKeyUniqueness() {
	endorsement := s.newEndorsement()
	s.Require().NoError(s.store.Create(s.ctx, endorsement))

	duplicate := s.newEndorsement()
	duplicate.EndorserID = endorsement.EndorserID
	duplicate.MeasureID = endorsement.MeasureID
	err := s.store.Create(s.ctx, duplicate)
	s.Require().ErrorIs(err, sentinel.ErrConflict)
	s.Equal(models.ConstraintMeasureEndorsementUnique, sentinel.ConstraintOf(err))

	found, err := s.store.FindByKey(s.ctx, endorsement.EndorserID, endorsement.ElectionDate, endorsement.MeasureID)
	s.Require().NoError(err)
	s.Equal(endorsement.ID, found.ID)
}

func (s *MeasureEndorsementStoreSuite) TestCascades() {
	s.Run("deletes by endorser", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		s.Require().NoError(s.store.DeleteByEndorser(s.ctx, endorsement.EndorserID))
		_, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deletes by measure", func() {
		endorsement := s.newEndorsement()
		s.Require().NoError(s.store.Create(s.ctx, endorsement))

		s.Require().NoError(s.store.DeleteByMeasure(s.ctx, endorsement.MeasureID))
		_, err := s.store.Get(s.ctx, endorsement.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
