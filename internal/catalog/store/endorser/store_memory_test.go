package endorser

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

type EndorserStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestEndorserStoreSuite(t *testing.T) {
	suite.Run(t, new(EndorserStoreSuite))
}

func (s *EndorserStoreSuite) SetupTest() {
	s.store = NewMemory()
	s.ctx = context.Background()
}

func (s *EndorserStoreSuite) newEndorser(name, abbreviation string) *models.Endorser {
	return &models.Endorser{
		ID:           uuid.New(),
		Name:         name,
		Abbreviation: abbreviation,
		Created:      time.Now(),
	}
}

func (s *EndorserStoreSuite) TestCRUD() {
	s.Run("creates and gets an endorser", func() {
		endorser := s.newEndorser("Basic Rights Oregon", "BRO")
		s.Require().NoError(s.store.Create(s.ctx, endorser))

		found, err := s.store.Get(s.ctx, endorser.ID)
		s.Require().NoError(err)
		s.Equal("BRO", found.Abbreviation)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.Get(s.ctx, uuid.New())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("updates an existing endorser", func() {
		endorser := s.newEndorser("Sierra Club", "SC")
		s.Require().NoError(s.store.Create(s.ctx, endorser))

		endorser.Name = "Sierra Club Oregon"
		s.Require().NoError(s.store.Update(s.ctx, endorser))

		found, err := s.store.Get(s.ctx, endorser.ID)
		s.Require().NoError(err)
		s.Equal("Sierra Club Oregon", found.Name)
	})

	s.Run("deletes an endorser", func() {
		endorser := s.newEndorser("League of Women Voters", "LWV")
		s.Require().NoError(s.store.Create(s.ctx, endorser))
		s.Require().NoError(s.store.Delete(s.ctx, endorser.ID))

		_, err := s.store.Get(s.ctx, endorser.ID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *EndorserStoreSuite) TestAbbreviationUniqueness() {
	s.Run("rejects duplicate abbreviation regardless of case", func() {
		s.Require().NoError(s.store.Create(s.ctx, s.newEndorser("Basic Rights Oregon", "BRO")))

		err := s.store.Create(s.ctx, s.newEndorser("Bikes for Roads", "bro"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)
		s.Equal(models.ConstraintEndorserUniqueAbbreviation, sentinel.ConstraintOf(err))
	})

	s.Run("finds by abbreviation case-insensitively", func() {
		endorser := s.newEndorser("Sierra Club", "SC")
		s.Require().NoError(s.store.Create(s.ctx, endorser))

		found, err := s.store.FindByAbbreviation(s.ctx, "sc")
		s.Require().NoError(err)
		s.Equal(endorser.ID, found.ID)

		_, err = s.store.FindByAbbreviation(s.ctx, "NOPE")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
