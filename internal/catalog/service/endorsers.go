package service

import (
	"context"

	"github.com/google/uuid"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/validate"
	"voterguide/pkg/requestcontext"
)

// EndorserPatch carries a partial endorser update. Nil fields stay
// unchanged.
type EndorserPatch struct {
	Name         *string
	Abbreviation *string
}

func (s *Service) CreateEndorser(ctx context.Context, endorser models.Endorser) (*models.Endorser, error) {
	defer s.observe(entityEndorser, opCreate)()

	if endorser.ID == uuid.Nil {
		endorser.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	endorser.Created = now
	endorser.LastUpdated = now

	validated, err := validate.Endorser(ctx, endorser, s.stores.Endorsers)
	if err != nil {
		return nil, s.rejected(entityEndorser, err)
	}
	if err := s.stores.Endorsers.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entityEndorser)
	}

	s.logAudit(ctx, audit.ActionCreated, entityEndorser, validated.ID)
	s.recordWrite(ctx, entityEndorser, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetEndorser(ctx context.Context, id uuid.UUID) (*models.Endorser, error) {
	var cached models.Endorser
	if s.cache.Get(ctx, entityEndorser, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	endorser, err := s.stores.Endorsers.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityEndorser)
	}
	s.cache.Set(ctx, entityEndorser, id, endorser)
	return endorser, nil
}

func (s *Service) ListEndorsers(ctx context.Context) ([]*models.Endorser, error) {
	endorsers, err := s.stores.Endorsers.List(ctx)
	if err != nil {
		return nil, storeError(err, entityEndorser)
	}
	return endorsers, nil
}

func (s *Service) UpdateEndorser(ctx context.Context, id uuid.UUID, incoming models.Endorser) (*models.Endorser, error) {
	defer s.observe(entityEndorser, opUpdate)()

	existing, err := s.stores.Endorsers.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityEndorser)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveEndorser(ctx, incoming)
}

func (s *Service) PatchEndorser(ctx context.Context, id uuid.UUID, patch EndorserPatch) (*models.Endorser, error) {
	defer s.observe(entityEndorser, opUpdate)()

	existing, err := s.stores.Endorsers.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityEndorser)
	}
	merged := *existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Abbreviation != nil {
		merged.Abbreviation = *patch.Abbreviation
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveEndorser(ctx, merged)
}

func (s *Service) saveEndorser(ctx context.Context, endorser models.Endorser) (*models.Endorser, error) {
	validated, err := validate.Endorser(ctx, endorser, s.stores.Endorsers)
	if err != nil {
		return nil, s.rejected(entityEndorser, err)
	}
	if err := s.stores.Endorsers.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entityEndorser)
	}
	s.logAudit(ctx, audit.ActionUpdated, entityEndorser, validated.ID)
	s.recordWrite(ctx, entityEndorser, opUpdate, validated.ID)
	return &validated, nil
}

// DeleteEndorser removes the endorser and every endorsement it issued in
// one transaction.
func (s *Service) DeleteEndorser(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entityEndorser, opDelete)()

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stores.MeasureEndorsements.DeleteByEndorser(ctx, id); err != nil {
			return storeError(err, entityMeasureEndorsement)
		}
		if err := s.stores.SeatEndorsements.DeleteByEndorser(ctx, id); err != nil {
			return storeError(err, entitySeatEndorsement)
		}
		if err := s.stores.Endorsers.Delete(ctx, id); err != nil {
			return storeError(err, entityEndorser)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, audit.ActionDeleted, entityEndorser, id)
	s.recordWrite(ctx, entityEndorser, opDelete, id)
	return nil
}
