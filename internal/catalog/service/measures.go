package service

import (
	"context"

	"github.com/google/uuid"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/validate"
	"voterguide/pkg/requestcontext"
)

// MeasurePatch carries a partial measure update. Nil fields stay
// unchanged; Passed can be set but not cleared back to pending.
type MeasurePatch struct {
	Name         *string
	Description  *string
	Level        *models.Level
	City         *string
	County       *string
	State        *string
	ElectionDate *models.Date
	Passed       *bool
}

func (s *Service) CreateMeasure(ctx context.Context, measure models.Measure) (*models.Measure, error) {
	defer s.observe(entityMeasure, opCreate)()

	if measure.ID == uuid.Nil {
		measure.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	measure.Created = now
	measure.LastUpdated = now

	validated, err := validate.Measure(ctx, measure, s.stores.Measures)
	if err != nil {
		return nil, s.rejected(entityMeasure, err)
	}
	if err := s.stores.Measures.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entityMeasure)
	}

	s.logAudit(ctx, audit.ActionCreated, entityMeasure, validated.ID)
	s.recordWrite(ctx, entityMeasure, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetMeasure(ctx context.Context, id uuid.UUID) (*models.Measure, error) {
	var cached models.Measure
	if s.cache.Get(ctx, entityMeasure, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	measure, err := s.stores.Measures.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasure)
	}
	s.cache.Set(ctx, entityMeasure, id, measure)
	return measure, nil
}

func (s *Service) ListMeasures(ctx context.Context) ([]*models.Measure, error) {
	measures, err := s.stores.Measures.List(ctx)
	if err != nil {
		return nil, storeError(err, entityMeasure)
	}
	return measures, nil
}

func (s *Service) UpdateMeasure(ctx context.Context, id uuid.UUID, incoming models.Measure) (*models.Measure, error) {
	defer s.observe(entityMeasure, opUpdate)()

	existing, err := s.stores.Measures.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasure)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveMeasure(ctx, incoming)
}

func (s *Service) PatchMeasure(ctx context.Context, id uuid.UUID, patch MeasurePatch) (*models.Measure, error) {
	defer s.observe(entityMeasure, opUpdate)()

	existing, err := s.stores.Measures.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasure)
	}
	merged := *existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Level != nil {
		merged.Level = *patch.Level
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.County != nil {
		merged.County = *patch.County
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	if patch.ElectionDate != nil {
		merged.ElectionDate = *patch.ElectionDate
	}
	if patch.Passed != nil {
		merged.Passed = patch.Passed
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveMeasure(ctx, merged)
}

func (s *Service) saveMeasure(ctx context.Context, measure models.Measure) (*models.Measure, error) {
	validated, err := validate.Measure(ctx, measure, s.stores.Measures)
	if err != nil {
		return nil, s.rejected(entityMeasure, err)
	}
	if err := s.stores.Measures.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entityMeasure)
	}
	s.logAudit(ctx, audit.ActionUpdated, entityMeasure, validated.ID)
	s.recordWrite(ctx, entityMeasure, opUpdate, validated.ID)
	return &validated, nil
}

// DeleteMeasure removes the measure and its endorsements in one
// transaction.
func (s *Service) DeleteMeasure(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entityMeasure, opDelete)()

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stores.MeasureEndorsements.DeleteByMeasure(ctx, id); err != nil {
			return storeError(err, entityMeasureEndorsement)
		}
		if err := s.stores.Measures.Delete(ctx, id); err != nil {
			return storeError(err, entityMeasure)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, audit.ActionDeleted, entityMeasure, id)
	s.recordWrite(ctx, entityMeasure, opDelete, id)
	return nil
}
