package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/validate"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/requestcontext"
)

// MeasureEndorsementPatch carries a partial measure endorsement update.
// Nil fields stay unchanged.
type MeasureEndorsementPatch struct {
	EndorserID     *uuid.UUID
	MeasureID      *uuid.UUID
	ElectionDate   *models.Date
	URL            *string
	Recommendation *models.Recommendation
}

// SeatEndorsementPatch carries a partial seat endorsement update. A
// non-nil CandidateIDs replaces the whole list.
type SeatEndorsementPatch struct {
	EndorserID   *uuid.UUID
	SeatID       *uuid.UUID
	ElectionDate *models.Date
	URL          *string
	CandidateIDs []uuid.UUID
}

func (s *Service) CreateMeasureEndorsement(ctx context.Context, endorsement models.MeasureEndorsement) (*models.MeasureEndorsement, error) {
	defer s.observe(entityMeasureEndorsement, opCreate)()

	if endorsement.ID == uuid.Nil {
		endorsement.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	endorsement.Created = now
	endorsement.LastUpdated = now

	validated, err := validate.MeasureEndorsement(ctx, endorsement, s.stores.MeasureEndorsements)
	if err != nil {
		return nil, s.rejected(entityMeasureEndorsement, err)
	}
	if err := s.checkMeasureEndorsementRefs(ctx, &validated); err != nil {
		return nil, s.rejected(entityMeasureEndorsement, err)
	}
	if err := s.stores.MeasureEndorsements.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}

	s.logAudit(ctx, audit.ActionCreated, entityMeasureEndorsement, validated.ID)
	s.recordWrite(ctx, entityMeasureEndorsement, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetMeasureEndorsement(ctx context.Context, id uuid.UUID) (*models.MeasureEndorsement, error) {
	var cached models.MeasureEndorsement
	if s.cache.Get(ctx, entityMeasureEndorsement, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	endorsement, err := s.stores.MeasureEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}
	s.cache.Set(ctx, entityMeasureEndorsement, id, endorsement)
	return endorsement, nil
}

func (s *Service) ListMeasureEndorsements(ctx context.Context) ([]*models.MeasureEndorsement, error) {
	endorsements, err := s.stores.MeasureEndorsements.List(ctx)
	if err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}
	return endorsements, nil
}

func (s *Service) UpdateMeasureEndorsement(ctx context.Context, id uuid.UUID, incoming models.MeasureEndorsement) (*models.MeasureEndorsement, error) {
	defer s.observe(entityMeasureEndorsement, opUpdate)()

	existing, err := s.stores.MeasureEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveMeasureEndorsement(ctx, incoming)
}

func (s *Service) PatchMeasureEndorsement(ctx context.Context, id uuid.UUID, patch MeasureEndorsementPatch) (*models.MeasureEndorsement, error) {
	defer s.observe(entityMeasureEndorsement, opUpdate)()

	existing, err := s.stores.MeasureEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}
	merged := *existing
	if patch.EndorserID != nil {
		merged.EndorserID = *patch.EndorserID
	}
	if patch.MeasureID != nil {
		merged.MeasureID = *patch.MeasureID
	}
	if patch.ElectionDate != nil {
		merged.ElectionDate = *patch.ElectionDate
	}
	if patch.URL != nil {
		merged.URL = *patch.URL
	}
	if patch.Recommendation != nil {
		merged.Recommendation = *patch.Recommendation
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveMeasureEndorsement(ctx, merged)
}

func (s *Service) saveMeasureEndorsement(ctx context.Context, endorsement models.MeasureEndorsement) (*models.MeasureEndorsement, error) {
	validated, err := validate.MeasureEndorsement(ctx, endorsement, s.stores.MeasureEndorsements)
	if err != nil {
		return nil, s.rejected(entityMeasureEndorsement, err)
	}
	if err := s.checkMeasureEndorsementRefs(ctx, &validated); err != nil {
		return nil, s.rejected(entityMeasureEndorsement, err)
	}
	if err := s.stores.MeasureEndorsements.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entityMeasureEndorsement)
	}
	s.logAudit(ctx, audit.ActionUpdated, entityMeasureEndorsement, validated.ID)
	s.recordWrite(ctx, entityMeasureEndorsement, opUpdate, validated.ID)
	return &validated, nil
}

func (s *Service) DeleteMeasureEndorsement(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entityMeasureEndorsement, opDelete)()

	if err := s.stores.MeasureEndorsements.Delete(ctx, id); err != nil {
		return storeError(err, entityMeasureEndorsement)
	}
	s.logAudit(ctx, audit.ActionDeleted, entityMeasureEndorsement, id)
	s.recordWrite(ctx, entityMeasureEndorsement, opDelete, id)
	return nil
}

func (s *Service) CreateSeatEndorsement(ctx context.Context, endorsement models.SeatEndorsement) (*models.SeatEndorsement, error) {
	defer s.observe(entitySeatEndorsement, opCreate)()

	if endorsement.ID == uuid.Nil {
		endorsement.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	endorsement.Created = now
	endorsement.LastUpdated = now

	validated, err := validate.SeatEndorsement(ctx, endorsement, s.stores.SeatEndorsements)
	if err != nil {
		return nil, s.rejected(entitySeatEndorsement, err)
	}
	if err := s.checkSeatEndorsementRefs(ctx, &validated); err != nil {
		return nil, s.rejected(entitySeatEndorsement, err)
	}
	if err := s.stores.SeatEndorsements.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}

	s.logAudit(ctx, audit.ActionCreated, entitySeatEndorsement, validated.ID)
	s.recordWrite(ctx, entitySeatEndorsement, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetSeatEndorsement(ctx context.Context, id uuid.UUID) (*models.SeatEndorsement, error) {
	var cached models.SeatEndorsement
	if s.cache.Get(ctx, entitySeatEndorsement, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	endorsement, err := s.stores.SeatEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}
	s.cache.Set(ctx, entitySeatEndorsement, id, endorsement)
	return endorsement, nil
}

func (s *Service) ListSeatEndorsements(ctx context.Context) ([]*models.SeatEndorsement, error) {
	endorsements, err := s.stores.SeatEndorsements.List(ctx)
	if err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}
	return endorsements, nil
}

func (s *Service) UpdateSeatEndorsement(ctx context.Context, id uuid.UUID, incoming models.SeatEndorsement) (*models.SeatEndorsement, error) {
	defer s.observe(entitySeatEndorsement, opUpdate)()

	existing, err := s.stores.SeatEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveSeatEndorsement(ctx, incoming)
}

func (s *Service) PatchSeatEndorsement(ctx context.Context, id uuid.UUID, patch SeatEndorsementPatch) (*models.SeatEndorsement, error) {
	defer s.observe(entitySeatEndorsement, opUpdate)()

	existing, err := s.stores.SeatEndorsements.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}
	merged := *existing
	if patch.EndorserID != nil {
		merged.EndorserID = *patch.EndorserID
	}
	if patch.SeatID != nil {
		merged.SeatID = *patch.SeatID
	}
	if patch.ElectionDate != nil {
		merged.ElectionDate = *patch.ElectionDate
	}
	if patch.URL != nil {
		merged.URL = *patch.URL
	}
	if patch.CandidateIDs != nil {
		merged.CandidateIDs = patch.CandidateIDs
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveSeatEndorsement(ctx, merged)
}

func (s *Service) saveSeatEndorsement(ctx context.Context, endorsement models.SeatEndorsement) (*models.SeatEndorsement, error) {
	validated, err := validate.SeatEndorsement(ctx, endorsement, s.stores.SeatEndorsements)
	if err != nil {
		return nil, s.rejected(entitySeatEndorsement, err)
	}
	if err := s.checkSeatEndorsementRefs(ctx, &validated); err != nil {
		return nil, s.rejected(entitySeatEndorsement, err)
	}
	if err := s.stores.SeatEndorsements.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entitySeatEndorsement)
	}
	s.logAudit(ctx, audit.ActionUpdated, entitySeatEndorsement, validated.ID)
	s.recordWrite(ctx, entitySeatEndorsement, opUpdate, validated.ID)
	return &validated, nil
}

func (s *Service) DeleteSeatEndorsement(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entitySeatEndorsement, opDelete)()

	if err := s.stores.SeatEndorsements.Delete(ctx, id); err != nil {
		return storeError(err, entitySeatEndorsement)
	}
	s.logAudit(ctx, audit.ActionDeleted, entitySeatEndorsement, id)
	s.recordWrite(ctx, entitySeatEndorsement, opDelete, id)
	return nil
}

func (s *Service) checkMeasureEndorsementRefs(ctx context.Context, e *models.MeasureEndorsement) error {
	if err := s.checkRef(ctx, "endorser", e.EndorserID, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.stores.Endorsers.Get(ctx, id)
		return err
	}); err != nil {
		return err
	}
	return s.checkRef(ctx, "measure", e.MeasureID, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.stores.Measures.Get(ctx, id)
		return err
	})
}

func (s *Service) checkSeatEndorsementRefs(ctx context.Context, e *models.SeatEndorsement) error {
	if err := s.checkRef(ctx, "endorser", e.EndorserID, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.stores.Endorsers.Get(ctx, id)
		return err
	}); err != nil {
		return err
	}
	if err := s.checkRef(ctx, "seat", e.SeatID, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.stores.Seats.Get(ctx, id)
		return err
	}); err != nil {
		return err
	}
	seen := make(map[uuid.UUID]struct{}, len(e.CandidateIDs))
	for _, candidateID := range e.CandidateIDs {
		if _, ok := seen[candidateID]; ok {
			return dErrors.Newf(dErrors.CodeValidation, "candidate %s appears more than once", candidateID)
		}
		seen[candidateID] = struct{}{}
		if err := s.checkRef(ctx, "candidate", candidateID, func(ctx context.Context, id uuid.UUID) error {
			_, err := s.stores.Candidates.Get(ctx, id)
			return err
		}); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) checkRef(ctx context.Context, entity string, id uuid.UUID, get func(context.Context, uuid.UUID) error) error {
	if err := get(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeValidation, "%s %s does not exist", entity, id)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve "+entity+" reference")
	}
	return nil
}
