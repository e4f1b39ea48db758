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

// CandidatePatch carries a partial candidate update. Nil fields stay
// unchanged; clearing a nullable field takes a full update.
type CandidatePatch struct {
	FirstName        *string
	MiddleName       *string
	LastName         *string
	DateOfBirth      *models.Date
	Party            *models.Party
	RunningForSeatID *uuid.UUID
	SeatID           *uuid.UUID
}

func (s *Service) CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error) {
	defer s.observe(entityCandidate, opCreate)()

	if candidate.ID == uuid.Nil {
		candidate.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	candidate.Created = now
	candidate.LastUpdated = now

	validated, err := validate.Candidate(ctx, candidate, s.stores.Candidates)
	if err != nil {
		return nil, s.rejected(entityCandidate, err)
	}
	if err := s.checkSeatRefs(ctx, validated.RunningForSeatID, validated.SeatID); err != nil {
		return nil, s.rejected(entityCandidate, err)
	}
	if err := s.stores.Candidates.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entityCandidate)
	}

	s.logAudit(ctx, audit.ActionCreated, entityCandidate, validated.ID)
	s.recordWrite(ctx, entityCandidate, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error) {
	var cached models.Candidate
	if s.cache.Get(ctx, entityCandidate, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	candidate, err := s.stores.Candidates.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityCandidate)
	}
	s.cache.Set(ctx, entityCandidate, id, candidate)
	return candidate, nil
}

func (s *Service) ListCandidates(ctx context.Context) ([]*models.Candidate, error) {
	candidates, err := s.stores.Candidates.List(ctx)
	if err != nil {
		return nil, storeError(err, entityCandidate)
	}
	return candidates, nil
}

func (s *Service) UpdateCandidate(ctx context.Context, id uuid.UUID, incoming models.Candidate) (*models.Candidate, error) {
	defer s.observe(entityCandidate, opUpdate)()

	existing, err := s.stores.Candidates.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityCandidate)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveCandidate(ctx, incoming)
}

func (s *Service) PatchCandidate(ctx context.Context, id uuid.UUID, patch CandidatePatch) (*models.Candidate, error) {
	defer s.observe(entityCandidate, opUpdate)()

	existing, err := s.stores.Candidates.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entityCandidate)
	}
	merged := *existing
	if patch.FirstName != nil {
		merged.FirstName = *patch.FirstName
	}
	if patch.MiddleName != nil {
		merged.MiddleName = *patch.MiddleName
	}
	if patch.LastName != nil {
		merged.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		merged.DateOfBirth = patch.DateOfBirth
	}
	if patch.Party != nil {
		merged.Party = *patch.Party
	}
	if patch.RunningForSeatID != nil {
		merged.RunningForSeatID = patch.RunningForSeatID
	}
	if patch.SeatID != nil {
		merged.SeatID = patch.SeatID
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveCandidate(ctx, merged)
}

// saveCandidate validates the complete record and persists it. Shared by
// full and partial updates so both run the identical rule chain.
func (s *Service) saveCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error) {
	validated, err := validate.Candidate(ctx, candidate, s.stores.Candidates)
	if err != nil {
		return nil, s.rejected(entityCandidate, err)
	}
	if err := s.checkSeatRefs(ctx, validated.RunningForSeatID, validated.SeatID); err != nil {
		return nil, s.rejected(entityCandidate, err)
	}
	if err := s.stores.Candidates.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entityCandidate)
	}
	s.logAudit(ctx, audit.ActionUpdated, entityCandidate, validated.ID)
	s.recordWrite(ctx, entityCandidate, opUpdate, validated.ID)
	return &validated, nil
}

// DeleteCandidate removes the candidate and pulls them off every seat
// endorsement list in one transaction.
func (s *Service) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entityCandidate, opDelete)()

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stores.SeatEndorsements.RemoveCandidate(ctx, id); err != nil {
			return storeError(err, entitySeatEndorsement)
		}
		if err := s.stores.Candidates.Delete(ctx, id); err != nil {
			return storeError(err, entityCandidate)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, audit.ActionDeleted, entityCandidate, id)
	s.recordWrite(ctx, entityCandidate, opDelete, id)
	return nil
}

// checkSeatRefs rejects references to seats that do not exist.
func (s *Service) checkSeatRefs(ctx context.Context, refs ...*uuid.UUID) error {
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		if _, err := s.stores.Seats.Get(ctx, *ref); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Newf(dErrors.CodeValidation, "seat %s does not exist", *ref)
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve seat reference")
		}
	}
	return nil
}
