package service

import (
	"context"

	"github.com/google/uuid"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/validate"
	"voterguide/pkg/requestcontext"
)

// SeatPatch carries a partial seat update. Nil fields stay unchanged.
type SeatPatch struct {
	Level    *models.Level
	Branch   *models.Branch
	Role     *string
	Body     *models.LegislativeBody
	District *int
	State    *string
	City     *string
	County   *string
}

func (s *Service) CreateSeat(ctx context.Context, seat models.Seat) (*models.Seat, error) {
	defer s.observe(entitySeat, opCreate)()

	if seat.ID == uuid.Nil {
		seat.ID = uuid.New()
	}
	now := requestcontext.Now(ctx)
	seat.Created = now
	seat.LastUpdated = now

	validated, err := validate.Seat(ctx, seat, s.stores.Seats)
	if err != nil {
		return nil, s.rejected(entitySeat, err)
	}
	if err := s.stores.Seats.Create(ctx, &validated); err != nil {
		return nil, storeError(err, entitySeat)
	}

	s.logAudit(ctx, audit.ActionCreated, entitySeat, validated.ID)
	s.recordWrite(ctx, entitySeat, opCreate, validated.ID)
	return &validated, nil
}

func (s *Service) GetSeat(ctx context.Context, id uuid.UUID) (*models.Seat, error) {
	var cached models.Seat
	if s.cache.Get(ctx, entitySeat, id, &cached) {
		s.metrics.IncrementCacheHit()
		return &cached, nil
	}
	s.metrics.IncrementCacheMiss()

	seat, err := s.stores.Seats.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeat)
	}
	s.cache.Set(ctx, entitySeat, id, seat)
	return seat, nil
}

func (s *Service) ListSeats(ctx context.Context) ([]*models.Seat, error) {
	seats, err := s.stores.Seats.List(ctx)
	if err != nil {
		return nil, storeError(err, entitySeat)
	}
	return seats, nil
}

func (s *Service) UpdateSeat(ctx context.Context, id uuid.UUID, incoming models.Seat) (*models.Seat, error) {
	defer s.observe(entitySeat, opUpdate)()

	existing, err := s.stores.Seats.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeat)
	}
	incoming.ID = id
	incoming.Created = existing.Created
	incoming.LastUpdated = requestcontext.Now(ctx)
	return s.saveSeat(ctx, incoming)
}

func (s *Service) PatchSeat(ctx context.Context, id uuid.UUID, patch SeatPatch) (*models.Seat, error) {
	defer s.observe(entitySeat, opUpdate)()

	existing, err := s.stores.Seats.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, entitySeat)
	}
	merged := *existing
	if patch.Level != nil {
		merged.Level = *patch.Level
	}
	if patch.Branch != nil {
		merged.Branch = *patch.Branch
	}
	if patch.Role != nil {
		merged.Role = *patch.Role
	}
	if patch.Body != nil {
		merged.Body = *patch.Body
	}
	if patch.District != nil {
		merged.District = patch.District
	}
	if patch.State != nil {
		merged.State = *patch.State
	}
	if patch.City != nil {
		merged.City = *patch.City
	}
	if patch.County != nil {
		merged.County = *patch.County
	}
	merged.LastUpdated = requestcontext.Now(ctx)
	return s.saveSeat(ctx, merged)
}

func (s *Service) saveSeat(ctx context.Context, seat models.Seat) (*models.Seat, error) {
	validated, err := validate.Seat(ctx, seat, s.stores.Seats)
	if err != nil {
		return nil, s.rejected(entitySeat, err)
	}
	if err := s.stores.Seats.Update(ctx, &validated); err != nil {
		return nil, storeError(err, entitySeat)
	}
	s.logAudit(ctx, audit.ActionUpdated, entitySeat, validated.ID)
	s.recordWrite(ctx, entitySeat, opUpdate, validated.ID)
	return &validated, nil
}

// DeleteSeat removes the seat, detaches candidates that reference it, and
// drops its seat endorsements, all in one transaction.
func (s *Service) DeleteSeat(ctx context.Context, id uuid.UUID) error {
	defer s.observe(entitySeat, opDelete)()

	err := s.runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.stores.Candidates.ClearSeatRefs(ctx, id); err != nil {
			return storeError(err, entityCandidate)
		}
		if err := s.stores.SeatEndorsements.DeleteBySeat(ctx, id); err != nil {
			return storeError(err, entitySeatEndorsement)
		}
		if err := s.stores.Seats.Delete(ctx, id); err != nil {
			return storeError(err, entitySeat)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, audit.ActionDeleted, entitySeat, id)
	s.recordWrite(ctx, entitySeat, opDelete, id)
	return nil
}
