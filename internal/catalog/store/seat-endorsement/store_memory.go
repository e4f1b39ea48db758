package seatendorsement

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

// MemoryStore keeps seat endorsements in memory for tests and development.
// Candidate lists keep their insertion order.
type MemoryStore struct {
	mu           sync.RWMutex
	endorsements map[uuid.UUID]*models.SeatEndorsement
}

// NewMemory constructs an empty in-memory seat endorsement store.
func NewMemory() *MemoryStore {
	return &MemoryStore{endorsements: make(map[uuid.UUID]*models.SeatEndorsement)}
}

func (s *MemoryStore) Create(_ context.Context, endorsement *models.SeatEndorsement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[endorsement.ID]; ok {
		return fmt.Errorf("seat endorsement %s already exists: %w", endorsement.ID, sentinel.ErrConflict)
	}
	if err := s.checkKey(endorsement); err != nil {
		return err
	}
	s.endorsements[endorsement.ID] = copyEndorsement(endorsement)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.SeatEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	endorsement, ok := s.endorsements[id]
	if !ok {
		return nil, fmt.Errorf("seat endorsement not found: %w", sentinel.ErrNotFound)
	}
	return copyEndorsement(endorsement), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.SeatEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.SeatEndorsement, 0, len(s.endorsements))
	for _, endorsement := range s.endorsements {
		out = append(out, copyEndorsement(endorsement))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, endorsement *models.SeatEndorsement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[endorsement.ID]; !ok {
		return fmt.Errorf("seat endorsement not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkKey(endorsement); err != nil {
		return err
	}
	s.endorsements[endorsement.ID] = copyEndorsement(endorsement)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[id]; !ok {
		return fmt.Errorf("seat endorsement not found: %w", sentinel.ErrNotFound)
	}
	delete(s.endorsements, id)
	return nil
}

// FindByKey returns the endorsement matching (endorser, election date,
// seat).
func (s *MemoryStore) FindByKey(_ context.Context, endorserID uuid.UUID, electionDate models.Date, seatID uuid.UUID) (*models.SeatEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, endorsement := range s.endorsements {
		if endorsement.EndorserID == endorserID &&
			endorsement.SeatID == seatID &&
			endorsement.ElectionDate.Equal(electionDate) {
			return copyEndorsement(endorsement), nil
		}
	}
	return nil, fmt.Errorf("seat endorsement not found: %w", sentinel.ErrNotFound)
}

// DeleteByEndorser removes every endorsement issued by the endorser,
// mirroring the schema's ON DELETE CASCADE.
func (s *MemoryStore) DeleteByEndorser(_ context.Context, endorserID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, endorsement := range s.endorsements {
		if endorsement.EndorserID == endorserID {
			delete(s.endorsements, id)
		}
	}
	return nil
}

// DeleteBySeat removes every endorsement of the seat.
func (s *MemoryStore) DeleteBySeat(_ context.Context, seatID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, endorsement := range s.endorsements {
		if endorsement.SeatID == seatID {
			delete(s.endorsements, id)
		}
	}
	return nil
}

// RemoveCandidate pulls the candidate off every endorsement list, keeping
// the remaining order.
func (s *MemoryStore) RemoveCandidate(_ context.Context, candidateID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, endorsement := range s.endorsements {
		kept := endorsement.CandidateIDs[:0]
		for _, id := range endorsement.CandidateIDs {
			if id != candidateID {
				kept = append(kept, id)
			}
		}
		endorsement.CandidateIDs = kept
	}
	return nil
}

func (s *MemoryStore) checkKey(endorsement *models.SeatEndorsement) error {
	for _, other := range s.endorsements {
		if other.ID == endorsement.ID {
			continue
		}
		if other.EndorserID == endorsement.EndorserID &&
			other.SeatID == endorsement.SeatID &&
			other.ElectionDate.Equal(endorsement.ElectionDate) {
			return sentinel.Duplicate(models.ConstraintSeatEndorsementUnique)
		}
	}
	return nil
}

func copyEndorsement(endorsement *models.SeatEndorsement) *models.SeatEndorsement {
	out := *endorsement
	out.CandidateIDs = append([]uuid.UUID(nil), endorsement.CandidateIDs...)
	return &out
}
