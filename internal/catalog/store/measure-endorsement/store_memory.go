package measureendorsement

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

// MemoryStore keeps measure endorsements in memory for tests and
// development.
type MemoryStore struct {
	mu           sync.RWMutex
	endorsements map[uuid.UUID]*models.MeasureEndorsement
}

// NewMemory constructs an empty in-memory measure endorsement store.
func NewMemory() *MemoryStore {
	return &MemoryStore{endorsements: make(map[uuid.UUID]*models.MeasureEndorsement)}
}

func (s *MemoryStore) Create(_ context.Context, endorsement *models.MeasureEndorsement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[endorsement.ID]; ok {
		return fmt.Errorf("measure endorsement %s already exists: %w", endorsement.ID, sentinel.ErrConflict)
	}
	if err := s.checkKey(endorsement); err != nil {
		return err
	}
	copied := *endorsement
	s.endorsements[endorsement.ID] = &copied
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.MeasureEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	endorsement, ok := s.endorsements[id]
	if !ok {
		return nil, fmt.Errorf("measure endorsement not found: %w", sentinel.ErrNotFound)
	}
	copied := *endorsement
	return &copied, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.MeasureEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.MeasureEndorsement, 0, len(s.endorsements))
	for _, endorsement := range s.endorsements {
		copied := *endorsement
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, endorsement *models.MeasureEndorsement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[endorsement.ID]; !ok {
		return fmt.Errorf("measure endorsement not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkKey(endorsement); err != nil {
		return err
	}
	copied := *endorsement
	s.endorsements[endorsement.ID] = &copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsements[id]; !ok {
		return fmt.Errorf("measure endorsement not found: %w", sentinel.ErrNotFound)
	}
	delete(s.endorsements, id)
	return nil
}

// FindByKey returns the endorsement matching (endorser, election date,
// measure).
func (s *MemoryStore) FindByKey(_ context.Context, endorserID uuid.UUID, electionDate models.Date, measureID uuid.UUID) (*models.MeasureEndorsement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, endorsement := range s.endorsements {
		if endorsement.EndorserID == endorserID &&
			endorsement.MeasureID == measureID &&
			endorsement.ElectionDate.Equal(electionDate) {
			copied := *endorsement
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("measure endorsement not found: %w", sentinel.ErrNotFound)
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

// DeleteByMeasure removes every endorsement of the measure.
func (s *MemoryStore) DeleteByMeasure(_ context.Context, measureID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, endorsement := range s.endorsements {
		if endorsement.MeasureID == measureID {
			delete(s.endorsements, id)
		}
	}
	return nil
}

func (s *MemoryStore) checkKey(endorsement *models.MeasureEndorsement) error {
	for _, other := range s.endorsements {
		if other.ID == endorsement.ID {
			continue
		}
		if other.EndorserID == endorsement.EndorserID &&
			other.MeasureID == endorsement.MeasureID &&
			other.ElectionDate.Equal(endorsement.ElectionDate) {
			return sentinel.Duplicate(models.ConstraintMeasureEndorsementUnique)
		}
	}
	return nil
}
