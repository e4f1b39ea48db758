package endorser

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/pkg/platform/sentinel"
)

// MemoryStore keeps endorsers in memory for tests and development.
type MemoryStore struct {
	mu        sync.RWMutex
	endorsers map[uuid.UUID]*models.Endorser
}

// NewMemory constructs an empty in-memory endorser store.
func NewMemory() *MemoryStore {
	return &MemoryStore{endorsers: make(map[uuid.UUID]*models.Endorser)}
}

func (s *MemoryStore) Create(_ context.Context, endorser *models.Endorser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsers[endorser.ID]; ok {
		return fmt.Errorf("endorser %s already exists: %w", endorser.ID, sentinel.ErrConflict)
	}
	if err := s.checkAbbreviation(endorser); err != nil {
		return err
	}
	copied := *endorser
	s.endorsers[endorser.ID] = &copied
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.Endorser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	endorser, ok := s.endorsers[id]
	if !ok {
		return nil, fmt.Errorf("endorser not found: %w", sentinel.ErrNotFound)
	}
	copied := *endorser
	return &copied, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.Endorser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Endorser, 0, len(s.endorsers))
	for _, endorser := range s.endorsers {
		copied := *endorser
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

func (s *MemoryStore) Update(_ context.Context, endorser *models.Endorser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsers[endorser.ID]; !ok {
		return fmt.Errorf("endorser not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkAbbreviation(endorser); err != nil {
		return err
	}
	copied := *endorser
	s.endorsers[endorser.ID] = &copied
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.endorsers[id]; !ok {
		return fmt.Errorf("endorser not found: %w", sentinel.ErrNotFound)
	}
	delete(s.endorsers, id)
	return nil
}

// FindByAbbreviation returns the endorser holding the short code,
// case-insensitively.
func (s *MemoryStore) FindByAbbreviation(_ context.Context, abbreviation string) (*models.Endorser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, endorser := range s.endorsers {
		if strings.EqualFold(endorser.Abbreviation, abbreviation) {
			copied := *endorser
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("endorser not found: %w", sentinel.ErrNotFound)
}

func (s *MemoryStore) checkAbbreviation(endorser *models.Endorser) error {
	for _, other := range s.endorsers {
		if other.ID == endorser.ID {
			continue
		}
		if strings.EqualFold(other.Abbreviation, endorser.Abbreviation) {
			return sentinel.Duplicate(models.ConstraintEndorserUniqueAbbreviation)
		}
	}
	return nil
}
