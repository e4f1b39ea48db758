package measure

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

// MemoryStore keeps measures in memory for tests and development.
type MemoryStore struct {
	mu       sync.RWMutex
	measures map[uuid.UUID]*models.Measure
}

// NewMemory constructs an empty in-memory measure store.
func NewMemory() *MemoryStore {
	return &MemoryStore{measures: make(map[uuid.UUID]*models.Measure)}
}

func (s *MemoryStore) Create(_ context.Context, measure *models.Measure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measures[measure.ID]; ok {
		return fmt.Errorf("measure %s already exists: %w", measure.ID, sentinel.ErrConflict)
	}
	if err := s.checkKey(measure); err != nil {
		return err
	}
	s.measures[measure.ID] = copyMeasure(measure)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.Measure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	measure, ok := s.measures[id]
	if !ok {
		return nil, fmt.Errorf("measure not found: %w", sentinel.ErrNotFound)
	}
	return copyMeasure(measure), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.Measure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Measure, 0, len(s.measures))
	for _, measure := range s.measures {
		out = append(out, copyMeasure(measure))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Created.Equal(out[j].Created) {
			return out[i].Created.Before(out[j].Created)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, measure *models.Measure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measures[measure.ID]; !ok {
		return fmt.Errorf("measure not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkKey(measure); err != nil {
		return err
	}
	s.measures[measure.ID] = copyMeasure(measure)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.measures[id]; !ok {
		return fmt.Errorf("measure not found: %w", sentinel.ErrNotFound)
	}
	delete(s.measures, id)
	return nil
}

// FindByKey returns the measure matching the case-insensitive
// (name, election date, state) triple.
func (s *MemoryStore) FindByKey(_ context.Context, name string, electionDate models.Date, state string) (*models.Measure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, measure := range s.measures {
		if keyMatches(measure, name, electionDate, state) {
			return copyMeasure(measure), nil
		}
	}
	return nil, fmt.Errorf("measure not found: %w", sentinel.ErrNotFound)
}

func (s *MemoryStore) checkKey(measure *models.Measure) error {
	for _, other := range s.measures {
		if other.ID == measure.ID {
			continue
		}
		if keyMatches(other, measure.Name, measure.ElectionDate, measure.State) {
			return sentinel.Duplicate(models.ConstraintMeasureUniqueNameDateState)
		}
	}
	return nil
}

func keyMatches(measure *models.Measure, name string, electionDate models.Date, state string) bool {
	return strings.EqualFold(measure.Name, name) &&
		measure.ElectionDate.Equal(electionDate) &&
		measure.State == state
}

func copyMeasure(measure *models.Measure) *models.Measure {
	out := *measure
	if measure.Passed != nil {
		passed := *measure.Passed
		out.Passed = &passed
	}
	return &out
}
