package candidate

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

// MemoryStore keeps candidates in memory for tests and development. It
// enforces the same identity rules as the PostgreSQL schema and returns the
// same sentinel errors.
type MemoryStore struct {
	mu         sync.RWMutex
	candidates map[uuid.UUID]*models.Candidate
}

// NewMemory constructs an empty in-memory candidate store.
func NewMemory() *MemoryStore {
	return &MemoryStore{candidates: make(map[uuid.UUID]*models.Candidate)}
}

func (s *MemoryStore) Create(_ context.Context, candidate *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[candidate.ID]; ok {
		return fmt.Errorf("candidate %s already exists: %w", candidate.ID, sentinel.ErrConflict)
	}
	if err := s.checkIdentity(candidate); err != nil {
		return err
	}
	s.candidates[candidate.ID] = copyCandidate(candidate)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	candidate, ok := s.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate not found: %w", sentinel.ErrNotFound)
	}
	return copyCandidate(candidate), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Candidate, 0, len(s.candidates))
	for _, candidate := range s.candidates {
		out = append(out, copyCandidate(candidate))
	}
	sortCandidates(out)
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, candidate *models.Candidate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[candidate.ID]; !ok {
		return fmt.Errorf("candidate not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkIdentity(candidate); err != nil {
		return err
	}
	s.candidates[candidate.ID] = copyCandidate(candidate)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.candidates[id]; !ok {
		return fmt.Errorf("candidate not found: %w", sentinel.ErrNotFound)
	}
	delete(s.candidates, id)
	return nil
}

// ListByName returns candidates whose first and last names match
// case-insensitively.
func (s *MemoryStore) ListByName(_ context.Context, firstName, lastName string) ([]*models.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Candidate
	for _, candidate := range s.candidates {
		if strings.EqualFold(candidate.FirstName, firstName) && strings.EqualFold(candidate.LastName, lastName) {
			out = append(out, copyCandidate(candidate))
		}
	}
	sortCandidates(out)
	return out, nil
}

// ClearSeatRefs nulls every reference to the given seat, mirroring the
// schema's ON DELETE SET NULL.
func (s *MemoryStore) ClearSeatRefs(_ context.Context, seatID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, candidate := range s.candidates {
		if candidate.RunningForSeatID != nil && *candidate.RunningForSeatID == seatID {
			candidate.RunningForSeatID = nil
		}
		if candidate.SeatID != nil && *candidate.SeatID == seatID {
			candidate.SeatID = nil
		}
	}
	return nil
}

// checkIdentity mirrors the partial unique indexes: candidates with a date
// of birth are unique on the case-insensitive (first, last, dob) triple,
// candidates without one on the name pair alone. Caller holds the lock.
func (s *MemoryStore) checkIdentity(candidate *models.Candidate) error {
	for _, other := range s.candidates {
		if other.ID == candidate.ID {
			continue
		}
		if !strings.EqualFold(other.FirstName, candidate.FirstName) ||
			!strings.EqualFold(other.LastName, candidate.LastName) {
			continue
		}
		switch {
		case candidate.DateOfBirth == nil && other.DateOfBirth == nil:
			return sentinel.Duplicate(models.ConstraintCandidateUniqueFirstLastNullDOB)
		case candidate.DateOfBirth != nil && other.DateOfBirth != nil &&
			candidate.DateOfBirth.Equal(*other.DateOfBirth):
			return sentinel.Duplicate(models.ConstraintCandidateUniqueFirstLastDOB)
		}
	}
	return nil
}

func sortCandidates(candidates []*models.Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].Created.Equal(candidates[j].Created) {
			return candidates[i].Created.Before(candidates[j].Created)
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
}

func copyCandidate(candidate *models.Candidate) *models.Candidate {
	out := *candidate
	if candidate.DateOfBirth != nil {
		dob := *candidate.DateOfBirth
		out.DateOfBirth = &dob
	}
	if candidate.RunningForSeatID != nil {
		ref := *candidate.RunningForSeatID
		out.RunningForSeatID = &ref
	}
	if candidate.SeatID != nil {
		ref := *candidate.SeatID
		out.SeatID = &ref
	}
	return &out
}
