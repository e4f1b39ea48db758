package seat

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

// MemoryStore keeps seats in memory for tests and development.
type MemoryStore struct {
	mu    sync.RWMutex
	seats map[uuid.UUID]*models.Seat
}

// NewMemory constructs an empty in-memory seat store.
func NewMemory() *MemoryStore {
	return &MemoryStore{seats: make(map[uuid.UUID]*models.Seat)}
}

func (s *MemoryStore) Create(_ context.Context, seat *models.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seats[seat.ID]; ok {
		return fmt.Errorf("seat %s already exists: %w", seat.ID, sentinel.ErrConflict)
	}
	if err := s.checkIdentity(seat); err != nil {
		return err
	}
	s.seats[seat.ID] = copySeat(seat)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*models.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seat, ok := s.seats[id]
	if !ok {
		return nil, fmt.Errorf("seat not found: %w", sentinel.ErrNotFound)
	}
	return copySeat(seat), nil
}

func (s *MemoryStore) List(_ context.Context) ([]*models.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		out = append(out, copySeat(seat))
	}
	sortSeats(out)
	return out, nil
}

func (s *MemoryStore) Update(_ context.Context, seat *models.Seat) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seats[seat.ID]; !ok {
		return fmt.Errorf("seat not found: %w", sentinel.ErrNotFound)
	}
	if err := s.checkIdentity(seat); err != nil {
		return err
	}
	s.seats[seat.ID] = copySeat(seat)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seats[id]; !ok {
		return fmt.Errorf("seat not found: %w", sentinel.ErrNotFound)
	}
	delete(s.seats, id)
	return nil
}

// ListByLevel returns every stored seat at the given level.
func (s *MemoryStore) ListByLevel(_ context.Context, level models.Level) ([]*models.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Seat
	for _, seat := range s.seats {
		if seat.Level == level {
			out = append(out, copySeat(seat))
		}
	}
	sortSeats(out)
	return out, nil
}

// checkIdentity mirrors the partial unique index: seats with no state are
// unique on (case-insensitive role, level). Caller holds the lock.
func (s *MemoryStore) checkIdentity(seat *models.Seat) error {
	if seat.State != "" {
		return nil
	}
	for _, other := range s.seats {
		if other.ID == seat.ID || other.State != "" {
			continue
		}
		if other.Level == seat.Level && strings.EqualFold(other.Role, seat.Role) {
			return sentinel.Duplicate(models.ConstraintSeatUniqueRoleLevelNullState)
		}
	}
	return nil
}

func sortSeats(seats []*models.Seat) {
	sort.Slice(seats, func(i, j int) bool {
		if !seats[i].Created.Equal(seats[j].Created) {
			return seats[i].Created.Before(seats[j].Created)
		}
		return seats[i].ID.String() < seats[j].ID.String()
	})
}

func copySeat(seat *models.Seat) *models.Seat {
	out := *seat
	if seat.District != nil {
		district := *seat.District
		out.District = &district
	}
	return &out
}
