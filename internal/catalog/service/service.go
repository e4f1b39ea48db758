// Package service orchestrates catalog operations: it derives defaults and
// validates through the validation engine, keeps referential integrity
// across entities, and translates storage sentinels into the domain error
// vocabulary the HTTP layer renders.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"voterguide/internal/audit"
	"voterguide/internal/catalog/cache"
	"voterguide/internal/catalog/metrics"
	"voterguide/internal/catalog/models"
	"voterguide/internal/platform/middleware"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/sentinel"
	"voterguide/pkg/platform/tx"
)

type CandidateStore interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	Get(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	List(ctx context.Context) ([]*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByName(ctx context.Context, firstName, lastName string) ([]*models.Candidate, error)
	ClearSeatRefs(ctx context.Context, seatID uuid.UUID) error
}

type SeatStore interface {
	Create(ctx context.Context, seat *models.Seat) error
	Get(ctx context.Context, id uuid.UUID) (*models.Seat, error)
	List(ctx context.Context) ([]*models.Seat, error)
	Update(ctx context.Context, seat *models.Seat) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByLevel(ctx context.Context, level models.Level) ([]*models.Seat, error)
}

type EndorserStore interface {
	Create(ctx context.Context, endorser *models.Endorser) error
	Get(ctx context.Context, id uuid.UUID) (*models.Endorser, error)
	List(ctx context.Context) ([]*models.Endorser, error)
	Update(ctx context.Context, endorser *models.Endorser) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByAbbreviation(ctx context.Context, abbreviation string) (*models.Endorser, error)
}

type MeasureStore interface {
	Create(ctx context.Context, measure *models.Measure) error
	Get(ctx context.Context, id uuid.UUID) (*models.Measure, error)
	List(ctx context.Context) ([]*models.Measure, error)
	Update(ctx context.Context, measure *models.Measure) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByKey(ctx context.Context, name string, electionDate models.Date, state string) (*models.Measure, error)
}

type MeasureEndorsementStore interface {
	Create(ctx context.Context, endorsement *models.MeasureEndorsement) error
	Get(ctx context.Context, id uuid.UUID) (*models.MeasureEndorsement, error)
	List(ctx context.Context) ([]*models.MeasureEndorsement, error)
	Update(ctx context.Context, endorsement *models.MeasureEndorsement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, measureID uuid.UUID) (*models.MeasureEndorsement, error)
	DeleteByEndorser(ctx context.Context, endorserID uuid.UUID) error
	DeleteByMeasure(ctx context.Context, measureID uuid.UUID) error
}

type SeatEndorsementStore interface {
	Create(ctx context.Context, endorsement *models.SeatEndorsement) error
	Get(ctx context.Context, id uuid.UUID) (*models.SeatEndorsement, error)
	List(ctx context.Context) ([]*models.SeatEndorsement, error)
	Update(ctx context.Context, endorsement *models.SeatEndorsement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByKey(ctx context.Context, endorserID uuid.UUID, electionDate models.Date, seatID uuid.UUID) (*models.SeatEndorsement, error)
	DeleteByEndorser(ctx context.Context, endorserID uuid.UUID) error
	DeleteBySeat(ctx context.Context, seatID uuid.UUID) error
	RemoveCandidate(ctx context.Context, candidateID uuid.UUID) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Stores bundles the per-entity stores the service writes through. Memory
// and PostgreSQL sets are interchangeable.
type Stores struct {
	Candidates          CandidateStore
	Seats               SeatStore
	Endorsers           EndorserStore
	Measures            MeasureStore
	MeasureEndorsements MeasureEndorsementStore
	SeatEndorsements    SeatEndorsementStore
}

// Service carries out catalog operations against the stores.
type Service struct {
	stores  Stores
	runner  tx.Runner
	logger  *slog.Logger
	audit   AuditPublisher
	metrics *metrics.Metrics
	cache   *cache.Cache
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) { s.audit = publisher }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithCache(c *cache.Cache) Option {
	return func(s *Service) { s.cache = c }
}

func WithTxRunner(runner tx.Runner) Option {
	return func(s *Service) { s.runner = runner }
}

// New constructs a Service. Without options it runs with a no-op
// transaction runner and discard-free defaults suitable for memory stores.
func New(stores Stores, opts ...Option) *Service {
	s := &Service{
		stores: stores,
		runner: tx.NoopRunner{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Entity names shared by audit events, metrics labels, and cache keys.
const (
	entityCandidate          = "candidate"
	entitySeat               = "seat"
	entityEndorser           = "endorser"
	entityMeasure            = "measure"
	entityMeasureEndorsement = "measure_endorsement"
	entitySeatEndorsement    = "seat_endorsement"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// storeError translates storage sentinels into domain errors. Constraint
// names survive the translation so clients see which rule fired.
func storeError(err error, entity string) error {
	var dup *sentinel.DuplicateError
	if errors.As(err, &dup) {
		return dErrors.Newf(dErrors.CodeConflict, "duplicate record: violates %s", dup.Constraint)
	}
	var check *sentinel.CheckError
	if errors.As(err, &check) {
		return dErrors.Newf(dErrors.CodeValidation, "invalid record: violates %s", check.Constraint)
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Newf(dErrors.CodeNotFound, "%s not found", entity)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "storage failure")
}

func subjectOf(ctx context.Context) string {
	return middleware.GetSubject(ctx)
}

func (s *Service) logAudit(ctx context.Context, action, entity string, id uuid.UUID) {
	if s.audit == nil {
		return
	}
	event := audit.Event{
		Action:   action,
		Entity:   entity,
		EntityID: id.String(),
		Actor:    subjectOf(ctx),
	}
	if err := s.audit.Emit(ctx, event); err != nil {
		s.logger.Warn("failed to emit audit event", "error", err, "entity", entity, "action", action)
	}
}

// recordWrite updates write metrics and drops the entity from the cache.
func (s *Service) recordWrite(ctx context.Context, entity, op string, id uuid.UUID) {
	s.metrics.IncrementWrite(entity, op)
	s.cache.Invalidate(ctx, entity, id)
}

func (s *Service) rejected(entity string, err error) error {
	if dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeConflict) {
		s.metrics.IncrementValidationRejection(entity)
	}
	return err
}

func (s *Service) observe(entity, op string) func() {
	start := time.Now()
	return func() { s.metrics.ObserveOperation(entity, op, start) }
}
