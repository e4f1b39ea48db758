// Package handler exposes the catalog over HTTP. Reads are open; every
// mutation sits behind bearer-token auth. Responses hyperlink related
// entities by URL rather than embedding them.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/service"
	"voterguide/internal/platform/middleware"
	dErrors "voterguide/pkg/domain-errors"
	"voterguide/pkg/platform/httputil"
)

// Service defines the catalog operations the HTTP layer depends on.
type Service interface {
	CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.Candidate, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*models.Candidate, error)
	ListCandidates(ctx context.Context) ([]*models.Candidate, error)
	UpdateCandidate(ctx context.Context, id uuid.UUID, candidate models.Candidate) (*models.Candidate, error)
	PatchCandidate(ctx context.Context, id uuid.UUID, patch service.CandidatePatch) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id uuid.UUID) error

	CreateSeat(ctx context.Context, seat models.Seat) (*models.Seat, error)
	GetSeat(ctx context.Context, id uuid.UUID) (*models.Seat, error)
	ListSeats(ctx context.Context) ([]*models.Seat, error)
	UpdateSeat(ctx context.Context, id uuid.UUID, seat models.Seat) (*models.Seat, error)
	PatchSeat(ctx context.Context, id uuid.UUID, patch service.SeatPatch) (*models.Seat, error)
	DeleteSeat(ctx context.Context, id uuid.UUID) error

	CreateEndorser(ctx context.Context, endorser models.Endorser) (*models.Endorser, error)
	GetEndorser(ctx context.Context, id uuid.UUID) (*models.Endorser, error)
	ListEndorsers(ctx context.Context) ([]*models.Endorser, error)
	UpdateEndorser(ctx context.Context, id uuid.UUID, endorser models.Endorser) (*models.Endorser, error)
	PatchEndorser(ctx context.Context, id uuid.UUID, patch service.EndorserPatch) (*models.Endorser, error)
	DeleteEndorser(ctx context.Context, id uuid.UUID) error

	CreateMeasure(ctx context.Context, measure models.Measure) (*models.Measure, error)
	GetMeasure(ctx context.Context, id uuid.UUID) (*models.Measure, error)
	ListMeasures(ctx context.Context) ([]*models.Measure, error)
	UpdateMeasure(ctx context.Context, id uuid.UUID, measure models.Measure) (*models.Measure, error)
	PatchMeasure(ctx context.Context, id uuid.UUID, patch service.MeasurePatch) (*models.Measure, error)
	DeleteMeasure(ctx context.Context, id uuid.UUID) error

	CreateMeasureEndorsement(ctx context.Context, endorsement models.MeasureEndorsement) (*models.MeasureEndorsement, error)
	GetMeasureEndorsement(ctx context.Context, id uuid.UUID) (*models.MeasureEndorsement, error)
	ListMeasureEndorsements(ctx context.Context) ([]*models.MeasureEndorsement, error)
	UpdateMeasureEndorsement(ctx context.Context, id uuid.UUID, endorsement models.MeasureEndorsement) (*models.MeasureEndorsement, error)
	PatchMeasureEndorsement(ctx context.Context, id uuid.UUID, patch service.MeasureEndorsementPatch) (*models.MeasureEndorsement, error)
	DeleteMeasureEndorsement(ctx context.Context, id uuid.UUID) error

	CreateSeatEndorsement(ctx context.Context, endorsement models.SeatEndorsement) (*models.SeatEndorsement, error)
	GetSeatEndorsement(ctx context.Context, id uuid.UUID) (*models.SeatEndorsement, error)
	ListSeatEndorsements(ctx context.Context) ([]*models.SeatEndorsement, error)
	UpdateSeatEndorsement(ctx context.Context, id uuid.UUID, endorsement models.SeatEndorsement) (*models.SeatEndorsement, error)
	PatchSeatEndorsement(ctx context.Context, id uuid.UUID, patch service.SeatEndorsementPatch) (*models.SeatEndorsement, error)
	DeleteSeatEndorsement(ctx context.Context, id uuid.UUID) error
}

// Handler handles the catalog endpoints.
type Handler struct {
	logger       *slog.Logger
	catalog      Service
	jwtValidator middleware.JWTValidator
}

// New creates a new catalog Handler.
func New(catalog Service, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		catalog:      catalog,
		jwtValidator: jwtValidator,
	}
}

// Register registers the catalog routes with the chi router. Collection
// GETs stay public; everything that mutates requires a valid token.
func (h *Handler) Register(r chi.Router) {
	for _, route := range []struct {
		pattern string
		ops     entityOps
	}{
		{"/candidates", h.candidateOps()},
		{"/seats", h.seatOps()},
		{"/endorsers", h.endorserOps()},
		{"/measures", h.measureOps()},
		{"/measure-endorsements", h.measureEndorsementOps()},
		{"/seat-endorsements", h.seatEndorsementOps()},
	} {
		r.Route(route.pattern, route.ops.register)
	}
}

// entityOps bundles one entity's handlers so every collection mounts the
// same route shape.
type entityOps struct {
	auth   func(http.Handler) http.Handler
	list   http.HandlerFunc
	create http.HandlerFunc
	get    http.HandlerFunc
	put    http.HandlerFunc
	patch  http.HandlerFunc
	delete http.HandlerFunc
}

func (ops entityOps) register(r chi.Router) {
	r.Get("/", ops.list)
	r.Get("/{id}", ops.get)
	r.Group(func(r chi.Router) {
		r.Use(ops.auth)
		r.Post("/", ops.create)
		r.Put("/{id}", ops.put)
		r.Patch("/{id}", ops.patch)
		r.Delete("/{id}", ops.delete)
	})
}

func (h *Handler) requireAuth() func(http.Handler) http.Handler {
	return middleware.RequireAuth(h.jwtValidator, h.logger)
}

// idParam parses the {id} route parameter. A malformed id is a bad
// request, not a miss.
func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "id must be a valid UUID")
	}
	return id, nil
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "invalid request body")
	}
	return nil
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "request failed", "error", err.Error())
	}
	httputil.WriteError(w, err)
}
