package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
	"voterguide/internal/catalog/service"
)

// ref is an entity reference in a request body. Accepts a bare UUID or a
// hyperlink ("/seats/9c9b..." or a fully qualified URL); only the final
// path segment is read.
type ref struct {
	id uuid.UUID
}

func (r *ref) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSuffix(raw, "/")
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid entity reference %q", raw)
	}
	r.id = id
	return nil
}

func (r *ref) idPtr() *uuid.UUID {
	if r == nil {
		return nil
	}
	id := r.id
	return &id
}

func refIDs(refs []ref) []uuid.UUID {
	ids := make([]uuid.UUID, len(refs))
	for i, r := range refs {
		ids[i] = r.id
	}
	return ids
}

type candidateRequest struct {
	FirstName      string       `json:"first_name"`
	MiddleName     string       `json:"middle_name"`
	LastName       string       `json:"last_name"`
	DateOfBirth    *models.Date `json:"date_of_birth"`
	Party          models.Party `json:"party"`
	RunningForSeat *ref         `json:"running_for_seat"`
	Seat           *ref         `json:"seat"`
}

func (req candidateRequest) toModel() models.Candidate {
	return models.Candidate{
		FirstName:        req.FirstName,
		MiddleName:       req.MiddleName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		Party:            req.Party,
		RunningForSeatID: req.RunningForSeat.idPtr(),
		SeatID:           req.Seat.idPtr(),
	}
}

type candidatePatchRequest struct {
	FirstName      *string       `json:"first_name"`
	MiddleName     *string       `json:"middle_name"`
	LastName       *string       `json:"last_name"`
	DateOfBirth    *models.Date  `json:"date_of_birth"`
	Party          *models.Party `json:"party"`
	RunningForSeat *ref          `json:"running_for_seat"`
	Seat           *ref          `json:"seat"`
}

func (req candidatePatchRequest) toPatch() service.CandidatePatch {
	return service.CandidatePatch{
		FirstName:        req.FirstName,
		MiddleName:       req.MiddleName,
		LastName:         req.LastName,
		DateOfBirth:      req.DateOfBirth,
		Party:            req.Party,
		RunningForSeatID: req.RunningForSeat.idPtr(),
		SeatID:           req.Seat.idPtr(),
	}
}

type seatRequest struct {
	Level    models.Level           `json:"level"`
	Branch   models.Branch          `json:"branch"`
	Role     string                 `json:"role"`
	Body     models.LegislativeBody `json:"body"`
	District *int                   `json:"district"`
	State    string                 `json:"state"`
	City     string                 `json:"city"`
	County   string                 `json:"county"`
}

func (req seatRequest) toModel() models.Seat {
	return models.Seat{
		Level:    req.Level,
		Branch:   req.Branch,
		Role:     req.Role,
		Body:     req.Body,
		District: req.District,
		State:    req.State,
		City:     req.City,
		County:   req.County,
	}
}

type seatPatchRequest struct {
	Level    *models.Level           `json:"level"`
	Branch   *models.Branch          `json:"branch"`
	Role     *string                 `json:"role"`
	Body     *models.LegislativeBody `json:"body"`
	District *int                    `json:"district"`
	State    *string                 `json:"state"`
	City     *string                 `json:"city"`
	County   *string                 `json:"county"`
}

func (req seatPatchRequest) toPatch() service.SeatPatch {
	return service.SeatPatch{
		Level:    req.Level,
		Branch:   req.Branch,
		Role:     req.Role,
		Body:     req.Body,
		District: req.District,
		State:    req.State,
		City:     req.City,
		County:   req.County,
	}
}

type endorserRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

func (req endorserRequest) toModel() models.Endorser {
	return models.Endorser{Name: req.Name, Abbreviation: req.Abbreviation}
}

type endorserPatchRequest struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

func (req endorserPatchRequest) toPatch() service.EndorserPatch {
	return service.EndorserPatch{Name: req.Name, Abbreviation: req.Abbreviation}
}

type measureRequest struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Level        models.Level `json:"level"`
	City         string       `json:"city"`
	County       string       `json:"county"`
	State        string       `json:"state"`
	ElectionDate models.Date  `json:"election_date"`
	Passed       *bool        `json:"passed"`
}

func (req measureRequest) toModel() models.Measure {
	return models.Measure{
		Name:         req.Name,
		Description:  req.Description,
		Level:        req.Level,
		City:         req.City,
		County:       req.County,
		State:        req.State,
		ElectionDate: req.ElectionDate,
		Passed:       req.Passed,
	}
}

type measurePatchRequest struct {
	Name         *string       `json:"name"`
	Description  *string       `json:"description"`
	Level        *models.Level `json:"level"`
	City         *string       `json:"city"`
	County       *string       `json:"county"`
	State        *string       `json:"state"`
	ElectionDate *models.Date  `json:"election_date"`
	Passed       *bool         `json:"passed"`
}

func (req measurePatchRequest) toPatch() service.MeasurePatch {
	return service.MeasurePatch{
		Name:         req.Name,
		Description:  req.Description,
		Level:        req.Level,
		City:         req.City,
		County:       req.County,
		State:        req.State,
		ElectionDate: req.ElectionDate,
		Passed:       req.Passed,
	}
}

type measureEndorsementRequest struct {
	Endorser       *ref                  `json:"endorser"`
	Measure        *ref                  `json:"measure"`
	ElectionDate   models.Date           `json:"election_date"`
	URL            string                `json:"url"`
	Recommendation models.Recommendation `json:"recommendation"`
}

func (req measureEndorsementRequest) toModel() models.MeasureEndorsement {
	e := models.MeasureEndorsement{
		ElectionDate:   req.ElectionDate,
		URL:            req.URL,
		Recommendation: req.Recommendation,
	}
	if req.Endorser != nil {
		e.EndorserID = req.Endorser.id
	}
	if req.Measure != nil {
		e.MeasureID = req.Measure.id
	}
	return e
}

type measureEndorsementPatchRequest struct {
	Endorser       *ref                   `json:"endorser"`
	Measure        *ref                   `json:"measure"`
	ElectionDate   *models.Date           `json:"election_date"`
	URL            *string                `json:"url"`
	Recommendation *models.Recommendation `json:"recommendation"`
}

func (req measureEndorsementPatchRequest) toPatch() service.MeasureEndorsementPatch {
	return service.MeasureEndorsementPatch{
		EndorserID:     req.Endorser.idPtr(),
		MeasureID:      req.Measure.idPtr(),
		ElectionDate:   req.ElectionDate,
		URL:            req.URL,
		Recommendation: req.Recommendation,
	}
}

type seatEndorsementRequest struct {
	Endorser     *ref        `json:"endorser"`
	Seat         *ref        `json:"seat"`
	ElectionDate models.Date `json:"election_date"`
	URL          string      `json:"url"`
	Candidates   []ref       `json:"candidates"`
}

func (req seatEndorsementRequest) toModel() models.SeatEndorsement {
	e := models.SeatEndorsement{
		ElectionDate: req.ElectionDate,
		URL:          req.URL,
		CandidateIDs: refIDs(req.Candidates),
	}
	if req.Endorser != nil {
		e.EndorserID = req.Endorser.id
	}
	if req.Seat != nil {
		e.SeatID = req.Seat.id
	}
	return e
}

type seatEndorsementPatchRequest struct {
	Endorser     *ref         `json:"endorser"`
	Seat         *ref         `json:"seat"`
	ElectionDate *models.Date `json:"election_date"`
	URL          *string      `json:"url"`
	Candidates   []ref        `json:"candidates"`
}

func (req seatEndorsementPatchRequest) toPatch() service.SeatEndorsementPatch {
	patch := service.SeatEndorsementPatch{
		EndorserID:   req.Endorser.idPtr(),
		SeatID:       req.Seat.idPtr(),
		ElectionDate: req.ElectionDate,
		URL:          req.URL,
	}
	if req.Candidates != nil {
		patch.CandidateIDs = refIDs(req.Candidates)
	}
	return patch
}
