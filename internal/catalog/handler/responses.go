package handler

import (
	"time"

	"github.com/google/uuid"

	"voterguide/internal/catalog/models"
)

func candidateHref(id uuid.UUID) string { return "/candidates/" + id.String() }

func seatHref(id uuid.UUID) string { return "/seats/" + id.String() }

func endorserHref(id uuid.UUID) string { return "/endorsers/" + id.String() }

func measureHref(id uuid.UUID) string { return "/measures/" + id.String() }

func hrefOrNil(id *uuid.UUID, href func(uuid.UUID) string) *string {
	if id == nil {
		return nil
	}
	h := href(*id)
	return &h
}

type candidateResponse struct {
	ID             uuid.UUID    `json:"id"`
	URL            string       `json:"url"`
	FirstName      string       `json:"first_name"`
	MiddleName     string       `json:"middle_name"`
	LastName       string       `json:"last_name"`
	FullName       string       `json:"full_name"`
	DateOfBirth    *models.Date `json:"date_of_birth"`
	Party          models.Party `json:"party"`
	RunningForSeat *string      `json:"running_for_seat"`
	Seat           *string      `json:"seat"`
	Created        time.Time    `json:"created"`
	LastUpdated    time.Time    `json:"last_updated"`
}

func toCandidateResponse(c *models.Candidate) candidateResponse {
	return candidateResponse{
		ID:             c.ID,
		URL:            candidateHref(c.ID),
		FirstName:      c.FirstName,
		MiddleName:     c.MiddleName,
		LastName:       c.LastName,
		FullName:       c.FullName(),
		DateOfBirth:    c.DateOfBirth,
		Party:          c.Party,
		RunningForSeat: hrefOrNil(c.RunningForSeatID, seatHref),
		Seat:           hrefOrNil(c.SeatID, seatHref),
		Created:        c.Created,
		LastUpdated:    c.LastUpdated,
	}
}

type seatResponse struct {
	ID          uuid.UUID              `json:"id"`
	URL         string                 `json:"url"`
	Level       models.Level           `json:"level"`
	Branch      models.Branch          `json:"branch"`
	Role        string                 `json:"role"`
	Body        models.LegislativeBody `json:"body"`
	District    *int                   `json:"district"`
	State       string                 `json:"state"`
	City        string                 `json:"city"`
	County      string                 `json:"county"`
	Created     time.Time              `json:"created"`
	LastUpdated time.Time              `json:"last_updated"`
}

func toSeatResponse(s *models.Seat) seatResponse {
	return seatResponse{
		ID:          s.ID,
		URL:         seatHref(s.ID),
		Level:       s.Level,
		Branch:      s.Branch,
		Role:        s.Role,
		Body:        s.Body,
		District:    s.District,
		State:       s.State,
		City:        s.City,
		County:      s.County,
		Created:     s.Created,
		LastUpdated: s.LastUpdated,
	}
}

type endorserResponse struct {
	ID           uuid.UUID `json:"id"`
	URL          string    `json:"url"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Created      time.Time `json:"created"`
	LastUpdated  time.Time `json:"last_updated"`
}

func toEndorserResponse(e *models.Endorser) endorserResponse {
	return endorserResponse{
		ID:           e.ID,
		URL:          endorserHref(e.ID),
		Name:         e.Name,
		Abbreviation: e.Abbreviation,
		Created:      e.Created,
		LastUpdated:  e.LastUpdated,
	}
}

type measureResponse struct {
	ID           uuid.UUID    `json:"id"`
	URL          string       `json:"url"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Level        models.Level `json:"level"`
	City         string       `json:"city"`
	County       string       `json:"county"`
	State        string       `json:"state"`
	ElectionDate models.Date  `json:"election_date"`
	Passed       *bool        `json:"passed"`
	Created      time.Time    `json:"created"`
	LastUpdated  time.Time    `json:"last_updated"`
}

func toMeasureResponse(m *models.Measure) measureResponse {
	return measureResponse{
		ID:           m.ID,
		URL:          measureHref(m.ID),
		Name:         m.Name,
		Description:  m.Description,
		Level:        m.Level,
		City:         m.City,
		County:       m.County,
		State:        m.State,
		ElectionDate: m.ElectionDate,
		Passed:       m.Passed,
		Created:      m.Created,
		LastUpdated:  m.LastUpdated,
	}
}

type measureEndorsementResponse struct {
	ID             uuid.UUID             `json:"id"`
	URL            string                `json:"url"`
	Endorser       string                `json:"endorser"`
	Measure        string                `json:"measure"`
	ElectionDate   models.Date           `json:"election_date"`
	SourceURL      string                `json:"source_url"`
	Recommendation models.Recommendation `json:"recommendation"`
	Created        time.Time             `json:"created"`
	LastUpdated    time.Time             `json:"last_updated"`
}

func toMeasureEndorsementResponse(e *models.MeasureEndorsement) measureEndorsementResponse {
	return measureEndorsementResponse{
		ID:             e.ID,
		URL:            "/measure-endorsements/" + e.ID.String(),
		Endorser:       endorserHref(e.EndorserID),
		Measure:        measureHref(e.MeasureID),
		ElectionDate:   e.ElectionDate,
		SourceURL:      e.URL,
		Recommendation: e.Recommendation,
		Created:        e.Created,
		LastUpdated:    e.LastUpdated,
	}
}

type seatEndorsementResponse struct {
	ID           uuid.UUID   `json:"id"`
	URL          string      `json:"url"`
	Endorser     string      `json:"endorser"`
	Seat         string      `json:"seat"`
	ElectionDate models.Date `json:"election_date"`
	SourceURL    string      `json:"source_url"`
	// Candidates keeps the endorsement's insertion order.
	Candidates  []string  `json:"candidates"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"last_updated"`
}

func toSeatEndorsementResponse(e *models.SeatEndorsement) seatEndorsementResponse {
	candidates := make([]string, len(e.CandidateIDs))
	for i, id := range e.CandidateIDs {
		candidates[i] = candidateHref(id)
	}
	return seatEndorsementResponse{
		ID:           e.ID,
		URL:          "/seat-endorsements/" + e.ID.String(),
		Endorser:     endorserHref(e.EndorserID),
		Seat:         seatHref(e.SeatID),
		ElectionDate: e.ElectionDate,
		SourceURL:    e.URL,
		Candidates:   candidates,
		Created:      e.Created,
		LastUpdated:  e.LastUpdated,
	}
}
