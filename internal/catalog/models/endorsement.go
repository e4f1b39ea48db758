package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeasureEndorsement links an Endorser to a Measure with a dated, sourced
// recommendation. Unique on (endorser, election date, measure).
type MeasureEndorsement struct {
	ID             uuid.UUID
	EndorserID     uuid.UUID
	MeasureID      uuid.UUID
	ElectionDate   Date
	URL            string
	Recommendation Recommendation
	Created        time.Time
	LastUpdated    time.Time
}

// Render produces the display string given the linked records, e.g.
// "BRO recommends Yes for measure 26-232".
func (e *MeasureEndorsement) Render(endorser *Endorser, measure *Measure) string {
	return fmt.Sprintf("%s recommends %s for measure %s",
		endorser.Abbreviation, e.Recommendation.Display(), measure.Name)
}

// SeatEndorsement links an Endorser to a Seat with a dated, sourced list of
// endorsed candidates. The candidate list preserves insertion order and may
// be empty. Unique on (endorser, election date, seat).
type SeatEndorsement struct {
	ID           uuid.UUID
	EndorserID   uuid.UUID
	SeatID       uuid.UUID
	ElectionDate Date
	URL          string
	// CandidateIDs is ordered by insertion into the endorsement.
	CandidateIDs []uuid.UUID
	Created      time.Time
	LastUpdated  time.Time
}

// Render produces the display string given the linked records, e.g.
// "BRO is endorsing Yo-Yo Engberk for Governor at the State level in the
// state of Oregon on November 8, 2022". An empty candidate list renders as
// "no one".
func (e *SeatEndorsement) Render(endorser *Endorser, seat *Seat, candidates []*Candidate) string {
	who := "no one"
	if len(candidates) > 0 {
		names := make([]string, len(candidates))
		for i, c := range candidates {
			names[i] = c.FullName()
		}
		who = strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s is endorsing %s for %s on %s",
		endorser.Abbreviation, who, seat.String(), e.ElectionDate.Display())
}
