package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Measure is a ballot measure subject to an election, keyed by the
// case-insensitive (name, election date, state) triple.
type Measure struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Level        Level
	City         string
	County       string
	State        string
	ElectionDate Date
	// Passed is the election outcome: true, false, or nil while pending.
	Passed      *bool
	Created     time.Time
	LastUpdated time.Time
}

// String renders the measure for display, e.g.
// "26-232: election on November 8, 2022 in Oregon".
func (m *Measure) String() string {
	return fmt.Sprintf("%s: election on %s in %s", m.Name, m.ElectionDate.Display(), StateDisplay(m.State))
}
