package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Endorser is an organization issuing public recommendations. The
// abbreviation is a globally unique short code, independent of the display
// name.
type Endorser struct {
	ID           uuid.UUID
	Name         string
	Abbreviation string
	Created      time.Time
	LastUpdated  time.Time
}

func (e *Endorser) String() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.Abbreviation)
}
