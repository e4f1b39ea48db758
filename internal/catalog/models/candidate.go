package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Candidate is a person who runs for or holds a Seat.
//
// Identity invariant: no two candidates share the same case-insensitive
// (first name, last name, date of birth) triple, and candidates with no
// known date of birth are unique on the case-insensitive name pair alone.
// An unset last name matches another unset last name, never a set one.
type Candidate struct {
	ID          uuid.UUID
	FirstName   string
	MiddleName  string
	LastName    string
	DateOfBirth *Date
	Party       Party
	// RunningForSeatID references the seat the candidate is currently
	// seeking, if any.
	RunningForSeatID *uuid.UUID
	// SeatID references the seat the candidate currently holds, if any.
	SeatID      *uuid.UUID
	Created     time.Time
	LastUpdated time.Time
}

// FullName joins the non-empty name parts with single spaces.
func (c *Candidate) FullName() string {
	parts := make([]string, 0, 3)
	for _, name := range []string{c.FirstName, c.MiddleName, c.LastName} {
		if name != "" {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}

// String renders the candidate for display, e.g.
// "John Bosworth (born January 1, 1930) - Unknown".
func (c *Candidate) String() string {
	born := ""
	if c.DateOfBirth != nil {
		born = fmt.Sprintf(" (born %s)", c.DateOfBirth.Display())
	}
	return fmt.Sprintf("%s%s - %s", c.FullName(), born, c.Party.Display())
}
