package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Seat is a governmental office that can be held or run for. One schema
// covers every shape of office: which fields are required or forbidden
// depends on level and branch, enforced by the validation engine's ordered
// rule chain.
type Seat struct {
	ID     uuid.UUID
	Level  Level
	Branch Branch
	// Role is the office title, e.g. President, Mayor, Representative. May
	// arrive blank and be derived from Body.
	Role string
	Body LegislativeBody
	// District applies to House seats and State-level Senate seats.
	District    *int
	State       string
	City        string
	County      string
	Created     time.Time
	LastUpdated time.Time
}

// String renders the seat for display, e.g.
// "Representative at the Federal level, district 2, in the state of Minnesota".
func (s *Seat) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s at the %s level", s.Role, s.Level.Display())
	if s.District != nil {
		fmt.Fprintf(&b, ", district %d,", *s.District)
	}
	if s.City != "" {
		fmt.Fprintf(&b, " in the city of %s", s.City)
	}
	if s.County != "" {
		fmt.Fprintf(&b, " in %s County", s.County)
	}
	if s.State != "" {
		fmt.Fprintf(&b, " in the state of %s", StateDisplay(s.State))
	}
	return b.String()
}

// IdentityEquals reports whether two seats describe the same office: equal
// across the full (level, branch, role, body, district, state, county, city)
// tuple, with blank fields equal to blank and role compared
// case-insensitively to match the stored uniqueness rules.
func (s *Seat) IdentityEquals(other *Seat) bool {
	if s.Level != other.Level || s.Branch != other.Branch || s.Body != other.Body {
		return false
	}
	if !strings.EqualFold(s.Role, other.Role) {
		return false
	}
	if (s.District == nil) != (other.District == nil) {
		return false
	}
	if s.District != nil && *s.District != *other.District {
		return false
	}
	return s.State == other.State && s.County == other.County && s.City == other.City
}
