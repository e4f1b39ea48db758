package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func datePtr(year int, month time.Month, day int) *Date {
	d := NewDate(year, month, day)
	return &d
}

func TestCandidateString(t *testing.T) {
	tests := []struct {
		name      string
		candidate Candidate
		want      string
	}{
		{
			name:      "first and last with party",
			candidate: Candidate{FirstName: "Haley", LastName: "Clark", Party: PartyDemocrat},
			want:      "Haley Clark - Democrat",
		},
		{
			name:      "single name",
			candidate: Candidate{FirstName: "Wonderboy", Party: PartyPacificGreen},
			want:      "Wonderboy - Pacific Green",
		},
		{
			name:      "unknown party",
			candidate: Candidate{FirstName: "Malcolm", LastName: "Levitan", Party: PartyUnknown},
			want:      "Malcolm Levitan - Unknown",
		},
		{
			name: "with date of birth",
			candidate: Candidate{
				FirstName:   "John",
				LastName:    "Bosworth",
				DateOfBirth: datePtr(1930, time.January, 1),
				Party:       PartyUnknown,
			},
			want: "John Bosworth (born January 1, 1930) - Unknown",
		},
		{
			name: "full name with middle",
			candidate: Candidate{
				FirstName:   "Diane",
				MiddleName:  "Kimberly",
				LastName:    "Gould",
				DateOfBirth: datePtr(1940, time.December, 31),
				Party:       PartyUnknown,
			},
			want: "Diane Kimberly Gould (born December 31, 1940) - Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.String())
		})
	}
}

func TestCandidateFullName(t *testing.T) {
	tests := []struct {
		candidate Candidate
		want      string
	}{
		{Candidate{FirstName: "Wonderboy"}, "Wonderboy"},
		{Candidate{FirstName: "Malcolm", LastName: "Levitan"}, "Malcolm Levitan"},
		{Candidate{FirstName: "Diane", MiddleName: "Kimberly", LastName: "Gould"}, "Diane Kimberly Gould"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.candidate.FullName())
	}
}

func TestEndorserString(t *testing.T) {
	e := Endorser{Name: "Coalition of Communities of Color", Abbreviation: "CCC"}
	assert.Equal(t, "Coalition of Communities of Color (CCC)", e.String())
}

func TestMeasureString(t *testing.T) {
	m := Measure{
		Name:         "26-232",
		Level:        LevelState,
		State:        "OR",
		County:       "Multnomah",
		ElectionDate: NewDate(2022, time.November, 8),
	}
	assert.Equal(t, "26-232: election on November 8, 2022 in Oregon", m.String())
}

func TestSeatString(t *testing.T) {
	tests := []struct {
		name string
		seat Seat
		want string
	}{
		{
			name: "federal executive",
			seat: Seat{Level: LevelFederal, Branch: BranchExecutive, Role: "President"},
			want: "President at the Federal level",
		},
		{
			name: "federal senator",
			seat: Seat{Level: LevelFederal, Branch: BranchLegislative, Role: "Senator", Body: BodySenate, State: "CA"},
			want: "Senator at the Federal level in the state of California",
		},
		{
			name: "federal representative with district",
			seat: Seat{Level: LevelFederal, Branch: BranchLegislative, Role: "Representative", Body: BodyHouse, District: intPtr(2), State: "MN"},
			want: "Representative at the Federal level, district 2, in the state of Minnesota",
		},
		{
			name: "state senator",
			seat: Seat{Level: LevelState, Branch: BranchLegislative, Role: "Senator", Body: BodySenate, District: intPtr(1), State: "CA"},
			want: "Senator at the State level, district 1, in the state of California",
		},
		{
			name: "governor",
			seat: Seat{Level: LevelState, Branch: BranchExecutive, Role: "Governor", State: "OR"},
			want: "Governor at the State level in the state of Oregon",
		},
		{
			name: "mayor",
			seat: Seat{Level: LevelCity, Branch: BranchExecutive, Role: "Mayor", State: "OR", City: "Portland"},
			want: "Mayor at the City level in the city of Portland in the state of Oregon",
		},
		{
			name: "county commission chair",
			seat: Seat{Level: LevelCounty, Branch: BranchExecutive, Role: "Commission Chair", State: "OR", County: "Multnomah"},
			want: "Commission Chair at the County level in Multnomah County in the state of Oregon",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.seat.String())
		})
	}
}

func TestSeatIdentityEquals(t *testing.T) {
	base := Seat{Level: LevelState, Branch: BranchExecutive, Role: "Governor", State: "OR"}

	same := base
	assert.True(t, base.IdentityEquals(&same))

	upper := base
	upper.Role = "GOVERNOR"
	assert.True(t, base.IdentityEquals(&upper), "role compares case-insensitively")

	otherState := base
	otherState.State = "WA"
	assert.False(t, base.IdentityEquals(&otherState))

	withDistrict := base
	withDistrict.District = intPtr(3)
	assert.False(t, base.IdentityEquals(&withDistrict), "nil district is not equal to a set district")
}

func TestMeasureEndorsementRender(t *testing.T) {
	endorser := Endorser{Name: "Basic Rights Oregon", Abbreviation: "BRO"}
	measure := Measure{Name: "26-232", Level: LevelState, State: "OR", ElectionDate: NewDate(2022, time.November, 8)}
	e := MeasureEndorsement{ElectionDate: NewDate(2022, time.November, 8), Recommendation: RecommendYes}

	assert.Equal(t, "BRO recommends Yes for measure 26-232", e.Render(&endorser, &measure))
}

func TestSeatEndorsementRender(t *testing.T) {
	endorser := Endorser{Name: "Basic Rights Oregon", Abbreviation: "BRO"}
	seat := Seat{Level: LevelState, Branch: BranchExecutive, Role: "Governor", State: "OR"}
	e := SeatEndorsement{ElectionDate: NewDate(2022, time.November, 8)}

	assert.Equal(t,
		"BRO is endorsing no one for Governor at the State level in the state of Oregon on November 8, 2022",
		e.Render(&endorser, &seat, nil))

	one := []*Candidate{{FirstName: "Yo-Yo", LastName: "Engberk"}}
	assert.Equal(t,
		"BRO is endorsing Yo-Yo Engberk for Governor at the State level in the state of Oregon on November 8, 2022",
		e.Render(&endorser, &seat, one))

	two := append(one, &Candidate{FirstName: "Haley", LastName: "Clark"})
	assert.Equal(t,
		"BRO is endorsing Yo-Yo Engberk, Haley Clark for Governor at the State level in the state of Oregon on November 8, 2022",
		e.Render(&endorser, &seat, two))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2022, time.November, 8)
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2022-11-08"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))
}

func TestStateCodes(t *testing.T) {
	assert.True(t, ValidState("OR"))
	assert.False(t, ValidState("ZZ"))
	assert.Equal(t, "Oregon", StateDisplay("OR"))
	assert.Contains(t, StateCodes(), "DC")
}
