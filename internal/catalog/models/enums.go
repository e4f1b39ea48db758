package models

// Single-letter wire codes and display names for the coded enumerations.
// The codes are stable identifiers shared with the stored data; display
// names only appear in rendered strings.

// Level is the governmental tier a seat or measure belongs to.
type Level string

const (
	LevelFederal  Level = "F"
	LevelState    Level = "S"
	LevelCity     Level = "C"
	LevelCounty   Level = "T"
	LevelRegional Level = "R"
)

var levelNames = map[Level]string{
	LevelFederal:  "Federal",
	LevelState:    "State",
	LevelCity:     "City",
	LevelCounty:   "County",
	LevelRegional: "Regional",
}

func (l Level) Valid() bool { _, ok := levelNames[l]; return ok }

func (l Level) Display() string { return levelNames[l] }

// LevelValues lists the valid level codes in declaration order.
func LevelValues() []Level {
	return []Level{LevelFederal, LevelState, LevelCity, LevelCounty, LevelRegional}
}

// Branch is the governmental branch a seat belongs to. Blank is allowed.
type Branch string

const (
	BranchExecutive   Branch = "E"
	BranchJudicial    Branch = "J"
	BranchLegislative Branch = "L"
	BranchOther       Branch = "O"
)

var branchNames = map[Branch]string{
	BranchExecutive:   "Executive",
	BranchJudicial:    "Judicial",
	BranchLegislative: "Legislative",
	BranchOther:       "Other",
}

func (b Branch) Valid() bool { _, ok := branchNames[b]; return ok }

func (b Branch) Display() string { return branchNames[b] }

// LegislativeBody is the chamber a legislative seat sits in. Blank is
// allowed for non-legislative seats.
type LegislativeBody string

const (
	BodyHouse  LegislativeBody = "H"
	BodySenate LegislativeBody = "S"
)

var bodyNames = map[LegislativeBody]string{
	BodyHouse:  "House of Representatives",
	BodySenate: "Senate",
}

func (b LegislativeBody) Valid() bool { _, ok := bodyNames[b]; return ok }

func (b LegislativeBody) Display() string { return bodyNames[b] }

// BodyValues lists the valid legislative body codes.
func BodyValues() []LegislativeBody {
	return []LegislativeBody{BodyHouse, BodySenate}
}

// Party is a candidate's party affiliation.
type Party string

const (
	PartyConstitution    Party = "C"
	PartyDemocrat        Party = "D"
	PartyPacificGreen    Party = "G"
	PartyIndependent     Party = "I"
	PartyLibertarian     Party = "L"
	PartyNoParty         Party = "N"
	PartyOther           Party = "O"
	PartyProgressive     Party = "P"
	PartyRepublican      Party = "R"
	PartyUnknown         Party = "U"
	PartyWorkingFamilies Party = "W"
)

var partyNames = map[Party]string{
	PartyConstitution:    "Constitution",
	PartyDemocrat:        "Democrat",
	PartyPacificGreen:    "Pacific Green",
	PartyIndependent:     "Independent",
	PartyLibertarian:     "Libertarian",
	PartyNoParty:         "No party",
	PartyOther:           "Other",
	PartyProgressive:     "Progressive",
	PartyRepublican:      "Republican",
	PartyUnknown:         "Unknown",
	PartyWorkingFamilies: "Working Families Party",
}

func (p Party) Valid() bool { _, ok := partyNames[p]; return ok }

func (p Party) Display() string { return partyNames[p] }

// Recommendation is an endorser's position on a ballot measure.
type Recommendation string

const (
	RecommendYes  Recommendation = "Y"
	RecommendNo   Recommendation = "N"
	RecommendNone Recommendation = "U"
)

var recommendationNames = map[Recommendation]string{
	RecommendYes:  "Yes",
	RecommendNo:   "No",
	RecommendNone: "No recommendation",
}

func (r Recommendation) Valid() bool { _, ok := recommendationNames[r]; return ok }

func (r Recommendation) Display() string { return recommendationNames[r] }
