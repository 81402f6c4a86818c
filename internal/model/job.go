package model

// Track is one of the six career branches.
type Track string

const (
	TrackCorporateL1       Track = "Corporate_L1"
	TrackHustlerL1         Track = "Hustler_L1"
	TrackCorpManagement    Track = "Corp_Management"
	TrackCorpIC            Track = "Corp_IC"
	TrackHustlerBusiness   Track = "Hustler_Business"
	TrackHustlerSpecialist Track = "Hustler_Specialist"
)

// IsCorporate reports whether promotion readiness is measured in corporate XP.
func (t Track) IsCorporate() bool {
	return t == TrackCorporateL1 || t == TrackCorpManagement || t == TrackCorpIC
}

// IsHustler reports whether promotion readiness is measured in freelance+reputation XP.
func (t Track) IsHustler() bool {
	return t == TrackHustlerL1 || t == TrackHustlerBusiness || t == TrackHustlerSpecialist
}

// IsL1 reports whether the track is one of the shared foundation tracks.
func (t Track) IsL1() bool {
	return t == TrackCorporateL1 || t == TrackHustlerL1
}

// IncomeType describes how a job pays.
type IncomeType string

const (
	IncomeSalary   IncomeType = "salary"
	IncomeVolatile IncomeType = "volatile"
)

// UnemployedJobID is the job every run starts from.
const UnemployedJobID = "unemployed"

// Requirements are AND-combined minimum thresholds. Zero means no requirement.
type Requirements struct {
	Coding     int `json:"coding,omitempty" yaml:"coding"`
	Politics   int `json:"politics,omitempty" yaml:"politics"`
	Corporate  int `json:"corporate,omitempty" yaml:"corporate"`
	Freelance  int `json:"freelance,omitempty" yaml:"freelance"`
	Reputation int `json:"reputation,omitempty" yaml:"reputation"`
}

// IsZero reports whether no requirement is set.
func (r Requirements) IsZero() bool {
	return r == Requirements{}
}

// WeeklyGains are applied per elapsed week while holding a job.
type WeeklyGains struct {
	Coding     float64 `json:"coding,omitempty"`
	Politics   float64 `json:"politics,omitempty"`
	Corporate  float64 `json:"corporate,omitempty"`
	Freelance  float64 `json:"freelance,omitempty"`
	Reputation float64 `json:"reputation,omitempty"`
}

// JobNode is an immutable entry of the job registry.
type JobNode struct {
	ID           string
	Title        string
	Tier         int
	Track        Track
	Salary       float64
	IncomeType   IncomeType
	XPCap        *int // nil marks a terminal role
	Requirements Requirements
	RentRate     float64
	EnergyCost   int
	// RoleDisplacement is nil when the tier default applies.
	RoleDisplacement *float64
	WeeklyGains      WeeklyGains
}

// IsTerminal reports whether the job has no further promotion.
func (j JobNode) IsTerminal() bool {
	return j.XPCap == nil
}

// IsUnemployed reports whether this is the unemployed placeholder job.
func (j JobNode) IsUnemployed() bool {
	return j.ID == UnemployedJobID
}
