package model

// ActionCategory groups actions for gating and display.
type ActionCategory string

const (
	CategorySkill   ActionCategory = "SKILL"
	CategoryWork    ActionCategory = "WORK"
	CategoryNetwork ActionCategory = "NETWORK"
	CategoryRecover ActionCategory = "RECOVER"
	CategoryInvest  ActionCategory = "INVEST"
)

// Rewards are signed deltas granted by an action.
type Rewards struct {
	Skill       float64
	Politics    float64
	Corporate   float64
	Freelance   float64
	Reputation  float64
	Money       float64
	Stress      float64
	Fulfillment float64
}

// GameAction is an immutable entry of the action registry.
type GameAction struct {
	ID           string
	Title        string
	Category     ActionCategory
	EnergyCost   int
	MoneyCost    float64
	Rewards      Rewards
	Requirements Requirements
	// Duration in weeks; 0 is instant.
	Duration   int
	EnergyGain int
	// JobRequirements lists the jobs allowed to use a WORK action. Empty means any job.
	JobRequirements []string
	PassiveBuff     *PassiveBuff
	IsRecurring     bool
	// CooldownWeeks blocks reuse until that many ticks have passed.
	CooldownWeeks int
}

// BuffStat names the quantity a buff modifies.
type BuffStat string

const (
	BuffCoding     BuffStat = "coding"
	BuffPolitics   BuffStat = "politics"
	BuffCorporate  BuffStat = "corporate"
	BuffFreelance  BuffStat = "freelance"
	BuffReputation BuffStat = "reputation"
	BuffStress     BuffStat = "stress"
	BuffEnergy     BuffStat = "energy"
	BuffRecovery   BuffStat = "recovery"
)

// BuffType is multiplier or flat.
type BuffType string

const (
	BuffMultiplier BuffType = "multiplier"
	BuffFlat       BuffType = "flat"
)

// PassiveBuff is the template an INVEST action installs.
type PassiveBuff struct {
	Stat        BuffStat
	Type        BuffType
	Value       float64
	Description string
	WeeklyCost  float64
}

// ActiveBuff is an installed passive modifier.
type ActiveBuff struct {
	SourceActionID string   `json:"sourceActionId"`
	Stat           BuffStat `json:"stat"`
	Type           BuffType `json:"type"`
	Value          float64  `json:"value"`
	Description    string   `json:"description"`
	AcquiredAt     int      `json:"acquiredAt"`
	IsRecurring    bool     `json:"isRecurring"`
	WeeklyCost     float64  `json:"weeklyCost,omitempty"`
}
