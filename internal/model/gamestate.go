package model

import "slices"

// StateVersion is written to Meta.Version for every new game.
const StateVersion = 2

// Resource and stat bounds.
const (
	MaxEnergy      = 100
	MaxStress      = 100
	MaxFulfillment = 10000
	MaxSkill       = 10000
	MaxReputation  = 10000
	MaxEventLog    = 50
)

// Status of a run.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusGameOver Status = "game_over"
)

// GameOverReason names the end state that finished a run.
type GameOverReason string

const (
	ReasonNone       GameOverReason = ""
	ReasonBurnout    GameOverReason = "burnout"
	ReasonBankruptcy GameOverReason = "bankruptcy"
	ReasonRetirement GameOverReason = "retirement"
	ReasonAgedOut    GameOverReason = "aged_out"
)

// GameOverOutcome is win or loss.
type GameOverOutcome string

const (
	OutcomeNone GameOverOutcome = ""
	OutcomeWin  GameOverOutcome = "win"
	OutcomeLoss GameOverOutcome = "loss"
)

// StartingPath selects the opening conditions of a run.
type StartingPath string

const (
	PathUniversity StartingPath = "university"
	PathScholar    StartingPath = "scholar"
	PathBootcamp   StartingPath = "bootcamp"
	PathSelfTaught StartingPath = "self_taught"
)

// GameState is the root aggregate of a run.
// It is a plain value: engine entry points clone it before mutating
// and hand the clone back, so callers never observe partial updates.
type GameState struct {
	Meta            Meta            `json:"meta"`
	Resources       Resources       `json:"resources"`
	Stats           Stats           `json:"stats"`
	Career          Career          `json:"career"`
	Flags           Flags           `json:"flags"`
	EventLog        []EventLogEntry `json:"eventLog"`
	Status          Status          `json:"status"`
	GameOverReason  GameOverReason  `json:"gameOverReason"`
	GameOverOutcome GameOverOutcome `json:"gameOverOutcome"`
}

// Meta holds run identity and the simulation clock.
type Meta struct {
	Version    int    `json:"version"`
	Tick       int    `json:"tick"`
	StartAge   int    `json:"startAge"`
	PlayerName string `json:"playerName"`
}

// Resources are the spendable and bounded quantities of a run.
type Resources struct {
	Money       float64 `json:"money"`
	Debt        float64 `json:"debt"`
	Stress      int     `json:"stress"`
	Energy      int     `json:"energy"`
	Fulfillment int     `json:"fulfillment"`
}

// Stats groups decaying skills and non-decaying experience.
type Stats struct {
	Skills Skills `json:"skills"`
	XP     XP     `json:"xp"`
}

// Skills decay over time depending on role displacement.
type Skills struct {
	Coding   int `json:"coding"`
	Politics int `json:"politics"`
}

// XP currencies never decay.
type XP struct {
	Corporate  int `json:"corporate"`
	Freelance  int `json:"freelance"`
	Reputation int `json:"reputation"`
}

// Career tracks the current job and the promotion history.
type Career struct {
	CurrentJobID string            `json:"currentJobId"`
	JobStartTick int               `json:"jobStartTick"`
	JobHistory   []JobHistoryEntry `json:"jobHistory"`
}

// JobHistoryEntry is appended on every job change and never mutated.
type JobHistoryEntry struct {
	JobID     string `json:"jobId"`
	StartTick int    `json:"startTick"`
	EndTick   int    `json:"endTick"`
}

// Flags carries run-wide switches and counters.
type Flags struct {
	IsBurnedOut               bool           `json:"isBurnedOut"`
	IsBankrupt                bool           `json:"isBankrupt"`
	ConsecutiveMissedPayments int            `json:"consecutiveMissedPayments"`
	TotalMissedPayments       int            `json:"totalMissedPayments"`
	Streak                    int            `json:"streak"`
	Cooldowns                 map[string]int `json:"cooldowns"`
	AccumulatesDebt           bool           `json:"accumulatesDebt"`
	StartingPath              StartingPath   `json:"startingPath"`
	IsScholar                 bool           `json:"isScholar"`
	ScholarYearsRemaining     int            `json:"scholarYearsRemaining"`
	HasGraduated              bool           `json:"hasGraduated"`
	PurchasedInvestments      []string       `json:"purchasedInvestments"`
	ActiveBuffs               []ActiveBuff   `json:"activeBuffs"`
}

// EventLogEntry is a single line of the run log.
type EventLogEntry struct {
	Tick    int    `json:"tick"`
	EventID string `json:"eventId"`
	Message string `json:"message"`
}

// IsOver reports whether the run has reached an end state.
func (s *GameState) IsOver() bool {
	return s.Status == StatusGameOver
}

// HasPurchased reports whether a one-time investment was already bought.
func (s *GameState) HasPurchased(actionID string) bool {
	return slices.Contains(s.Flags.PurchasedInvestments, actionID)
}

// HasActiveBuff reports whether a buff from the given action is active.
func (s *GameState) HasActiveBuff(actionID string) bool {
	for _, b := range s.Flags.ActiveBuffs {
		if b.SourceActionID == actionID {
			return true
		}
	}
	return false
}

// AppendLog appends an entry and evicts the oldest entries so that at
// most MaxEventLog remain. Newest entries are always at the end.
func (s *GameState) AppendLog(entry EventLogEntry) {
	s.EventLog = append(s.EventLog, entry)
	if over := len(s.EventLog) - MaxEventLog; over > 0 {
		s.EventLog = slices.Clone(s.EventLog[over:])
	}
}

// HasLogEntry reports whether an entry with the given tick and event id exists.
func (s *GameState) HasLogEntry(tick int, eventID string) bool {
	for _, e := range s.EventLog {
		if e.Tick == tick && e.EventID == eventID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	c := s
	c.Career.JobHistory = cloneSlice(s.Career.JobHistory)
	c.EventLog = cloneSlice(s.EventLog)
	c.Flags.PurchasedInvestments = cloneSlice(s.Flags.PurchasedInvestments)
	c.Flags.ActiveBuffs = cloneSlice(s.Flags.ActiveBuffs)
	if s.Flags.Cooldowns != nil {
		c.Flags.Cooldowns = make(map[string]int, len(s.Flags.Cooldowns))
		for k, v := range s.Flags.Cooldowns {
			c.Flags.Cooldowns[k] = v
		}
	}
	return c
}

// cloneSlice keeps nil and empty slices distinct so serialized shapes survive cloning.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
