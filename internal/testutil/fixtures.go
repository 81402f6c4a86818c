package testutil

import (
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// Fixtures holds shared test data so tests do not repeat literals.
var Fixtures = struct {
	PlayerName string
	StartAge   int
	Money      float64
	SaveID     string
}{
	PlayerName: "Ada",
	StartAge:   18,
	Money:      1000,
	SaveID:     "8b5f3c2e-3a7d-4f5e-9c1b-2d4e6f8a0b1c",
}

// StateOption mutates a fixture state.
type StateOption func(*model.GameState)

// NewState returns a playing state with full energy, no stress, no debt,
// unemployed, with every collection initialized.
func NewState(opts ...StateOption) model.GameState {
	s := model.GameState{
		Meta: model.Meta{
			Version:    model.StateVersion,
			StartAge:   Fixtures.StartAge,
			PlayerName: Fixtures.PlayerName,
		},
		Resources: model.Resources{
			Money:  Fixtures.Money,
			Energy: model.MaxEnergy,
		},
		Career: model.Career{
			CurrentJobID: model.UnemployedJobID,
			JobHistory:   []model.JobHistoryEntry{},
		},
		Flags: model.Flags{
			Cooldowns:            map[string]int{},
			StartingPath:         model.PathSelfTaught,
			PurchasedInvestments: []string{},
			ActiveBuffs:          []model.ActiveBuff{},
		},
		EventLog: []model.EventLogEntry{},
		Status:   model.StatusPlaying,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithJob sets the current job.
func WithJob(jobID string) StateOption {
	return func(s *model.GameState) { s.Career.CurrentJobID = jobID }
}

// WithTick sets the simulation tick.
func WithTick(tick int) StateOption {
	return func(s *model.GameState) { s.Meta.Tick = tick }
}

// WithStartAge sets the starting age.
func WithStartAge(age int) StateOption {
	return func(s *model.GameState) { s.Meta.StartAge = age }
}

// WithMoney sets money.
func WithMoney(money float64) StateOption {
	return func(s *model.GameState) { s.Resources.Money = money }
}

// WithDebt sets debt.
func WithDebt(debt float64) StateOption {
	return func(s *model.GameState) { s.Resources.Debt = debt }
}

// WithStress sets stress.
func WithStress(stress int) StateOption {
	return func(s *model.GameState) { s.Resources.Stress = stress }
}

// WithEnergy sets energy.
func WithEnergy(energy int) StateOption {
	return func(s *model.GameState) { s.Resources.Energy = energy }
}

// WithSkills sets coding and politics.
func WithSkills(coding, politics int) StateOption {
	return func(s *model.GameState) {
		s.Stats.Skills = model.Skills{Coding: coding, Politics: politics}
	}
}

// WithXP sets the XP currencies.
func WithXP(corporate, freelance, reputation int) StateOption {
	return func(s *model.GameState) {
		s.Stats.XP = model.XP{Corporate: corporate, Freelance: freelance, Reputation: reputation}
	}
}

// WithBuffs installs active buffs.
func WithBuffs(buffs ...model.ActiveBuff) StateOption {
	return func(s *model.GameState) { s.Flags.ActiveBuffs = append(s.Flags.ActiveBuffs, buffs...) }
}

// WithScholarship marks the player as a scholar with years remaining.
func WithScholarship(years int) StateOption {
	return func(s *model.GameState) {
		s.Flags.IsScholar = true
		s.Flags.ScholarYearsRemaining = years
		s.Flags.StartingPath = model.PathScholar
	}
}
