// Package gameover decides whether a run has ended.
package gameover

import (
	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

const (
	// BankruptcyBalance is the balance below which a debtor is bankrupt.
	BankruptcyBalance = -50000.0

	// WealthTarget is the net worth that retires the player.
	WealthTarget = 1_000_000.0

	// RetirementAge ends every run that is still going.
	RetirementAge = 65
)

// Result is the verdict for a state. Over is false while the run continues.
type Result struct {
	Over    bool
	Reason  model.GameOverReason
	Outcome model.GameOverOutcome
}

// Evaluate checks the end conditions in priority order; the first match wins.
func Evaluate(reg *data.Registry, s model.GameState) Result {
	if s.Resources.Stress >= model.MaxStress {
		return Result{Over: true, Reason: model.ReasonBurnout, Outcome: model.OutcomeLoss}
	}
	if s.Flags.IsBankrupt || (s.Resources.Money < BankruptcyBalance && s.Resources.Debt > 0) {
		return Result{Over: true, Reason: model.ReasonBankruptcy, Outcome: model.OutcomeLoss}
	}
	if job := reg.MustJob(s.Career.CurrentJobID); !job.IsUnemployed() && job.IsTerminal() {
		return Result{Over: true, Reason: model.ReasonRetirement, Outcome: model.OutcomeWin}
	}
	if s.Resources.Money-s.Resources.Debt >= WealthTarget {
		return Result{Over: true, Reason: model.ReasonRetirement, Outcome: model.OutcomeWin}
	}
	if calendar.Age(s.Meta.StartAge, s.Meta.Tick) >= RetirementAge {
		return Result{Over: true, Reason: model.ReasonAgedOut, Outcome: model.OutcomeLoss}
	}
	return Result{}
}

// Apply writes a finished verdict into a copy of s. Running states are returned as-is.
func Apply(s model.GameState, r Result) model.GameState {
	if !r.Over {
		return s
	}
	out := s.Clone()
	out.Status = model.StatusGameOver
	out.GameOverReason = r.Reason
	out.GameOverOutcome = r.Outcome
	return out
}
