// Package turn applies one player action to a game state.
//
// Process validates first and only then works on a clone, so a rejected
// action never leaves a partially updated state behind.
package turn

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/buff"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/career"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/debt"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/event"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/mechanics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

var (
	ErrUnknownAction      = errors.New("unknown action")
	ErrInsufficientMoney  = errors.New("insufficient money")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrRequirementsNotMet = errors.New("action requirements not met")
	ErrJobRestricted      = errors.New("action not available in current job")
	ErrAlreadyPurchased   = errors.New("investment already owned")
	ErrOnCooldown         = errors.New("action on cooldown")
	ErrGameOver           = errors.New("game is over")
)

// Log event ids written by this package.
const (
	EventTurn          = "turn"
	EventBuffLapsed    = "buff_lapsed"
	EventMissedPayment = "missed_payment"
)

// Validate returns the action for actionID if s may perform it.
func Validate(reg *data.Registry, s model.GameState, actionID string) (model.GameAction, error) {
	if s.IsOver() {
		return model.GameAction{}, ErrGameOver
	}
	a, ok := reg.Action(actionID)
	if !ok {
		if sug := reg.SuggestAction(actionID); sug != "" {
			return model.GameAction{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownAction, actionID, sug)
		}
		return model.GameAction{}, fmt.Errorf("%w: %q", ErrUnknownAction, actionID)
	}
	if s.Resources.Money < a.MoneyCost {
		return a, fmt.Errorf("%w: %s costs $%.0f, have $%.0f", ErrInsufficientMoney, a.ID, a.MoneyCost, s.Resources.Money)
	}
	if s.Resources.Energy < a.EnergyCost {
		return a, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientEnergy, a.ID, a.EnergyCost, s.Resources.Energy)
	}
	if !career.MeetsRequirements(a.Requirements, s.Stats) {
		return a, fmt.Errorf("%w: %s", ErrRequirementsNotMet, a.ID)
	}
	if len(a.JobRequirements) > 0 && !slices.Contains(a.JobRequirements, s.Career.CurrentJobID) {
		return a, fmt.Errorf("%w: %s as %s", ErrJobRestricted, a.ID, s.Career.CurrentJobID)
	}
	if a.Category == model.CategoryInvest && (s.HasPurchased(a.ID) || s.HasActiveBuff(a.ID)) {
		return a, fmt.Errorf("%w: %s", ErrAlreadyPurchased, a.ID)
	}
	if until, ok := s.Flags.Cooldowns[a.ID]; ok && s.Meta.Tick < until {
		return a, fmt.Errorf("%w: %s available at tick %d", ErrOnCooldown, a.ID, until)
	}
	return a, nil
}

// Process performs actionID and returns the resulting state, after passing
// it through the random event engine. The input is never modified.
func Process(reg *data.Registry, s model.GameState, actionID string, src rng.Source) (model.GameState, error) {
	a, err := Validate(reg, s, actionID)
	if err != nil {
		return s, err
	}

	out := s.Clone()
	before := snapshot(out)
	weeks := max(0, a.Duration)
	buffs := out.Flags.ActiveBuffs
	r := &out.Resources

	r.Money -= a.MoneyCost

	r.Energy = calendar.BoundedDeltaInt(r.Energy, -float64(a.EnergyCost), 0, model.MaxEnergy)
	if a.EnergyGain > 0 {
		gain := buff.Apply(buffs, model.BuffRecovery, float64(a.EnergyGain))
		r.Energy = calendar.BoundedDeltaInt(r.Energy, gain, 0, model.MaxEnergy)
	}

	r.Stress = calendar.BoundedDeltaInt(r.Stress, buff.ApplyStress(buffs, a.Rewards.Stress), 0, model.MaxStress)
	r.Fulfillment = calendar.BoundedDeltaInt(r.Fulfillment, a.Rewards.Fulfillment, 0, model.MaxFulfillment)

	if weeks > 0 {
		applyWeeks(reg, &out, weeks)
	}

	applyRewards(&out, a.Rewards)

	if a.Category == model.CategoryInvest {
		if b, ok := buff.FromAction(a, s.Meta.Tick); ok {
			out.Flags.ActiveBuffs = append(out.Flags.ActiveBuffs, b)
		}
		if !a.IsRecurring {
			out.Flags.PurchasedInvestments = append(out.Flags.PurchasedInvestments, a.ID)
		}
	}

	if a.CooldownWeeks > 0 {
		if out.Flags.Cooldowns == nil {
			out.Flags.Cooldowns = make(map[string]int)
		}
		out.Flags.Cooldowns[a.ID] = s.Meta.Tick + a.CooldownWeeks
	}
	if a.Category == model.CategorySkill {
		out.Flags.Streak++
	} else {
		out.Flags.Streak = 0
	}

	// Instant actions still get one debt pass at the unchanged tick.
	debtStress, missed := 0.0, 0
	for i := range max(weeks, 1) {
		if i < weeks {
			out.Meta.Tick++
		}
		res := debt.ProcessWeek(&out)
		debtStress += res.ExtraStress()
		if res.Missed {
			missed++
		}
	}
	if missed > 0 {
		out.AppendLog(model.EventLogEntry{
			Tick:    out.Meta.Tick,
			EventID: EventMissedPayment,
			Message: fmt.Sprintf("Missed %d loan payment(s). Debt stands at $%.0f.", missed, r.Debt),
		})
	}

	r.Stress = calendar.BoundedDeltaInt(r.Stress, debtStress, 0, model.MaxStress)
	out.Flags.IsBurnedOut = mechanics.BurnoutRisk(float64(r.Stress), float64(r.Energy))

	out.AppendLog(model.EventLogEntry{
		Tick:    out.Meta.Tick,
		EventID: EventTurn,
		Message: summarize(a, weeks, before, snapshot(out)),
	})

	out, _ = event.Process(reg, out, src)
	return out, nil
}

// applyWeeks runs the job-driven part of a turn: decay, weekly gains,
// salary and recurring buff upkeep.
func applyWeeks(reg *data.Registry, s *model.GameState, weeks int) {
	job := reg.MustJob(s.Career.CurrentJobID)
	w := float64(weeks)
	buffs := s.Flags.ActiveBuffs

	disp := data.RoleDisplacementFor(job)
	sk, xp := &s.Stats.Skills, &s.Stats.XP
	sk.Coding = mechanics.ApplySkillDelta(sk.Coding, -mechanics.Decay(float64(sk.Coding), disp)*w)
	sk.Politics = mechanics.ApplySkillDelta(sk.Politics, -mechanics.Decay(float64(sk.Politics), disp)*w)

	g := job.WeeklyGains
	sk.Coding = mechanics.ApplySkillDelta(sk.Coding, buff.Apply(buffs, model.BuffCoding, g.Coding*w))
	sk.Politics = mechanics.ApplySkillDelta(sk.Politics, buff.Apply(buffs, model.BuffPolitics, g.Politics*w))
	xp.Corporate = mechanics.ApplyXPDelta(xp.Corporate, buff.Apply(buffs, model.BuffCorporate, g.Corporate*w))
	xp.Freelance = mechanics.ApplyXPDelta(xp.Freelance, buff.Apply(buffs, model.BuffFreelance, g.Freelance*w))
	xp.Reputation = mechanics.ApplyReputationDelta(xp.Reputation, buff.Apply(buffs, model.BuffReputation, g.Reputation*w))

	s.Resources.Money += job.Salary / calendar.WeeksPerYear * w

	if bonus := buff.WeeklyEnergyBonus(buffs); bonus != 0 {
		s.Resources.Energy = calendar.BoundedDeltaInt(s.Resources.Energy, bonus*w, 0, model.MaxEnergy)
	}

	kept, dropped := buff.RemoveUnaffordableRecurring(buffs, s.Resources.Money/w)
	if dropped > 0 {
		for _, b := range buffs {
			if b.IsRecurring && !slices.ContainsFunc(kept, func(k model.ActiveBuff) bool { return k.SourceActionID == b.SourceActionID }) {
				s.AppendLog(model.EventLogEntry{
					Tick:    s.Meta.Tick,
					EventID: EventBuffLapsed,
					Message: fmt.Sprintf("Could not afford $%.0f/week. Lost: %s.", b.WeeklyCost, b.Description),
				})
			}
		}
	}
	s.Flags.ActiveBuffs = kept
	s.Resources.Money -= buff.WeeklyCost(kept) * w
}

func applyRewards(s *model.GameState, rw model.Rewards) {
	buffs := s.Flags.ActiveBuffs
	sk, xp := &s.Stats.Skills, &s.Stats.XP
	sk.Coding = mechanics.ApplySkillDelta(sk.Coding, buff.Apply(buffs, model.BuffCoding, rw.Skill))
	sk.Politics = mechanics.ApplySkillDelta(sk.Politics, buff.Apply(buffs, model.BuffPolitics, rw.Politics))
	xp.Corporate = mechanics.ApplyXPDelta(xp.Corporate, buff.Apply(buffs, model.BuffCorporate, rw.Corporate))
	xp.Freelance = mechanics.ApplyXPDelta(xp.Freelance, buff.Apply(buffs, model.BuffFreelance, rw.Freelance))
	xp.Reputation = mechanics.ApplyReputationDelta(xp.Reputation, buff.Apply(buffs, model.BuffReputation, rw.Reputation))
	s.Resources.Money += rw.Money
}

type stats struct {
	money, debt                      float64
	energy, stress, fulfillment      int
	coding, politics                 int
	corporate, freelance, reputation int
}

func snapshot(s model.GameState) stats {
	return stats{
		money:       s.Resources.Money,
		debt:        s.Resources.Debt,
		energy:      s.Resources.Energy,
		stress:      s.Resources.Stress,
		fulfillment: s.Resources.Fulfillment,
		coding:      s.Stats.Skills.Coding,
		politics:    s.Stats.Skills.Politics,
		corporate:   s.Stats.XP.Corporate,
		freelance:   s.Stats.XP.Freelance,
		reputation:  s.Stats.XP.Reputation,
	}
}

// summarize lists the non-zero deltas of a turn in a fixed order.
func summarize(a model.GameAction, weeks int, before, after stats) string {
	var parts []string
	money := func(name string, d float64) {
		if d >= 0.5 || d <= -0.5 {
			parts = append(parts, fmt.Sprintf("%s %+.0f", name, d))
		}
	}
	num := func(name string, d int) {
		if d != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", name, d))
		}
	}
	money("money", after.money-before.money)
	money("debt", after.debt-before.debt)
	num("energy", after.energy-before.energy)
	num("stress", after.stress-before.stress)
	num("fulfillment", after.fulfillment-before.fulfillment)
	num("coding", after.coding-before.coding)
	num("politics", after.politics-before.politics)
	num("corporate xp", after.corporate-before.corporate)
	num("freelance xp", after.freelance-before.freelance)
	num("reputation", after.reputation-before.reputation)

	head := a.Title
	if weeks > 0 {
		head = fmt.Sprintf("%s (%dw)", a.Title, weeks)
	}
	if len(parts) == 0 {
		return head + ": no change"
	}
	return head + ": " + strings.Join(parts, ", ")
}
