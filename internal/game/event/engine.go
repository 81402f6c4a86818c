// Package event posts promotion notifications and triggers at most one
// random event per call.
package event

import (
	"fmt"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/career"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/mechanics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// Result reports what a call to Process did.
type Result struct {
	Notified  string // notification event id, empty if none was posted
	Triggered *model.RandomEvent
}

// Process returns a new state with the promotion notification (if any) and
// at most one random event applied. The first eligible event in table order
// whose independent roll succeeds wins; later events are not rolled.
func Process(reg *data.Registry, s model.GameState, src rng.Source) (model.GameState, Result) {
	out := s.Clone()
	var res Result

	if id, msg, ok := promotionNotice(reg, out); ok && !out.HasLogEntry(out.Meta.Tick, id) {
		out.AppendLog(model.EventLogEntry{Tick: out.Meta.Tick, EventID: id, Message: msg})
		res.Notified = id
	}

	for _, ev := range reg.Events() {
		if !IsEligible(reg, ev, out) {
			continue
		}
		if src.Float64() >= ev.BaseProbability {
			continue
		}
		applyEffects(&out, ev.Effects)
		out.AppendLog(model.EventLogEntry{
			Tick:    out.Meta.Tick,
			EventID: ev.ID,
			Message: fmt.Sprintf("%s: %s", ev.Title, ev.Message),
		})
		res.Triggered = &ev
		break
	}
	return out, res
}

func promotionNotice(reg *data.Registry, s model.GameState) (id, msg string, ok bool) {
	if !career.IsReadyForPromotion(reg, s) {
		return "", "", false
	}
	job := reg.MustJob(s.Career.CurrentJobID)
	if career.IsCrossroad(job.ID) {
		return data.EventCrossroads,
			fmt.Sprintf("You have mastered the %s role. Four specializations are open to you: choose your path.", job.Title),
			true
	}
	return data.EventPromotionReady,
		fmt.Sprintf("You have outgrown the %s role. A promotion is within reach.", job.Title),
		true
}

// IsEligible evaluates every requirement predicate of ev against s.
func IsEligible(reg *data.Registry, ev model.RandomEvent, s model.GameState) bool {
	r := ev.Requirements
	if r.MinStress != nil && s.Resources.Stress < *r.MinStress {
		return false
	}
	if r.MaxStress != nil && s.Resources.Stress > *r.MaxStress {
		return false
	}
	if r.MinEnergy != nil && s.Resources.Energy < *r.MinEnergy {
		return false
	}
	if r.MinMoney != nil && s.Resources.Money < *r.MinMoney {
		return false
	}
	if r.MinSkill != nil && s.Stats.Skills.Coding < *r.MinSkill {
		return false
	}
	if r.RequiredTrack != "" || r.MinTier != nil {
		job := reg.MustJob(s.Career.CurrentJobID)
		if r.RequiredTrack != "" && (job.Track != r.RequiredTrack || job.IsUnemployed()) {
			return false
		}
		if r.MinTier != nil && job.Tier < *r.MinTier {
			return false
		}
	}
	return true
}

func applyEffects(s *model.GameState, e model.EventEffects) {
	s.Resources.Money += e.Money
	s.Resources.Stress = calendar.BoundedDeltaInt(s.Resources.Stress, e.Stress, 0, model.MaxStress)
	s.Resources.Energy = calendar.BoundedDeltaInt(s.Resources.Energy, e.Energy, 0, model.MaxEnergy)
	s.Resources.Fulfillment = calendar.BoundedDeltaInt(s.Resources.Fulfillment, e.Fulfillment, 0, model.MaxFulfillment)
	s.Stats.Skills.Coding = mechanics.ApplySkillDelta(s.Stats.Skills.Coding, e.Coding)
	s.Stats.Skills.Politics = mechanics.ApplySkillDelta(s.Stats.Skills.Politics, e.Politics)
	s.Stats.XP.Corporate = mechanics.ApplyXPDelta(s.Stats.XP.Corporate, e.Corporate)
	s.Stats.XP.Freelance = mechanics.ApplyXPDelta(s.Stats.XP.Freelance, e.Freelance)
	s.Stats.XP.Reputation = mechanics.ApplyReputationDelta(s.Stats.XP.Reputation, e.Reputation)
	s.Flags.IsBurnedOut = mechanics.BurnoutRisk(float64(s.Resources.Stress), float64(s.Resources.Energy))
}
