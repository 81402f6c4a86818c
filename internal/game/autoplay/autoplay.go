// Package autoplay picks moves for headless runs. Decisions depend only on
// the state, so a seeded run replays exactly.
package autoplay

import (
	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/career"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/turn"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// Kind tells the driver which engine call to make.
type Kind int

const (
	KindAct Kind = iota
	KindApply
)

func (k Kind) String() string {
	if k == KindApply {
		return "apply"
	}
	return "act"
}

// Decision is one move: an action id for KindAct or a job id for KindApply.
type Decision struct {
	Kind Kind
	ID   string
}

// Policy is a greedy career strategy.
type Policy struct {
	// RecoverEnergy and RecoverStress trigger recovery when crossed.
	RecoverEnergy int
	RecoverStress int
	// InvestReserve is the cash kept back before buying investments.
	InvestReserve float64
	// Investments are bought in order once affordable.
	Investments []string
}

// DefaultPolicy returns the policy used by the batch simulator.
func DefaultPolicy() Policy {
	return Policy{
		RecoverEnergy: 35,
		RecoverStress: 70,
		InvestReserve: 3000,
		Investments:   []string{"mech_keyboard", "ergonomic_chair", "standing_desk"},
	}
}

// Next returns the next move for s.
func (p Policy) Next(reg *data.Registry, s model.GameState) Decision {
	if s.Resources.Stress >= p.RecoverStress {
		return p.firstValid(reg, s, "vacation", "therapy", "rest")
	}
	if s.Resources.Energy < p.RecoverEnergy {
		return p.firstValid(reg, s, "vacation", "rest")
	}

	if id, ok := p.bestJob(reg, s); ok {
		return Decision{Kind: KindApply, ID: id}
	}

	for _, id := range p.Investments {
		a, ok := reg.Action(id)
		if !ok || s.Resources.Money-a.MoneyCost < p.InvestReserve {
			continue
		}
		if _, err := turn.Validate(reg, s, id); err == nil {
			return Decision{Kind: KindAct, ID: id}
		}
	}

	// Alternate building skill and working so both gates keep moving.
	if s.Flags.Streak == 0 {
		return p.firstValid(reg, s, "leetcode_grind", "side_project", "study_algorithms", "rest")
	}
	return p.firstValid(reg, s, "work_overtime", "freelance_gig", "ship_feature", "office_politics", "odd_jobs", "rest")
}

func (p Policy) firstValid(reg *data.Registry, s model.GameState, ids ...string) Decision {
	for _, id := range ids {
		if _, err := turn.Validate(reg, s, id); err == nil {
			return Decision{Kind: KindAct, ID: id}
		}
	}
	return Decision{Kind: KindAct, ID: "rest"}
}

// bestJob returns the best-paid reachable job the player qualifies for that
// pays more than the current one. It holds off for the rest of a week after
// a failed interview.
func (p Policy) bestJob(reg *data.Registry, s model.GameState) (string, bool) {
	if s.HasLogEntry(s.Meta.Tick, career.EventInterviewFailed) {
		return "", false
	}
	current := reg.MustJob(s.Career.CurrentJobID)

	var best model.JobNode
	found := false
	for _, j := range career.GetEligibleJobs(reg, s) {
		if j.IsUnemployed() || j.Salary <= current.Salary || !career.IsReachable(current, j) {
			continue
		}
		if !found || j.Salary > best.Salary {
			best, found = j, true
		}
	}
	return best.ID, found
}
