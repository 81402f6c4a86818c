// Package mechanics holds the pure skill formulas: diminishing growth,
// role-based decay and the burnout predicate.
package mechanics

import "math"

// SkillCap is the maximum value of a decaying skill.
const SkillCap = 10000

// DecayRate is the weekly fraction of a skill lost at full role displacement.
const DecayRate = 0.0075

// Burnout thresholds; both must be strictly crossed.
const (
	BurnoutStress = 95
	BurnoutEnergy = 10
)

// DiminishingGrowth returns the effective gain for a skill at currentSkill.
// Gains shrink as the skill rises and never push it past SkillCap.
func DiminishingGrowth(currentSkill, gain float64) float64 {
	actual := gain * SkillCap / (SkillCap + currentSkill)
	if currentSkill+actual > SkillCap {
		actual = SkillCap - currentSkill
	}
	return actual
}

// Decay returns the weekly skill loss for a role with the given displacement
// (0 = fully hands-on, 1 = fully hands-off).
func Decay(coreSkill, roleDisplacement float64) float64 {
	return coreSkill * DecayRate * roleDisplacement
}

// BurnoutRisk reports whether stress and energy are both past their thresholds.
func BurnoutRisk(stress, energy float64) bool {
	return stress > BurnoutStress && energy < BurnoutEnergy
}

// ProjectedSkillChange previews the net weekly change for UI hints.
func ProjectedSkillChange(currentSkill, roleDisplacement, weeklyGain float64) float64 {
	return DiminishingGrowth(currentSkill, weeklyGain) - Decay(currentSkill, roleDisplacement)
}

// ApplySkillDelta applies a signed delta to a decaying skill. Gains go
// through DiminishingGrowth, losses apply directly. The result is floored
// and kept within [0, SkillCap].
func ApplySkillDelta(current int, delta float64) int {
	v := float64(current)
	if delta > 0 {
		v += DiminishingGrowth(v, delta)
	} else {
		v += delta
	}
	return floorClamp(v, 0, SkillCap)
}

// ApplyXPDelta applies a signed delta to an uncapped XP currency floored at 0.
func ApplyXPDelta(current int, delta float64) int {
	return floorClamp(float64(current)+delta, 0, math.MaxInt32)
}

// ApplyReputationDelta applies a signed delta to reputation within [0, SkillCap].
func ApplyReputationDelta(current int, delta float64) int {
	return floorClamp(float64(current)+delta, 0, SkillCap)
}

func floorClamp(v float64, lo, hi int) int {
	return min(max(int(math.Floor(v)), lo), hi)
}
