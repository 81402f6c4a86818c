// Package buff combines passive modifiers installed by INVEST actions.
//
// Modifiers are partitioned by stat. Multipliers stack multiplicatively,
// flat bonuses stack additively; a stat with no modifiers is neutral
// (multiplier 1, flat 0).
package buff

import (
	"cmp"
	"slices"

	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// CombinedMultiplier returns the product of all multiplier buffs on stat, or 1.
func CombinedMultiplier(buffs []model.ActiveBuff, stat model.BuffStat) float64 {
	mul := 1.0
	for _, b := range buffs {
		if b.Stat == stat && b.Type == model.BuffMultiplier {
			mul *= b.Value
		}
	}
	return mul
}

// CombinedFlatBonus returns the sum of all flat buffs on stat, or 0.
func CombinedFlatBonus(buffs []model.ActiveBuff, stat model.BuffStat) float64 {
	flat := 0.0
	for _, b := range buffs {
		if b.Stat == stat && b.Type == model.BuffFlat {
			flat += b.Value
		}
	}
	return flat
}

// Apply returns base*multiplier + flat for skill, XP and recovery stats.
// A zero or negative base passes through unmodified so flat bonuses only
// ride on actual gains.
func Apply(buffs []model.ActiveBuff, stat model.BuffStat, base float64) float64 {
	if base <= 0 {
		return base
	}
	return base*CombinedMultiplier(buffs, stat) + CombinedFlatBonus(buffs, stat)
}

// ApplyStress dampens stress gains. Stress reductions are never amplified.
func ApplyStress(buffs []model.ActiveBuff, base float64) float64 {
	if base <= 0 {
		return base
	}
	return max(0, base*CombinedMultiplier(buffs, model.BuffStress)+CombinedFlatBonus(buffs, model.BuffStress))
}

// WeeklyEnergyBonus returns the flat energy granted per elapsed week.
// Energy buffs have no multiplier path.
func WeeklyEnergyBonus(buffs []model.ActiveBuff) float64 {
	return CombinedFlatBonus(buffs, model.BuffEnergy)
}

// WeeklyCost returns the total weekly upkeep of recurring buffs.
func WeeklyCost(buffs []model.ActiveBuff) float64 {
	total := 0.0
	for _, b := range buffs {
		if b.IsRecurring {
			total += b.WeeklyCost
		}
	}
	return total
}

// RemoveUnaffordableRecurring keeps the cheapest recurring buffs whose running
// weekly cost fits in money and drops the rest. Non-recurring buffs are always
// kept. Relative order of kept buffs is preserved.
func RemoveUnaffordableRecurring(buffs []model.ActiveBuff, money float64) (kept []model.ActiveBuff, droppedCost float64) {
	recurring := make([]int, 0, len(buffs))
	for i, b := range buffs {
		if b.IsRecurring {
			recurring = append(recurring, i)
		}
	}
	slices.SortStableFunc(recurring, func(a, b int) int {
		return cmp.Compare(buffs[a].WeeklyCost, buffs[b].WeeklyCost)
	})

	drop := make(map[int]bool)
	running := 0.0
	for _, i := range recurring {
		if running+buffs[i].WeeklyCost <= money {
			running += buffs[i].WeeklyCost
			continue
		}
		drop[i] = true
		droppedCost += buffs[i].WeeklyCost
	}

	kept = make([]model.ActiveBuff, 0, len(buffs))
	for i, b := range buffs {
		if !drop[i] {
			kept = append(kept, b)
		}
	}
	return kept, droppedCost
}

// FromAction builds the active buff an INVEST action installs at tick.
// Returns false if the action carries no passive buff.
func FromAction(action model.GameAction, tick int) (model.ActiveBuff, bool) {
	if action.PassiveBuff == nil {
		return model.ActiveBuff{}, false
	}
	pb := action.PassiveBuff
	ab := model.ActiveBuff{
		SourceActionID: action.ID,
		Stat:           pb.Stat,
		Type:           pb.Type,
		Value:          pb.Value,
		Description:    pb.Description,
		AcquiredAt:     tick,
		IsRecurring:    action.IsRecurring,
	}
	if action.IsRecurring {
		ab.WeeklyCost = pb.WeeklyCost
	}
	return ab, true
}
