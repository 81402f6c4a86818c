package buff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

func mul(stat model.BuffStat, v float64) model.ActiveBuff {
	return model.ActiveBuff{SourceActionID: "m_" + string(stat), Stat: stat, Type: model.BuffMultiplier, Value: v}
}

func flat(stat model.BuffStat, v float64) model.ActiveBuff {
	return model.ActiveBuff{SourceActionID: "f_" + string(stat), Stat: stat, Type: model.BuffFlat, Value: v}
}

func recurring(id string, cost float64) model.ActiveBuff {
	return model.ActiveBuff{SourceActionID: id, Stat: model.BuffEnergy, Type: model.BuffFlat, Value: 1, IsRecurring: true, WeeklyCost: cost}
}

func TestCombinedMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, CombinedMultiplier(nil, model.BuffCoding))

	buffs := []model.ActiveBuff{mul(model.BuffCoding, 1.1), mul(model.BuffCoding, 2), mul(model.BuffPolitics, 3), flat(model.BuffCoding, 5)}
	assert.InDelta(t, 2.2, CombinedMultiplier(buffs, model.BuffCoding), 1e-9)
	assert.Equal(t, 3.0, CombinedMultiplier(buffs, model.BuffPolitics))
	assert.Equal(t, 1.0, CombinedMultiplier(buffs, model.BuffStress))
}

func TestCombinedFlatBonus(t *testing.T) {
	assert.Equal(t, 0.0, CombinedFlatBonus(nil, model.BuffEnergy))

	buffs := []model.ActiveBuff{flat(model.BuffEnergy, 5), flat(model.BuffEnergy, 3), mul(model.BuffEnergy, 2)}
	assert.Equal(t, 8.0, CombinedFlatBonus(buffs, model.BuffEnergy))
}

func TestApply(t *testing.T) {
	buffs := []model.ActiveBuff{mul(model.BuffCoding, 1.5), flat(model.BuffCoding, 10)}

	assert.Equal(t, 160.0, Apply(buffs, model.BuffCoding, 100))
	assert.Equal(t, 100.0, Apply(buffs, model.BuffPolitics, 100), "unbuffed stat passes through")
	assert.Equal(t, 0.0, Apply(buffs, model.BuffCoding, 0), "flat bonus needs an actual gain")
}

func TestApplyStress(t *testing.T) {
	buffs := []model.ActiveBuff{mul(model.BuffStress, 0.5)}

	assert.Equal(t, 5.0, ApplyStress(buffs, 10), "gains are dampened")
	assert.Equal(t, -20.0, ApplyStress(buffs, -20), "reductions pass through unmodified")

	negFlat := []model.ActiveBuff{flat(model.BuffStress, -50)}
	assert.Equal(t, 0.0, ApplyStress(negFlat, 10), "dampened gain never goes negative")
}

func TestWeeklyEnergyBonus_FlatOnly(t *testing.T) {
	buffs := []model.ActiveBuff{flat(model.BuffEnergy, 5), mul(model.BuffEnergy, 10)}
	assert.Equal(t, 5.0, WeeklyEnergyBonus(buffs))
}

func TestRemoveUnaffordableRecurring(t *testing.T) {
	chair := model.ActiveBuff{SourceActionID: "chair", Stat: model.BuffStress, Type: model.BuffMultiplier, Value: 0.8}
	buffs := []model.ActiveBuff{recurring("coach", 40), chair, recurring("gym", 15), recurring("circle", 10)}

	kept, dropped := RemoveUnaffordableRecurring(buffs, 30)

	require.Len(t, kept, 3)
	assert.Equal(t, "chair", kept[0].SourceActionID, "order preserved")
	assert.Equal(t, "gym", kept[1].SourceActionID)
	assert.Equal(t, "circle", kept[2].SourceActionID)
	assert.Equal(t, 40.0, dropped)
}

func TestRemoveUnaffordableRecurring_NegativeMoneyKeepsOnlyOneTime(t *testing.T) {
	chair := model.ActiveBuff{SourceActionID: "chair"}
	buffs := []model.ActiveBuff{recurring("gym", 15), chair}

	kept, dropped := RemoveUnaffordableRecurring(buffs, -100)

	require.Len(t, kept, 1)
	assert.Equal(t, "chair", kept[0].SourceActionID)
	assert.Equal(t, 15.0, dropped)
}

func TestRemoveUnaffordableRecurring_AllAffordable(t *testing.T) {
	buffs := []model.ActiveBuff{recurring("gym", 15), recurring("coach", 40)}

	kept, dropped := RemoveUnaffordableRecurring(buffs, 55)

	assert.Len(t, kept, 2)
	assert.Equal(t, 0.0, dropped)
	assert.Equal(t, 55.0, WeeklyCost(kept))
}

func TestFromAction(t *testing.T) {
	action := model.GameAction{
		ID:          "gym_membership",
		IsRecurring: true,
		PassiveBuff: &model.PassiveBuff{Stat: model.BuffEnergy, Type: model.BuffFlat, Value: 5, WeeklyCost: 15},
	}

	ab, ok := FromAction(action, 42)
	require.True(t, ok)
	assert.Equal(t, "gym_membership", ab.SourceActionID)
	assert.Equal(t, 42, ab.AcquiredAt)
	assert.True(t, ab.IsRecurring)
	assert.Equal(t, 15.0, ab.WeeklyCost)

	_, ok = FromAction(model.GameAction{ID: "rest"}, 0)
	assert.False(t, ok)
}
