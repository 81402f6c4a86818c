package yearend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/testutil"
)

const yearEndTick = 51

func TestCalculateYearlyRent(t *testing.T) {
	reg := data.Default()

	assert.Equal(t, math.Round(41600*0.35), CalculateYearlyRent(reg, "corp_junior"))
	assert.Equal(t, 0.0, CalculateYearlyRent(reg, model.UnemployedJobID))
	assert.Equal(t, 0.0, CalculateYearlyRent(reg, "no_such_job"))
	assert.Equal(t, float64(data.VolatileYearlyRent), CalculateYearlyRent(reg, "hustler_gig"))
}

func TestCalculateBankruptcyThreshold(t *testing.T) {
	assert.Equal(t, 5000.0, CalculateBankruptcyThreshold(0))
	assert.Equal(t, 100000.0, CalculateBankruptcyThreshold(200000))
	assert.Equal(t, 5000.0, CalculateBankruptcyThreshold(9999))
}

func TestReview(t *testing.T) {
	junior := data.Default().MustJob("corp_junior") // expectation 1750

	tests := []struct {
		name       string
		coding     int
		reputation int
		stress     int
		want       Rating
	}{
		{"exceptional", 2625, 0, 0, RatingExceptional},
		{"good", 1750, 0, 0, RatingGood},
		{"average", 1050, 0, 0, RatingAverage},
		{"poor", 1000, 0, 0, RatingPoor},
		{"reputation lifts to good", 1313, 1001, 0, RatingGood},
		{"high reputation lifts to exceptional", 1750, 3001, 0, RatingExceptional},
		{"stress drags to poor", 1750, 0, 81, RatingPoor},
		{"moderate stress drags to poor", 1750, 0, 61, RatingPoor},
		{"stress at 60 is free", 1750, 0, 60, RatingGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewState(
				testutil.WithSkills(tt.coding, 0),
				testutil.WithXP(0, 0, tt.reputation),
				testutil.WithStress(tt.stress),
			)
			_, got := Review(junior, s)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettle_PaysRentAndBonus(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(
		testutil.WithJob("corp_junior"),
		testutil.WithTick(yearEndTick),
		testutil.WithSkills(1750, 0),
	)

	out, rep := Settle(reg, s)

	rent := math.Round(41600 * 0.35)
	assert.Equal(t, 1, rep.Year)
	assert.Equal(t, rent, rep.Rent)
	assert.Equal(t, 41600-rent, rep.NetIncome)
	assert.Equal(t, RatingGood, rep.Rating)
	assert.InDelta(t, 4160.0, rep.Bonus, 1e-9)
	assert.InDelta(t, 1000+41600-rent+4160, out.Resources.Money, 1e-6)
	assert.False(t, rep.Bankrupt)
	assert.Equal(t, EventYearEnd, out.EventLog[len(out.EventLog)-1].EventID)
	assert.Equal(t, testutil.Fixtures.Money, s.Resources.Money, "input untouched")
}

func TestSettle_Bankruptcy(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(testutil.WithTick(yearEndTick), testutil.WithMoney(-5001))

	out, rep := Settle(reg, s)

	assert.True(t, rep.Bankrupt)
	assert.True(t, out.Flags.IsBankrupt)
	assert.Equal(t, -5001.0, out.Resources.Money, "no further processing that year")
	assert.Equal(t, Rating(""), rep.Rating)
}

func TestSettle_NegativeBalanceBecomesDebt(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(testutil.WithStartAge(22), testutil.WithTick(yearEndTick), testutil.WithMoney(-3000))

	out, rep := Settle(reg, s)

	require.False(t, rep.Bankrupt)
	assert.Equal(t, 3000.0, rep.ConvertedToDebt)
	assert.Equal(t, 0.0, out.Resources.Money)
	assert.Equal(t, 3000.0, out.Resources.Debt)
	assert.True(t, rep.Annual.Missed, "no cash left for the annual payment")
	assert.Equal(t, 1, out.Flags.ConsecutiveMissedPayments)
}

func TestSettle_AnnualPaymentEscalatesToBankruptcy(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(
		testutil.WithStartAge(22),
		testutil.WithTick(yearEndTick),
		testutil.WithMoney(0),
		testutil.WithDebt(20000),
	)
	s.Flags.ConsecutiveMissedPayments = 2
	s.Flags.TotalMissedPayments = 4

	out, rep := Settle(reg, s)

	assert.True(t, rep.Bankrupt)
	assert.True(t, rep.Annual.Bankrupt)
	assert.True(t, out.Flags.IsBankrupt)
	assert.Equal(t, 3, out.Flags.ConsecutiveMissedPayments)
	assert.Equal(t, 5, out.Flags.TotalMissedPayments)
}

func TestSettle_AnnualPaymentResetsCounter(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(
		testutil.WithStartAge(22),
		testutil.WithTick(yearEndTick),
		testutil.WithMoney(5000),
		testutil.WithDebt(20000),
	)
	s.Flags.ConsecutiveMissedPayments = 2

	out, rep := Settle(reg, s)

	assert.InDelta(t, 2000.0, rep.Annual.Paid, 1e-9)
	assert.InDelta(t, 3000.0, out.Resources.Money, 1e-9)
	assert.InDelta(t, 18000.0, out.Resources.Debt, 1e-9)
	assert.Equal(t, 0, out.Flags.ConsecutiveMissedPayments)
}

func TestSettle_Scholarship(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(testutil.WithTick(yearEndTick), testutil.WithScholarship(2), testutil.WithSkills(100, 50))

	out, rep := Settle(reg, s)
	assert.Equal(t, 1, out.Flags.ScholarYearsRemaining)
	assert.Equal(t, 600, out.Stats.Skills.Coding)
	assert.Equal(t, 150, out.Stats.Skills.Politics)
	assert.False(t, rep.Graduated)
	assert.False(t, out.Flags.HasGraduated)

	out.Meta.Tick += 52
	out, rep = Settle(reg, out)
	assert.Equal(t, 0, out.Flags.ScholarYearsRemaining)
	assert.True(t, rep.Graduated)
	assert.True(t, out.Flags.HasGraduated)
	assert.True(t, out.HasLogEntry(out.Meta.Tick, EventGraduation))

	out.Meta.Tick += 52
	after, _ := Settle(reg, out)
	assert.Equal(t, out.Stats.Skills.Coding, after.Stats.Skills.Coding, "no grant after graduation")
}
