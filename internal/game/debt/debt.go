// Package debt implements student-debt accrual, weekly interest and
// minimum payments, plus the annual payment check that can escalate to
// bankruptcy.
package debt

import (
	"math"

	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

const (
	// GraduationAge ends the university period.
	GraduationAge = 22

	// YearlyTuition accrues as principal during university.
	YearlyTuition = 10000.0

	// AnnualInterestRate is simple interest, charged weekly after university.
	AnnualInterestRate = 0.05

	MinimumPaymentFloor = 50.0
	MinimumPaymentRate  = 0.02

	// MissedPaymentStress is added instead of paying when money is short.
	MissedPaymentStress = 5

	// StressPerTenThousand is the weekly stress per $10,000 of debt.
	StressPerTenThousand = 0.5

	// AnnualPaymentFloor and AnnualPaymentRate size the year-end installment.
	AnnualPaymentFloor = 1200.0
	AnnualPaymentRate  = 0.10

	// MaxConsecutiveMissed annual payments before bankruptcy.
	MaxConsecutiveMissed = 3
)

// IsUniversityPeriod reports whether the player is still studying at age.
func IsUniversityPeriod(age int) bool {
	return age < GraduationAge
}

// WeeklyAccrual is the principal added per university week.
func WeeklyAccrual() float64 {
	return YearlyTuition / calendar.WeeksPerYear
}

// WeeklyInterest is the simple interest on debt for one week.
func WeeklyInterest(debt float64) float64 {
	return debt * (AnnualInterestRate / calendar.WeeksPerYear)
}

// MinimumPayment is the weekly amount owed after university.
func MinimumPayment(debt float64) float64 {
	return math.Max(MinimumPaymentFloor, debt*MinimumPaymentRate)
}

// StressPenalty is the weekly stress caused by carrying debt.
func StressPenalty(debt float64) float64 {
	return (debt / 10000) * StressPerTenThousand
}

// WeekResult summarizes one week of debt processing.
type WeekResult struct {
	Accrued       float64
	Interest      float64
	Payment       float64
	Missed        bool
	StressPenalty float64
}

// ExtraStress is the total stress the caller must fold into the turn.
func (r WeekResult) ExtraStress() float64 {
	if r.Missed {
		return r.StressPenalty + MissedPaymentStress
	}
	return r.StressPenalty
}

// ProcessWeek runs one week of debt for s at its current tick and mutates
// s.Resources.Money and s.Resources.Debt. Stress is left to the caller.
func ProcessWeek(s *model.GameState) WeekResult {
	var res WeekResult
	age := calendar.Age(s.Meta.StartAge, s.Meta.Tick)

	if IsUniversityPeriod(age) {
		if s.Flags.AccumulatesDebt {
			res.Accrued = WeeklyAccrual()
			s.Resources.Debt += res.Accrued
		}
	} else if s.Resources.Debt > 0 {
		res.Interest = WeeklyInterest(s.Resources.Debt)
		s.Resources.Debt += res.Interest

		due := MinimumPayment(s.Resources.Debt)
		due = math.Min(due, s.Resources.Debt)
		if s.Resources.Money < due {
			res.Missed = true
		} else {
			res.Payment = due
			s.Resources.Money -= due
			s.Resources.Debt = math.Max(0, s.Resources.Debt-due)
		}
	}

	if s.Resources.Debt > 0 {
		res.StressPenalty = StressPenalty(s.Resources.Debt)
	}
	return res
}

// AnnualPayment is the installment due at year end.
func AnnualPayment(debt float64) float64 {
	return math.Min(debt, math.Max(AnnualPaymentFloor, debt*AnnualPaymentRate))
}

// AnnualResult summarizes the year-end debt check.
type AnnualResult struct {
	Due      float64
	Paid     float64
	Missed   bool
	Bankrupt bool
}

// ProcessAnnualPayment charges the year-end installment. Nothing is due
// during university or without debt. A miss increments both counters; a
// payment resets the consecutive counter. Reaching MaxConsecutiveMissed
// flags the run bankrupt.
func ProcessAnnualPayment(s *model.GameState) AnnualResult {
	var res AnnualResult
	age := calendar.Age(s.Meta.StartAge, s.Meta.Tick)
	if IsUniversityPeriod(age) || s.Resources.Debt <= 0 {
		return res
	}

	res.Due = AnnualPayment(s.Resources.Debt)
	if s.Resources.Money < res.Due {
		res.Missed = true
		s.Flags.ConsecutiveMissedPayments++
		s.Flags.TotalMissedPayments++
		if s.Flags.ConsecutiveMissedPayments >= MaxConsecutiveMissed {
			res.Bankrupt = true
			s.Flags.IsBankrupt = true
		}
		return res
	}

	res.Paid = res.Due
	s.Resources.Money -= res.Due
	s.Resources.Debt = math.Max(0, s.Resources.Debt-res.Due)
	s.Flags.ConsecutiveMissedPayments = 0
	return res
}
