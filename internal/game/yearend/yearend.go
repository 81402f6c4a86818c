// Package yearend settles rent, negative balances, the annual debt payment,
// the performance review and the scholarship countdown once per year.
package yearend

import (
	"fmt"
	"math"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/debt"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

const (
	MinBankruptcyThreshold  = 5000.0
	BankruptcyThresholdRate = 0.5

	// Scholarship grants applied at every year end while years remain.
	ScholarCodingBonus   = 500
	ScholarPoliticsBonus = 100
)

// Log event ids written by this package.
const (
	EventYearEnd    = "year_end"
	EventBankruptcy = "bankruptcy"
	EventGraduation = "graduation"
)

// Rating is the outcome of the performance review.
type Rating string

const (
	RatingExceptional Rating = "exceptional"
	RatingGood        Rating = "good"
	RatingAverage     Rating = "average"
	RatingPoor        Rating = "poor"
)

// BonusRate returns the salary share paid out for the rating.
func (r Rating) BonusRate() float64 {
	switch r {
	case RatingExceptional:
		return 0.20
	case RatingGood:
		return 0.10
	case RatingAverage:
		return 0.05
	default:
		return 0
	}
}

// Report describes one settlement.
type Report struct {
	Year            int
	Rent            float64
	NetIncome       float64
	Bankrupt        bool
	ConvertedToDebt float64
	Annual          debt.AnnualResult
	Score           float64
	Rating          Rating
	Bonus           float64
	Graduated       bool
}

// CalculateYearlyRent returns the yearly rent for jobID. Unknown jobs,
// unemployment and unpaid roles pay nothing. Volatile-income jobs without a
// rent rate pay a fixed amount.
func CalculateYearlyRent(reg *data.Registry, jobID string) float64 {
	job, ok := reg.Job(jobID)
	if !ok || job.IsUnemployed() || job.Salary == 0 {
		return 0
	}
	if job.IncomeType == model.IncomeVolatile && job.RentRate == 0 {
		return data.VolatileYearlyRent
	}
	return math.Round(job.Salary * job.RentRate)
}

// CalculateBankruptcyThreshold returns how far below zero a year may end
// before the run is declared bankrupt.
func CalculateBankruptcyThreshold(salary float64) float64 {
	return math.Max(MinBankruptcyThreshold, salary*BankruptcyThresholdRate)
}

// Review scores the year: coding against the tier expectation, plus a
// reputation bonus, minus a stress penalty.
func Review(job model.JobNode, s model.GameState) (float64, Rating) {
	score := float64(s.Stats.Skills.Coding) / float64(500+job.Tier*1250)

	switch rep := s.Stats.XP.Reputation; {
	case rep > 3000:
		score += 0.5
	case rep > 1000:
		score += 0.25
	}
	switch stress := s.Resources.Stress; {
	case stress > 80:
		score -= 1
	case stress > 60:
		score -= 0.5
	}

	switch {
	case score >= 1.5:
		return score, RatingExceptional
	case score >= 1.0:
		return score, RatingGood
	case score >= 0.6:
		return score, RatingAverage
	default:
		return score, RatingPoor
	}
}

// Settle runs the year-end pipeline on a copy of s. A bankruptcy verdict
// stops the settlement for that year.
func Settle(reg *data.Registry, s model.GameState) (model.GameState, Report) {
	out := s.Clone()
	job := reg.MustJob(out.Career.CurrentJobID)
	rep := Report{
		Year: calendar.DateFromTick(out.Meta.Tick).Year,
		Rent: CalculateYearlyRent(reg, job.ID),
	}
	rep.NetIncome = job.Salary - rep.Rent

	if out.Resources.Money+rep.NetIncome < -CalculateBankruptcyThreshold(job.Salary) {
		rep.Bankrupt = true
		out.Flags.IsBankrupt = true
		out.AppendLog(model.EventLogEntry{
			Tick:    out.Meta.Tick,
			EventID: EventBankruptcy,
			Message: fmt.Sprintf("Year %d closed $%.0f in the red. You are bankrupt.", rep.Year, -(out.Resources.Money + rep.NetIncome)),
		})
		return out, rep
	}

	out.Resources.Money += rep.NetIncome
	if out.Resources.Money < 0 {
		rep.ConvertedToDebt = -out.Resources.Money
		out.Resources.Debt += rep.ConvertedToDebt
		out.Resources.Money = 0
	}

	rep.Annual = debt.ProcessAnnualPayment(&out)
	if rep.Annual.Bankrupt {
		rep.Bankrupt = true
		out.AppendLog(model.EventLogEntry{
			Tick:    out.Meta.Tick,
			EventID: EventBankruptcy,
			Message: fmt.Sprintf("Missed %d loan payments in a row. You are bankrupt.", out.Flags.ConsecutiveMissedPayments),
		})
		return out, rep
	}

	rep.Score, rep.Rating = Review(job, out)
	rep.Bonus = job.Salary * rep.Rating.BonusRate()
	out.Resources.Money += rep.Bonus

	if out.Flags.IsScholar && out.Flags.ScholarYearsRemaining > 0 {
		out.Flags.ScholarYearsRemaining--
		out.Stats.Skills.Coding = min(out.Stats.Skills.Coding+ScholarCodingBonus, model.MaxSkill)
		out.Stats.Skills.Politics = min(out.Stats.Skills.Politics+ScholarPoliticsBonus, model.MaxSkill)
		if out.Flags.ScholarYearsRemaining == 0 {
			out.Flags.HasGraduated = true
			rep.Graduated = true
			out.AppendLog(model.EventLogEntry{
				Tick:    out.Meta.Tick,
				EventID: EventGraduation,
				Message: "You graduated debt-free on a full scholarship.",
			})
		}
	}

	out.AppendLog(model.EventLogEntry{
		Tick:    out.Meta.Tick,
		EventID: EventYearEnd,
		Message: summary(rep),
	})
	return out, rep
}

func summary(rep Report) string {
	msg := fmt.Sprintf("Year %d: rent $%.0f, net $%.0f, review %s", rep.Year, rep.Rent, rep.NetIncome, rep.Rating)
	if rep.Bonus > 0 {
		msg += fmt.Sprintf(" (bonus $%.0f)", rep.Bonus)
	}
	if rep.ConvertedToDebt > 0 {
		msg += fmt.Sprintf(", $%.0f shortfall moved to debt", rep.ConvertedToDebt)
	}
	switch {
	case rep.Annual.Missed:
		msg += fmt.Sprintf(", missed $%.0f loan payment", rep.Annual.Due)
	case rep.Annual.Paid > 0:
		msg += fmt.Sprintf(", paid $%.0f on loans", rep.Annual.Paid)
	}
	return msg + "."
}
