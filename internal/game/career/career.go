// Package career implements the job requirement graph: eligibility,
// promotion readiness, the L1→L2 crossroads and interview odds.
package career

import (
	"errors"
	"fmt"
	"math"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

var (
	ErrUnknownJob         = errors.New("unknown job")
	ErrAlreadyEmployed    = errors.New("already holds this job")
	ErrRequirementsNotMet = errors.New("job requirements not met")
	ErrNotReachable       = errors.New("job not reachable from current position")
)

const (
	interviewBaseChance = 0.5
	interviewMaxBonus   = 0.45
	interviewMaxChance  = 0.95

	// InterviewFailStress is added when an interview is failed.
	InterviewFailStress = 5

	// TrackSwitchPoliticsRetention is the share of politics kept on a track switch.
	TrackSwitchPoliticsRetention = 0.5
)

// Log event ids written by this package.
const (
	EventPromotion       = "promotion"
	EventInterviewFailed = "interview_failed"
)

// CheckJobRequirements reports whether stats satisfy every requirement of job.
func CheckJobRequirements(job model.JobNode, stats model.Stats) bool {
	return MeetsRequirements(job.Requirements, stats)
}

// MeetsRequirements ANDs every threshold of r against stats. Zero fields always pass.
func MeetsRequirements(r model.Requirements, stats model.Stats) bool {
	return stats.Skills.Coding >= r.Coding &&
		stats.Skills.Politics >= r.Politics &&
		stats.XP.Corporate >= r.Corporate &&
		stats.XP.Freelance >= r.Freelance &&
		stats.XP.Reputation >= r.Reputation
}

// GetEligibleJobs returns every job whose requirements are met, excluding the current one.
func GetEligibleJobs(reg *data.Registry, s model.GameState) []model.JobNode {
	var out []model.JobNode
	for _, j := range reg.Jobs() {
		if j.ID == s.Career.CurrentJobID {
			continue
		}
		if CheckJobRequirements(j, s.Stats) {
			out = append(out, j)
		}
	}
	return out
}

// GetNextTierJobs returns same-track jobs one tier above job.
// Terminal jobs have no next tier.
func GetNextTierJobs(reg *data.Registry, job model.JobNode) []model.JobNode {
	if job.IsTerminal() {
		return nil
	}
	var out []model.JobNode
	for _, j := range reg.Jobs() {
		if j.Track == job.Track && j.Tier == job.Tier+1 {
			out = append(out, j)
		}
	}
	return out
}

// IsCrossroad reports whether jobID unlocks the L2 specializations.
func IsCrossroad(jobID string) bool {
	return jobID == data.CrossroadSeniorDev || jobID == data.CrossroadDigitalNomad
}

// GetL2TrackOptions returns the entry job of every L2 track when jobID is a
// crossroad, regardless of which L1 branch led there.
func GetL2TrackOptions(reg *data.Registry, jobID string) []model.JobNode {
	if !IsCrossroad(jobID) {
		return nil
	}
	var out []model.JobNode
	for _, j := range reg.Jobs() {
		if isL2Entry(j) {
			out = append(out, j)
		}
	}
	return out
}

func isL2Entry(j model.JobNode) bool {
	switch j.Track {
	case model.TrackCorpManagement, model.TrackCorpIC:
		return j.Tier == 4
	case model.TrackHustlerBusiness, model.TrackHustlerSpecialist:
		return j.Tier == 3
	default:
		return false
	}
}

// IsReachable reports whether target can be applied for from current.
// L2 jobs are closed to L1 holders except at a crossroad.
func IsReachable(current, target model.JobNode) bool {
	if target.Track.IsL1() || !current.Track.IsL1() {
		return true
	}
	return IsCrossroad(current.ID)
}

// DetectTrackSwitch reports whether moving between the two jobs changes track.
// Moves from or to unemployment never count.
func DetectTrackSwitch(from, to model.JobNode) bool {
	if from.IsUnemployed() || to.IsUnemployed() {
		return false
	}
	return from.Track != to.Track
}

// CalculateTrackSwitchPenalty returns politics after a track switch.
func CalculateTrackSwitchPenalty(politics int) int {
	return int(math.Floor(float64(politics) * TrackSwitchPoliticsRetention))
}

// PromotePlayer moves the player to newJobID. The outgoing job is appended to
// the history and a track switch halves politics (floored).
func PromotePlayer(reg *data.Registry, s model.GameState, newJobID string) (model.GameState, error) {
	target, ok := reg.Job(newJobID)
	if !ok {
		return s, unknownJobError(reg, newJobID)
	}
	current := reg.MustJob(s.Career.CurrentJobID)

	out := s.Clone()
	out.Career.JobHistory = append(out.Career.JobHistory, model.JobHistoryEntry{
		JobID:     current.ID,
		StartTick: s.Career.JobStartTick,
		EndTick:   s.Meta.Tick,
	})
	if DetectTrackSwitch(current, target) {
		out.Stats.Skills.Politics = CalculateTrackSwitchPenalty(out.Stats.Skills.Politics)
	}
	out.Career.CurrentJobID = target.ID
	out.Career.JobStartTick = s.Meta.Tick
	return out, nil
}

// RequiresInterview reports whether moving from current to target needs an
// interview: every L1→L2 move and every terminal role. Other moves are free.
func RequiresInterview(current, target model.JobNode) bool {
	if current.Track.IsL1() && !target.Track.IsL1() {
		return true
	}
	return target.IsTerminal()
}

// IsReadyForPromotion reports whether the current job's XP cap has been reached.
// Corporate tracks count corporate XP, hustler tracks freelance+reputation.
func IsReadyForPromotion(reg *data.Registry, s model.GameState) bool {
	job := reg.MustJob(s.Career.CurrentJobID)
	if job.IsTerminal() || job.IsUnemployed() {
		return false
	}
	limit := *job.XPCap
	switch {
	case job.Track.IsCorporate():
		return s.Stats.XP.Corporate >= limit
	case job.Track.IsHustler():
		return s.Stats.XP.Freelance+s.Stats.XP.Reputation >= limit
	default:
		return false
	}
}

// CalculateInterviewSuccessChance returns the pass probability in [0, 0.95].
// Each defined requirement contributes its fractional overshoot; the average
// adds up to 45% on top of a 50% base. No requirements means a sure pass.
func CalculateInterviewSuccessChance(stats model.Stats, job model.JobNode) float64 {
	r := job.Requirements
	pairs := [][2]int{
		{stats.Skills.Coding, r.Coding},
		{stats.Skills.Politics, r.Politics},
		{stats.XP.Corporate, r.Corporate},
		{stats.XP.Freelance, r.Freelance},
		{stats.XP.Reputation, r.Reputation},
	}

	sum, n := 0.0, 0
	for _, p := range pairs {
		have, need := p[0], p[1]
		if need <= 0 {
			continue
		}
		sum += float64(have-need) / float64(need)
		n++
	}
	if n == 0 {
		return 1.0
	}

	avg := sum / float64(n)
	chance := interviewBaseChance + math.Min(avg*0.5, interviewMaxBonus)
	return calendar.Clamp(chance, 0, interviewMaxChance)
}

// Roller is the random source used for interviews.
type Roller interface {
	Float64() float64
}

// Attempt describes the outcome of a job application.
type Attempt struct {
	JobID       string
	Interviewed bool
	Chance      float64
	Roll        float64
	Hired       bool
	TrackSwitch bool
}

// AttemptJob applies for jobID. Free moves are granted directly; moves that
// require an interview roll against CalculateInterviewSuccessChance. A
// failed interview adds stress and is logged but is not an error.
func AttemptJob(reg *data.Registry, s model.GameState, jobID string, roller Roller) (model.GameState, Attempt, error) {
	target, ok := reg.Job(jobID)
	if !ok {
		return s, Attempt{}, unknownJobError(reg, jobID)
	}
	if target.ID == s.Career.CurrentJobID {
		return s, Attempt{}, fmt.Errorf("%w: %s", ErrAlreadyEmployed, jobID)
	}
	current := reg.MustJob(s.Career.CurrentJobID)
	if !IsReachable(current, target) {
		return s, Attempt{}, fmt.Errorf("%w: %s requires %s or %s first",
			ErrNotReachable, jobID, data.CrossroadSeniorDev, data.CrossroadDigitalNomad)
	}
	if !CheckJobRequirements(target, s.Stats) {
		return s, Attempt{}, fmt.Errorf("%w: %s", ErrRequirementsNotMet, jobID)
	}

	att := Attempt{
		JobID:       jobID,
		Hired:       true,
		Chance:      1.0,
		TrackSwitch: DetectTrackSwitch(current, target),
	}
	if RequiresInterview(current, target) {
		att.Interviewed = true
		att.Chance = CalculateInterviewSuccessChance(s.Stats, target)
		att.Roll = roller.Float64()
		att.Hired = att.Roll < att.Chance
	}

	if !att.Hired {
		out := s.Clone()
		out.Resources.Stress = calendar.BoundedDeltaInt(out.Resources.Stress, InterviewFailStress, 0, model.MaxStress)
		out.AppendLog(model.EventLogEntry{
			Tick:    s.Meta.Tick,
			EventID: EventInterviewFailed,
			Message: fmt.Sprintf("Interview for %s did not go your way (%.0f%% chance).", target.Title, att.Chance*100),
		})
		return out, att, nil
	}

	out, err := PromotePlayer(reg, s, jobID)
	if err != nil {
		return s, Attempt{}, err
	}
	msg := fmt.Sprintf("You are now a %s.", target.Title)
	if att.TrackSwitch {
		msg += fmt.Sprintf(" Switching tracks cost you half your political capital (%d → %d).",
			s.Stats.Skills.Politics, out.Stats.Skills.Politics)
	}
	out.AppendLog(model.EventLogEntry{Tick: s.Meta.Tick, EventID: EventPromotion, Message: msg})
	return out, att, nil
}

func unknownJobError(reg *data.Registry, id string) error {
	if s := reg.SuggestJob(id); s != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownJob, id, s)
	}
	return fmt.Errorf("%w: %q", ErrUnknownJob, id)
}
