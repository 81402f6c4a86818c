package career

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/testutil"
)

func job(t *testing.T, id string) model.JobNode {
	t.Helper()
	j, ok := data.Default().Job(id)
	require.True(t, ok, "job %s", id)
	return j
}

func TestCheckJobRequirements(t *testing.T) {
	junior := job(t, "corp_junior") // coding 800, corporate 300

	tests := []struct {
		name  string
		stats model.Stats
		want  bool
	}{
		{"exactly met", model.Stats{Skills: model.Skills{Coding: 800}, XP: model.XP{Corporate: 300}}, true},
		{"coding short", model.Stats{Skills: model.Skills{Coding: 799}, XP: model.XP{Corporate: 300}}, false},
		{"corporate short", model.Stats{Skills: model.Skills{Coding: 5000}, XP: model.XP{Corporate: 0}}, false},
		{"undefined fields ignored", model.Stats{Skills: model.Skills{Coding: 800}, XP: model.XP{Corporate: 300}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckJobRequirements(junior, tt.stats))
		})
	}

	assert.True(t, CheckJobRequirements(job(t, model.UnemployedJobID), model.Stats{}))
}

func TestGetEligibleJobs_NeverIncludesCurrent(t *testing.T) {
	reg := data.Default()
	for _, j := range reg.Jobs() {
		s := testutil.NewState(testutil.WithJob(j.ID), testutil.WithSkills(10000, 10000), testutil.WithXP(50000, 50000, 10000))
		for _, e := range GetEligibleJobs(reg, s) {
			assert.NotEqual(t, j.ID, e.ID)
		}
	}
}

func TestGetEligibleJobs_Beginner(t *testing.T) {
	s := testutil.NewState(testutil.WithSkills(120, 0))

	ids := jobIDs(GetEligibleJobs(data.Default(), s))

	assert.ElementsMatch(t, []string{"corp_intern", "hustler_gig"}, ids)
}

func TestGetNextTierJobs(t *testing.T) {
	reg := data.Default()

	assert.Equal(t, []string{"corp_junior"}, jobIDs(GetNextTierJobs(reg, job(t, "corp_intern"))))
	assert.Equal(t, []string{"mgmt_vp"}, jobIDs(GetNextTierJobs(reg, job(t, "mgmt_director"))))
	assert.Empty(t, GetNextTierJobs(reg, job(t, "mgmt_vp")), "terminal")
	assert.Empty(t, GetNextTierJobs(reg, job(t, data.CrossroadSeniorDev)), "L1 ends at the crossroad")
}

func TestGetL2TrackOptions(t *testing.T) {
	reg := data.Default()
	want := []string{"biz_founder", "spec_consultant", "ic_staff", "mgmt_manager"}

	assert.ElementsMatch(t, want, jobIDs(GetL2TrackOptions(reg, data.CrossroadSeniorDev)))
	assert.ElementsMatch(t, want, jobIDs(GetL2TrackOptions(reg, data.CrossroadDigitalNomad)),
		"choice is not restricted by the L1 branch")
	assert.Empty(t, GetL2TrackOptions(reg, "corp_mid"))
	assert.Empty(t, GetL2TrackOptions(reg, "ic_staff"))
}

func TestDetectTrackSwitch(t *testing.T) {
	assert.False(t, DetectTrackSwitch(job(t, model.UnemployedJobID), job(t, "hustler_gig")))
	assert.False(t, DetectTrackSwitch(job(t, "hustler_gig"), job(t, model.UnemployedJobID)))
	assert.False(t, DetectTrackSwitch(job(t, "corp_junior"), job(t, "corp_mid")))
	assert.True(t, DetectTrackSwitch(job(t, "corp_junior"), job(t, "hustler_freelancer")))
	assert.True(t, DetectTrackSwitch(job(t, data.CrossroadSeniorDev), job(t, "ic_staff")))
}

func TestCalculateTrackSwitchPenalty(t *testing.T) {
	assert.Equal(t, 500, CalculateTrackSwitchPenalty(1001))
	assert.Equal(t, 500, CalculateTrackSwitchPenalty(1000))
	assert.Equal(t, 0, CalculateTrackSwitchPenalty(1))
}

func TestPromotePlayer_TrackSwitchFloorsPolitics(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(testutil.WithJob(data.CrossroadSeniorDev), testutil.WithSkills(6000, 1001), testutil.WithTick(200))
	s.Career.JobStartTick = 150

	out, err := PromotePlayer(reg, s, "ic_staff")
	require.NoError(t, err)

	assert.Equal(t, 500, out.Stats.Skills.Politics)
	assert.Equal(t, "ic_staff", out.Career.CurrentJobID)
	assert.Equal(t, 200, out.Career.JobStartTick)
	require.Len(t, out.Career.JobHistory, 1)
	assert.Equal(t, model.JobHistoryEntry{JobID: data.CrossroadSeniorDev, StartTick: 150, EndTick: 200}, out.Career.JobHistory[0])

	assert.Equal(t, 1001, s.Stats.Skills.Politics, "input not mutated")
	assert.Equal(t, data.CrossroadSeniorDev, s.Career.CurrentJobID)
	assert.Empty(t, s.Career.JobHistory)
}

func TestPromotePlayer_SameTrackKeepsPolitics(t *testing.T) {
	s := testutil.NewState(testutil.WithJob("corp_junior"), testutil.WithSkills(3000, 1001))

	out, err := PromotePlayer(data.Default(), s, "corp_mid")
	require.NoError(t, err)

	assert.Equal(t, 1001, out.Stats.Skills.Politics)
}

func TestPromotePlayer_UnknownJob(t *testing.T) {
	s := testutil.NewState()

	_, err := PromotePlayer(data.Default(), s, "corp_junoir")

	require.ErrorIs(t, err, ErrUnknownJob)
	assert.Contains(t, err.Error(), "corp_junior", "suggests the closest id")
}

func TestRequiresInterview(t *testing.T) {
	assert.True(t, RequiresInterview(job(t, data.CrossroadSeniorDev), job(t, "mgmt_manager")), "L1 to L2")
	assert.True(t, RequiresInterview(job(t, data.CrossroadDigitalNomad), job(t, "ic_staff")), "L1 to L2")
	assert.True(t, RequiresInterview(job(t, "mgmt_director"), job(t, "mgmt_vp")), "terminal target")
	assert.False(t, RequiresInterview(job(t, "corp_junior"), job(t, "corp_mid")))
	assert.False(t, RequiresInterview(job(t, "ic_staff"), job(t, "ic_principal")))
}

func TestIsReadyForPromotion(t *testing.T) {
	reg := data.Default()

	tests := []struct {
		name string
		s    model.GameState
		want bool
	}{
		{"corporate below cap", testutil.NewState(testutil.WithJob("corp_junior"), testutil.WithXP(1499, 0, 0)), false},
		{"corporate at cap", testutil.NewState(testutil.WithJob("corp_junior"), testutil.WithXP(1500, 0, 0)), true},
		{"corporate ignores freelance", testutil.NewState(testutil.WithJob("corp_junior"), testutil.WithXP(0, 5000, 5000)), false},
		{"hustler sums freelance and reputation", testutil.NewState(testutil.WithJob("hustler_freelancer"), testutil.WithXP(0, 1000, 500)), true},
		{"hustler below cap", testutil.NewState(testutil.WithJob("hustler_freelancer"), testutil.WithXP(9000, 1000, 499)), false},
		{"terminal never ready", testutil.NewState(testutil.WithJob("mgmt_vp"), testutil.WithXP(99999, 0, 0)), false},
		{"unemployed never ready", testutil.NewState(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReadyForPromotion(reg, tt.s))
		})
	}
}

func TestCalculateInterviewSuccessChance(t *testing.T) {
	staff := job(t, "ic_staff") // coding 5000, corporate 5000, politics 1200

	atReq := model.Stats{Skills: model.Skills{Coding: 5000, Politics: 1200}, XP: model.XP{Corporate: 5000}}
	assert.InDelta(t, 0.5, CalculateInterviewSuccessChance(atReq, staff), 1e-9)

	// +20% overshoot on every dimension => 0.5 + 0.1
	over := model.Stats{Skills: model.Skills{Coding: 6000, Politics: 1440}, XP: model.XP{Corporate: 6000}}
	assert.InDelta(t, 0.6, CalculateInterviewSuccessChance(over, staff), 1e-9)

	huge := model.Stats{Skills: model.Skills{Coding: 10000, Politics: 10000}, XP: model.XP{Corporate: 50000}}
	assert.InDelta(t, 0.95, CalculateInterviewSuccessChance(huge, staff), 1e-9)

	assert.Equal(t, 1.0, CalculateInterviewSuccessChance(model.Stats{}, job(t, model.UnemployedJobID)))
}

func TestAttemptJob_FreePromotion(t *testing.T) {
	s := testutil.NewState(testutil.WithJob("corp_junior"), testutil.WithSkills(2500, 400), testutil.WithXP(1500, 0, 0))

	out, att, err := AttemptJob(data.Default(), s, "corp_mid", rng.Always(0.99))
	require.NoError(t, err)

	assert.False(t, att.Interviewed)
	assert.True(t, att.Hired)
	assert.Equal(t, "corp_mid", out.Career.CurrentJobID)
	require.NotEmpty(t, out.EventLog)
	assert.Equal(t, EventPromotion, out.EventLog[len(out.EventLog)-1].EventID)
}

func TestAttemptJob_InterviewPassAndFail(t *testing.T) {
	reg := data.Default()
	s := testutil.NewState(testutil.WithJob(data.CrossroadSeniorDev), testutil.WithSkills(6000, 2000), testutil.WithXP(6000, 0, 0), testutil.WithStress(10))

	passed, att, err := AttemptJob(reg, s, "ic_staff", rng.Always(0.0))
	require.NoError(t, err)
	assert.True(t, att.Interviewed)
	assert.True(t, att.Hired)
	assert.True(t, att.TrackSwitch)
	assert.Equal(t, "ic_staff", passed.Career.CurrentJobID)
	assert.Equal(t, 1000, passed.Stats.Skills.Politics)

	failed, att, err := AttemptJob(reg, s, "ic_staff", rng.Always(0.99))
	require.NoError(t, err)
	assert.True(t, att.Interviewed)
	assert.False(t, att.Hired)
	assert.Equal(t, data.CrossroadSeniorDev, failed.Career.CurrentJobID)
	assert.Equal(t, 10+InterviewFailStress, failed.Resources.Stress)
	assert.Equal(t, EventInterviewFailed, failed.EventLog[len(failed.EventLog)-1].EventID)
}

func TestAttemptJob_Errors(t *testing.T) {
	reg := data.Default()

	_, _, err := AttemptJob(reg, testutil.NewState(), "nope", rng.Always(0))
	assert.ErrorIs(t, err, ErrUnknownJob)

	_, _, err = AttemptJob(reg, testutil.NewState(testutil.WithJob("corp_mid")), "corp_mid", rng.Always(0))
	assert.ErrorIs(t, err, ErrAlreadyEmployed)

	_, _, err = AttemptJob(reg, testutil.NewState(), "corp_junior", rng.Always(0))
	assert.ErrorIs(t, err, ErrRequirementsNotMet)

	strong := testutil.NewState(testutil.WithJob("corp_mid"), testutil.WithSkills(9000, 9000), testutil.WithXP(9000, 9000, 9000))
	_, _, err = AttemptJob(reg, strong, "ic_staff", rng.Always(0))
	assert.ErrorIs(t, err, ErrNotReachable, "L2 only from a crossroad")
}

func jobIDs(jobs []model.JobNode) []string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}
	return ids
}

func TestIsReachable(t *testing.T) {
	assert.True(t, IsReachable(job(t, "corp_junior"), job(t, "corp_mid")))
	assert.True(t, IsReachable(job(t, "corp_senior"), job(t, "biz_founder")), "crossroad opens every L2 track")
	assert.True(t, IsReachable(job(t, "hustler_nomad"), job(t, "ic_staff")))
	assert.False(t, IsReachable(job(t, "corp_mid"), job(t, "mgmt_manager")))
	assert.False(t, IsReachable(job(t, model.UnemployedJobID), job(t, "spec_consultant")))
	assert.True(t, IsReachable(job(t, "mgmt_manager"), job(t, "ic_principal")))
	assert.True(t, IsReachable(job(t, "biz_ceo"), job(t, "corp_intern")), "stepping back to L1 is always open")
}
