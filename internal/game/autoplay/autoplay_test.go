package autoplay

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/career"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/engine"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/testutil"
)

func TestNext_Recovers(t *testing.T) {
	p := DefaultPolicy()
	reg := data.Default()

	got := p.Next(reg, testutil.NewState(testutil.WithEnergy(10)))
	assert.Equal(t, Decision{Kind: KindAct, ID: "rest"}, got, "therapy does not restore energy")

	got = p.Next(reg, testutil.NewState(testutil.WithStress(80), testutil.WithMoney(5000)))
	assert.Equal(t, Decision{Kind: KindAct, ID: "vacation"}, got)

	got = p.Next(reg, testutil.NewState(testutil.WithStress(80)))
	assert.Equal(t, Decision{Kind: KindAct, ID: "therapy"}, got)

	got = p.Next(reg, testutil.NewState(testutil.WithStress(80), testutil.WithMoney(0)))
	assert.Equal(t, Decision{Kind: KindAct, ID: "rest"}, got)
}

func TestNext_AppliesForBestPaidJob(t *testing.T) {
	p := DefaultPolicy()
	s := testutil.NewState(testutil.WithSkills(200, 0))

	got := p.Next(data.Default(), s)

	assert.Equal(t, Decision{Kind: KindApply, ID: "corp_intern"}, got)
}

func TestNext_HoldsOffAfterFailedInterview(t *testing.T) {
	p := DefaultPolicy()
	s := testutil.NewState(testutil.WithSkills(200, 0), testutil.WithTick(4))
	s.AppendLog(model.EventLogEntry{Tick: 4, EventID: career.EventInterviewFailed})

	got := p.Next(data.Default(), s)

	assert.Equal(t, KindAct, got.Kind)
}

func TestNext_SkipsUnreachableL2(t *testing.T) {
	p := DefaultPolicy()
	s := testutil.NewState(
		testutil.WithJob("corp_mid"),
		testutil.WithSkills(model.MaxSkill, model.MaxSkill),
		testutil.WithXP(100_000, 0, 0),
	)

	got := p.Next(data.Default(), s)

	require.Equal(t, KindApply, got.Kind)
	assert.Equal(t, data.CrossroadSeniorDev, got.ID, "L2 jobs stay closed until the crossroad")
}

func TestNext_Invests(t *testing.T) {
	p := DefaultPolicy()
	s := testutil.NewState(testutil.WithMoney(10000))

	got := p.Next(data.Default(), s)
	assert.Equal(t, Decision{Kind: KindAct, ID: "mech_keyboard"}, got)

	s.Flags.PurchasedInvestments = []string{"mech_keyboard"}
	got = p.Next(data.Default(), s)
	assert.Equal(t, Decision{Kind: KindAct, ID: "ergonomic_chair"}, got)
}

func TestNext_AlternatesSkillAndWork(t *testing.T) {
	p := DefaultPolicy()
	s := testutil.NewState()

	assert.Equal(t, Decision{Kind: KindAct, ID: "side_project"}, p.Next(data.Default(), s))

	s.Flags.Streak = 1
	assert.Equal(t, Decision{Kind: KindAct, ID: "odd_jobs"}, p.Next(data.Default(), s))
}

func play(t *testing.T, seed int64, path model.StartingPath) model.GameState {
	t.Helper()
	e := engine.New(data.Default(), rng.Seeded(seed), nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	p := DefaultPolicy()

	s, err := e.NewGame(engine.Options{PlayerName: "bot", Path: path})
	require.NoError(t, err)

	for i := 0; i < 10_000 && !s.IsOver(); i++ {
		d := p.Next(e.Registry(), s)
		switch d.Kind {
		case KindApply:
			s, _, err = e.Apply(s, d.ID)
		default:
			s, _, err = e.Act(s, d.ID)
		}
		require.NoError(t, err, "move %d: %s %s", i, d.Kind, d.ID)
	}
	return s
}

func TestPlay_Terminates(t *testing.T) {
	for _, path := range []model.StartingPath{model.PathUniversity, model.PathScholar, model.PathBootcamp, model.PathSelfTaught} {
		t.Run(string(path), func(t *testing.T) {
			s := play(t, 7, path)
			assert.True(t, s.IsOver())
			assert.NotEmpty(t, s.GameOverReason)
			assert.LessOrEqual(t, len(s.EventLog), model.MaxEventLog)
		})
	}
}

func TestPlay_Deterministic(t *testing.T) {
	a := play(t, 42, model.PathUniversity)
	b := play(t, 42, model.PathUniversity)
	assert.Equal(t, a, b)
}
