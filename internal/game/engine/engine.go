// Package engine wires the simulation pipeline together:
// turn, then every crossed year end, then the game-over check.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/career"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/gameover"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/turn"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/yearend"
	"github.com/rahidmondal/life-at-dev-sub000/internal/metrics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

var ErrUnknownPath = errors.New("unknown starting path")

// Starting conditions.
const (
	StartingMoney     = 1000.0
	DefaultStartAge   = 18
	BootcampStartAge  = 22
	BootcampDebt      = 15000.0
	ScholarshipYears  = 4
	DefaultPlayerName = "Dev"
)

// Log event ids written by this package.
const (
	EventGameStart = "game_start"
	EventGameOver  = "game_over"
)

// Options configure a new run.
type Options struct {
	PlayerName string
	Path       model.StartingPath
}

// Report describes everything a pipeline call did besides the state change.
type Report struct {
	YearEnds []yearend.Report
	Attempt  *career.Attempt
	Result   gameover.Result
}

// Engine runs the pipeline against an injected registry and random source.
// An Engine is not safe for concurrent use because its random source is not;
// use one Engine per run.
type Engine struct {
	reg     *data.Registry
	rng     rng.Source
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates an engine. A nil logger falls back to slog.Default();
// nil metrics disable instrumentation.
func New(reg *data.Registry, src rng.Source, m *metrics.Metrics, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{reg: reg, rng: src, metrics: m, logger: logger}
}

// Registry returns the registry the engine runs against.
func (e *Engine) Registry() *data.Registry {
	return e.reg
}

// NewGame builds the opening state for the chosen starting path.
func (e *Engine) NewGame(opts Options) (model.GameState, error) {
	s, err := NewGame(opts)
	if err != nil {
		return s, err
	}
	e.metrics.GameStarted()
	e.logger.Info("game started",
		"player", s.Meta.PlayerName,
		"path", s.Flags.StartingPath,
		"start_age", s.Meta.StartAge,
		"debt", s.Resources.Debt)
	return s, nil
}

// NewGame builds the opening state for the chosen starting path.
func NewGame(opts Options) (model.GameState, error) {
	name := opts.PlayerName
	if name == "" {
		name = DefaultPlayerName
	}
	path := opts.Path
	if path == "" {
		path = model.PathSelfTaught
	}

	s := model.GameState{
		Meta: model.Meta{
			Version:    model.StateVersion,
			StartAge:   DefaultStartAge,
			PlayerName: name,
		},
		Resources: model.Resources{
			Money:  StartingMoney,
			Energy: model.MaxEnergy,
		},
		Career: model.Career{
			CurrentJobID: model.UnemployedJobID,
			JobHistory:   []model.JobHistoryEntry{},
		},
		Flags: model.Flags{
			Cooldowns:            map[string]int{},
			StartingPath:         path,
			PurchasedInvestments: []string{},
			ActiveBuffs:          []model.ActiveBuff{},
		},
		EventLog: []model.EventLogEntry{},
		Status:   model.StatusPlaying,
	}

	var intro string
	switch path {
	case model.PathUniversity:
		s.Flags.AccumulatesDebt = true
		intro = "You enrolled at university. Tuition piles up until you graduate at 22."
	case model.PathScholar:
		s.Flags.IsScholar = true
		s.Flags.ScholarYearsRemaining = ScholarshipYears
		intro = "You won a full scholarship. Four years of study, no debt."
	case model.PathBootcamp:
		s.Meta.StartAge = BootcampStartAge
		s.Resources.Debt = BootcampDebt
		intro = fmt.Sprintf("You finished a coding bootcamp at %d with $%.0f of debt.", BootcampStartAge, BootcampDebt)
	case model.PathSelfTaught:
		intro = "You are teaching yourself to code. No degree, no debt."
	default:
		return model.GameState{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	s.AppendLog(model.EventLogEntry{Tick: 0, EventID: EventGameStart, Message: intro})
	return s, nil
}

// Act performs actionID, settles every year end the turn crossed and
// evaluates the end conditions. On error the input state is returned unchanged.
func (e *Engine) Act(s model.GameState, actionID string) (model.GameState, Report, error) {
	var rep Report

	out, err := turn.Process(e.reg, s, actionID, e.rng)
	if err != nil {
		e.metrics.RecordRejected(rejectReason(err))
		e.logger.Debug("action rejected", "action", actionID, "tick", s.Meta.Tick, "error", err)
		return s, rep, fmt.Errorf("acting %s: %w", actionID, err)
	}
	if a, ok := e.reg.Action(actionID); ok {
		e.metrics.RecordTurn(string(a.Category))
	}

	for _, end := range calendar.YearEndsBetween(s.Meta.Tick, out.Meta.Tick) {
		now := out.Meta.Tick
		out.Meta.Tick = end
		var yr yearend.Report
		out, yr = yearend.Settle(e.reg, out)
		out.Meta.Tick = now

		rep.YearEnds = append(rep.YearEnds, yr)
		if yr.Rating != "" {
			e.metrics.RecordReview(string(yr.Rating))
		}
		e.logger.Debug("year settled",
			"player", out.Meta.PlayerName,
			"year", yr.Year,
			"rent", yr.Rent,
			"rating", yr.Rating,
			"bankrupt", yr.Bankrupt)
		if yr.Bankrupt {
			break
		}
	}

	out, rep.Result = e.evaluate(out)
	return out, rep, nil
}

// Apply applies for jobID, interviewing when required, and evaluates the
// end conditions. A failed interview is not an error.
func (e *Engine) Apply(s model.GameState, jobID string) (model.GameState, Report, error) {
	var rep Report
	if s.IsOver() {
		return s, rep, fmt.Errorf("applying for %s: %w", jobID, turn.ErrGameOver)
	}

	out, att, err := career.AttemptJob(e.reg, s, jobID, e.rng)
	if err != nil {
		e.metrics.RecordRejected(rejectReason(err))
		e.logger.Debug("application rejected", "job", jobID, "tick", s.Meta.Tick, "error", err)
		return s, rep, fmt.Errorf("applying for %s: %w", jobID, err)
	}
	rep.Attempt = &att

	result := "hired"
	if !att.Hired {
		result = "failed"
	}
	e.metrics.RecordInterview(result)
	e.logger.Debug("job application",
		"player", s.Meta.PlayerName,
		"job", jobID,
		"interviewed", att.Interviewed,
		"chance", att.Chance,
		"hired", att.Hired)

	out, rep.Result = e.evaluate(out)
	return out, rep, nil
}

// Evaluate runs the game-over check and records the verdict in the state.
func (e *Engine) Evaluate(s model.GameState) (model.GameState, gameover.Result) {
	return e.evaluate(s)
}

func (e *Engine) evaluate(s model.GameState) (model.GameState, gameover.Result) {
	if s.IsOver() {
		return s, gameover.Result{Over: true, Reason: s.GameOverReason, Outcome: s.GameOverOutcome}
	}
	res := gameover.Evaluate(e.reg, s)
	if !res.Over {
		return s, res
	}

	out := gameover.Apply(s, res)
	out.AppendLog(model.EventLogEntry{
		Tick:    out.Meta.Tick,
		EventID: EventGameOver,
		Message: fmt.Sprintf("Game over: %s (%s).", res.Reason, res.Outcome),
	})
	e.metrics.RecordGameOver(string(res.Reason), string(res.Outcome), out.Meta.Tick)
	e.metrics.GameFinished()
	e.logger.Info("game over",
		"player", out.Meta.PlayerName,
		"reason", res.Reason,
		"outcome", res.Outcome,
		"age", calendar.Age(out.Meta.StartAge, out.Meta.Tick),
		"job", out.Career.CurrentJobID,
		"money", out.Resources.Money)
	return out, res
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, turn.ErrUnknownAction), errors.Is(err, career.ErrUnknownJob):
		return "unknown"
	case errors.Is(err, turn.ErrInsufficientMoney):
		return "insufficient_money"
	case errors.Is(err, turn.ErrInsufficientEnergy):
		return "insufficient_energy"
	case errors.Is(err, turn.ErrRequirementsNotMet), errors.Is(err, career.ErrRequirementsNotMet):
		return "requirements"
	case errors.Is(err, turn.ErrJobRestricted), errors.Is(err, career.ErrNotReachable):
		return "restricted"
	case errors.Is(err, turn.ErrAlreadyPurchased), errors.Is(err, career.ErrAlreadyEmployed):
		return "duplicate"
	case errors.Is(err, turn.ErrOnCooldown):
		return "cooldown"
	case errors.Is(err, turn.ErrGameOver):
		return "game_over"
	default:
		return "other"
	}
}
