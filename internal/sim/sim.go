// Package sim runs batches of autoplayed games and stores the final states.
package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/rahidmondal/life-at-dev-sub000/internal/data"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/autoplay"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/calendar"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/engine"
	"github.com/rahidmondal/life-at-dev-sub000/internal/game/rng"
	"github.com/rahidmondal/life-at-dev-sub000/internal/metrics"
	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
	"github.com/rahidmondal/life-at-dev-sub000/internal/save"
)

var ErrTurnLimit = errors.New("run did not finish within the turn limit")

// Paths is the rotation used when no starting path is configured.
var Paths = []model.StartingPath{
	model.PathUniversity,
	model.PathScholar,
	model.PathBootcamp,
	model.PathSelfTaught,
}

// Config describes a batch.
type Config struct {
	Runs        int
	Seed        int64
	MaxTurns    int
	Path        model.StartingPath
	PlayerName  string
	Parallelism int
}

// Summary is the outcome of one run.
type Summary struct {
	Index   int
	Seed    int64
	Path    model.StartingPath
	Reason  model.GameOverReason
	Outcome model.GameOverOutcome
	Weeks   int
	Age     int
	JobID   string
	Money   float64
	Moves   int
	Save    save.Save
}

// Runner plays batches. Runs share the registry, store and metrics; each
// run gets its own engine and random source.
type Runner struct {
	reg     *data.Registry
	store   save.Store
	clock   save.Clock
	policy  autoplay.Policy
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewRunner creates a runner. A nil store skips persistence.
func NewRunner(reg *data.Registry, store save.Store, clock save.Clock, m *metrics.Metrics, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = save.RealClock{}
	}
	return &Runner{
		reg:     reg,
		store:   store,
		clock:   clock,
		policy:  autoplay.DefaultPolicy(),
		metrics: m,
		logger:  logger,
	}
}

// Run plays cfg.Runs games with at most cfg.Parallelism in flight and returns
// their summaries ordered by index. The first failing run cancels the rest.
func (r *Runner) Run(ctx context.Context, cfg Config) ([]Summary, error) {
	var (
		mu  sync.Mutex
		out = make([]Summary, 0, cfg.Runs)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallelism, 1))
	for i := 0; i < cfg.Runs; i++ {
		g.Go(func() error {
			sum, err := r.play(gctx, cfg, i)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			mu.Lock()
			out = append(out, sum)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(a, b int) bool { return out[a].Index < out[b].Index })
	return out, nil
}

func (r *Runner) play(ctx context.Context, cfg Config, i int) (Summary, error) {
	seed := cfg.Seed + int64(i)
	path := cfg.Path
	if path == "" {
		path = Paths[i%len(Paths)]
	}
	logger := r.logger.With("run", i, "seed", seed)
	e := engine.New(r.reg, rng.Seeded(seed), r.metrics, logger)

	s, err := e.NewGame(engine.Options{PlayerName: cfg.PlayerName, Path: path})
	if err != nil {
		return Summary{}, err
	}
	// The engine releases the active-game gauge only when a run ends.
	defer func() {
		if !s.IsOver() {
			r.metrics.GameFinished()
		}
	}()

	moves := 0
	for ; !s.IsOver(); moves++ {
		if moves >= cfg.MaxTurns {
			return Summary{}, fmt.Errorf("%w: %d moves", ErrTurnLimit, moves)
		}
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		d := r.policy.Next(r.reg, s)
		switch d.Kind {
		case autoplay.KindApply:
			s, _, err = e.Apply(s, d.ID)
		default:
			s, _, err = e.Act(s, d.ID)
		}
		if err != nil {
			return Summary{}, fmt.Errorf("move %d (%s %s): %w", moves, d.Kind, d.ID, err)
		}
	}

	sum := Summary{
		Index:   i,
		Seed:    seed,
		Path:    path,
		Reason:  s.GameOverReason,
		Outcome: s.GameOverOutcome,
		Weeks:   s.Meta.Tick,
		Age:     calendar.Age(s.Meta.StartAge, s.Meta.Tick),
		JobID:   s.Career.CurrentJobID,
		Money:   s.Resources.Money,
		Moves:   moves,
	}

	sv, err := save.New(r.reg, uuidFor(seed, path), s, r.clock.Now())
	if err != nil {
		return Summary{}, err
	}
	sum.Save = sv
	if r.store != nil {
		if err := r.store.Put(ctx, sv); err != nil {
			return Summary{}, fmt.Errorf("saving run: %w", err)
		}
	}
	return sum, nil
}

// Tally counts summaries by reason and outcome.
type Tally struct {
	Runs      int
	Wins      int
	ByReason  map[model.GameOverReason]int
	MeanWeeks float64
}

// Summarize tallies a batch.
func Summarize(sums []Summary) Tally {
	t := Tally{Runs: len(sums), ByReason: make(map[model.GameOverReason]int)}
	if len(sums) == 0 {
		return t
	}
	total := 0
	for _, s := range sums {
		t.ByReason[s.Reason]++
		if s.Outcome == model.OutcomeWin {
			t.Wins++
		}
		total += s.Weeks
	}
	t.MeanWeeks = float64(total) / float64(len(sums))
	return t
}
