package data

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/rahidmondal/life-at-dev-sub000/internal/model"
)

// Registry is the read-only lookup of jobs, actions and random events.
// Built once and shared; callers must not mutate returned values' slices.
type Registry struct {
	jobs    map[string]model.JobNode
	actions map[string]model.GameAction
	events  []model.RandomEvent

	jobsSorted    []model.JobNode
	actionsSorted []model.GameAction
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the built-in registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(builtinJobs(), builtinActions(), builtinEvents())
	})
	return defaultRegistry
}

// NewRegistry builds a registry from the given tables.
// Event order is preserved; it decides which event wins when several are eligible.
func NewRegistry(jobs []model.JobNode, actions []model.GameAction, events []model.RandomEvent) *Registry {
	r := &Registry{
		jobs:    make(map[string]model.JobNode, len(jobs)),
		actions: make(map[string]model.GameAction, len(actions)),
		events:  slices.Clone(events),
	}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	for _, a := range actions {
		r.actions[a.ID] = a
	}

	r.jobsSorted = slices.Collect(maps.Values(r.jobs))
	slices.SortFunc(r.jobsSorted, func(a, b model.JobNode) int {
		return cmp.Or(cmp.Compare(a.Tier, b.Tier), cmp.Compare(a.ID, b.ID))
	})
	r.actionsSorted = slices.Collect(maps.Values(r.actions))
	slices.SortFunc(r.actionsSorted, func(a, b model.GameAction) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return r
}

// Job returns the job with the given id.
func (r *Registry) Job(id string) (model.JobNode, bool) {
	j, ok := r.jobs[id]
	return j, ok
}

// MustJob returns the job or panics. Use only for ids the engine itself wrote
// into state; a missing job there is a programming error.
func (r *Registry) MustJob(id string) model.JobNode {
	j, ok := r.jobs[id]
	if !ok {
		panic(fmt.Sprintf("job %q not in registry", id))
	}
	return j
}

// Action returns the action with the given id.
func (r *Registry) Action(id string) (model.GameAction, bool) {
	a, ok := r.actions[id]
	return a, ok
}

// Jobs returns all jobs ordered by tier, then id.
func (r *Registry) Jobs() []model.JobNode {
	return r.jobsSorted
}

// Actions returns all actions ordered by id.
func (r *Registry) Actions() []model.GameAction {
	return r.actionsSorted
}

// Events returns the random event table in trigger-priority order.
func (r *Registry) Events() []model.RandomEvent {
	return r.events
}

// SuggestJob returns the closest known job id, or "" if nothing is close.
func (r *Registry) SuggestJob(id string) string {
	return suggest(id, slices.Collect(maps.Keys(r.jobs)))
}

// SuggestAction returns the closest known action id, or "" if nothing is close.
func (r *Registry) SuggestAction(id string) string {
	return suggest(id, slices.Collect(maps.Keys(r.actions)))
}

func suggest(input string, candidates []string) string {
	slices.Sort(candidates)

	best := ""
	bestDist := suggestLimit(len(input)) + 1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, cand)
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 10:
		return 2
	default:
		return 3
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
