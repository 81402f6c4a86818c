// Package metrics provides Prometheus metrics for simulation runs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the simulator.
type Metrics struct {
	TurnsTotal      *prometheus.CounterVec
	RejectedTotal   *prometheus.CounterVec
	InterviewsTotal *prometheus.CounterVec
	ReviewsTotal    *prometheus.CounterVec
	GameOversTotal  *prometheus.CounterVec
	RunLengthWeeks  prometheus.Histogram
	SavesTotal      *prometheus.CounterVec
	ActiveGames     prometheus.Gauge

	registry *prometheus.Registry
}

// New creates and registers all metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		TurnsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_turns_total",
				Help: "Total processed turns by action category.",
			},
			[]string{"category"},
		),
		RejectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_rejected_total",
				Help: "Total rejected actions and applications by reason.",
			},
			[]string{"reason"},
		),
		InterviewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_interviews_total",
				Help: "Total job applications by result.",
			},
			[]string{"result"},
		),
		ReviewsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_reviews_total",
				Help: "Total year-end performance reviews by rating.",
			},
			[]string{"rating"},
		),
		GameOversTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_game_overs_total",
				Help: "Total finished runs by reason and outcome.",
			},
			[]string{"reason", "outcome"},
		),
		RunLengthWeeks: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lifesim_run_length_weeks",
				Help:    "Simulated weeks per finished run.",
				Buckets: prometheus.LinearBuckets(0, 260, 10),
			},
		),
		SavesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifesim_saves_total",
				Help: "Total save operations by store and result.",
			},
			[]string{"store", "result"},
		),
		ActiveGames: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lifesim_active_games",
				Help: "Number of runs currently in progress.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.TurnsTotal)
	reg.MustRegister(m.RejectedTotal)
	reg.MustRegister(m.InterviewsTotal)
	reg.MustRegister(m.ReviewsTotal)
	reg.MustRegister(m.GameOversTotal)
	reg.MustRegister(m.RunLengthWeeks)
	reg.MustRegister(m.SavesTotal)
	reg.MustRegister(m.ActiveGames)

	return m
}

// Handler returns an http.Handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordTurn increments the turn counter.
func (m *Metrics) RecordTurn(category string) {
	if m == nil {
		return
	}
	m.TurnsTotal.WithLabelValues(category).Inc()
}

// RecordRejected increments the rejection counter.
func (m *Metrics) RecordRejected(reason string) {
	if m == nil {
		return
	}
	m.RejectedTotal.WithLabelValues(reason).Inc()
}

// RecordInterview increments the application counter.
func (m *Metrics) RecordInterview(result string) {
	if m == nil {
		return
	}
	m.InterviewsTotal.WithLabelValues(result).Inc()
}

// RecordReview increments the review counter.
func (m *Metrics) RecordReview(rating string) {
	if m == nil {
		return
	}
	m.ReviewsTotal.WithLabelValues(rating).Inc()
}

// RecordGameOver counts a finished run and observes its length.
func (m *Metrics) RecordGameOver(reason, outcome string, weeks int) {
	if m == nil {
		return
	}
	m.GameOversTotal.WithLabelValues(reason, outcome).Inc()
	m.RunLengthWeeks.Observe(float64(weeks))
}

// RecordSave increments the save counter.
func (m *Metrics) RecordSave(store, result string) {
	if m == nil {
		return
	}
	m.SavesTotal.WithLabelValues(store, result).Inc()
}

// GameStarted increments the active games gauge.
func (m *Metrics) GameStarted() {
	if m == nil {
		return
	}
	m.ActiveGames.Inc()
}

// GameFinished decrements the active games gauge.
func (m *Metrics) GameFinished() {
	if m == nil {
		return
	}
	m.ActiveGames.Dec()
}
