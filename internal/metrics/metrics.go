// Package metrics records dashboard activity with Prometheus collectors.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tally/pkg/domain"
)

// Collector groups the tally metrics on a private registry.
type Collector struct {
	Registry *prometheus.Registry

	transitions *prometheus.CounterVec
	ignored     prometheus.Counter
	frames      prometheus.Counter
	count       prometheus.Gauge
}

// NewCollector creates and registers the collectors.
func NewCollector() *Collector {
	c := &Collector{
		Registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tally_transitions_total",
				Help: "Accepted transitions by intent type",
			},
			[]string{"intent"},
		),
		ignored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tally_ignored_activations_total",
			Help: "Activations delivered while the control was disabled",
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tally_recompositions_total",
			Help: "View tree rebuilds",
		}),
		count: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tally_count",
			Help: "Current counter value",
		}),
	}
	c.Registry.MustRegister(c.transitions, c.ignored, c.frames, c.count)
	return c
}

// Hooks returns lifecycle hooks that feed the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			c.transitions.WithLabelValues(string(e.Intent.Type)).Inc()
			c.count.Set(float64(e.After.Count))
		},
		OnIgnored: func(_ context.Context, _ *domain.TransitionEvent) {
			c.ignored.Inc()
		},
		OnRecompose: func(_ context.Context, _ *domain.RecomposeEvent) {
			c.frames.Inc()
		},
	}
}

// Summary is a flat view of the collected values.
type Summary struct {
	Transitions map[string]float64
	Ignored     float64
	Frames      float64
	Count       float64
}

// Summary gathers the registry into a Summary.
func (c *Collector) Summary() (Summary, error) {
	s := Summary{Transitions: map[string]float64{}}
	families, err := c.Registry.Gather()
	if err != nil {
		return s, err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "tally_transitions_total":
				for _, lp := range m.GetLabel() {
					if lp.GetName() == "intent" {
						s.Transitions[lp.GetValue()] = m.GetCounter().GetValue()
					}
				}
			case "tally_ignored_activations_total":
				s.Ignored = m.GetCounter().GetValue()
			case "tally_recompositions_total":
				s.Frames = m.GetCounter().GetValue()
			case "tally_count":
				s.Count = m.GetGauge().GetValue()
			}
		}
	}
	return s, nil
}
