package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SynthesisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voice_cloning_synthesis_total",
		Help: "Synthesis requests by language and outcome.",
	}, []string{"language", "status"})

	SynthesisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "voice_cloning_synthesis_duration_seconds",
		Help:    "Wall time of engine synthesis calls.",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
	})

	ValidationRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voice_cloning_validation_rejects_total",
		Help: "Requests rejected before reaching the engine.",
	}, []string{"reason"})
)
