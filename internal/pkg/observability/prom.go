package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/epmviz/backend/internal/constant"
)

const (
	ServiceName = constant.ServiceName
)

var (
	SceneBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "scene", "build_duration_seconds"),
		Help:    "Duration of building a renderable scene, including its frames, in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	SceneFrames = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "scene", "frames"),
		Help:    "Number of animation frames per built scene",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})
	DatasetLoadDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "dataset", "load_duration_seconds"),
		Help:    "Duration of fetching and decoding the trajectory dataset in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"scheme"})
	DatasetLoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "dataset", "load_failures_total"),
		Help: "Number of failed dataset loads by reason",
	}, []string{"reason"})
	SessionOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "outcomes_total"),
		Help: "Scene requests by outcome: rendered, stale or failed",
	}, []string{"outcome"})
	CameraCorrections = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "camera", "corrections_total"),
		Help: "Number of relayout events whose camera had to be pulled back into bounds",
	})
)
