package scene

import (
	"time"

	"github.com/epmviz/backend/internal/core/geom"
)

// Range is an axis extent, [lower, upper].
type Range [2]float64

type Axes struct {
	C Range
	A Range
	P Range
}

func DefaultAxes() Axes {
	return Axes{
		C: Range{-60, 25},
		A: Range{-60, 25},
		P: Range{-40, 20},
	}
}

type Options struct {
	Axes Axes

	// MaxDensity caps the number of resampled points per curve.
	MaxDensity int

	Camera CameraGuard

	// FrameDuration is the playback delay between two turns.
	FrameDuration time.Duration
}

func DefaultOptions() Options {
	return Options{
		Axes:          DefaultAxes(),
		MaxDensity:    geom.DefaultMaxDensity,
		Camera:        DefaultCameraGuard(),
		FrameDuration: 300 * time.Millisecond,
	}
}
