package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(n int) []Point3 {
	pts := make([]Point3, n)
	for i := range pts {
		f := float64(i)
		pts[i] = Point3{f, f, f}
	}
	return pts
}

func TestResampleExactCountAndEndpoints(t *testing.T) {
	inputs := [][]Point3{
		line(4),
		line(7),
		{{0.1, -3.7, 2.2}, {5.3, 1.9, -0.4}, {-12.25, 8.01, 3.3}, {0.3, 0.3, 0.3}, {19.7, -40.1, 7.77}},
		{{1, 1, 1}, {1, 1, 1}, {2, 3, 4}, {2, 3, 4}, {9, -1, 0}},
	}
	counts := []int{1, 2, 5, 30, 100}

	for _, in := range inputs {
		for _, n := range counts {
			out := Resample(in, n)
			require.Len(t, out, n)
			assert.Equal(t, in[0], out[0], "first sample must equal first input point")
			if n > 1 {
				assert.Equal(t, in[len(in)-1], out[n-1], "last sample must equal last input point")
			}
		}
	}
}

func TestResampleDegenerateInputsPassThrough(t *testing.T) {
	short := line(3)
	assert.Equal(t, short, Resample(short, 30))

	assert.Empty(t, Resample(nil, 10))

	coincident := []Point3{{2, 2, 2}, {2, 2, 2}, {2, 2, 2}, {2, 2, 2}}
	assert.Equal(t, coincident, Resample(coincident, 40))

	assert.Equal(t, line(5), Resample(line(5), 0))
}

func TestResampleUniformSpacing(t *testing.T) {
	in := []Point3{{0, 0, 0}, {1, 0, 0}, {3, 0, 0}, {6, 0, 0}}
	out := Resample(in, 7)
	require.Len(t, out, 7)
	for i, p := range out {
		assert.InDelta(t, float64(i), p.C, 1e-9)
		assert.Zero(t, p.A)
		assert.Zero(t, p.P)
	}
}

func TestResampleIsDeterministic(t *testing.T) {
	in := []Point3{{3, -1, 4}, {1, -5, 9}, {2, 6, -5}, {3, 5, 8}, {-9, 7, 9}}
	assert.Equal(t, Resample(in, 50), Resample(in, 50))
}

func TestResampleStaysOnPolyline(t *testing.T) {
	in := []Point3{{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {10, 10, 10}}
	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
	for _, p := range Resample(in, 31) {
		onFirst := near(p.A, 0) && near(p.P, 0)
		onSecond := near(p.C, 10) && near(p.P, 0)
		onThird := near(p.C, 10) && near(p.A, 10)
		assert.True(t, onFirst || onSecond || onThird, "sample %+v left the polyline", p)
	}
}

func TestTargetDensity(t *testing.T) {
	assert.Equal(t, 20, TargetDensity(2, DefaultMaxDensity))
	assert.Equal(t, 30, TargetDensity(3, DefaultMaxDensity))
	assert.Equal(t, 100, TargetDensity(10, DefaultMaxDensity))
	assert.Equal(t, 100, TargetDensity(42, DefaultMaxDensity))
	assert.Equal(t, 100, TargetDensity(42, 0))
	assert.Equal(t, 50, TargetDensity(42, 50))
}

func TestProgressSteps(t *testing.T) {
	steps := ProgressSteps(5, 3)
	assert.Equal(t, []float64{1, 1.5, 2, 2.5, 3}, steps)

	assert.Equal(t, []float64{1}, ProgressSteps(1, 4))
	assert.Nil(t, ProgressSteps(0, 4))
}

func TestSmooth(t *testing.T) {
	assert.Empty(t, Smooth(line(1), DefaultMaxDensity).Points)

	// below MinResamplePoints: raw prefix is kept, progress still spans 1..prefixLen
	c := Smooth(line(3), DefaultMaxDensity)
	assert.Equal(t, line(3), c.Points)
	assert.Equal(t, []float64{1, 2, 3}, c.Progress)

	c = Smooth(line(5), DefaultMaxDensity)
	require.Len(t, c.Points, 50)
	require.Len(t, c.Progress, 50)
	assert.Equal(t, 1.0, c.Progress[0])
	assert.Equal(t, 5.0, c.Progress[49])
}
