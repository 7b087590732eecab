package geom

const (
	// MinResamplePoints is the smallest polyline Resample will touch; shorter
	// inputs are returned as-is.
	MinResamplePoints = 4

	// DefaultMaxDensity caps the number of samples drawn for a single curve.
	DefaultMaxDensity = 100

	// densityPerPoint is the number of samples drawn per raw point before the cap applies.
	densityPerPoint = 10
)

// Curve is a resampled polyline together with the fractional turn index of each sample.
type Curve struct {
	Points   []Point3
	Progress []float64
}

// Resample redistributes points uniformly along their arc length using linear
// interpolation, producing exactly targetCount samples whose first and last
// entries equal the first and last input points.
//
// Inputs with fewer than MinResamplePoints points, zero total length, or a
// non-positive targetCount are returned unchanged.
func Resample(points []Point3, targetCount int) []Point3 {
	n := len(points)
	if n < MinResamplePoints || targetCount < 1 {
		return points
	}

	dist := make([]float64, n)
	for i := 1; i < n; i++ {
		dist[i] = dist[i-1] + points[i-1].Dist(points[i])
	}
	total := dist[n-1]
	if total == 0 {
		return points
	}

	t := make([]float64, n)
	for i, d := range dist {
		t[i] = d / total
	}
	t[n-1] = 1

	out := make([]Point3, targetCount)
	idx := 0
	for k := 0; k < targetCount; k++ {
		target := 0.0
		if targetCount > 1 {
			target = float64(k) / float64(targetCount-1)
		}

		// t is monotone, so the segment pointer only ever moves forward
		for idx < n-1 && t[idx+1] < target {
			idx++
		}
		if idx >= n-1 {
			out[k] = points[n-1]
			continue
		}

		span := t[idx+1] - t[idx]
		if span == 0 {
			out[k] = points[idx]
			continue
		}
		out[k] = Lerp(points[idx], points[idx+1], (target-t[idx])/span)
	}

	return out
}

// TargetDensity is the sample count used for a revealed prefix of prefixLen raw points.
func TargetDensity(prefixLen, maxDensity int) int {
	if maxDensity <= 0 {
		maxDensity = DefaultMaxDensity
	}
	return min(maxDensity, prefixLen*densityPerPoint)
}

// ProgressSteps maps n samples linearly onto the turn range [1, prefixLen].
func ProgressSteps(n, prefixLen int) []float64 {
	if n <= 0 {
		return nil
	}
	steps := make([]float64, n)
	if n == 1 {
		steps[0] = 1
		return steps
	}
	for i := range steps {
		steps[i] = 1 + float64(prefixLen-1)*float64(i)/float64(n-1)
	}
	return steps
}

// Smooth resamples a revealed prefix and attaches its progress steps. Prefixes of
// fewer than two points produce an empty curve.
func Smooth(prefix []Point3, maxDensity int) Curve {
	if len(prefix) < 2 {
		return Curve{}
	}
	pts := Resample(prefix, TargetDensity(len(prefix), maxDensity))
	return Curve{
		Points:   pts,
		Progress: ProgressSteps(len(pts), len(prefix)),
	}
}
