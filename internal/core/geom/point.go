package geom

import "math"

// Point3 is a position in the Cognitive / Affective / Proactive state space.
type Point3 struct {
	C float64
	A float64
	P float64
}

var Origin = Point3{}

func FromSlice(v []float64) Point3 {
	return Point3{C: v[0], A: v[1], P: v[2]}
}

func (p Point3) Dist(q Point3) float64 {
	dc := q.C - p.C
	da := q.A - p.A
	dp := q.P - p.P
	return math.Sqrt(dc*dc + da*da + dp*dp)
}

// Lerp returns the point at fraction t along p -> q. The result is exactly p at
// t == 0 and exactly q at t == 1.
func Lerp(p, q Point3, t float64) Point3 {
	return Point3{
		C: (1-t)*p.C + t*q.C,
		A: (1-t)*p.A + t*q.A,
		P: (1-t)*p.P + t*q.P,
	}
}
