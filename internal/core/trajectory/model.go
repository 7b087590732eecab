package trajectory

import (
	"github.com/epmviz/backend/internal/core/geom"
)

type Status string

const StatusSuccess Status = "success"

func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// Trajectory is one agent run. Points[0] is turn 0; the run took len(Points)-1 turns.
type Trajectory struct {
	ID     string
	Status Status
	Points []geom.Point3
}

func (t *Trajectory) Turns() int {
	return len(t.Points) - 1
}

func (t *Trajectory) Start() geom.Point3 {
	return t.Points[0]
}

func (t *Trajectory) End() geom.Point3 {
	return t.Points[len(t.Points)-1]
}

// Prefix returns the points revealed at the given turn. Runs shorter than turn
// hold at their final point.
func (t *Trajectory) Prefix(turn int) []geom.Point3 {
	last := min(max(turn, 0), t.Turns())
	return t.Points[:last+1]
}

// Completed reports whether the run has reached its final point by the given turn.
func (t *Trajectory) Completed(turn int) bool {
	return turn >= t.Turns()
}

type Metadata struct {
	// MaxTurns is the animation horizon shared by every trajectory.
	MaxTurns int `json:"maxTurns"`

	// TotalCases is the display count reported by the data supplier.
	TotalCases int `json:"totalCases"`
}

type Dataset struct {
	Metadata     Metadata
	Trajectories []*Trajectory
}
