package trajectory

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var (
	ErrEmptyTrajectory = errors.New("trajectory has no points")
	ErrInvalidHorizon  = errors.New("max turns must be at least 1")
)

type Group string

const (
	GroupSuccess Group = "success"
	GroupFailure Group = "failure"
)

func GroupOf(t *Trajectory) Group {
	if t.Status.IsSuccess() {
		return GroupSuccess
	}
	return GroupFailure
}

// Groups is the status partition used for styling. Order within each group
// follows the input order.
type Groups struct {
	Success []*Trajectory
	Failure []*Trajectory
}

func Partition(trajectories []*Trajectory) Groups {
	isSuccess := func(t *Trajectory, _ int) bool {
		return t.Status.IsSuccess()
	}
	return Groups{
		Success: lo.Filter(trajectories, isSuccess),
		Failure: lo.Reject(trajectories, isSuccess),
	}
}

// Ordered returns every trajectory, success group first.
func (g Groups) Ordered() []*Trajectory {
	out := make([]*Trajectory, 0, g.Len())
	out = append(out, g.Success...)
	return append(out, g.Failure...)
}

func (g Groups) Len() int {
	return len(g.Success) + len(g.Failure)
}

// Check rejects trajectories the scene cannot represent.
func Check(trajectories []*Trajectory) error {
	for i, t := range trajectories {
		if len(t.Points) == 0 {
			return errors.Wrap(ErrEmptyTrajectory, fmt.Sprintf("trajectory #%d (%q)", i, t.ID))
		}
	}
	return nil
}

// Refs gives every trajectory a reference that is unique within the slice.
// The first occurrence of an id keeps it; later ones get "id~2", "id~3" and
// so on, skipping references that another trajectory already uses as its id.
func Refs(trajectories []*Trajectory) map[*Trajectory]string {
	used := make(map[string]struct{}, len(trajectories))
	for _, t := range trajectories {
		used[t.ID] = struct{}{}
	}

	refs := make(map[*Trajectory]string, len(trajectories))
	seen := make(map[string]int, len(trajectories))
	for _, t := range trajectories {
		seen[t.ID]++
		if seen[t.ID] == 1 {
			refs[t] = t.ID
			continue
		}
		n := seen[t.ID]
		ref := fmt.Sprintf("%s~%d", t.ID, n)
		for {
			if _, taken := used[ref]; !taken {
				break
			}
			n++
			ref = fmt.Sprintf("%s~%d", t.ID, n)
		}
		used[ref] = struct{}{}
		refs[t] = ref
	}
	return refs
}

// Validate checks the horizon and every trajectory.
func (d *Dataset) Validate() error {
	if d.Metadata.MaxTurns < 1 {
		return errors.Wrapf(ErrInvalidHorizon, "got %d", d.Metadata.MaxTurns)
	}
	return Check(d.Trajectories)
}
