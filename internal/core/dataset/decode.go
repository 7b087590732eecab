package dataset

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/trajectory"
	"github.com/epmviz/backend/internal/util/rekuest"
)

var ErrInvalidDataset = errors.New("dataset: invalid dataset")

// InvalidError lists every problem found in a dataset document.
type InvalidError struct {
	Violations []*rekuest.ErrorResponse
}

func (e *InvalidError) Error() string {
	switch len(e.Violations) {
	case 0:
		return ErrInvalidDataset.Error()
	case 1:
		return fmt.Sprintf("%s: %s", ErrInvalidDataset, e.Violations[0].Message)
	default:
		return fmt.Sprintf("%s: %s (and %d more)", ErrInvalidDataset, e.Violations[0].Message, len(e.Violations)-1)
	}
}

func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalidDataset
}

type wireMetadata struct {
	MaxTurns   int `json:"max_turns" validate:"gte=1"`
	TotalCases int `json:"total_cases" validate:"gte=0"`
}

type wireTrajectory struct {
	ScriptID string      `json:"script_id" validate:"required"`
	Status   string      `json:"status"`
	Points   [][]float64 `json:"points" validate:"min=1,dive,len=3,dive,finite"`
}

type wireDataset struct {
	Metadata     wireMetadata     `json:"metadata"`
	Trajectories []wireTrajectory `json:"trajectories" validate:"dive"`
}

// Decode parses a dataset document:
//
//	{"metadata": {"max_turns": 30, "total_cases": 12},
//	 "trajectories": [{"script_id": "...", "status": "success", "points": [[c, a, p], ...]}]}
//
// Every trajectory needs at least one point and every point exactly three
// finite coordinates.
func Decode(raw []byte) (*trajectory.Dataset, error) {
	var doc wireDataset
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &InvalidError{Violations: []*rekuest.ErrorResponse{{
			Violation: "json",
			Message:   err.Error(),
		}}}
	}

	if err := rekuest.Validate.Struct(&doc); err != nil {
		return nil, &InvalidError{Violations: rekuest.Translate(err)}
	}

	ds := &trajectory.Dataset{
		Metadata: trajectory.Metadata{
			MaxTurns:   doc.Metadata.MaxTurns,
			TotalCases: doc.Metadata.TotalCases,
		},
		Trajectories: lo.Map(doc.Trajectories, func(w wireTrajectory, _ int) *trajectory.Trajectory {
			return &trajectory.Trajectory{
				ID:     w.ScriptID,
				Status: trajectory.Status(w.Status),
				Points: lo.Map(w.Points, func(p []float64, _ int) geom.Point3 {
					return geom.FromSlice(p)
				}),
			}
		}),
	}

	if err := ds.Validate(); err != nil {
		return nil, &InvalidError{Violations: []*rekuest.ErrorResponse{{
			Violation: "dataset",
			Message:   err.Error(),
		}}}
	}
	return ds, nil
}
