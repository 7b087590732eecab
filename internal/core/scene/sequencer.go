package scene

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/trajectory"
	"github.com/epmviz/backend/internal/pkg/async"
)

var ErrInvalidHorizon = errors.New("scene: max turns must be at least 1")

// Frame is the scene state after one turn. Data is positionally aligned with
// the initial scene.
type Frame struct {
	Name   string      `json:"name"`
	Turn   int         `json:"turn"`
	Data   []Element   `json:"data"`
	Layout FrameLayout `json:"layout"`
}

type FrameLayout struct {
	Title string `json:"title"`
}

func FrameName(turn int) string {
	return fmt.Sprintf("turn_%d", turn)
}

// Frame computes the partial reveal of every trajectory at the given turn.
// Static elements are copied from the initial scene unchanged.
func (p *Plan) Frame(turn int) Frame {
	data := cloneElements(p.templates)
	for _, t := range p.groups.Ordered() {
		p.reveal(data, t, turn)
	}
	return Frame{
		Name:   FrameName(turn),
		Turn:   turn,
		Data:   data,
		Layout: FrameLayout{Title: fmt.Sprintf("Turn %d", turn)},
	}
}

// Frames builds one frame per turn, 1..maxTurns, in playback order.
func (p *Plan) Frames(maxTurns int) ([]Frame, error) {
	if maxTurns < 1 {
		return nil, errors.Wrapf(ErrInvalidHorizon, "got %d", maxTurns)
	}
	turns := make([]int, maxTurns)
	for i := range turns {
		turns[i] = i + 1
	}
	// frames only read the plan, so they are built in parallel
	return async.Map(turns, runtime.GOMAXPROCS(0), func(_ int, turn int) (Frame, error) {
		return p.Frame(turn), nil
	})
}

// BuildFrames lays out the animation frames for the given trajectories.
func BuildFrames(groups trajectory.Groups, maxTurns int, opts Options) ([]Frame, error) {
	p, err := NewPlan(groups, opts)
	if err != nil {
		return nil, err
	}
	return p.Frames(maxTurns)
}

func (p *Plan) reveal(data []Element, t *trajectory.Trajectory, turn int) {
	prefix := t.Prefix(turn)

	path := p.at(data, p.index.Key(KindPath, t))
	curve := geom.Smooth(prefix, p.opts.MaxDensity)
	path.SetPoints(curve.Points)
	path.CustomData = curve.Progress

	// markers keep the raw, unsmoothed positions
	markers := p.at(data, p.index.Key(KindPathMarkers, t))
	markers.SetPoints(prefix)
	markers.Text = turnLabels(len(prefix))

	end := p.at(data, p.index.Key(KindEnd, t))
	if t.Completed(turn) {
		end.SetPoints([]geom.Point3{t.End()})
	} else {
		end.Clear()
	}
}

func (p *Plan) at(data []Element, k Key) *Element {
	i, ok := p.index.Pos(k)
	if !ok {
		panic("scene: element key not in index: " + string(k))
	}
	return &data[i]
}
