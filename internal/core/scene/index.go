package scene

import (
	"github.com/pkg/errors"

	"github.com/epmviz/backend/internal/core/trajectory"
)

var ErrDuplicateKey = errors.New("scene: duplicate element key")

type axisName string

const (
	axisCPos axisName = "c+"
	axisCNeg axisName = "c-"
	axisAPos axisName = "a+"
	axisANeg axisName = "a-"
	axisPPos axisName = "p+"
	axisPNeg axisName = "p-"
)

var axisNames = []axisName{axisCPos, axisCNeg, axisAPos, axisANeg, axisPPos, axisPNeg}

type legendName string

const (
	legendSuccessPath legendName = "success-path"
	legendFailurePath legendName = "failure-path"
	legendStart       legendName = "start"
	legendSuccessEnd  legendName = "success-end"
	legendFailureEnd  legendName = "failure-end"
	legendOrigin      legendName = "origin"
)

var legendNames = []legendName{legendSuccessPath, legendFailurePath, legendStart, legendSuccessEnd, legendFailureEnd, legendOrigin}

var originKey = FixedKey(KindOrigin, "origin")

func axisKey(n axisName) Key {
	return FixedKey(KindAxis, string(n))
}

func legendKey(n legendName) Key {
	return FixedKey(KindLegend, string(n))
}

// Index fixes the position of every element key. The initial scene and every
// frame are laid out through the same Index, so the renderer can patch frames
// into the scene by position.
type Index struct {
	keys []Key
	pos  map[Key]int
	refs map[*trajectory.Trajectory]string
}

func NewIndex(groups trajectory.Groups) (*Index, error) {
	ordered := groups.Ordered()
	ix := &Index{
		keys: make([]Key, 0, 4*len(ordered)+1+len(axisNames)+len(legendNames)),
		pos:  make(map[Key]int),
		refs: trajectory.Refs(ordered),
	}

	for _, t := range ordered {
		if err := ix.add(ix.Key(KindPath, t)); err != nil {
			return nil, err
		}
		if err := ix.add(ix.Key(KindPathMarkers, t)); err != nil {
			return nil, err
		}
	}
	for _, t := range ordered {
		if err := ix.add(ix.Key(KindStart, t)); err != nil {
			return nil, err
		}
	}
	for _, t := range ordered {
		if err := ix.add(ix.Key(KindEnd, t)); err != nil {
			return nil, err
		}
	}
	if err := ix.add(originKey); err != nil {
		return nil, err
	}
	for _, n := range axisNames {
		if err := ix.add(axisKey(n)); err != nil {
			return nil, err
		}
	}
	for _, n := range legendNames {
		if err := ix.add(legendKey(n)); err != nil {
			return nil, err
		}
	}

	return ix, nil
}

func (ix *Index) add(k Key) error {
	if _, ok := ix.pos[k]; ok {
		return errors.Wrap(ErrDuplicateKey, string(k))
	}
	ix.pos[k] = len(ix.keys)
	ix.keys = append(ix.keys, k)
	return nil
}

// Key is the element key of the given trajectory element. Trajectories that
// share an id are told apart by their occurrence.
func (ix *Index) Key(kind Kind, t *trajectory.Trajectory) Key {
	ref, ok := ix.refs[t]
	if !ok {
		ref = t.ID
	}
	return TrajectoryKey(kind, ref)
}

func (ix *Index) Len() int {
	return len(ix.keys)
}

func (ix *Index) Keys() []Key {
	return append([]Key(nil), ix.keys...)
}

func (ix *Index) Pos(k Key) (int, bool) {
	i, ok := ix.pos[k]
	return i, ok
}

// place stores e at the position reserved for its key.
func (ix *Index) place(dst []Element, e Element) {
	i, ok := ix.pos[e.Key]
	if !ok {
		panic("scene: element key not in index: " + string(e.Key))
	}
	dst[i] = e
}
