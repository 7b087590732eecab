package scene

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/trajectory"
)

func line(n int) []geom.Point3 {
	out := make([]geom.Point3, n)
	for i := range out {
		f := float64(i)
		out[i] = geom.Point3{C: f, A: f, P: f}
	}
	return out
}

func testDataset() *trajectory.Dataset {
	return &trajectory.Dataset{
		Metadata: trajectory.Metadata{MaxTurns: 4, TotalCases: 2},
		Trajectories: []*trajectory.Trajectory{
			{ID: "case-fail", Status: "failure", Points: []geom.Point3{{C: -10, A: -5, P: -2}, {C: -8, A: -4, P: -1}}},
			{ID: "case-ok", Status: trajectory.StatusSuccess, Points: line(5)},
		},
	}
}

func element(t *testing.T, r *Renderable, data []Element, kind Kind, id string) Element {
	t.Helper()
	plan, err := NewPlan(trajectory.Partition(testDataset().Trajectories), DefaultOptions())
	require.NoError(t, err)
	i, ok := plan.Index().Pos(TrajectoryKey(kind, id))
	require.True(t, ok)
	require.Equal(t, TrajectoryKey(kind, id), data[i].Key)
	return data[i]
}

func TestBuildAlignsFramesWithInitialScene(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	// 4 elements per trajectory, origin, 6 axis halves, 6 legend entries
	assert.Len(t, r.Data, 4*2+1+6+6)
	require.Len(t, r.Frames, 4)

	for i, f := range r.Frames {
		assert.Equal(t, i+1, f.Turn)
		assert.Equal(t, FrameName(i+1), f.Name)
		require.Len(t, f.Data, len(r.Data))
		for j := range f.Data {
			assert.Equal(t, r.Data[j].Key, f.Data[j].Key, "frame %d element %d", f.Turn, j)
		}
	}
}

func TestIndexOrdersSuccessFirst(t *testing.T) {
	ix, err := NewIndex(trajectory.Partition(testDataset().Trajectories))
	require.NoError(t, err)

	keys := ix.Keys()
	assert.Equal(t, []Key{
		"path:case-ok", "path-markers:case-ok",
		"path:case-fail", "path-markers:case-fail",
		"start:case-ok", "start:case-fail",
		"end:case-ok", "end:case-fail",
		"origin#origin",
	}, keys[:9])
	assert.Equal(t, ix.Len(), len(keys))
}

func TestInitialScene(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	path := element(t, r, r.Data, KindPath, "case-ok")
	assert.True(t, path.IsPlaceholder())
	assert.Len(t, path.X, 1)

	end := element(t, r, r.Data, KindEnd, "case-ok")
	assert.True(t, end.IsPlaceholder())

	start := element(t, r, r.Data, KindStart, "case-fail")
	assert.Equal(t, []geom.Point3{{C: -10, A: -5, P: -2}}, start.Points())

	legends := 0
	for _, e := range r.Data {
		if e.Meta.Kind == KindLegend {
			legends++
			assert.Equal(t, visibleLegendOnly, e.Visible)
			assert.True(t, e.ShowLegend)
		}
	}
	assert.Equal(t, 6, legends)
}

func TestFramePartialReveal(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	turn2 := r.Frames[1].Data
	markers := element(t, r, turn2, KindPathMarkers, "case-ok")
	assert.Equal(t, line(3), markers.Points())
	assert.Equal(t, []string{"1", "2", "3"}, markers.Text)

	path := element(t, r, turn2, KindPath, "case-ok")
	pts := path.Points()
	require.NotEmpty(t, pts)
	assert.Equal(t, geom.Point3{}, pts[0])
	assert.Equal(t, geom.Point3{C: 2, A: 2, P: 2}, pts[len(pts)-1])
	assert.Len(t, path.CustomData, len(pts))
	assert.Equal(t, 30, geom.TargetDensity(3, DefaultOptions().MaxDensity))

	turn4 := r.Frames[3].Data
	markers = element(t, r, turn4, KindPathMarkers, "case-ok")
	assert.Equal(t, line(5), markers.Points())

	path = element(t, r, turn4, KindPath, "case-ok")
	assert.Len(t, path.X, 50)
	assert.Equal(t, 1.0, path.CustomData[0])
	assert.Equal(t, 5.0, path.CustomData[len(path.CustomData)-1])
}

func TestEndMarkerAppearsOnCompletion(t *testing.T) {
	ds := testDataset()
	ds.Metadata.MaxTurns = 7
	r, err := Build(ds, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, r.Frames, 7)

	for _, f := range r.Frames {
		end := element(t, r, f.Data, KindEnd, "case-ok")
		if f.Turn < 4 {
			assert.True(t, end.IsPlaceholder(), "turn %d", f.Turn)
			assert.Empty(t, end.Points(), "turn %d", f.Turn)
			continue
		}
		assert.False(t, end.IsPlaceholder(), "turn %d", f.Turn)
		assert.Equal(t, []geom.Point3{{C: 4, A: 4, P: 4}}, end.Points(), "turn %d", f.Turn)
	}
}

func TestShortTrajectoryHoldsAtEnd(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	for _, f := range r.Frames {
		markers := element(t, r, f.Data, KindPathMarkers, "case-fail")
		assert.Len(t, markers.Points(), 2, "turn %d", f.Turn)

		end := element(t, r, f.Data, KindEnd, "case-fail")
		assert.False(t, end.IsPlaceholder(), "turn %d", f.Turn)
		assert.Equal(t, []geom.Point3{{C: -8, A: -4, P: -1}}, end.Points())
	}
}

func TestMarkerPrefixGrows(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	prev := []geom.Point3{}
	for _, f := range r.Frames {
		markers := element(t, r, f.Data, KindPathMarkers, "case-ok")
		cur := markers.Points()
		require.GreaterOrEqual(t, len(cur), len(prev))
		assert.Equal(t, prev, cur[:len(prev)])
		prev = cur
	}
}

func TestStaticElementsUnchangedAcrossFrames(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	for _, f := range r.Frames {
		for i, e := range f.Data {
			switch e.Meta.Kind {
			case KindAxis, KindLegend, KindOrigin, KindStart:
				assert.Equal(t, r.Data[i].Points(), e.Points())
			}
		}
	}
}

func TestFramesRejectsEmptyHorizon(t *testing.T) {
	plan, err := NewPlan(trajectory.Partition(testDataset().Trajectories), DefaultOptions())
	require.NoError(t, err)

	_, err = plan.Frames(0)
	assert.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestDuplicateIDsKeepSeparateElements(t *testing.T) {
	ds := testDataset()
	ds.Trajectories = append(ds.Trajectories, &trajectory.Trajectory{
		ID: "case-ok", Status: trajectory.StatusSuccess, Points: []geom.Point3{{C: 7, A: 7, P: 7}},
	})

	r, err := Build(ds, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, r.Data, 4*3+1+6+6)

	plan, err := NewPlan(trajectory.Partition(ds.Trajectories), DefaultOptions())
	require.NoError(t, err)
	first, ok := plan.Index().Pos(TrajectoryKey(KindStart, "case-ok"))
	require.True(t, ok)
	second, ok := plan.Index().Pos(TrajectoryKey(KindStart, "case-ok~2"))
	require.True(t, ok)

	a, b := r.Data[first], r.Data[second]
	assert.Equal(t, []geom.Point3{{}}, a.Points())
	assert.Equal(t, []geom.Point3{{C: 7, A: 7, P: 7}}, b.Points())
	assert.Equal(t, "case-ok", b.Meta.TrajectoryID)
	assert.Contains(t, b.HoverTemplate, "case-ok start")
}

func TestLayoutControls(t *testing.T) {
	r, err := Build(testDataset(), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, r.Layout.Sliders, 1)
	steps := r.Layout.Sliders[0].Steps
	require.Len(t, steps, 4)
	for i, s := range steps {
		assert.Equal(t, r.Frames[i].Name, s.Args[0].([]string)[0])
	}
	assert.Equal(t, "1", steps[0].Label)
	assert.Equal(t, "4", steps[3].Label)

	require.Len(t, r.Layout.UpdateMenus, 1)
	buttons := r.Layout.UpdateMenus[0].Buttons
	require.Len(t, buttons, 2)
	assert.Nil(t, buttons[0].Args[0])
	assert.Equal(t, 300, buttons[0].Args[1].(Animation).Frame.Duration)
	assert.True(t, buttons[0].Args[1].(Animation).FromCurrent)

	assert.Equal(t, "reversed", r.Layout.Scene.XAxis.AutoRange)
	assert.Equal(t, Vec3{X: -1.5, Y: -1.5, Z: 1.2}, r.Layout.Scene.Camera.Eye)
	assert.False(t, r.Config.DisplayLogo)
	assert.Contains(t, r.Config.ModeBarButtonsToRemove, "toImage")

	assert.Equal(t, Summary{TotalCases: 2, MaxTurns: 4, Trajectories: 2, Success: 1, Failure: 1}, r.Summary)
	assert.Len(t, r.BuildID, 26)
}

func TestCoordMarshalsAbsentAsNull(t *testing.T) {
	e := Element{}
	e.Clear()

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, gjson.Null, gjson.GetBytes(b, "x.0").Type)

	e.SetPoints([]geom.Point3{{C: 1.5, A: -2, P: 0}})
	b, err = json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, 1.5, gjson.GetBytes(b, "x.0").Float())
	assert.Equal(t, -2.0, gjson.GetBytes(b, "y.0").Float())

	var c Coord
	require.NoError(t, c.UnmarshalJSON([]byte("null")))
	assert.True(t, c.IsAbsent())
}

func TestDescribe(t *testing.T) {
	s := Describe("case-7", trajectory.GroupFailure, KindEnd)
	assert.Contains(t, s, "case-7 end")
	assert.Contains(t, s, "(failure)")
	assert.Equal(t, s, Describe("case-7", trajectory.GroupFailure, KindEnd))

	assert.Contains(t, Describe("case-7", trajectory.GroupSuccess, KindPath), "%{customdata:.1f}")
	assert.Contains(t, Describe("case-7", trajectory.GroupSuccess, KindPathMarkers), "%{text}")
}

func TestCameraClamp(t *testing.T) {
	g := DefaultCameraGuard()
	assert.Equal(t, 2.0, g.Clamp(2.5))
	assert.Equal(t, 0.3, g.Clamp(0.1))
	assert.Equal(t, 1.2, g.Clamp(1.2))
}

func TestCameraCorrect(t *testing.T) {
	g := DefaultCameraGuard()

	patch, changed, err := g.Correct([]byte(`{"scene.camera":{"eye":{"x":-1.5,"y":-1.5,"z":2.5},"center":{"x":0,"y":0,"z":0}}}`))
	require.NoError(t, err)
	require.True(t, changed)
	eye := gjson.GetBytes(patch, `scene\.camera\.eye`)
	require.True(t, eye.Exists())
	assert.Equal(t, 2.0, eye.Get("z").Float())
	assert.Equal(t, -1.5, eye.Get("x").Float())

	_, changed, err = g.Correct([]byte(`{"scene.camera":{"eye":{"x":1,"y":1,"z":1}}}`))
	require.NoError(t, err)
	assert.False(t, changed)

	_, changed, err = g.Correct([]byte(`{"autosize":true}`))
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = g.Correct([]byte(`{"scene.camera":`))
	assert.ErrorIs(t, err, ErrMalformedRelayout)

	_, _, err = g.Correct([]byte(`{"scene.camera":{"eye":{"z":"far"}}}`))
	assert.ErrorIs(t, err, ErrMalformedRelayout)
}

func TestCoordNaNIsAbsent(t *testing.T) {
	assert.True(t, Coord(math.NaN()).IsAbsent())
	assert.False(t, Coord(0).IsAbsent())
}

func TestBuildFramesMatchesPlan(t *testing.T) {
	ds := testDataset()
	groups := trajectory.Partition(ds.Trajectories)

	frames, err := BuildFrames(groups, ds.Metadata.MaxTurns, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, frames, ds.Metadata.MaxTurns)

	plan, err := NewPlan(groups, DefaultOptions())
	require.NoError(t, err)
	for i, f := range frames {
		assert.Equal(t, i+1, f.Turn)

		// hidden end markers hold NaN, so frames are compared in their wire form
		want, err := json.Marshal(plan.Frame(f.Turn))
		require.NoError(t, err)
		got, err := json.Marshal(f)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(got), "turn %d", f.Turn)
	}
}
