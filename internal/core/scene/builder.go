package scene

import (
	"github.com/jinzhu/copier"

	"github.com/epmviz/backend/internal/core/geom"
	"github.com/epmviz/backend/internal/core/trajectory"
)

// Plan holds the element layout shared by the initial scene and every frame
// of one dataset.
type Plan struct {
	groups    trajectory.Groups
	index     *Index
	opts      Options
	templates []Element
}

func NewPlan(groups trajectory.Groups, opts Options) (*Plan, error) {
	if err := trajectory.Check(groups.Ordered()); err != nil {
		return nil, err
	}
	ix, err := NewIndex(groups)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		groups:    groups,
		index:     ix,
		opts:      opts,
		templates: make([]Element, ix.Len()),
	}

	for _, t := range groups.Ordered() {
		ix.place(p.templates, pathElement(ix, t))
		ix.place(p.templates, pathMarkersElement(ix, t))
		ix.place(p.templates, startElement(ix, t))
		ix.place(p.templates, endElement(ix, t))
	}
	ix.place(p.templates, originElement())
	for _, e := range axisElements(opts.Axes) {
		ix.place(p.templates, e)
	}
	for _, e := range legendElements() {
		ix.place(p.templates, e)
	}

	return p, nil
}

func (p *Plan) Index() *Index {
	return p.index
}

// InitialScene returns the scene before the first turn is played: placeholders
// for paths and end markers, populated start markers, origin, axes and legend.
func (p *Plan) InitialScene() []Element {
	return cloneElements(p.templates)
}

// BuildInitialScene lays out the initial scene for the given trajectories.
func BuildInitialScene(groups trajectory.Groups, opts Options) ([]Element, error) {
	p, err := NewPlan(groups, opts)
	if err != nil {
		return nil, err
	}
	return p.InitialScene(), nil
}

func cloneElements(src []Element) []Element {
	var dst []Element
	if err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for []Element
		panic(err)
	}
	return dst
}

func trajectoryElement(ix *Index, t *trajectory.Trajectory, kind Kind) Element {
	group := trajectory.GroupOf(t)
	return Element{
		Key:           ix.Key(kind, t),
		Type:          traceType,
		HoverTemplate: Describe(t.ID, group, kind),
		Meta: ElementMeta{
			Kind:         kind,
			TrajectoryID: t.ID,
			Group:        string(group),
		},
	}
}

func pathElement(ix *Index, t *trajectory.Trajectory) Element {
	style := groupStyles[trajectory.GroupOf(t)]
	e := trajectoryElement(ix, t, KindPath)
	e.Mode = ModeLines
	e.Line = lineStyle(style.path)
	e.Opacity = pathOpacity
	e.LegendGroup = string(trajectory.GroupOf(t))
	e.Clear()
	return e
}

func pathMarkersElement(ix *Index, t *trajectory.Trajectory) Element {
	style := groupStyles[trajectory.GroupOf(t)]
	e := trajectoryElement(ix, t, KindPathMarkers)
	e.Mode = ModeMarkers
	e.Marker = markerStyle(style.markers)
	e.Opacity = markersOpacity
	e.LegendGroup = string(trajectory.GroupOf(t))
	e.Clear()
	return e
}

func startElement(ix *Index, t *trajectory.Trajectory) Element {
	e := trajectoryElement(ix, t, KindStart)
	e.Mode = ModeMarkers
	e.Marker = markerStyle(startMarker)
	e.LegendGroup = legendGroupStart
	e.SetPoints([]geom.Point3{t.Start()})
	return e
}

func endElement(ix *Index, t *trajectory.Trajectory) Element {
	style := groupStyles[trajectory.GroupOf(t)]
	e := trajectoryElement(ix, t, KindEnd)
	e.Mode = ModeMarkers
	e.Marker = markerStyle(style.end)
	e.LegendGroup = style.endLegendGroup
	e.Clear()
	return e
}

func originElement() Element {
	e := Element{
		Key:           originKey,
		Type:          traceType,
		Mode:          ModeMarkers,
		Marker:        markerStyle(originMarker),
		LegendGroup:   legendGroupOrigin,
		HoverTemplate: originDescription,
		Meta:          ElementMeta{Kind: KindOrigin},
	}
	e.SetPoints([]geom.Point3{geom.Origin})
	return e
}

// axisElements draws each axis as a solid positive half and a dashed negative half.
func axisElements(axes Axes) []Element {
	type half struct {
		name     axisName
		from, to geom.Point3
		color    string
		width    float64
		dash     string
	}
	halves := []half{
		{axisCPos, geom.Origin, geom.Point3{C: axes.C[1]}, "red", 4, "solid"},
		{axisCNeg, geom.Point3{C: axes.C[0]}, geom.Origin, "red", 3, "dash"},
		{axisAPos, geom.Origin, geom.Point3{A: axes.A[1]}, "green", 4, "solid"},
		{axisANeg, geom.Point3{A: axes.A[0]}, geom.Origin, "green", 3, "dash"},
		{axisPPos, geom.Origin, geom.Point3{P: axes.P[1]}, "blue", 4, "solid"},
		{axisPNeg, geom.Point3{P: axes.P[0]}, geom.Origin, "blue", 3, "dash"},
	}

	out := make([]Element, 0, len(halves))
	for _, h := range halves {
		e := Element{
			Key:       axisKey(h.name),
			Type:      traceType,
			Mode:      ModeLines,
			Line:      &LineStyle{Color: h.color, Width: h.width, Dash: h.dash},
			Opacity:   axisOpacity,
			HoverInfo: hoverSkip,
			Meta:      ElementMeta{Kind: KindAxis},
		}
		e.SetPoints(segment(h.from, h.to))
		out = append(out, e)
	}
	return out
}

// legendElements are never drawn in the plot area; they only populate the legend.
func legendElements() []Element {
	success := groupStyles[trajectory.GroupSuccess]
	failure := groupStyles[trajectory.GroupFailure]
	unit := segment(geom.Origin, geom.Point3{C: 1})

	legendLine := func(name legendName, g groupStyle, group trajectory.Group) Element {
		l := g.path
		l.Width = 8
		e := Element{
			Key:         legendKey(name),
			Mode:        ModeLines,
			Line:        &l,
			Name:        g.pathLegendName,
			LegendGroup: string(group),
			LegendRank:  g.pathLegendRank,
		}
		e.SetPoints(unit)
		return e
	}
	legendDot := func(name legendName, m *MarkerStyle, title, group string, rank int) Element {
		e := Element{
			Key:         legendKey(name),
			Mode:        ModeMarkers,
			Marker:      m,
			Name:        title,
			LegendGroup: group,
			LegendRank:  rank,
		}
		e.SetPoints([]geom.Point3{geom.Origin})
		return e
	}

	out := []Element{
		legendLine(legendSuccessPath, success, trajectory.GroupSuccess),
		legendLine(legendFailurePath, failure, trajectory.GroupFailure),
		legendDot(legendStart, legendMarker(startMarker, 10, 1.6), "Start", legendGroupStart, startLegendRank),
		legendDot(legendSuccessEnd, legendMarker(success.end, 11, 1.6), success.endLegendName, success.endLegendGroup, success.endLegendRank),
		legendDot(legendFailureEnd, legendMarker(failure.end, 11, 1.6), failure.endLegendName, failure.endLegendGroup, failure.endLegendRank),
		legendDot(legendOrigin, legendMarker(originMarker, 12, 1.8), "Target origin", legendGroupOrigin, originLegendRank),
	}
	for i := range out {
		out[i].Type = traceType
		out[i].ShowLegend = true
		out[i].Visible = visibleLegendOnly
		out[i].HoverInfo = hoverSkip
		out[i].Meta = ElementMeta{Kind: KindLegend}
	}
	return out
}
