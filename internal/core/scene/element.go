package scene

import (
	"math"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/epmviz/backend/internal/core/geom"
)

// Kind is the logical role of an element within the scene.
type Kind string

const (
	KindPath        Kind = "path"
	KindPathMarkers Kind = "path-markers"
	KindStart       Kind = "start"
	KindEnd         Kind = "end"
	KindOrigin      Kind = "origin"
	KindAxis        Kind = "axis"
	KindLegend      Kind = "legend"
)

// Key identifies an element across the initial scene and every frame.
type Key string

func TrajectoryKey(kind Kind, trajectoryID string) Key {
	return Key(string(kind) + ":" + trajectoryID)
}

func FixedKey(kind Kind, name string) Key {
	return Key(string(kind) + "#" + name)
}

type Mode string

const (
	ModeLines   Mode = "lines"
	ModeMarkers Mode = "markers"
)

const (
	traceType         = "scatter3d"
	visibleLegendOnly = "legendonly"
	hoverSkip         = "skip"
)

// Coord is a single coordinate. NaN marks an absent value and is encoded as
// JSON null, which the renderer treats as a gap.
type Coord float64

var Absent = Coord(math.NaN())

func (c Coord) IsAbsent() bool {
	return math.IsNaN(float64(c))
}

func (c Coord) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

func (c *Coord) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*c = Absent
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*c = Coord(f)
	return nil
}

func (c Coord) EncodeMsgpack(enc *msgpack.Encoder) error {
	if c.IsAbsent() || math.IsInf(float64(c), 0) {
		return enc.EncodeNil()
	}
	return enc.EncodeFloat64(float64(c))
}

func (c *Coord) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		*c = Absent
		return dec.DecodeNil()
	}
	f, err := dec.DecodeFloat64()
	if err != nil {
		return err
	}
	*c = Coord(f)
	return nil
}

type LineStyle struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
	Dash  string  `json:"dash,omitempty"`
}

type Outline struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type MarkerStyle struct {
	Color  string   `json:"color"`
	Size   float64  `json:"size"`
	Symbol string   `json:"symbol,omitempty"`
	Line   *Outline `json:"line,omitempty"`
}

// ElementMeta is carried through to the renderer untouched.
type ElementMeta struct {
	Kind         Kind   `json:"kind"`
	TrajectoryID string `json:"trajectoryId,omitempty"`
	Group        string `json:"group,omitempty"`
}

// Element is one renderable trace.
type Element struct {
	Key  Key    `json:"uid"`
	Type string `json:"type"`
	Mode Mode   `json:"mode"`

	X []Coord `json:"x"`
	Y []Coord `json:"y"`
	Z []Coord `json:"z"`

	Line    *LineStyle   `json:"line,omitempty"`
	Marker  *MarkerStyle `json:"marker,omitempty"`
	Opacity float64      `json:"opacity,omitempty"`

	Name        string `json:"name,omitempty"`
	LegendGroup string `json:"legendgroup,omitempty"`
	ShowLegend  bool   `json:"showlegend"`
	LegendRank  int    `json:"legendrank,omitempty"`
	Visible     string `json:"visible,omitempty"`

	HoverTemplate string    `json:"hovertemplate,omitempty"`
	HoverInfo     string    `json:"hoverinfo,omitempty"`
	Text          []string  `json:"text,omitempty"`
	CustomData    []float64 `json:"customdata,omitempty"`

	Meta ElementMeta `json:"meta"`
}

// SetPoints replaces the element's coordinates. An empty slice yields empty
// coordinate arrays, not a placeholder.
func (e *Element) SetPoints(points []geom.Point3) {
	e.X = make([]Coord, len(points))
	e.Y = make([]Coord, len(points))
	e.Z = make([]Coord, len(points))
	for i, p := range points {
		e.X[i], e.Y[i], e.Z[i] = Coord(p.C), Coord(p.A), Coord(p.P)
	}
}

// Clear turns the element into an absent placeholder.
func (e *Element) Clear() {
	e.X = []Coord{Absent}
	e.Y = []Coord{Absent}
	e.Z = []Coord{Absent}
	e.Text = nil
	e.CustomData = nil
}

// IsPlaceholder reports whether the element carries no drawable coordinate.
func (e *Element) IsPlaceholder() bool {
	for _, c := range e.X {
		if !c.IsAbsent() {
			return false
		}
	}
	return true
}

// Points converts the coordinates back into points, skipping absent entries.
func (e *Element) Points() []geom.Point3 {
	out := make([]geom.Point3, 0, len(e.X))
	for i := range e.X {
		if e.X[i].IsAbsent() || e.Y[i].IsAbsent() || e.Z[i].IsAbsent() {
			continue
		}
		out = append(out, geom.Point3{C: float64(e.X[i]), A: float64(e.Y[i]), P: float64(e.Z[i])})
	}
	return out
}

func segment(from, to geom.Point3) []geom.Point3 {
	return []geom.Point3{from, to}
}
