package scene

// The types below mirror the subset of the renderer's layout schema the scene uses.

type Layout struct {
	Title               string       `json:"title"`
	Autosize            bool         `json:"autosize"`
	Height              int          `json:"height"`
	Margin              Margin       `json:"margin"`
	DragMode            string       `json:"dragmode"`
	PaperBGColor        string       `json:"paper_bgcolor"`
	PlotBGColor         string       `json:"plot_bgcolor"`
	HoverMode           string       `json:"hovermode"`
	Legend              Legend       `json:"legend"`
	LegendTraceGroupGap int          `json:"legend_tracegroupgap"`
	Scene               Scene3D      `json:"scene"`
	Font                Font         `json:"font"`
	UpdateMenus         []UpdateMenu `json:"updatemenus"`
	Sliders             []Slider     `json:"sliders"`
}

type Margin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}

type Font struct {
	Family string `json:"family,omitempty"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

type Legend struct {
	Title       Title   `json:"title"`
	X           float64 `json:"x"`
	XAnchor     string  `json:"xanchor"`
	Y           float64 `json:"y"`
	YAnchor     string  `json:"yanchor"`
	BGColor     string  `json:"bgcolor"`
	BorderColor string  `json:"bordercolor"`
	BorderWidth int     `json:"borderwidth"`
	Font        Font    `json:"font"`
	GroupClick  string  `json:"groupclick"`
}

type Title struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

type Scene3D struct {
	XAxis      Axis   `json:"xaxis"`
	YAxis      Axis   `json:"yaxis"`
	ZAxis      Axis   `json:"zaxis"`
	Camera     Camera `json:"camera"`
	AspectMode string `json:"aspectmode"`
}

type Axis struct {
	Title           Title  `json:"title"`
	Range           Range  `json:"range"`
	AutoRange       string `json:"autorange"`
	BackgroundColor string `json:"backgroundcolor"`
	GridColor       string `json:"gridcolor"`
	ShowBackground  bool   `json:"showbackground"`
	ZeroLineColor   string `json:"zerolinecolor"`
	ZeroLineWidth   int    `json:"zerolinewidth"`
	TickFont        Font   `json:"tickfont"`
}

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Camera struct {
	Eye    Vec3 `json:"eye"`
	Center Vec3 `json:"center"`
}

type Pad struct {
	T int `json:"t,omitempty"`
	B int `json:"b,omitempty"`
	R int `json:"r,omitempty"`
}

type UpdateMenu struct {
	Type       string   `json:"type"`
	ShowActive bool     `json:"showactive"`
	Buttons    []Button `json:"buttons"`
	Direction  string   `json:"direction"`
	Pad        Pad      `json:"pad"`
	X          float64  `json:"x"`
	XAnchor    string   `json:"xanchor"`
	Y          float64  `json:"y"`
	YAnchor    string   `json:"yanchor"`
}

type Button struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Args   []any  `json:"args"`
}

// Animation is the options argument of an animate call.
type Animation struct {
	Frame       AnimationFrame `json:"frame"`
	FromCurrent bool           `json:"fromcurrent,omitempty"`
	Mode        string         `json:"mode"`
	Transition  Transition     `json:"transition"`
}

type AnimationFrame struct {
	Duration int  `json:"duration"`
	Redraw   bool `json:"redraw"`
}

type Transition struct {
	Duration int `json:"duration"`
}

type Slider struct {
	Active       int          `json:"active"`
	YAnchor      string       `json:"yanchor"`
	Y            float64      `json:"y"`
	XAnchor      string       `json:"xanchor"`
	X            float64      `json:"x"`
	CurrentValue CurrentValue `json:"currentvalue"`
	Pad          Pad          `json:"pad"`
	Len          float64      `json:"len"`
	Steps        []SliderStep `json:"steps"`
}

type CurrentValue struct {
	Prefix  string `json:"prefix"`
	Visible bool   `json:"visible"`
	XAnchor string `json:"xanchor"`
	Font    Font   `json:"font"`
}

type SliderStep struct {
	Args   []any  `json:"args"`
	Method string `json:"method"`
	Label  string `json:"label"`
	Value  string `json:"value"`
}

// Config is the renderer's interaction configuration.
type Config struct {
	Responsive             bool     `json:"responsive"`
	DisplayModeBar         bool     `json:"displayModeBar"`
	DisplayLogo            bool     `json:"displaylogo"`
	ModeBarButtonsToRemove []string `json:"modeBarButtonsToRemove"`
}
