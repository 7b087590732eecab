package scene

import (
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/epmviz/backend/internal/core/trajectory"
)

// Renderable is the unit handed to the renderer: draw Data with Layout and
// Config first, then attach Frames.
type Renderable struct {
	BuildID     string      `json:"buildId"`
	Data        []Element   `json:"data"`
	Frames      []Frame     `json:"frames"`
	Layout      Layout      `json:"layout"`
	Config      Config      `json:"config"`
	CameraGuard CameraGuard `json:"cameraGuard"`
	Summary     Summary     `json:"summary"`
}

type Summary struct {
	TotalCases   int    `json:"totalCases"`
	MaxTurns     int    `json:"maxTurns"`
	Trajectories int    `json:"trajectories"`
	Success      int    `json:"success"`
	Failure      int    `json:"failure"`
	Digest       string `json:"digest,omitempty"`
}

func Summarize(ds *trajectory.Dataset) Summary {
	groups := trajectory.Partition(ds.Trajectories)
	return Summary{
		TotalCases:   ds.Metadata.TotalCases,
		MaxTurns:     ds.Metadata.MaxTurns,
		Trajectories: groups.Len(),
		Success:      len(groups.Success),
		Failure:      len(groups.Failure),
	}
}

// Assemble bundles the initial scene and its frames with layout, animation
// controls and the camera guard.
func Assemble(initial []Element, frames []Frame, meta trajectory.Metadata, opts Options) *Renderable {
	return &Renderable{
		BuildID:     strings.ToLower(ulid.Make().String()),
		Data:        initial,
		Frames:      frames,
		Layout:      buildLayout(frames, opts),
		Config:      defaultConfig(),
		CameraGuard: opts.Camera,
		Summary: Summary{
			TotalCases: meta.TotalCases,
			MaxTurns:   meta.MaxTurns,
		},
	}
}

// Build runs the whole pipeline for a dataset.
func Build(ds *trajectory.Dataset, opts Options) (*Renderable, error) {
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	plan, err := NewPlan(trajectory.Partition(ds.Trajectories), opts)
	if err != nil {
		return nil, err
	}
	frames, err := plan.Frames(ds.Metadata.MaxTurns)
	if err != nil {
		return nil, err
	}

	r := Assemble(plan.InitialScene(), frames, ds.Metadata, opts)
	r.Summary = Summarize(ds)
	return r, nil
}

func defaultConfig() Config {
	return Config{
		Responsive:             true,
		DisplayModeBar:         true,
		DisplayLogo:            false,
		ModeBarButtonsToRemove: []string{"toImage"},
	}
}

func buildLayout(frames []Frame, opts Options) Layout {
	text := Font{Size: 13, Color: "#1f2937"}
	return Layout{
		Title:        " ",
		Autosize:     true,
		Height:       720,
		Margin:       Margin{T: 70, B: 70, L: 56, R: 220},
		DragMode:     "turntable",
		PaperBGColor: "rgba(0,0,0,0)",
		PlotBGColor:  "rgba(0,0,0,0)",
		HoverMode:    "closest",
		Legend: Legend{
			Title:       Title{Text: "<b>Legend</b>"},
			X:           1.02,
			XAnchor:     "left",
			Y:           0.98,
			YAnchor:     "top",
			BGColor:     "rgba(255,255,255,0.88)",
			BorderColor: "#d4d8e2",
			BorderWidth: 1,
			Font:        Font{Size: 12, Color: "#1f2937"},
			GroupClick:  "togglegroup",
		},
		LegendTraceGroupGap: 12,
		Scene: Scene3D{
			XAxis:      axis("Cognitive (C)", opts.Axes.C, "darkred"),
			YAxis:      axis("Affective (A)", opts.Axes.A, "darkgreen"),
			ZAxis:      axis("Proactive (P)", opts.Axes.P, "darkblue"),
			Camera:     DefaultCamera(),
			AspectMode: "cube",
		},
		Font: Font{
			Family: "'Helvetica Neue', Arial, sans-serif",
			Size:   text.Size,
			Color:  text.Color,
		},
		UpdateMenus: []UpdateMenu{playbackControls(opts)},
		Sliders:     []Slider{turnSlider(frames, text)},
	}
}

func DefaultCamera() Camera {
	return Camera{
		Eye:    Vec3{X: -1.5, Y: -1.5, Z: 1.2},
		Center: Vec3{},
	}
}

func axis(name string, r Range, zeroLine string) Axis {
	return Axis{
		Title: Title{
			Text: "<b>" + name + "</b><br>← deficit | surplus →",
			Font: &Font{Size: 13, Color: "#0f172a"},
		},
		Range:           r,
		AutoRange:       "reversed",
		BackgroundColor: "#ffffff",
		GridColor:       "#e2e8f0",
		ShowBackground:  true,
		ZeroLineColor:   zeroLine,
		ZeroLineWidth:   3,
		TickFont:        Font{Size: 11, Color: "#334155"},
	}
}

func playbackControls(opts Options) UpdateMenu {
	play := Animation{
		Frame:       AnimationFrame{Duration: int(opts.FrameDuration.Milliseconds()), Redraw: true},
		FromCurrent: true,
		Mode:        "immediate",
	}
	pause := Animation{
		Frame: AnimationFrame{Duration: 0, Redraw: false},
		Mode:  "immediate",
	}
	return UpdateMenu{
		Type:       "buttons",
		ShowActive: false,
		Buttons: []Button{
			{Label: "▶ Play", Method: "animate", Args: []any{nil, play}},
			{Label: "⏸ Pause", Method: "animate", Args: []any{[]any{nil}, pause}},
		},
		Direction: "left",
		Pad:       Pad{R: 10},
		X:         0.02,
		XAnchor:   "left",
		Y:         0.94,
		YAnchor:   "bottom",
	}
}

// turnSlider has one step per frame, labelled with its turn number.
func turnSlider(frames []Frame, font Font) Slider {
	jump := Animation{
		Frame: AnimationFrame{Duration: 0, Redraw: true},
		Mode:  "immediate",
	}
	steps := make([]SliderStep, len(frames))
	for i, f := range frames {
		label := strconv.Itoa(f.Turn)
		steps[i] = SliderStep{
			Args:   []any{[]string{f.Name}, jump},
			Method: "animate",
			Label:  label,
			Value:  label,
		}
	}
	return Slider{
		Active:  0,
		YAnchor: "bottom",
		Y:       0.96,
		XAnchor: "left",
		X:       0.23,
		CurrentValue: CurrentValue{
			Prefix:  "Turn: ",
			Visible: true,
			XAnchor: "left",
			Font:    font,
		},
		Pad:   Pad{T: 4, B: 4},
		Len:   0.72,
		Steps: steps,
	}
}
