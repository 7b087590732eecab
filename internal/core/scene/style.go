package scene

import (
	"github.com/epmviz/backend/internal/core/trajectory"
)

const (
	legendGroupStart  = "start"
	legendGroupOrigin = "target_origin"

	pathOpacity    = 0.6
	markersOpacity = 0.4
	axisOpacity    = 0.3
)

type groupStyle struct {
	label string

	path    LineStyle
	markers MarkerStyle
	end     MarkerStyle

	endLegendGroup string

	pathLegendName string
	endLegendName  string

	pathLegendRank int
	endLegendRank  int
}

var groupStyles = map[trajectory.Group]groupStyle{
	trajectory.GroupSuccess: {
		label:          "success",
		path:           LineStyle{Color: "#1f77b4", Width: 3},
		markers:        MarkerStyle{Color: "#1f77b4", Size: 2.0, Line: &Outline{Color: "white", Width: 0.3}},
		end:            MarkerStyle{Color: "#238b45", Size: 2.8, Symbol: "diamond", Line: &Outline{Color: "white", Width: 0.5}},
		endLegendGroup: "success_end",
		pathLegendName: "Successful path",
		endLegendName:  "Success end",
		pathLegendRank: 60,
		endLegendRank:  71,
	},
	trajectory.GroupFailure: {
		label:          "failure",
		path:           LineStyle{Color: "#d62728", Width: 3},
		markers:        MarkerStyle{Color: "#d62728", Size: 1.5, Line: &Outline{Color: "white", Width: 0.3}},
		end:            MarkerStyle{Color: "#a50f15", Size: 3.0, Symbol: "x", Line: &Outline{Color: "white", Width: 0.5}},
		endLegendGroup: "failure_end",
		pathLegendName: "Failed path",
		endLegendName:  "Failure end",
		pathLegendRank: 61,
		endLegendRank:  72,
	},
}

var (
	startMarker  = MarkerStyle{Color: "#08519c", Size: 2.5, Symbol: "circle", Line: &Outline{Color: "white", Width: 0.5}}
	originMarker = MarkerStyle{Color: "gold", Size: 8, Symbol: "diamond", Line: &Outline{Color: "#f97316", Width: 1.2}}

	startLegendRank  = 70
	originLegendRank = 73
)

// legendMarker enlarges a marker style for its legend swatch.
func legendMarker(m MarkerStyle, size, outline float64) *MarkerStyle {
	m.Size = size
	if m.Line != nil {
		line := *m.Line
		line.Width = outline
		m.Line = &line
	}
	return &m
}

func lineStyle(l LineStyle) *LineStyle {
	return &l
}

func markerStyle(m MarkerStyle) *MarkerStyle {
	if m.Line != nil {
		line := *m.Line
		m.Line = &line
	}
	return &m
}
