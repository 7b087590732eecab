package scene

import (
	"fmt"
	"strconv"

	"github.com/epmviz/backend/internal/core/trajectory"
)

const coordinateLines = "C: %{x:.1f}<br>A: %{y:.1f}<br>P: %{z:.1f}<extra></extra>"

// Describe renders the hover description of a trajectory element. It only
// depends on the trajectory's identity, its group and the element kind; the
// coordinates are filled in by the renderer.
func Describe(id string, group trajectory.Group, kind Kind) string {
	label := groupStyles[group].label
	switch kind {
	case KindPath:
		return fmt.Sprintf("<b>%s</b> (%s)<br>Turn %%{customdata:.1f}<br>%s", id, label, coordinateLines)
	case KindPathMarkers:
		return fmt.Sprintf("<b>%s - turn %%{text}</b><br>%s", id, coordinateLines)
	case KindStart:
		return fmt.Sprintf("<b>%s start</b><br>%s", id, coordinateLines)
	case KindEnd:
		return fmt.Sprintf("<b>%s end</b> (%s)<br>%s", id, label, coordinateLines)
	default:
		return fmt.Sprintf("<b>%s</b><br>%s", id, coordinateLines)
	}
}

const originDescription = "<b>Target origin</b><br>C: 0<br>A: 0<br>P: 0<extra></extra>"

// turnLabels numbers revealed raw points from 1.
func turnLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return labels
}
