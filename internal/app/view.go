package app

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/input/action"
	"github.com/dshills/actionmap/internal/input/binding"
)

var (
	styleHeader    = tcell.StyleDefault.Bold(true)
	styleDisabled  = tcell.StyleDefault.Dim(true)
	styleTriggered = tcell.StyleDefault.Reverse(true)
)

// line is one row of the state view.
type line struct {
	text  string
	style tcell.Style
}

// stateLines renders the system state as text rows.
func stateLines(sys *action.System, snap action.Snapshot, status string) []line {
	lines := []line{
		{fmt.Sprintf("actionmap  frame %d  policy %s", sys.Frame(), sys.Policy()), styleHeader},
		{"q quit  p toggle policy  1-9 toggle set", tcell.StyleDefault},
		{status, tcell.StyleDefault},
		{"", tcell.StyleDefault},
	}

	for i, set := range sys.Sets() {
		mark, style := "x", tcell.StyleDefault
		if !set.IsEnabled() {
			mark, style = " ", styleDisabled
		}
		lines = append(lines, line{
			fmt.Sprintf("%d [%s] %s (%s) priority %d", i+1, mark, set.Name(), set.LocalizedName(), set.Priority()),
			style.Bold(set.IsEnabled()),
		})
		lines = append(lines, actionLines("bool", set.BoolActions(), func(v bool) string { return fmt.Sprintf("%t", v) }, style)...)
		lines = append(lines, actionLines("float", set.FloatActions(), func(v float32) string { return fmt.Sprintf("%.2f", v) }, style)...)
		lines = append(lines, actionLines("vec2", set.Vec2Actions(), binding.Vec2.String, style)...)
	}

	lines = append(lines,
		line{"", tcell.StyleDefault},
		line{fmt.Sprintf("events %d  triggers %d  unmatched %d  ignored %d  avg %v  p99 %v",
			snap.Events, snap.Triggers, snap.Unmatched, snap.Ignored, snap.AvgLatency, snap.P99Latency), tcell.StyleDefault},
	)
	return lines
}

func actionLines[B binding.Enum, V any](kind string, actions map[string]*action.Action[B, V], format func(V) string, style tcell.Style) []line {
	out := make([]line, 0, len(actions))
	for _, name := range slices.Sorted(maps.Keys(actions)) {
		a := actions[name]
		s := style
		edge := " "
		if a.TriggeredThisFrame() {
			s, edge = styleTriggered, "*"
		}
		out = append(out, line{fmt.Sprintf("   %s %-5s %-16s %s", edge, kind, name, format(a.Value())), s})
	}
	return out
}

// draw paints lines onto s and shows the result.
func draw(s tcell.Screen, lines []line) {
	s.Clear()
	width, height := s.Size()
	for y, l := range lines {
		if y >= height {
			break
		}
		x := 0
		for _, r := range l.text {
			if x >= width {
				break
			}
			s.SetContent(x, y, r, nil, l.style)
			x++
		}
	}
	s.Show()
}
