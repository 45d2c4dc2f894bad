package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/theapemachine/blochviz"
)

var (
	gateStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bc3454"))
	pointStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2c94c8"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#834558"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// termRenderer prints trajectories as coordinate lines.
type termRenderer struct {
	out   io.Writer
	fps   int
	every int
}

func newTermRenderer(out io.Writer, fps, every int) *termRenderer {
	if every < 1 {
		every = 1
	}
	return &termRenderer{out: out, fps: fps, every: every}
}

func (r *termRenderer) Render(trajectory blochviz.Trajectory) {
	header := trajectory.Gate.Label()
	if trajectory.Gate.Parameterized() {
		header = fmt.Sprintf("%s(%.4f)", header, trajectory.Theta)
	}
	fmt.Fprintln(r.out, gateStyle.Render(header))

	last := trajectory.Len() - 1
	for i, p := range trajectory.All() {
		if i%r.every != 0 && i != last {
			continue
		}
		fmt.Fprintf(r.out, "  %3d %s\n", i, pointStyle.Render(p.String()))
		sleepFrame(r.fps)
	}
}

func (r *termRenderer) VisualizationFailed(err error) {
	fmt.Fprintln(r.out, errorStyle.Render("visualization not possible: "+err.Error()))
	fmt.Fprintln(r.out, mutedStyle.Render("type 'clear' to start over"))
}

func (r *termRenderer) History(text string) {
	fmt.Fprintln(r.out, historyStyle.Render("history: "+text))
}

func (r *termRenderer) Error(err error) {
	fmt.Fprintln(r.out, errorStyle.Render(err.Error()))
}

func (r *termRenderer) Metrics(metrics map[string]interface{}) {
	keys := make([]string, 0, len(metrics))
	for k := range metrics {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(r.out, "  %-24s %v\n", k, metrics[k])
	}
}

func (r *termRenderer) prompt(session *blochviz.Session) {
	switch {
	case session.Terminated():
		fmt.Fprint(r.out, mutedStyle.Render("[terminated] "))
	case session.AtCapacity():
		fmt.Fprint(r.out, mutedStyle.Render("[full] "))
	}
	fmt.Fprint(r.out, "> ")
}
