package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/simplegraph/core"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF99"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))
)

// heading prints a styled section title.
func heading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf(format, args...)))
}

// field prints one aligned "label value" row.
func field(w io.Writer, label string, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-11s", label)), fmt.Sprintf(format, args...))
}

// printStats writes the figures shared by the stats and sample commands.
func printStats(w io.Writer, g *core.Graph) {
	s := g.Stats()
	d := g.DegreeStats()

	field(w, "vertices", "%d", s.VertexCount)
	field(w, "edges", "%d", s.EdgeCount)
	field(w, "density", "%.6f", s.Density)
	field(w, "degree", "min %d  max %d  avg %.4f  stddev %.4f", s.MinDegree, s.MaxDegree, s.AverageDegree, d.StdDev)
	field(w, "components", "%d", s.ComponentCount)
	field(w, "connected", "%t", s.Connected)
}
