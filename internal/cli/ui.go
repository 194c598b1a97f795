package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	stylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// printWrote reports the written output file and its size to the user.
// Diagnostics go to the logger on stderr; this is the one line on stdout.
func printWrote(path string, width, height int) {
	fmt.Printf("%s %s %s\n",
		styleSuccess.Render("✓"),
		stylePath.Render(path),
		styleDim.Render(fmt.Sprintf("(%dx%d)", width, height)))
}
