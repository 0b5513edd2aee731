package teaui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/routine/pkg/app"
)

// Run launches the Bubble Tea UI on the alternate screen.
func Run(planner *app.Planner) error {
	_, err := tea.NewProgram(New(planner), tea.WithAltScreen()).Run()
	return err
}
