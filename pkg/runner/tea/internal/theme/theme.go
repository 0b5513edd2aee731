package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Heading  lipgloss.Style
	Sidebar  lipgloss.Style
	Main     lipgloss.Style
	Calendar CalendarTheme
	Activity ActivityTheme
	Form     FormTheme
	Footer   FooterTheme
}

// CalendarTheme styles the sidebar month.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Busy     lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// ActivityTheme styles activity rows in the main pane.
type ActivityTheme struct {
	Time        lipgloss.Style
	Title       lipgloss.Style
	Selected    lipgloss.Style
	Description lipgloss.Style
	Day         lipgloss.Style
	Today       lipgloss.Style
	None        lipgloss.Style
	Count       lipgloss.Style
}

// FormTheme styles the add and edit form.
type FormTheme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Hint    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help        lipgloss.Style
	Status      lipgloss.Style
	Destructive lipgloss.Style
	Error       lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("212")
	muted := lipgloss.Color("244")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	return Theme{
		Heading: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Sidebar: box,
		Main:    box,
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(muted),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Busy:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Underline(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Activity: ActivityTheme{
			Time:        lipgloss.NewStyle().Foreground(muted),
			Title:       lipgloss.NewStyle().Bold(true),
			Selected:    lipgloss.NewStyle().Foreground(accent).Bold(true),
			Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Day:         lipgloss.NewStyle().Italic(true),
			Today:       lipgloss.NewStyle().Italic(true).Bold(true).Foreground(lipgloss.Color("51")),
			None:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			Count:       lipgloss.NewStyle().Foreground(muted),
		},
		Form: FormTheme{
			Title:   lipgloss.NewStyle().Foreground(accent).Bold(true),
			Label:   lipgloss.NewStyle().Foreground(muted).Width(12),
			Focused: lipgloss.NewStyle().Foreground(accent).Width(12),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Footer: FooterTheme{
			Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
			Destructive: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
	}
}
