// Package panel renders a bordered box of labelled fields.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

type field struct {
	label, value string
}

// Model is a titled panel; empty values are skipped.
type Model struct {
	title  string
	fields []field

	FrameStyle lipgloss.Style
	TitleStyle lipgloss.Style
	LabelStyle lipgloss.Style
	ValueStyle lipgloss.Style
}

func New() Model {
	return Model{
		FrameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		TitleStyle: lipgloss.NewStyle().Bold(true),
		LabelStyle: lipgloss.NewStyle().Faint(true),
		ValueStyle: lipgloss.NewStyle(),
	}
}

// SetTitle replaces the title and drops every field.
func (m *Model) SetTitle(title string) {
	m.title = title
	m.fields = nil
}

// Add appends one labelled value.
func (m *Model) Add(label, value string) {
	if value == "" {
		return
	}
	m.fields = append(m.fields, field{label: label, value: value})
}

func (m Model) Empty() bool {
	return m.title == "" && len(m.fields) == 0
}

// View renders the panel, or "" when it holds nothing.
func (m Model) View() string {
	if m.Empty() {
		return ""
	}
	width := 0
	for _, f := range m.fields {
		if w := lipgloss.Width(f.label); w > width {
			width = w
		}
	}

	var lines []string
	if m.title != "" {
		lines = append(lines, m.TitleStyle.Render(m.title))
	}
	for _, f := range m.fields {
		label := f.label + strings.Repeat(" ", width-lipgloss.Width(f.label))
		lines = append(lines, m.LabelStyle.Render(label)+"  "+m.ValueStyle.Render(f.value))
	}
	return m.FrameStyle.Render(strings.Join(lines, "\n"))
}
