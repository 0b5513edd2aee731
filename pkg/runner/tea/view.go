package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/glyph"
	"tableflip.dev/routine/pkg/runner/tea/internal/minical"
	"tableflip.dev/routine/pkg/runner/tea/internal/panel"
	"tableflip.dev/routine/pkg/view"
)

const (
	sidebarWidth = 24
	minMainWidth = 40
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	main := m.renderMain()
	if m.form != nil {
		main = m.form.view(m.theme.Form)
	}

	mainWidth := minMainWidth
	if w := m.termWidth - sidebarWidth - 6; w > mainWidth {
		mainWidth = w
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Sidebar.Width(sidebarWidth).Render(m.renderSidebar()),
		m.theme.Main.Width(mainWidth).Render(main),
	)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footer.View())
}

func (m Model) renderSidebar() string {
	svc := m.planner.Service()
	anchor := m.planner.Anchor
	cal := m.theme.Calendar

	month := minical.Render(anchor, svc.MonthDensity(anchor), m.planner.Today(), minical.Options{
		TitleStyle:    cal.Title,
		HeaderStyle:   cal.Header,
		EmptyStyle:    cal.Empty,
		BusyStyle:     cal.Busy,
		TodayStyle:    cal.Today,
		SelectedStyle: cal.Selected,
		ShowTitle:     true,
	})

	lines := []string{month, "", cal.Title.Render("Categories")}
	for _, c := range svc.ListCategories() {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(glyph.Swatch.String())
		lines = append(lines, swatch+" "+c.Label)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderMain() string {
	th := m.theme.Activity
	p := m.planner.Projection()

	var b strings.Builder
	b.WriteString(m.theme.Heading.Render(m.planner.Heading()))
	b.WriteString(" ")
	b.WriteString(th.Count.Render(countLabel(p.Count)))
	b.WriteString("\n\n")

	switch p.Mode {
	case calendar.Month:
		b.WriteString(th.None.Render("Press d or w to list the activities of a day or week."))
	case calendar.Week:
		row := 0
		today := m.planner.Today()
		for _, d := range p.Days {
			style := th.Day
			if d.Date == today {
				style = th.Today
			}
			b.WriteString(style.Render(d.Date.Format("Monday, Jan 2")))
			b.WriteString("\n")
			row = m.renderRows(&b, d, row)
		}
	default:
		for _, d := range p.Days {
			m.renderRows(&b, d, 0)
		}
	}
	if details := m.renderDetails(); details != "" {
		b.WriteString("\n")
		b.WriteString(details)
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDetails boxes every field of the selected activity.
func (m Model) renderDetails() string {
	a, ok := m.current()
	if !ok {
		return ""
	}
	cat := m.planner.Service().CategoryFor(a)
	p := panel.New()
	p.SetTitle(a.Title)
	p.Add("Date", a.Date.Format("Mon Jan 2, 2006"))
	p.Add("Time", a.Time)
	p.Add("Category", cat.Label)
	p.Add("Notes", a.Description)
	p.Add("ID", a.ID)
	return p.View()
}

// renderRows writes one day's activities; row is the index of the first
// of them among the visible rows. It returns the index after the last.
func (m Model) renderRows(b *strings.Builder, d view.DayGroup, row int) int {
	th := m.theme.Activity
	if len(d.Activities) == 0 {
		b.WriteString(th.None.Render("  " + glyph.Empty.String() + " No activities scheduled"))
		b.WriteString("\n")
		return row
	}
	for _, a := range d.Activities {
		b.WriteString(m.renderActivity(a, row == m.selected))
		b.WriteString("\n")
		row++
	}
	return row
}

func (m Model) renderActivity(a activity.Activity, selected bool) string {
	th := m.theme.Activity
	cat := m.planner.Service().CategoryFor(a)

	marker := "  "
	title := th.Title.Render(a.Title)
	if selected {
		marker = glyph.Selected.String() + " "
		title = th.Selected.Render(a.Title)
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Hex())).Render(glyph.Swatch.String())

	line := fmt.Sprintf("%s%s %s %s %s", marker, th.Time.Render(a.Time), swatch, title, th.Time.Render(cat.Label))
	if a.Description != "" {
		line += "\n    " + th.Description.Render(a.Description)
	}
	return line
}

func countLabel(n int) string {
	if n == 1 {
		return "1 activity"
	}
	return fmt.Sprintf("%d activities", n)
}
