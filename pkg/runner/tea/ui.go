package teaui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/routine/pkg/runner/tea/internal/theme"
)

// Model contains UI state. The planner owns the anchor and view mode; the
// model adds selection, the open form and the footer.
type Model struct {
	planner *app.Planner
	notices *app.Notices
	theme   theme.Theme

	selected int
	form     *activityForm
	footer   bottombar.Model

	termWidth  int
	termHeight int
	quitting   bool
}

// New creates a UI model backed by planner. Notices from the service are
// routed to the footer.
func New(planner *app.Planner) Model {
	th := theme.Default()
	notices := &app.Notices{}
	if svc := planner.Service(); svc != nil {
		svc.Notify = notices.Push
	}
	return Model{
		planner: planner,
		notices: notices,
		theme:   th,
		footer:  bottombar.New(th.Footer),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// visible is what j/k move through: the activities of the current day or
// week in display order. Month views have no rows.
func (m Model) visible() []activity.Activity {
	p := m.planner.Projection()
	var out []activity.Activity
	for _, d := range p.Days {
		out = append(out, d.Activities...)
	}
	return out
}

func (m Model) current() (activity.Activity, bool) {
	rows := m.visible()
	if m.selected < 0 || m.selected >= len(rows) {
		return activity.Activity{}, false
	}
	return rows[m.selected], true
}

func (m *Model) clampSelection() {
	n := len(m.visible())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateNormal(msg)
	}
	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.footer.Clear()
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "h", "left":
		m.planner.Navigate(calendar.Previous)
		m.selected = 0
	case "l", "right":
		m.planner.Navigate(calendar.Next)
		m.selected = 0
	case "d":
		m.planner.SetMode(calendar.Day)
		m.clampSelection()
	case "w":
		m.planner.SetMode(calendar.Week)
		m.clampSelection()
	case "m":
		m.planner.SetMode(calendar.Month)
		m.selected = 0
	case "t":
		m.planner.GoToday()
		m.selected = 0
	case "j", "down":
		if m.selected < len(m.visible())-1 {
			m.selected++
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}
	case "a":
		m.openForm(activity.FormValues{Date: m.planner.Anchor.String()}, "")
		return m, nil
	case "e":
		a, ok := m.current()
		if !ok {
			m.footer.SetError("Nothing selected to edit")
			return m, nil
		}
		m.openForm(a.Form(), a.ID)
		return m, nil
	case "x":
		a, ok := m.current()
		if !ok {
			m.footer.SetError("Nothing selected to delete")
			return m, nil
		}
		m.planner.Service().DeleteActivity(a.ID)
		m.showNotice()
		m.clampSelection()
	}
	return m, nil
}

func (m *Model) openForm(values activity.FormValues, editing string) {
	m.form = newForm(values, editing, m.planner.Service().Categories.IDs())
	m.footer.SetMode(bottombar.ModeForm)
}

func (m *Model) closeForm() {
	m.form = nil
	m.footer.SetMode(bottombar.ModeNormal)
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.footer.Clear()
		return m, nil
	case "tab", "down":
		m.form.move(1)
		return m, nil
	case "shift+tab", "up":
		m.form.move(-1)
		return m, nil
	case "enter":
		m.submitForm()
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *Model) submitForm() {
	values := m.form.values()
	var err error
	if m.form.editing == "" {
		var added activity.Activity
		added, err = m.planner.Submit(values)
		if err == nil {
			m.planner.Select(added.Date)
		}
	} else {
		_, err = m.planner.Service().UpdateActivity(m.form.editing, app.PatchFromForm(values))
	}

	var verr *activity.ValidationError
	switch {
	case errors.As(err, &verr):
		m.form.setErrors(verr)
	case err != nil:
		m.footer.SetError(err.Error())
		m.closeForm()
	default:
		m.closeForm()
		m.showNotice()
		m.clampSelection()
	}
}

func (m *Model) showNotice() {
	if n, ok := m.notices.Last(); ok {
		m.footer.SetNotice(n)
		m.notices.Drain()
	}
}
