package teaui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/runner/tea/internal/theme"
)

type formField struct {
	key         string
	label       string
	placeholder string
}

var formFields = []formField{
	{key: activity.FieldTitle, label: "Title", placeholder: "Morning run"},
	{key: activity.FieldDate, label: "Date", placeholder: "2006-01-02, tomorrow, +3d"},
	{key: activity.FieldTime, label: "Time", placeholder: "HH:MM"},
	{key: activity.FieldCategoryID, label: "Category"},
	{key: "description", label: "Description", placeholder: "optional"},
}

// activityForm is the add and edit form. editing holds the id of the
// activity being edited and is empty when adding.
type activityForm struct {
	editing string
	inputs  []textinput.Model
	focus   int
	errs    map[string]string
}

func newForm(values activity.FormValues, editing string, categoryIDs []string) *activityForm {
	f := &activityForm{editing: editing, errs: map[string]string{}}
	for _, field := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Placeholder = field.placeholder
		if field.key == activity.FieldCategoryID {
			ti.Placeholder = strings.Join(categoryIDs, ", ")
		}
		f.inputs = append(f.inputs, ti)
	}
	f.setValues(values)
	f.inputs[0].Focus()
	return f
}

func (f *activityForm) setValues(v activity.FormValues) {
	f.inputs[0].SetValue(v.Title)
	f.inputs[1].SetValue(v.Date)
	f.inputs[2].SetValue(v.Time)
	f.inputs[3].SetValue(v.CategoryID)
	f.inputs[4].SetValue(v.Description)
}

func (f *activityForm) values() activity.FormValues {
	return activity.FormValues{
		Title:       f.inputs[0].Value(),
		Date:        f.inputs[1].Value(),
		Time:        f.inputs[2].Value(),
		CategoryID:  f.inputs[3].Value(),
		Description: f.inputs[4].Value(),
	}
}

func (f *activityForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *activityForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *activityForm) setErrors(verr *activity.ValidationError) {
	f.errs = map[string]string{}
	for _, fe := range verr.Errors {
		f.errs[fe.Field] = fe.Message
	}
	for i, field := range formFields {
		if _, bad := f.errs[field.key]; bad {
			f.inputs[f.focus].Blur()
			f.focus = i
			f.inputs[i].Focus()
			break
		}
	}
}

func (f *activityForm) view(th theme.FormTheme) string {
	var b strings.Builder
	title := "New activity"
	if f.editing != "" {
		title = "Edit activity"
	}
	b.WriteString(th.Title.Render(title))
	b.WriteString("\n\n")

	for i, field := range formFields {
		label := th.Label
		if i == f.focus {
			label = th.Focused
		}
		b.WriteString(label.Render(field.label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := f.errs[field.key]; ok {
			b.WriteString(th.Label.Render(""))
			b.WriteString(th.Error.Render(msg))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(th.Hint.Render("Title, date, time and category are required."))
	return b.String()
}
