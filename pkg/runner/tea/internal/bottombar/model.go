package bottombar

import (
	"strings"

	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/glyph"
	"tableflip.dev/routine/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
)

const (
	normalHelp = "h/l prev/next • d/w/m view • t today • j/k select • a add • e edit • x delete • q quit"
	formHelp   = "tab/shift+tab field • enter save • esc cancel"
)

// Model tracks footer/help/status rendering state.
type Model struct {
	mode   Mode
	notice *app.Notice
	err    string
	styles theme.FooterTheme
}

// New returns a footer model with sensible defaults.
func New(styles theme.FooterTheme) Model {
	return Model{mode: ModeNormal, styles: styles}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
}

func (m Model) Mode() Mode {
	return m.mode
}

// SetNotice shows a confirmation until the next key press clears it.
func (m *Model) SetNotice(n app.Notice) {
	m.notice = &n
	m.err = ""
}

// SetError shows a failure that is not tied to a form field.
func (m *Model) SetError(msg string) {
	m.err = msg
	m.notice = nil
}

// Clear drops any status.
func (m *Model) Clear() {
	m.notice = nil
	m.err = ""
}

// Status is the plain text of the current status, if any.
func (m Model) Status() string {
	switch {
	case m.err != "":
		return m.err
	case m.notice != nil:
		return m.notice.String()
	}
	return ""
}

// View renders the footer line.
func (m Model) View() string {
	help := normalHelp
	if m.mode == ModeForm {
		help = formHelp
	}
	segments := []string{m.styles.Help.Render(help)}

	switch {
	case m.err != "":
		segments = append(segments, m.styles.Error.Render(glyph.Removed.String()+" "+m.err))
	case m.notice != nil && m.notice.Variant == app.Destructive:
		segments = append(segments, m.styles.Destructive.Render(glyph.Removed.String()+" "+m.notice.String()))
	case m.notice != nil:
		segments = append(segments, m.styles.Status.Render(glyph.Added.String()+" "+m.notice.String()))
	}
	return strings.Join(segments, " │ ")
}
