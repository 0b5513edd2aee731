package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/category"
	"tableflip.dev/routine/pkg/glyph"
	"tableflip.dev/routine/pkg/view"
)

const (
	layoutDay     = "Mon Jan 2"
	wrapWidth     = 60
	detailsIndent = 8
)

// PrettyPrint writes human oriented output.
type PrettyPrint struct {
	Out        io.Writer
	ShowID     bool
	Categories *category.Registry
	// Color turns on ANSI styling; the zero value prints plain text.
	Color bool
	// Profile decides how category colors are rendered.
	Profile termenv.Profile
}

// NewPretty writes to out, with colors only when out is a terminal.
func NewPretty(out io.Writer, cats *category.Registry) *PrettyPrint {
	tty := false
	if out == nil {
		out = color.Output
		tty = isTerminal(os.Stdout)
	} else if f, ok := out.(*os.File); ok {
		tty = isTerminal(f)
	}
	profile := termenv.Ascii
	if tty {
		profile = termenv.EnvColorProfile()
	}
	return &PrettyPrint{Out: out, Categories: cats, Color: tty, Profile: profile}
}

func isTerminal(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// color styles with attrs, or not at all when pp is plain. It never
// touches the package-wide color.NoColor.
func (pp *PrettyPrint) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if pp.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Out, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := pp.color(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Out, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := pp.color(color.Bold, color.Underline)
	c := pp.color(color.Faint)

	_, _ = t.Fprint(pp.Out, title)
	_, _ = c.Fprintf(pp.Out, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.Out, " activity")
	default:
		_, _ = c.Fprintln(pp.Out, " activities")
	}
}

// Swatch renders a colored block for c.
func (pp *PrettyPrint) Swatch(c category.Category) string {
	s := termenv.String(glyph.Swatch.String())
	if !pp.Color || pp.Profile == termenv.Ascii {
		return s.String()
	}
	return s.Foreground(pp.Profile.Color(c.Hex())).String()
}

func (pp *PrettyPrint) none() {
	f := pp.color(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.Out, "  %s No activities scheduled\n\n", glyph.Empty)
}

// Activities prints one day's activities in the order given.
func (pp *PrettyPrint) Activities(all ...activity.Activity) {
	if len(all) == 0 {
		pp.none()
		return
	}

	y := pp.color(color.FgHiYellow, color.Italic, color.Faint)
	b := pp.color(color.Bold)
	f := pp.color(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range all {
		cat := pp.Categories.Display(a.CategoryID)
		row := []interface{}{
			fmt.Sprintf("%s %s", glyph.Activity, a.Time),
			b.Sprint(a.Title),
			fmt.Sprintf("%s %s", pp.Swatch(cat), cat.Label),
		}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(a.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)

	for _, a := range all {
		if a.Description == "" {
			continue
		}
		details := indent.String(wordwrap.String(a.Description, wrapWidth), detailsIndent)
		_, _ = f.Fprintf(pp.Out, "  %s\n%s\n", a.Title, details)
	}
	pp.NewLine()
}

// Day prints a day heading and its activities.
func (pp *PrettyPrint) Day(heading string, all []activity.Activity) {
	pp.TitleWithCount(heading, len(all))
	pp.Activities(all...)
}

// Week prints each day of a week under its own heading.
func (pp *PrettyPrint) Week(heading string, days []view.DayGroup, today activity.Date) {
	total := 0
	for _, d := range days {
		total += len(d.Activities)
	}
	pp.TitleWithCount(heading, total)
	pp.NewLine()

	h := pp.color(color.Italic)
	now := pp.color(color.Italic, color.Bold, color.FgHiCyan)
	for _, d := range days {
		printer := h
		if d.Date == today {
			printer = now
		}
		mark := " "
		if len(d.Activities) > 0 {
			mark = glyph.Busy.String()
		}
		_, _ = printer.Fprintf(pp.Out, "%s %s\n", mark, d.Date.Format(layoutDay))
		pp.Activities(d.Activities...)
	}
}

// Legend prints categories with their swatches.
func (pp *PrettyPrint) Legend(cats ...category.Category) {
	bold := pp.color(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("  ID"), bold.Sprint("Label"), bold.Sprint("Color"))
	for _, c := range cats {
		tbl.AddRow(pp.Swatch(c)+" "+c.ID, c.Label, c.Color)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
}

// Notice prints a confirmation.
func (pp *PrettyPrint) Notice(n app.Notice) {
	mark := pp.color(color.FgGreen, color.Bold)
	sym := glyph.Added
	if n.Variant == app.Destructive {
		mark = pp.color(color.FgRed, color.Bold)
		sym = glyph.Removed
	}
	_, _ = mark.Fprintf(pp.Out, "%s %s", sym, n.Title)
	if n.Description != "" {
		_, _ = fmt.Fprintf(pp.Out, ": %s", n.Description)
	}
	pp.NewLine()
}

// Invalid prints every failed rule of a rejected form.
func (pp *PrettyPrint) Invalid(err *activity.ValidationError) {
	r := pp.color(color.FgRed)
	for _, fe := range err.Errors {
		_, _ = r.Fprintf(pp.Out, "  %s %-10s %s\n", glyph.Removed, fe.Field, fe.Message)
	}
}

// Details prints a single activity with every field.
func (pp *PrettyPrint) Details(a activity.Activity) {
	cat := pp.Categories.Display(a.CategoryID)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = wrapWidth
	tbl.AddRow("ID", a.ID)
	tbl.AddRow("Title", a.Title)
	tbl.AddRow("Date", a.Date.Format(layoutDay))
	tbl.AddRow("Time", glyph.Clock.String()+" "+a.Time)
	tbl.AddRow("Category", pp.Swatch(cat)+" "+cat.Label)
	if strings.TrimSpace(a.Description) != "" {
		tbl.AddRow("Description", a.Description)
	}
	_, _ = fmt.Fprintln(pp.Out, tbl)
}
