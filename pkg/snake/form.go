package snake

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/category"
)

// Form asks for activity fields one prompt at a time.
type Form struct {
	In         io.Reader
	Out        io.Writer
	Categories []category.Category
	// ValidateDate rejects dates the validator would not resolve.
	ValidateDate func(string) error
}

var textTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

func required(label string) func(string) error {
	return func(input string) error {
		if strings.TrimSpace(input) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func (f Form) stdin() io.ReadCloser {
	if f.In == nil {
		return os.Stdin
	}
	return io.NopCloser(f.In)
}

func (f Form) stdout() io.WriteCloser {
	if f.Out == nil {
		return os.Stdout
	}
	return nopCloser{f.Out}
}

func (f Form) text(label, def string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Templates: textTemplates,
		Validate:  validate,
		Stdin:     f.stdin(),
		Stdout:    f.stdout(),
	}
	return prompt.Run()
}

// Activity prompts for every field, offering defaults as editable text.
// The category is picked from a list.
func (f Form) Activity(defaults activity.FormValues) (activity.FormValues, error) {
	var (
		out activity.FormValues
		err error
	)

	if out.Title, err = f.text("Title", defaults.Title, required("Title")); err != nil {
		return out, err
	}

	validateDate := required("Date")
	if f.ValidateDate != nil {
		validateDate = func(input string) error {
			if err := required("Date")(input); err != nil {
				return err
			}
			return f.ValidateDate(input)
		}
	}
	if out.Date, err = f.text("Date", defaults.Date, validateDate); err != nil {
		return out, err
	}
	if out.Time, err = f.text("Time (HH:MM)", defaults.Time, required("Time")); err != nil {
		return out, err
	}
	if out.CategoryID, err = f.category(defaults.CategoryID); err != nil {
		return out, err
	}
	if out.Description, err = f.text("Description", defaults.Description, nil); err != nil {
		return out, err
	}
	return out, nil
}

func (f Form) category(def string) (string, error) {
	if len(f.Categories) == 0 {
		return f.text("Category", def, required("Category"))
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Label | bold }} {{ .ID | cyan }}",
		Inactive: "   {{ .Label }} {{ .ID | faint }}",
		Selected: "Category: {{ .Label | bold }}",
	}

	searcher := func(input string, index int) bool {
		c := f.Categories[index]
		name := strings.Replace(strings.ToLower(c.Label+c.ID), " ", "", -1)
		input = strings.Replace(strings.ToLower(input), " ", "", -1)
		return strings.Contains(name, input)
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Category",
		Items:     f.Categories,
		Templates: templates,
		Size:      len(f.Categories),
		CursorPos: CategoryIndex(f.Categories, def),
		Searcher:  searcher,
		Stdin:     f.stdin(),
		Stdout:    f.stdout(),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return f.Categories[i].ID, nil
}

// CategoryIndex is the position of id in cats, or 0.
func CategoryIndex(cats []category.Category, id string) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return 0
}

// Confirm asks a yes/no question.
func (f Form) Confirm(label string, def bool) (bool, error) {
	validInput := "[yes]/no"
	if !def {
		validInput = "yes/[no]"
	}

	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := ParseBool(input)
		return err
	}

	result, err := f.text(fmt.Sprintf("%s %s", label, validInput), "", validate)
	if err != nil {
		return false, err
	}
	if result == "" {
		return def, nil
	}
	return ParseBool(result)
}

var errSyntax = errors.New("expected yes or no")

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, fmt.Errorf("%q: %w", str, errSyntax)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
