// Package activity defines the scheduled item of a daily routine and the
// rules a form must pass before it becomes one.
package activity

import "fmt"

// Activity is a single scheduled item. Date and Time are kept apart and
// never combined into an instant: Date selects the day, Time only orders
// activities within it.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        Date   `json:"date"`
	Time        string `json:"time"`
	CategoryID  string `json:"categoryId"`
}

// Fields are the mutable parts of an Activity, everything but the ID.
type Fields struct {
	Title       string
	Description string
	Date        Date
	Time        string
	CategoryID  string
}

func New(id string, f Fields) Activity {
	a := Activity{ID: id}
	a.Apply(f)
	return a
}

// Fields returns the mutable parts of a.
func (a Activity) Fields() Fields {
	return Fields{
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		Time:        a.Time,
		CategoryID:  a.CategoryID,
	}
}

// Apply replaces every mutable field of a with f.
func (a *Activity) Apply(f Fields) {
	a.Title = f.Title
	a.Description = f.Description
	a.Date = f.Date
	a.Time = f.Time
	a.CategoryID = f.CategoryID
}

// Form renders a back into raw form values, used to pre-fill edit forms.
func (a Activity) Form() FormValues {
	return FormValues{
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date.String(),
		Time:        a.Time,
		CategoryID:  a.CategoryID,
	}
}

func (a Activity) String() string {
	return fmt.Sprintf("%s %s", a.Time, a.Title)
}
