package activity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Form field names, as reported in a ValidationError.
const (
	FieldTitle      = "title"
	FieldDate       = "date"
	FieldTime       = "time"
	FieldCategoryID = "categoryId"
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("activity: validation failed")

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// FormValues is a candidate activity as entered by a user. Date is raw
// text resolved by the Validator's DateResolver.
type FormValues struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	CategoryID  string `json:"categoryId"`
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed, in form order.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fields lists the names of the failing fields.
func (e *ValidationError) Fields() []string {
	names := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		names = append(names, fe.Field)
	}
	return names
}

// Has reports whether field failed.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message returns the message for field, or "" when it passed.
func (e *ValidationError) Message(field string) string {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// DateResolver turns the raw date text of a form into a Date.
type DateResolver func(string) (Date, error)

// Validator checks FormValues. The zero value accepts ISO dates and only
// requires Time to be present.
type Validator struct {
	// StrictTime additionally requires Time to be a 24h HH:MM clock.
	StrictTime bool
	// ResolveDate defaults to ParseDate.
	ResolveDate DateResolver
}

// Validate evaluates every rule and returns the normalized Fields when all
// of them pass. The ID is never assigned here.
func (v Validator) Validate(in FormValues) (Fields, error) {
	resolve := v.ResolveDate
	if resolve == nil {
		resolve = ParseDate
	}

	var failed []FieldError
	fail := func(field, msg string) {
		failed = append(failed, FieldError{Field: field, Message: msg})
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		fail(FieldTitle, "Title is required")
	}

	var date Date
	if raw := strings.TrimSpace(in.Date); raw == "" {
		fail(FieldDate, "Date is required")
	} else if d, err := resolve(raw); err != nil || d.IsZero() {
		fail(FieldDate, fmt.Sprintf("Date %q is not a calendar date", raw))
	} else {
		date = d
	}

	clock := strings.TrimSpace(in.Time)
	switch {
	case clock == "":
		fail(FieldTime, "Time is required")
	case v.StrictTime && !clockPattern.MatchString(clock):
		fail(FieldTime, "Time must be HH:MM")
	}

	categoryID := strings.TrimSpace(in.CategoryID)
	if categoryID == "" {
		fail(FieldCategoryID, "Category is required")
	}

	if len(failed) > 0 {
		return Fields{}, &ValidationError{Errors: failed}
	}

	return Fields{
		Title:       title,
		Description: in.Description,
		Date:        date,
		Time:        clock,
		CategoryID:  categoryID,
	}, nil
}
