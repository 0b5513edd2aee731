// Package timeutil resolves the human-friendly dates accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// Offset is a relative move of whole days and calendar months.
type Offset struct {
	Days   int
	Months int
}

var (
	offsetPattern = regexp.MustCompile(`^\s*([+-]?)\s*(\d+)\s*([a-z]+)`)
	unitMap       = map[string]Offset{
		"d":      {Days: 1},
		"day":    {Days: 1},
		"days":   {Days: 1},
		"w":      {Days: 7},
		"wk":     {Days: 7},
		"wks":    {Days: 7},
		"week":   {Days: 7},
		"weeks":  {Days: 7},
		"m":      {Months: 1},
		"mo":     {Months: 1},
		"month":  {Months: 1},
		"months": {Months: 1},
		"y":      {Months: 12},
		"year":   {Months: 12},
		"years":  {Months: 12},
	}
	named = map[string]int{
		"today":     0,
		"now":       0,
		"tomorrow":  1,
		"yesterday": -1,
	}
)

// ParseOffset parses "+3d", "-1w", "2m" or composites like "+1m2d". A
// sign applies to every segment that follows it until the next sign.
func ParseOffset(input string) (Offset, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Offset{}, fmt.Errorf("empty offset")
	}

	sign := 1
	var total Offset
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 4 {
			return Offset{}, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		switch matches[1] {
		case "-":
			sign = -1
		case "+":
			sign = 1
		}
		value, err := strconv.Atoi(matches[2])
		if err != nil {
			return Offset{}, fmt.Errorf("invalid offset value %q: %w", matches[2], err)
		}
		unit, ok := unitMap[matches[3]]
		if !ok {
			return Offset{}, fmt.Errorf("unsupported offset unit %q", matches[3])
		}
		total.Days += sign * value * unit.Days
		total.Months += sign * value * unit.Months

		remaining = remaining[len(matches[0]):]
	}
	return total, nil
}

// Apply moves d by o; months go first and clamp to the end of the month.
func (o Offset) Apply(d activity.Date) activity.Date {
	if o.Months != 0 {
		d = calendar.AddMonths(d, o.Months)
	}
	return d.AddDays(o.Days)
}

// FormatOffset renders o using m/w/d tokens, e.g. "+1m2d" or "-1w".
func FormatOffset(o Offset) string {
	if o.Days == 0 && o.Months == 0 {
		return "0d"
	}
	var b strings.Builder
	write := func(v int, unit string) {
		if v == 0 {
			return
		}
		if v < 0 {
			b.WriteString("-")
			v = -v
		} else {
			b.WriteString("+")
		}
		fmt.Fprintf(&b, "%d%s", v, unit)
	}
	write(o.Months, "m")
	if o.Days%7 == 0 {
		write(o.Days/7, "w")
	} else {
		write(o.Days, "d")
	}
	return b.String()
}

// ResolveDate accepts "2006-1-2", "1/2", today/tomorrow/yesterday, or an
// offset from today. A bare "1/2" that already passed this year is taken
// to mean next year.
func ResolveDate(input string, today activity.Date) (activity.Date, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	if v == "" {
		return today, nil
	}
	if n, ok := named[v]; ok {
		return today.AddDays(n), nil
	}
	if t, err := time.Parse(layoutISO, v); err == nil {
		return activity.DateOf(t), nil
	}
	if t, err := time.Parse(layoutISOShort, v); err == nil {
		// "1/2" parses in year 0, a leap year, so 2/29 must be checked
		// against the year it lands in.
		d, ok := monthDay(today.Year, t.Month(), t.Day())
		if !ok || d.Before(today) {
			d, ok = monthDay(today.Year+1, t.Month(), t.Day())
		}
		if ok {
			return d, nil
		}
	}
	if o, err := ParseOffset(v); err == nil {
		return o.Apply(today), nil
	}
	return activity.Date{}, fmt.Errorf("unrecognized date %q, expected 2006-1-2, 1/2, today, tomorrow, yesterday or an offset like +3d", input)
}

// monthDay builds the date, reporting false when day does not exist in
// that month and year.
func monthDay(year int, month time.Month, day int) (activity.Date, bool) {
	d := activity.NewDate(year, month, day)
	return d, d.Month == month && d.Day == day
}

// Resolver binds ResolveDate to a clock, for use as a form DateResolver.
func Resolver(now func() time.Time) activity.DateResolver {
	if now == nil {
		now = time.Now
	}
	return func(s string) (activity.Date, error) {
		return ResolveDate(s, activity.DateOf(now()))
	}
}
