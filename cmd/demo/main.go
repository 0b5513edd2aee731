// Command demo prints the seeded routine, one activity per line, then the
// week around today.
package main

import (
	"os"
	"time"

	"tableflip.dev/routine/pkg/activity"
	"tableflip.dev/routine/pkg/app"
	"tableflip.dev/routine/pkg/calendar"
	"tableflip.dev/routine/pkg/config"
	"tableflip.dev/routine/pkg/printers"
)

func main() {
	svc, err := app.New(config.Default(), time.Now, os.Stderr)
	if err != nil {
		panic(err)
	}

	pp := printers.NewPretty(os.Stdout, svc.Categories)
	pp.ShowID = true
	pp.Title("Seeded activities")
	pp.Activities(svc.All()...)
	pp.NewLine()

	today := activity.Today()
	pp.Week(app.Heading(today, calendar.Week), svc.Week(today), today)
}
