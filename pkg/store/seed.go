package store

import "tableflip.dev/routine/pkg/activity"

// Seed is the fixed set every process starts with, placed relative to
// today.
func Seed(today activity.Date) []activity.Activity {
	return []activity.Activity{
		{
			ID:          "1",
			Title:       "Morning Yoga",
			Description: "Start the day with 30 minutes of yoga",
			Date:        today,
			Time:        "07:00",
			CategoryID:  "health",
		},
		{
			ID:          "2",
			Title:       "Team Meeting",
			Description: "Weekly team sync meeting",
			Date:        today,
			Time:        "10:00",
			CategoryID:  "work",
		},
		{
			ID:          "3",
			Title:       "Study Python",
			Description: "Practice algorithms for 1 hour",
			Date:        today.AddDays(1),
			Time:        "18:00",
			CategoryID:  "study",
		},
	}
}

// Seeded is a Memory store holding Seed(today).
func Seeded(today activity.Date) *Memory {
	m, err := NewMemory(Seed(today)...)
	if err != nil {
		// The seed ids are literals; a failure here is a programming error.
		panic(err)
	}
	return m
}
