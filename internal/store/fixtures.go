package store

import (
	"fmt"

	"github.com/pdxmph/planner-tui/internal/task"
)

// CreateFixturesDatabase creates a task database seeded with a
// realistic sample day.
func CreateFixturesDatabase(dbPath string) error {
	// Initialize empty database
	if err := Initialize(dbPath); err != nil {
		return fmt.Errorf("initializing fixtures database: %w", err)
	}

	s, err := Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening fixtures database: %w", err)
	}
	defer s.Close()

	fixtures := []task.Task{
		{
			Name:        "Morning review",
			Description: "Inbox, calendar, yesterday's leftovers",
			StartTime:   "08:30",
			Duration:    30,
			Priority:    task.PriorityHigh,
		},
		{
			Name:        "Team standup",
			StartTime:   "09:30",
			Duration:    15,
			Priority:    task.PriorityHigh,
		},
		{
			Name:        "Write quarterly summary",
			Description: "Draft only, numbers come from finance on Friday",
			StartTime:   "10:00",
			Duration:    90,
			Priority:    task.PriorityMedium,
		},
		{
			Name:        "Lunch walk",
			StartTime:   "12:30",
			Duration:    45,
			Priority:    task.PriorityLow,
		},
		{
			Name:        "1:1 with Dana",
			Description: "Bring the onboarding feedback notes",
			StartTime:   "14:00",
			Duration:    30,
			Priority:    task.PriorityMedium,
		},
		{
			Name:        "Water the plants",
			StartTime:   "18:00",
			Duration:    10,
			Priority:    task.PriorityLow,
		},
	}

	for _, t := range fixtures {
		if _, err := s.Append(t); err != nil {
			return fmt.Errorf("adding fixture %q: %w", t.Name, err)
		}
	}

	return nil
}
