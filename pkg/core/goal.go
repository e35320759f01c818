package core

import "strings"

// GoalType distinguishes monthly recurring goals from one-off dated goals.
type GoalType string

const (
	GoalRecurring GoalType = "recurring"
	GoalOnce      GoalType = "once"
)

// UserGoalPrefix marks goals created by the user, as opposed to seeded ones.
// Seeded goals carry deterministic slug ids (e.g. "fin-per-3"); user goals are
// "custom-<unix-millis>". The prefix is the only origin marker, there is no
// stored origin field.
const UserGoalPrefix = "custom-"

// Goal is an objective attached to a category and a month.
type Goal struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Title     string   `json:"title"`
	Month     int      `json:"month"` // 1-12
	Completed bool     `json:"completed"`
	Type      GoalType `json:"type"`
	Amount    *float64 `json:"amount,omitempty"`  // financial goals only
	Comment   string   `json:"comment,omitempty"` // free-form notes
	Day       int      `json:"day,omitempty"`     // specific day of the month (1-31)
	Date      string   `json:"date,omitempty"`    // specific full date (YYYY-MM-DD)
}

// Seeded reports whether the goal was created by the annual seeder.
func (g Goal) Seeded() bool {
	return !strings.HasPrefix(g.ID, UserGoalPrefix)
}
