package domain

import "time"

// MenuAssignment binds a calendar date to a meal. RemovedMealID remembers the
// meal displaced when the slot was last reassigned, so replanning does not
// immediately pick it again. At most one assignment exists per date.
type MenuAssignment struct {
	Date          time.Time `json:"date"`
	MealID        string    `json:"meal_id"`
	RemovedMealID string    `json:"removed_meal_id,omitempty"`
}

// Assigned reports whether the slot holds a meal.
func (a *MenuAssignment) Assigned() bool {
	return a != nil && a.MealID != ""
}
