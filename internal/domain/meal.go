package domain

import (
	"slices"
	"time"
)

// CategorySpecial marks meals bound to recurring special dates. The daily
// rollover keeps their standing schedule instead of releasing them back into
// the candidate pool.
const CategorySpecial = "Special"

type Meal struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Categories    []string   `json:"categories"`
	Seasons       []string   `json:"seasons"`
	Recipe        string     `json:"recipe,omitempty"`
	Rating        int        `json:"rating"`
	LastServed    *time.Time `json:"last_served,omitempty"`
	NextScheduled *time.Time `json:"next_scheduled,omitempty"`
}

func (m *Meal) HasCategory(category string) bool {
	return slices.Contains(m.Categories, category)
}

// HasAnyCategory reports whether the meal belongs to at least one of the
// given categories.
func (m *Meal) HasAnyCategory(categories []string) bool {
	for _, c := range m.Categories {
		if slices.Contains(categories, c) {
			return true
		}
	}
	return false
}

func (m *Meal) HasSeason(season string) bool {
	return slices.Contains(m.Seasons, season)
}

func (m *Meal) IsSpecial() bool {
	return m.HasCategory(CategorySpecial)
}

// ScheduledOnOrAfter reports whether the meal is already committed to a menu
// slot on or after day. Such meals are not eligible for another slot.
func (m *Meal) ScheduledOnOrAfter(day time.Time) bool {
	return m.NextScheduled != nil && !m.NextScheduled.Before(Date(day))
}
