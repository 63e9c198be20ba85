package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repositories.go -destination=repositories_mock.go -package=domain

// MealRepository provides access to the meal table. GetByID returns
// ErrMealNotFound for unknown ids; that is the only expected lookup failure.
type MealRepository interface {
	GetAll(ctx context.Context) ([]Meal, error)
	GetByID(ctx context.Context, id string) (*Meal, error)
	Create(ctx context.Context, meal *Meal) error
	Update(ctx context.Context, meal *Meal) error
	Delete(ctx context.Context, id string) error
}

// RuleRepository provides the day and season rule catalog.
type RuleRepository interface {
	GetDayRule(ctx context.Context, weekday time.Weekday) (*DayRule, error)
	ListSeasonRules(ctx context.Context) ([]SeasonRule, error)
}

// SpecialDateRepository looks up fixed meal overrides by month-day key.
// Absence is a normal outcome, reported through the bool, not an error.
type SpecialDateRepository interface {
	GetByMonthDay(ctx context.Context, key MonthDay) (string, bool, error)
}

// MenuRepository provides access to menu assignments. GetByDate reports
// absence through the bool; assignments are upserted, never deleted.
type MenuRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*MenuAssignment, bool, error)
	Upsert(ctx context.Context, assignment *MenuAssignment) error
	ListRange(ctx context.Context, start, end time.Time) ([]MenuAssignment, error)
}
