package domain

import (
	"context"
	"time"
)

// PlanRunRecord captures the outcome of one horizon planning run for
// downstream analysis.
type PlanRunRecord struct {
	RunID         string
	StartDate     time.Time
	HorizonDays   int
	AssignedCount int
	SkippedCount  int
	FailedCount   int
	Duration      time.Duration
}

// DayOutcomeRecord captures the per-date outcome within a planning run.
type DayOutcomeRecord struct {
	RunID   string
	Date    time.Time
	Outcome string
	MealID  string
}

// PlanResultRecorder persists planning outcomes to an external sink.
// Recording is best-effort; implementations log and swallow write failures.
type PlanResultRecorder interface {
	RecordPlanRun(ctx context.Context, record PlanRunRecord) error
	RecordDayOutcomes(ctx context.Context, records []DayOutcomeRecord) error
	Close() error
}
