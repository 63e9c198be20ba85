package planner

import "time"

// DayStatus classifies the outcome of planning one date.
type DayStatus string

const (
	DayAssigned DayStatus = "assigned"
	DaySkipped  DayStatus = "skipped"
	DayFailed   DayStatus = "failed"
)

// DayResult is the per-date outcome within a horizon run.
type DayResult struct {
	Date   time.Time `json:"date"`
	Status DayStatus `json:"status"`
	MealID string    `json:"meal_id,omitempty"`
	Reason string    `json:"reason,omitempty"`
}

// Report enumerates exactly which dates were assigned, skipped because they
// already held a meal, or failed. One day's failure never hides another's
// outcome.
type Report struct {
	StartDate     time.Time   `json:"start_date"`
	HorizonDays   int         `json:"horizon_days"`
	AssignedDates []time.Time `json:"assigned_dates"`
	SkippedDates  []time.Time `json:"skipped_dates"`
	FailedDates   []time.Time `json:"failed_dates"`
	Results       []DayResult `json:"results"`
}

func newReport(startDate time.Time, numDays int) *Report {
	return &Report{
		StartDate:     startDate,
		HorizonDays:   numDays,
		AssignedDates: make([]time.Time, 0, numDays),
		SkippedDates:  make([]time.Time, 0),
		FailedDates:   make([]time.Time, 0),
		Results:       make([]DayResult, 0, numDays),
	}
}

func (r *Report) add(result DayResult) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case DayAssigned:
		r.AssignedDates = append(r.AssignedDates, result.Date)
	case DaySkipped:
		r.SkippedDates = append(r.SkippedDates, result.Date)
	case DayFailed:
		r.FailedDates = append(r.FailedDates, result.Date)
	}
}
