package domain

import "time"

// DayRule maps a weekday to the meal categories allowed on that day.
// Exactly one rule exists per weekday.
type DayRule struct {
	Weekday    time.Weekday `json:"weekday"`
	Categories []string     `json:"categories"`
}

// SeasonRule maps a season label to an inclusive month-day range. Ranges may
// wrap the year boundary (e.g. Winter: Dec 1 – Feb 28); the union of all
// ranges is expected to cover the whole year.
type SeasonRule struct {
	Season string   `json:"season"`
	Start  MonthDay `json:"start"`
	End    MonthDay `json:"end"`
}

// Contains reports whether t's month-day falls inside the rule's range.
// A wrapped range (End < Start) matches dates after Start or before End.
func (r SeasonRule) Contains(t time.Time) bool {
	md := MonthDayOf(t)
	if r.End < r.Start {
		return md >= r.Start || md <= r.End
	}
	return md >= r.Start && md <= r.End
}
