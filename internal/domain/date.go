package domain

import "time"

const (
	// DateKeyLayout is the canonical day-granular key format used for menu
	// rows and API date parameters.
	DateKeyLayout = "2006.01.02"

	monthDayLayout = "0102"
)

// Date truncates t to midnight UTC. All menu scheduling is day-granular.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey returns the storage key for a calendar date.
func DateKey(t time.Time) string {
	return Date(t).Format(DateKeyLayout)
}

// ParseDateKey parses a "yyyy.MM.dd" key back into a midnight-UTC date.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, time.UTC)
}

// MonthDay is a year-independent "MMDD" key. Special dates and season
// boundaries recur every year, so they are keyed by month and day only.
type MonthDay string

func MonthDayOf(t time.Time) MonthDay {
	return MonthDay(t.Format(monthDayLayout))
}

func (m MonthDay) String() string {
	return string(m)
}
