package specialdate

import (
	"context"
	"log/slog"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
)

// Index resolves fixed meal overrides keyed by month-day, recurring yearly.
type Index struct {
	specialDateRepo domain.SpecialDateRepository
}

func NewIndex(specialDateRepo domain.SpecialDateRepository) *Index {
	return &Index{
		specialDateRepo: specialDateRepo,
	}
}

// Lookup returns the forced meal id for date, if one exists. Absence is a
// normal outcome reported through the bool.
func (i *Index) Lookup(ctx context.Context, date time.Time) (string, bool, error) {
	key := domain.MonthDayOf(date)

	mealID, found, err := i.specialDateRepo.GetByMonthDay(ctx, key)
	if err != nil {
		return "", false, err
	}
	if found {
		slog.DebugContext(ctx, "special date override found",
			slog.String("month_day", key.String()),
			slog.String("meal_id", mealID),
		)
	}

	return mealID, found, nil
}
