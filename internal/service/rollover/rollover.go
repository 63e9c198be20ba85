package rollover

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/observability/metrics"
)

// Job finalizes the menu for a date that has just elapsed: the assigned meal
// is marked served and released back into the candidate pool. Failures are
// logged and not retried; the next day's rollover supersedes a missed one.
type Job struct {
	mealRepo    domain.MealRepository
	menuRepo    domain.MenuRepository
	menuMetrics *metrics.MenuMetrics
}

func New(mealRepo domain.MealRepository, menuRepo domain.MenuRepository, menuMetrics *metrics.MenuMetrics) *Job {
	return &Job{
		mealRepo:    mealRepo,
		menuRepo:    menuRepo,
		menuMetrics: menuMetrics,
	}
}

// RollOver marks the meal assigned to date as served on that date and clears
// its future-scheduling marker, unless the meal carries the special category
// and keeps a standing schedule. An unassigned date is a no-op.
func (j *Job) RollOver(ctx context.Context, date time.Time) error {
	day := domain.Date(date)

	assignment, found, err := j.menuRepo.GetByDate(ctx, day)
	if err != nil {
		j.menuMetrics.RecordRollover(ctx, "failed")
		return fmt.Errorf("read assignment for %s: %w", domain.DateKey(day), err)
	}
	if !found || !assignment.Assigned() {
		slog.InfoContext(ctx, "no assignment to roll over",
			slog.String("date", domain.DateKey(day)),
		)
		j.menuMetrics.RecordRollover(ctx, "noop")
		return nil
	}

	meal, err := j.mealRepo.GetByID(ctx, assignment.MealID)
	if err != nil {
		j.menuMetrics.RecordRollover(ctx, "failed")
		return fmt.Errorf("load meal %s: %w", assignment.MealID, err)
	}

	meal.LastServed = &day
	if !meal.IsSpecial() {
		meal.NextScheduled = nil
	}

	if err := j.mealRepo.Update(ctx, meal); err != nil {
		j.menuMetrics.RecordRollover(ctx, "failed")
		return fmt.Errorf("update meal %s: %w", meal.ID, err)
	}

	slog.InfoContext(ctx, "meal rolled over",
		slog.String("date", domain.DateKey(day)),
		slog.String("meal_id", meal.ID),
		slog.Bool("keeps_schedule", meal.IsSpecial()),
	)
	j.menuMetrics.RecordRollover(ctx, "applied")

	return nil
}
