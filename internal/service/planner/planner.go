package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/observability/metrics"
	"github.com/dinnerplans/menu-service/internal/observability/tracing"
	"github.com/dinnerplans/menu-service/internal/service/chooser"
)

// ErrInvalidHorizon is returned for a non-positive horizon length.
var ErrInvalidHorizon = errors.New("horizon length must be positive")

// Planner fills a rolling window of menu dates. Days are processed strictly
// in increasing date order: a meal assigned to an earlier day gets its
// nextScheduled marker set before later days build their pools, which keeps
// it out of the rest of the run.
type Planner struct {
	mealRepo        domain.MealRepository
	menuRepo        domain.MenuRepository
	chooser         *chooser.Chooser
	menuMetrics     *metrics.MenuMetrics
	maxDrawAttempts int
}

func New(
	mealRepo domain.MealRepository,
	menuRepo domain.MenuRepository,
	mealChooser *chooser.Chooser,
	menuMetrics *metrics.MenuMetrics,
	maxDrawAttempts int,
) *Planner {
	return &Planner{
		mealRepo:        mealRepo,
		menuRepo:        menuRepo,
		chooser:         mealChooser,
		menuMetrics:     menuMetrics,
		maxDrawAttempts: maxDrawAttempts,
	}
}

// PlanHorizon assigns meals to every unassigned date in
// [startDate, startDate+numDays). Already-assigned days are reported as
// skipped, so re-running over the same window is idempotent. A failure on one
// day is recorded and the loop continues with the next day.
func (p *Planner) PlanHorizon(ctx context.Context, startDate time.Time, numDays int) (*Report, error) {
	if numDays <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHorizon, numDays)
	}

	ctx, span := tracing.StartHorizonSpan(ctx, startDate, numDays)
	defer span.End()

	start := domain.Date(startDate)
	runStart := time.Now()
	report := newReport(start, numDays)

	slog.InfoContext(ctx, "planning horizon",
		slog.String("start_date", domain.DateKey(start)),
		slog.Int("days", numDays),
	)

	for offset := 0; offset < numDays; offset++ {
		date := start.AddDate(0, 0, offset)

		result := p.planDay(ctx, date)
		report.add(result)
		p.menuMetrics.RecordDayOutcome(ctx, string(result.Status))

		switch result.Status {
		case DayAssigned:
			slog.InfoContext(ctx, "day assigned",
				slog.String("date", domain.DateKey(date)),
				slog.String("meal_id", result.MealID),
			)
		case DaySkipped:
			slog.DebugContext(ctx, "day already assigned, skipping",
				slog.String("date", domain.DateKey(date)),
			)
		case DayFailed:
			slog.WarnContext(ctx, "day failed",
				slog.String("date", domain.DateKey(date)),
				slog.String("reason", result.Reason),
			)
		}
	}

	p.menuMetrics.RecordHorizonDuration(ctx, numDays, time.Since(runStart))
	tracing.RecordHorizonResult(span, len(report.AssignedDates), len(report.SkippedDates), len(report.FailedDates))

	slog.InfoContext(ctx, "horizon planned",
		slog.String("start_date", domain.DateKey(start)),
		slog.Int("assigned", len(report.AssignedDates)),
		slog.Int("skipped", len(report.SkippedDates)),
		slog.Int("failed", len(report.FailedDates)),
	)

	return report, nil
}

func (p *Planner) planDay(ctx context.Context, date time.Time) DayResult {
	existing, found, err := p.menuRepo.GetByDate(ctx, date)
	if err != nil {
		return DayResult{Date: date, Status: DayFailed, Reason: fmt.Sprintf("read assignment: %v", err)}
	}
	if found && existing.Assigned() {
		return DayResult{Date: date, Status: DaySkipped, MealID: existing.MealID}
	}

	removedMealID := ""
	if found {
		removedMealID = existing.RemovedMealID
	}

	excluded := map[string]struct{}{}
	if removedMealID != "" {
		excluded[removedMealID] = struct{}{}
	}

	// The exclusion set keeps the removed meal out of the pool, so a normal
	// draw cannot return it. A special date override bypasses the pool and
	// can; the bounded retry turns that stalemate into a failed day instead
	// of looping forever.
	mealID := ""
	for attempt := 1; attempt <= p.maxDrawAttempts; attempt++ {
		chosen, err := p.chooser.ChooseExcluding(ctx, date, excluded)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyPool) {
				return DayResult{Date: date, Status: DayFailed, Reason: "no eligible meals"}
			}
			return DayResult{Date: date, Status: DayFailed, Reason: fmt.Sprintf("choose meal: %v", err)}
		}
		if chosen != removedMealID {
			mealID = chosen
			break
		}
	}
	if mealID == "" {
		return DayResult{
			Date:   date,
			Status: DayFailed,
			Reason: fmt.Sprintf("no alternative to removed meal %s after %d attempts", removedMealID, p.maxDrawAttempts),
		}
	}

	assignment := &domain.MenuAssignment{
		Date:          domain.Date(date),
		MealID:        mealID,
		RemovedMealID: removedMealID,
	}
	if err := p.menuRepo.Upsert(ctx, assignment); err != nil {
		return DayResult{Date: date, Status: DayFailed, Reason: fmt.Sprintf("persist assignment: %v", err)}
	}

	meal, err := p.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		return DayResult{Date: date, Status: DayFailed, Reason: fmt.Sprintf("load chosen meal: %v", err)}
	}

	scheduled := domain.Date(date)
	meal.NextScheduled = &scheduled
	if err := p.mealRepo.Update(ctx, meal); err != nil {
		return DayResult{Date: date, Status: DayFailed, Reason: fmt.Sprintf("update meal schedule: %v", err)}
	}

	return DayResult{Date: date, Status: DayAssigned, MealID: mealID}
}
