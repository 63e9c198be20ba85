package chooser

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/observability/metrics"
	"github.com/dinnerplans/menu-service/internal/observability/tracing"
	"github.com/dinnerplans/menu-service/internal/service/candidate"
	"github.com/dinnerplans/menu-service/internal/service/selector"
	"github.com/dinnerplans/menu-service/internal/service/specialdate"
)

// Chooser picks the meal for a single date: special date overrides win
// outright, otherwise the candidate pool is built and a recency-weighted
// draw decides.
type Chooser struct {
	mealRepo     domain.MealRepository
	specialDates *specialdate.Index
	pool         *candidate.Pool
	selector     *selector.Selector
	rng          selector.RNG
	menuMetrics  *metrics.MenuMetrics
	now          func() time.Time
}

type Option func(*Chooser)

// WithClock overrides the wall clock, anchoring recency weights and the
// future-schedule check in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Chooser) {
		c.now = now
	}
}

func New(
	mealRepo domain.MealRepository,
	specialDates *specialdate.Index,
	pool *candidate.Pool,
	sel *selector.Selector,
	rng selector.RNG,
	menuMetrics *metrics.MenuMetrics,
	opts ...Option,
) *Chooser {
	c := &Chooser{
		mealRepo:     mealRepo,
		specialDates: specialDates,
		pool:         pool,
		selector:     sel,
		rng:          rng,
		menuMetrics:  menuMetrics,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChooseForDate returns the meal id recommended for date. It has no
// persistence side effects.
func (c *Chooser) ChooseForDate(ctx context.Context, date time.Time) (string, error) {
	return c.ChooseExcluding(ctx, date, nil)
}

// ChooseExcluding picks a meal for date while keeping the excluded ids out of
// the candidate pool. The planner uses the exclusion set to avoid
// re-selecting a slot's previously removed meal. Errors from the pool or the
// draw propagate unchanged.
func (c *Chooser) ChooseExcluding(ctx context.Context, date time.Time, excludedMealIDs map[string]struct{}) (string, error) {
	ctx, span := tracing.StartChooseSpan(ctx, date)
	defer span.End()

	start := time.Now()
	defer func() {
		c.menuMetrics.RecordDrawDuration(ctx, time.Since(start))
	}()

	if mealID, found, err := c.specialDates.Lookup(ctx, date); err != nil {
		tracing.RecordChooseResult(span, "", err)
		return "", fmt.Errorf("special date lookup: %w", err)
	} else if found {
		slog.InfoContext(ctx, "special date short-circuits meal choice",
			slog.String("date", domain.DateKey(date)),
			slog.String("meal_id", mealID),
		)
		c.menuMetrics.RecordSpecialDateHit(ctx)
		tracing.RecordChooseResult(span, mealID, nil)
		return mealID, nil
	}

	allMeals, err := c.mealRepo.GetAll(ctx)
	if err != nil {
		tracing.RecordChooseResult(span, "", err)
		return "", fmt.Errorf("load meals: %w", err)
	}

	today := domain.Date(c.now())

	pool, err := c.pool.Build(ctx, date, today, allMeals, excludedMealIDs)
	if err != nil {
		tracing.RecordChooseResult(span, "", err)
		return "", err
	}

	slog.DebugContext(ctx, "candidate pool built",
		slog.String("date", domain.DateKey(date)),
		slog.Int("total_meals", len(allMeals)),
		slog.Int("candidates", len(pool)),
	)

	meal, err := c.selector.Draw(pool, today, c.rng)
	if err != nil {
		tracing.RecordChooseResult(span, "", err)
		return "", err
	}

	tracing.RecordChooseResult(span, meal.ID, nil)

	return meal.ID, nil
}
