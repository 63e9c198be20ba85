package candidate

import (
	"context"
	"fmt"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/service/rules"
)

// Pool builds the set of meals eligible for a menu date: not already
// committed to a future slot, not explicitly excluded, matching the weekday's
// category rule and the date's season.
type Pool struct {
	catalog *rules.Catalog
}

func NewPool(catalog *rules.Catalog) *Pool {
	return &Pool{
		catalog: catalog,
	}
}

// Build filters allMeals down to the candidates for date. The today argument
// anchors the "already scheduled in the future" check so a meal assigned
// earlier in the same planning run stays out of later days. The result may be
// empty; callers decide whether that is an error.
func (p *Pool) Build(
	ctx context.Context,
	date time.Time,
	today time.Time,
	allMeals []domain.Meal,
	excludedMealIDs map[string]struct{},
) ([]domain.Meal, error) {
	categories, err := p.catalog.CategoriesForWeekday(ctx, date.Weekday())
	if err != nil {
		return nil, fmt.Errorf("resolve weekday categories: %w", err)
	}

	season, err := p.catalog.SeasonForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("resolve season: %w", err)
	}

	var eligible []domain.Meal
	for _, meal := range allMeals {
		if meal.ScheduledOnOrAfter(today) {
			continue
		}
		if _, excluded := excludedMealIDs[meal.ID]; excluded {
			continue
		}
		if !meal.HasAnyCategory(categories) {
			continue
		}
		if !meal.HasSeason(season) {
			continue
		}
		eligible = append(eligible, meal)
	}

	return eligible, nil
}
