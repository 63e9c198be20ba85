package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
)

// Catalog resolves the constraint rules for a calendar date: which meal
// categories a weekday allows, and which season a date falls into.
type Catalog struct {
	ruleRepo domain.RuleRepository
}

func NewCatalog(ruleRepo domain.RuleRepository) *Catalog {
	return &Catalog{
		ruleRepo: ruleRepo,
	}
}

// CategoriesForWeekday returns the categories allowed on the given weekday.
// A missing day rule is a fatal configuration error: the catalog invariant
// requires exactly one rule per weekday.
func (c *Catalog) CategoriesForWeekday(ctx context.Context, weekday time.Weekday) ([]string, error) {
	rule, err := c.ruleRepo.GetDayRule(ctx, weekday)
	if err != nil {
		return nil, fmt.Errorf("day rule for %s: %w", weekday, err)
	}
	if rule == nil {
		return nil, fmt.Errorf("day rule for %s: %w", weekday, domain.ErrRuleNotFound)
	}

	return rule.Categories, nil
}

// SeasonForDate resolves the season label covering date's month-day. Exactly
// one rule must match; zero or multiple matches mean the season catalog is
// incomplete or contradictory and the error is surfaced, never guessed away.
func (c *Catalog) SeasonForDate(ctx context.Context, date time.Time) (string, error) {
	seasonRules, err := c.ruleRepo.ListSeasonRules(ctx)
	if err != nil {
		return "", fmt.Errorf("list season rules: %w", err)
	}

	var matches []string
	for _, rule := range seasonRules {
		if rule.Contains(date) {
			matches = append(matches, rule.Season)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no season rule covers %s: %w", domain.MonthDayOf(date), domain.ErrRuleNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s matches seasons %v: %w", domain.MonthDayOf(date), matches, domain.ErrAmbiguousSeason)
	}
}
