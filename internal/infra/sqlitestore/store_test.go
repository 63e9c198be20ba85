package sqlitestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "menu.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Logf("failed to close store: %v", err)
		}
	})

	return store
}

func TestStoreMealRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	lastServed := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	meal := &domain.Meal{
		ID:         "pasta-001",
		Name:       "Pasta al forno",
		Categories: []string{"Quick", "Veggie"},
		Seasons:    []string{"Summer"},
		Recipe:     "bake at 200C",
		Rating:     4,
		LastServed: &lastServed,
	}

	if err := store.Create(ctx, meal); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	loaded, err := store.GetByID(ctx, "pasta-001")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if loaded.Name != meal.Name || loaded.Rating != meal.Rating || loaded.Recipe != meal.Recipe {
		t.Errorf("GetByID() = %+v, want %+v", loaded, meal)
	}
	if len(loaded.Categories) != 2 || loaded.Categories[1] != "Veggie" {
		t.Errorf("GetByID() categories = %v, want [Quick Veggie]", loaded.Categories)
	}
	if loaded.LastServed == nil || !loaded.LastServed.Equal(lastServed) {
		t.Errorf("GetByID() LastServed = %v, want %v", loaded.LastServed, lastServed)
	}
	if loaded.NextScheduled != nil {
		t.Errorf("GetByID() NextScheduled = %v, want nil", loaded.NextScheduled)
	}

	scheduled := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	loaded.NextScheduled = &scheduled
	if err := store.Update(ctx, loaded); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := store.GetByID(ctx, "pasta-001")
	if err != nil {
		t.Fatalf("GetByID() after update error = %v", err)
	}
	if updated.NextScheduled == nil || !updated.NextScheduled.Equal(scheduled) {
		t.Errorf("GetByID() NextScheduled = %v, want %v", updated.NextScheduled, scheduled)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("GetAll() returned %d meals, want 1", len(all))
	}

	if err := store.Delete(ctx, "pasta-001"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.GetByID(ctx, "pasta-001"); !errors.Is(err, domain.ErrMealNotFound) {
		t.Errorf("GetByID() after delete error = %v, want ErrMealNotFound", err)
	}
}

func TestStoreRules(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.GetDayRule(ctx, time.Monday); !errors.Is(err, domain.ErrRuleNotFound) {
		t.Errorf("GetDayRule() error = %v, want ErrRuleNotFound", err)
	}

	dayRules := []domain.DayRule{
		{Weekday: time.Monday, Categories: []string{"Quick"}},
		{Weekday: time.Saturday, Categories: []string{"Stew", "Festive"}},
	}
	seasonRules := []domain.SeasonRule{
		{Season: "Winter", Start: "1201", End: "0228"},
		{Season: "Summer", Start: "0601", End: "0831"},
	}
	if err := store.SeedRules(ctx, dayRules, seasonRules); err != nil {
		t.Fatalf("SeedRules() error = %v", err)
	}

	rule, err := store.GetDayRule(ctx, time.Saturday)
	if err != nil {
		t.Fatalf("GetDayRule() error = %v", err)
	}
	if len(rule.Categories) != 2 || rule.Categories[0] != "Stew" {
		t.Errorf("GetDayRule() categories = %v, want [Stew Festive]", rule.Categories)
	}

	listed, err := store.ListSeasonRules(ctx)
	if err != nil {
		t.Fatalf("ListSeasonRules() error = %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListSeasonRules() returned %d rules, want 2", len(listed))
	}

	// Reseeding replaces, not appends.
	if err := store.SeedRules(ctx, dayRules[:1], seasonRules[:1]); err != nil {
		t.Fatalf("SeedRules() reseed error = %v", err)
	}
	listed, err = store.ListSeasonRules(ctx)
	if err != nil {
		t.Fatalf("ListSeasonRules() error = %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("ListSeasonRules() after reseed returned %d rules, want 1", len(listed))
	}
}

func TestStoreSpecialDates(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, found, err := store.GetByMonthDay(ctx, domain.MonthDay("1225"))
	if err != nil {
		t.Fatalf("GetByMonthDay() error = %v", err)
	}
	if found {
		t.Fatal("GetByMonthDay() found = true for empty store")
	}

	if err := store.SetSpecialDate(ctx, domain.MonthDay("1225"), "turkey-001"); err != nil {
		t.Fatalf("SetSpecialDate() error = %v", err)
	}

	mealID, found, err := store.GetByMonthDay(ctx, domain.MonthDay("1225"))
	if err != nil {
		t.Fatalf("GetByMonthDay() error = %v", err)
	}
	if !found || mealID != "turkey-001" {
		t.Errorf("GetByMonthDay() = (%q, %v), want (turkey-001, true)", mealID, found)
	}

	// Overrides replace.
	if err := store.SetSpecialDate(ctx, domain.MonthDay("1225"), "goose-001"); err != nil {
		t.Fatalf("SetSpecialDate() replace error = %v", err)
	}
	mealID, _, err = store.GetByMonthDay(ctx, domain.MonthDay("1225"))
	if err != nil {
		t.Fatalf("GetByMonthDay() error = %v", err)
	}
	if mealID != "goose-001" {
		t.Errorf("GetByMonthDay() = %q, want goose-001", mealID)
	}
}

func TestStoreMenu(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	start := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)

	_, found, err := store.GetByDate(ctx, start)
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if found {
		t.Fatal("GetByDate() found = true for empty store")
	}

	for _, offset := range []int{0, 2} {
		day := start.AddDate(0, 0, offset)
		err := store.Upsert(ctx, &domain.MenuAssignment{Date: day, MealID: "meal-" + domain.DateKey(day)})
		if err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	loaded, found, err := store.GetByDate(ctx, start)
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if !found || !loaded.Date.Equal(start) {
		t.Errorf("GetByDate() = (%+v, %v), want assignment on %v", loaded, found, start)
	}

	// Reassignment overwrites the slot and keeps the displaced meal.
	err = store.Upsert(ctx, &domain.MenuAssignment{Date: start, MealID: "curry-001", RemovedMealID: loaded.MealID})
	if err != nil {
		t.Fatalf("Upsert() replacement error = %v", err)
	}
	replaced, _, err := store.GetByDate(ctx, start)
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if replaced.MealID != "curry-001" || replaced.RemovedMealID != loaded.MealID {
		t.Errorf("GetByDate() = %+v, want curry-001 replacing %s", replaced, loaded.MealID)
	}

	assignments, err := store.ListRange(ctx, start, start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("ListRange() error = %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("ListRange() returned %d assignments, want 2", len(assignments))
	}
	if !assignments[0].Date.Equal(start) || !assignments[1].Date.Equal(start.AddDate(0, 0, 2)) {
		t.Errorf("ListRange() dates = %v, %v; want %v, %v",
			assignments[0].Date, assignments[1].Date, start, start.AddDate(0, 0, 2))
	}
}

func TestStorePing(t *testing.T) {
	store := openTestStore(t)

	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
