package planner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/service/candidate"
	"github.com/dinnerplans/menu-service/internal/service/chooser"
	"github.com/dinnerplans/menu-service/internal/service/rules"
	"github.com/dinnerplans/menu-service/internal/service/selector"
	"github.com/dinnerplans/menu-service/internal/service/specialdate"
)

type fixedRNG int

func (f fixedRNG) Intn(n int) int {
	return int(f) % n
}

type plannerMocks struct {
	meals   *domain.MockMealRepository
	menu    *domain.MockMenuRepository
	special *domain.MockSpecialDateRepository
	rules   *domain.MockRuleRepository
}

func newTestPlanner(ctrl *gomock.Controller, now time.Time, maxDrawAttempts int) (*Planner, plannerMocks) {
	m := plannerMocks{
		meals:   domain.NewMockMealRepository(ctrl),
		menu:    domain.NewMockMenuRepository(ctrl),
		special: domain.NewMockSpecialDateRepository(ctrl),
		rules:   domain.NewMockRuleRepository(ctrl),
	}

	mealChooser := chooser.New(
		m.meals,
		specialdate.NewIndex(m.special),
		candidate.NewPool(rules.NewCatalog(m.rules)),
		selector.New(),
		fixedRNG(0),
		nil,
		chooser.WithClock(func() time.Time { return now }),
	)

	return New(m.meals, m.menu, mealChooser, nil, maxDrawAttempts), m
}

func summerRules(m plannerMocks, weekdays ...time.Weekday) {
	for _, weekday := range weekdays {
		m.rules.EXPECT().GetDayRule(gomock.Any(), weekday).Return(&domain.DayRule{
			Weekday:    weekday,
			Categories: []string{"Quick"},
		}, nil)
	}
	m.rules.EXPECT().ListSeasonRules(gomock.Any()).Return([]domain.SeasonRule{
		{Season: "Summer", Start: "0601", End: "0831"},
	}, nil).Times(len(weekdays))
}

func TestPlanner_PlanHorizon_InvalidHorizon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _ := newTestPlanner(ctrl, time.Now(), 10)

	if _, err := p.PlanHorizon(context.Background(), time.Now(), 0); !errors.Is(err, ErrInvalidHorizon) {
		t.Errorf("PlanHorizon() error = %v, want ErrInvalidHorizon", err)
	}
}

func TestPlanner_PlanHorizon_SkipsAssignedDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	p, m := newTestPlanner(ctrl, day, 10)

	m.menu.EXPECT().GetByDate(gomock.Any(), day).Return(&domain.MenuAssignment{
		Date:   day,
		MealID: "pasta-001",
	}, true, nil)

	report, err := p.PlanHorizon(context.Background(), day, 1)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.SkippedDates) != 1 || len(report.AssignedDates) != 0 || len(report.FailedDates) != 0 {
		t.Errorf("report = assigned %d / skipped %d / failed %d, want 0/1/0",
			len(report.AssignedDates), len(report.SkippedDates), len(report.FailedDates))
	}
	if report.Results[0].MealID != "pasta-001" {
		t.Errorf("skipped result MealID = %q, want %q", report.Results[0].MealID, "pasta-001")
	}
}

func TestPlanner_PlanHorizon_AssignsDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A Monday in summer.
	day := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	p, m := newTestPlanner(ctrl, day, 10)

	m.menu.EXPECT().GetByDate(gomock.Any(), day).Return(nil, false, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), gomock.Any()).Return("", false, nil)
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{
		{ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 3},
	}, nil)
	summerRules(m, time.Monday)

	m.menu.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, assignment *domain.MenuAssignment) error {
			if !assignment.Date.Equal(day) {
				t.Errorf("Upsert date = %v, want %v", assignment.Date, day)
			}
			if assignment.MealID != "pasta-001" {
				t.Errorf("Upsert MealID = %q, want %q", assignment.MealID, "pasta-001")
			}
			return nil
		})
	m.meals.EXPECT().GetByID(gomock.Any(), "pasta-001").Return(&domain.Meal{
		ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 3,
	}, nil)
	m.meals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, meal *domain.Meal) error {
			if meal.NextScheduled == nil || !meal.NextScheduled.Equal(day) {
				t.Errorf("Update NextScheduled = %v, want %v", meal.NextScheduled, day)
			}
			return nil
		})

	report, err := p.PlanHorizon(context.Background(), day, 1)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.AssignedDates) != 1 {
		t.Fatalf("report assigned %d days, want 1: %+v", len(report.AssignedDates), report.Results)
	}
	if report.Results[0].MealID != "pasta-001" {
		t.Errorf("assigned result MealID = %q, want %q", report.Results[0].MealID, "pasta-001")
	}
}

func TestPlanner_PlanHorizon_SequentialExclusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monday := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	p, m := newTestPlanner(ctrl, monday, 10)

	curry := domain.Meal{ID: "curry-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 4}
	pasta := domain.Meal{ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 4}

	m.menu.EXPECT().GetByDate(gomock.Any(), monday).Return(nil, false, nil)
	m.menu.EXPECT().GetByDate(gomock.Any(), tuesday).Return(nil, false, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), gomock.Any()).Return("", false, nil).Times(2)
	summerRules(m, time.Monday, time.Tuesday)

	// Day one sees both meals fresh; the deterministic draw picks the lowest
	// id. Day two sees curry already carrying its new schedule, so only pasta
	// remains eligible.
	curryScheduled := curry
	curryScheduled.NextScheduled = &monday
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{curry, pasta}, nil)
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{curryScheduled, pasta}, nil)

	m.menu.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.meals.EXPECT().GetByID(gomock.Any(), "curry-001").Return(&curry, nil)
	m.meals.EXPECT().GetByID(gomock.Any(), "pasta-001").Return(&pasta, nil)
	m.meals.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	report, err := p.PlanHorizon(context.Background(), monday, 2)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.AssignedDates) != 2 {
		t.Fatalf("report assigned %d days, want 2: %+v", len(report.AssignedDates), report.Results)
	}
	if report.Results[0].MealID != "curry-001" {
		t.Errorf("day one MealID = %q, want %q", report.Results[0].MealID, "curry-001")
	}
	if report.Results[1].MealID != "pasta-001" {
		t.Errorf("day two MealID = %q, want %q", report.Results[1].MealID, "pasta-001")
	}
}

func TestPlanner_PlanHorizon_MixedWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monday := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	wednesday := monday.AddDate(0, 0, 2)
	p, m := newTestPlanner(ctrl, monday, 10)

	curry := domain.Meal{ID: "curry-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 4}
	pasta := domain.Meal{ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 4}

	// Day one already holds a meal; days two and three are open.
	m.menu.EXPECT().GetByDate(gomock.Any(), monday).Return(&domain.MenuAssignment{
		Date:   monday,
		MealID: "stew-001",
	}, true, nil)
	m.menu.EXPECT().GetByDate(gomock.Any(), tuesday).Return(nil, false, nil)
	m.menu.EXPECT().GetByDate(gomock.Any(), wednesday).Return(nil, false, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), gomock.Any()).Return("", false, nil).Times(2)
	summerRules(m, time.Tuesday, time.Wednesday)

	curryScheduled := curry
	curryScheduled.NextScheduled = &tuesday
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{curry, pasta}, nil)
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{curryScheduled, pasta}, nil)

	m.menu.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.meals.EXPECT().GetByID(gomock.Any(), "curry-001").Return(&curry, nil)
	m.meals.EXPECT().GetByID(gomock.Any(), "pasta-001").Return(&pasta, nil)

	scheduledDates := map[string]time.Time{}
	m.meals.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, meal *domain.Meal) error {
			if meal.NextScheduled == nil {
				t.Errorf("Update(%s) NextScheduled = nil", meal.ID)
				return nil
			}
			scheduledDates[meal.ID] = *meal.NextScheduled
			return nil
		}).Times(2)

	report, err := p.PlanHorizon(context.Background(), monday, 3)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.SkippedDates) != 1 || !report.SkippedDates[0].Equal(monday) {
		t.Errorf("SkippedDates = %v, want [%v]", report.SkippedDates, monday)
	}
	if len(report.AssignedDates) != 2 {
		t.Fatalf("report assigned %d days, want 2: %+v", len(report.AssignedDates), report.Results)
	}
	if got := scheduledDates["curry-001"]; !got.Equal(tuesday) {
		t.Errorf("curry-001 NextScheduled = %v, want %v", got, tuesday)
	}
	if got := scheduledDates["pasta-001"]; !got.Equal(wednesday) {
		t.Errorf("pasta-001 NextScheduled = %v, want %v", got, wednesday)
	}
}

func TestPlanner_PlanHorizon_FailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	monday := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	p, m := newTestPlanner(ctrl, monday, 10)

	// Day one fails on the assignment read, day two proceeds normally.
	m.menu.EXPECT().GetByDate(gomock.Any(), monday).Return(nil, false, errors.New("store unavailable"))
	m.menu.EXPECT().GetByDate(gomock.Any(), tuesday).Return(nil, false, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), gomock.Any()).Return("", false, nil)
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{
		{ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 3},
	}, nil)
	summerRules(m, time.Tuesday)
	m.menu.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	m.meals.EXPECT().GetByID(gomock.Any(), "pasta-001").Return(&domain.Meal{
		ID: "pasta-001", Categories: []string{"Quick"}, Seasons: []string{"Summer"}, Rating: 3,
	}, nil)
	m.meals.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	report, err := p.PlanHorizon(context.Background(), monday, 2)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.FailedDates) != 1 || !report.FailedDates[0].Equal(monday) {
		t.Errorf("FailedDates = %v, want [%v]", report.FailedDates, monday)
	}
	if len(report.AssignedDates) != 1 || !report.AssignedDates[0].Equal(tuesday) {
		t.Errorf("AssignedDates = %v, want [%v]", report.AssignedDates, tuesday)
	}
}

func TestPlanner_PlanHorizon_RetryBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	christmas := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	p, m := newTestPlanner(ctrl, christmas, 3)

	// The slot's removed meal is also the special date override, so every
	// draw returns the one meal the slot must avoid.
	m.menu.EXPECT().GetByDate(gomock.Any(), christmas).Return(&domain.MenuAssignment{
		Date:          christmas,
		RemovedMealID: "turkey-001",
	}, true, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), domain.MonthDay("1225")).Return("turkey-001", true, nil).Times(3)

	report, err := p.PlanHorizon(context.Background(), christmas, 1)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.FailedDates) != 1 {
		t.Fatalf("report failed %d days, want 1: %+v", len(report.FailedDates), report.Results)
	}
	if !strings.Contains(report.Results[0].Reason, "turkey-001") {
		t.Errorf("failure reason %q should name the removed meal", report.Results[0].Reason)
	}
}

func TestPlanner_PlanHorizon_EmptyPoolFailsDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)
	p, m := newTestPlanner(ctrl, day, 10)

	m.menu.EXPECT().GetByDate(gomock.Any(), day).Return(nil, false, nil)
	m.special.EXPECT().GetByMonthDay(gomock.Any(), gomock.Any()).Return("", false, nil)
	m.meals.EXPECT().GetAll(gomock.Any()).Return([]domain.Meal{}, nil)
	summerRules(m, time.Monday)

	report, err := p.PlanHorizon(context.Background(), day, 1)
	if err != nil {
		t.Fatalf("PlanHorizon() error = %v, want nil", err)
	}
	if len(report.FailedDates) != 1 {
		t.Fatalf("report failed %d days, want 1", len(report.FailedDates))
	}
	if report.Results[0].Reason != "no eligible meals" {
		t.Errorf("failure reason = %q, want %q", report.Results[0].Reason, "no eligible meals")
	}
}
