package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dinnerplans/menu-service/internal/config"
	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/service/chooser"
	"github.com/dinnerplans/menu-service/internal/service/planner"
	"github.com/dinnerplans/menu-service/internal/service/rollover"
)

type MenuHandler struct {
	mealChooser    *chooser.Chooser
	horizonPlanner *planner.Planner
	rolloverJob    *rollover.Job
	mealRepo       domain.MealRepository
	menuRepo       domain.MenuRepository
	resultRecorder domain.PlanResultRecorder
	plannerConfig  *config.PlannerConfig
}

func NewMenuHandler(
	mealChooser *chooser.Chooser,
	horizonPlanner *planner.Planner,
	rolloverJob *rollover.Job,
	mealRepo domain.MealRepository,
	menuRepo domain.MenuRepository,
	resultRecorder domain.PlanResultRecorder,
	plannerConfig *config.PlannerConfig,
) *MenuHandler {
	return &MenuHandler{
		mealChooser:    mealChooser,
		horizonPlanner: horizonPlanner,
		rolloverJob:    rolloverJob,
		mealRepo:       mealRepo,
		menuRepo:       menuRepo,
		resultRecorder: resultRecorder,
		plannerConfig:  plannerConfig,
	}
}

// ChooseMeal recommends a meal for the queried date without persisting
// anything.
func (h *MenuHandler) ChooseMeal(c *gin.Context) {
	ctx := c.Request.Context()

	dateQuery := c.Query("date")
	date, err := parseDateParam(dateQuery)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD: "+dateQuery)
		return
	}

	mealID, err := h.mealChooser.ChooseForDate(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyPool) {
			respondError(c, http.StatusConflict, "no meal satisfies the constraints for "+dateQuery)
			return
		}
		slog.ErrorContext(ctx, "failed to choose meal",
			slog.String("date", domain.DateKey(date)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to choose meal: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": dateQuery, "meal_id": mealID})
}

type planRequest struct {
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
}

// PlanHorizon fills the upcoming window with meal assignments and returns
// the per-day report.
func (h *MenuHandler) PlanHorizon(c *gin.Context) {
	ctx := c.Request.Context()

	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid plan request: "+err.Error())
		return
	}

	startDate := domain.Date(time.Now().UTC())
	if req.StartDate != "" {
		parsed, err := parseDateParam(req.StartDate)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid start_date, expected YYYY-MM-DD: "+req.StartDate)
			return
		}
		startDate = parsed
	}

	days := req.Days
	if days == 0 {
		days = h.plannerConfig.HorizonDays
	}
	if days < 0 {
		respondError(c, http.StatusBadRequest, "days must be positive")
		return
	}

	runID := uuid.NewString()
	runStart := time.Now()

	report, err := h.horizonPlanner.PlanHorizon(ctx, startDate, days)
	if err != nil {
		slog.ErrorContext(ctx, "failed to plan horizon",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to plan horizon: "+err.Error())
		return
	}

	h.recordPlanResults(ctx, runID, report, time.Since(runStart))

	c.JSON(http.StatusOK, gin.H{"run_id": runID, "report": report})
}

// recordPlanResults ships the run outcome to the configured sink.
// Best-effort: recording failures never fail the request.
func (h *MenuHandler) recordPlanResults(ctx context.Context, runID string, report *planner.Report, duration time.Duration) {
	runRecord := domain.PlanRunRecord{
		RunID:         runID,
		StartDate:     report.StartDate,
		HorizonDays:   report.HorizonDays,
		AssignedCount: len(report.AssignedDates),
		SkippedCount:  len(report.SkippedDates),
		FailedCount:   len(report.FailedDates),
		Duration:      duration,
	}
	if err := h.resultRecorder.RecordPlanRun(ctx, runRecord); err != nil {
		slog.WarnContext(ctx, "failed to record plan run",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}

	dayRecords := make([]domain.DayOutcomeRecord, 0, len(report.Results))
	for _, result := range report.Results {
		dayRecords = append(dayRecords, domain.DayOutcomeRecord{
			RunID:   runID,
			Date:    result.Date,
			Outcome: string(result.Status),
			MealID:  result.MealID,
		})
	}
	if err := h.resultRecorder.RecordDayOutcomes(ctx, dayRecords); err != nil {
		slog.WarnContext(ctx, "failed to record day outcomes",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}

type rolloverRequest struct {
	Date string `json:"date"`
}

// RollOver finalizes the date that has just elapsed. Defaults to yesterday
// when no date is supplied, matching the external timer's contract.
func (h *MenuHandler) RollOver(c *gin.Context) {
	ctx := c.Request.Context()

	var req rolloverRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid rollover request: "+err.Error())
			return
		}
	}

	date := domain.Date(time.Now().UTC()).AddDate(0, 0, -1)
	if req.Date != "" {
		parsed, err := parseDateParam(req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD: "+req.Date)
			return
		}
		date = parsed
	}

	if err := h.rolloverJob.RollOver(ctx, date); err != nil {
		// Logged and surfaced, but never retried; the next rollover
		// supersedes this one.
		slog.ErrorContext(ctx, "rollover failed",
			slog.String("date", domain.DateKey(date)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "rollover failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": domain.DateKey(date)})
}

type menuEntry struct {
	Date        string       `json:"date"`
	Meal        *domain.Meal `json:"meal,omitempty"`
	RemovedMeal *domain.Meal `json:"removed_meal,omitempty"`
}

// GetMenuRange returns the assignments between start and end with their
// meals joined in.
func (h *MenuHandler) GetMenuRange(c *gin.Context) {
	ctx := c.Request.Context()

	start, err := parseDateParam(c.Query("start"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid start, expected YYYY-MM-DD")
		return
	}
	end, err := parseDateParam(c.Query("end"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid end, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		respondError(c, http.StatusBadRequest, "end must not precede start")
		return
	}

	assignments, err := h.menuRepo.ListRange(ctx, start, end)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list menu range", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "failed to list menu range")
		return
	}

	entries := make([]menuEntry, 0, len(assignments))
	for _, assignment := range assignments {
		entry := menuEntry{Date: assignment.Date.Format(dateParamLayout)}
		entry.Meal = h.lookupMeal(ctx, assignment.MealID)
		entry.RemovedMeal = h.lookupMeal(ctx, assignment.RemovedMealID)
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"menus": entries})
}

// lookupMeal resolves a meal id for the menu join. A missing or unreadable
// meal degrades to an empty slot entry rather than failing the range read.
func (h *MenuHandler) lookupMeal(ctx context.Context, id string) *domain.Meal {
	if id == "" {
		return nil
	}
	meal, err := h.mealRepo.GetByID(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve meal for menu entry",
			slog.String("meal_id", id),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return meal
}

type overrideRequest struct {
	Date   string `json:"date"`
	MealID string `json:"meal_id"`
}

// OverrideAssignment force-assigns a meal to a date. The displaced meal is
// remembered as the slot's removed meal so replanning avoids it.
func (h *MenuHandler) OverrideAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	var req overrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid override request: "+err.Error())
		return
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD: "+req.Date)
		return
	}

	meal, err := h.mealRepo.GetByID(ctx, req.MealID)
	if err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			respondError(c, http.StatusNotFound, "no meal found with id "+req.MealID)
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load meal")
		return
	}

	removedMealID := ""
	if existing, found, err := h.menuRepo.GetByDate(ctx, date); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to read existing assignment")
		return
	} else if found && existing.MealID != req.MealID {
		removedMealID = existing.MealID
	}

	assignment := &domain.MenuAssignment{
		Date:          domain.Date(date),
		MealID:        req.MealID,
		RemovedMealID: removedMealID,
	}
	if err := h.menuRepo.Upsert(ctx, assignment); err != nil {
		slog.ErrorContext(ctx, "failed to override assignment",
			slog.String("date", domain.DateKey(date)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to save assignment")
		return
	}

	scheduled := domain.Date(date)
	meal.NextScheduled = &scheduled
	if err := h.mealRepo.Update(ctx, meal); err != nil {
		slog.WarnContext(ctx, "assignment saved but meal schedule update failed",
			slog.String("meal_id", meal.ID),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, assignment)
}
