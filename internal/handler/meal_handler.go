package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dinnerplans/menu-service/internal/domain"
)

type MealHandler struct {
	mealRepo domain.MealRepository
}

func NewMealHandler(mealRepo domain.MealRepository) *MealHandler {
	return &MealHandler{
		mealRepo: mealRepo,
	}
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	meal, err := h.mealRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMealNotFound) {
			respondError(c, http.StatusNotFound, "no meal found with id "+id)
			return
		}
		slog.ErrorContext(ctx, "failed to load meal",
			slog.String("meal_id", id),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to load meal")
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) ListMeals(c *gin.Context) {
	ctx := c.Request.Context()

	meals, err := h.mealRepo.GetAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list meals", slog.String("error", err.Error()))
		respondError(c, http.StatusInternalServerError, "failed to list meals")
		return
	}

	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) CreateMeal(c *gin.Context) {
	ctx := c.Request.Context()

	var meal domain.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		respondError(c, http.StatusBadRequest, "invalid meal payload: "+err.Error())
		return
	}
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}

	if err := h.mealRepo.Create(ctx, &meal); err != nil {
		slog.ErrorContext(ctx, "failed to create meal",
			slog.String("meal_id", meal.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to create meal")
		return
	}

	slog.InfoContext(ctx, "meal created",
		slog.String("meal_id", meal.ID),
		slog.String("name", meal.Name),
	)
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	ctx := c.Request.Context()

	var meal domain.Meal
	if err := c.ShouldBindJSON(&meal); err != nil {
		respondError(c, http.StatusBadRequest, "invalid meal payload: "+err.Error())
		return
	}
	meal.ID = c.Param("id")

	if err := h.mealRepo.Update(ctx, &meal); err != nil {
		slog.ErrorContext(ctx, "failed to update meal",
			slog.String("meal_id", meal.ID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to update meal")
		return
	}

	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) DeleteMeal(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.mealRepo.Delete(ctx, id); err != nil {
		slog.ErrorContext(ctx, "failed to delete meal",
			slog.String("meal_id", id),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "failed to delete meal")
		return
	}

	c.Status(http.StatusNoContent)
}
