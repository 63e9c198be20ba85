package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dinnerplans/menu-service/internal/domain"
)

const assignmentKeyPrefix = "menu:assignment:"

type assignmentRecord struct {
	Date          string `json:"date"`
	MealID        string `json:"meal_id"`
	RemovedMealID string `json:"removed_meal_id,omitempty"`
}

type menuRepository struct {
	client *redis.Client
}

func NewMenuRepository(client *redis.Client) domain.MenuRepository {
	return &menuRepository{
		client: client,
	}
}

func (r *menuRepository) GetByDate(ctx context.Context, date time.Time) (*domain.MenuAssignment, bool, error) {
	key := assignmentKeyPrefix + domain.DateKey(date)

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get assignment %s: %w", domain.DateKey(date), err)
	}

	assignment, err := unmarshalAssignment(data)
	if err != nil {
		return nil, false, err
	}

	return assignment, true, nil
}

func (r *menuRepository) Upsert(ctx context.Context, assignment *domain.MenuAssignment) error {
	if assignment == nil {
		return ErrInvalidAssignmentData
	}

	record := assignmentRecord{
		Date:          domain.DateKey(assignment.Date),
		MealID:        assignment.MealID,
		RemovedMealID: assignment.RemovedMealID,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidAssignmentData
	}

	key := assignmentKeyPrefix + record.Date
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("upsert assignment %s: %w", record.Date, err)
	}
	return nil
}

// ListRange walks the day-granular keys between start and end inclusive.
// Menu windows are short (a planning horizon), so the per-day reads stay
// bounded.
func (r *menuRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.MenuAssignment, error) {
	first := domain.Date(start)
	last := domain.Date(end)

	var assignments []domain.MenuAssignment
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		assignment, found, err := r.GetByDate(ctx, day)
		if err != nil {
			return nil, err
		}
		if found {
			assignments = append(assignments, *assignment)
		}
	}

	return assignments, nil
}

func unmarshalAssignment(data []byte) (*domain.MenuAssignment, error) {
	var record assignmentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidAssignmentData
	}

	date, err := domain.ParseDateKey(record.Date)
	if err != nil {
		return nil, ErrInvalidAssignmentData
	}

	return &domain.MenuAssignment{
		Date:          date,
		MealID:        record.MealID,
		RemovedMealID: record.RemovedMealID,
	}, nil
}
