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

const (
	mealKeyPrefix = "menu:meal:"
	mealIndexKey  = "menu:meals"
)

type mealRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Categories    []string   `json:"categories"`
	Seasons       []string   `json:"seasons"`
	Recipe        string     `json:"recipe,omitempty"`
	Rating        int        `json:"rating"`
	LastServed    *time.Time `json:"last_served,omitempty"`
	NextScheduled *time.Time `json:"next_scheduled,omitempty"`
}

type mealRepository struct {
	client *redis.Client
}

func NewMealRepository(client *redis.Client) domain.MealRepository {
	return &mealRepository{
		client: client,
	}
}

func (r *mealRepository) GetAll(ctx context.Context) ([]domain.Meal, error) {
	ids, err := r.client.SMembers(ctx, mealIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list meal ids: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Meal{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = mealKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load meals: %w", err)
	}

	meals := make([]domain.Meal, 0, len(values))
	for _, value := range values {
		// Index entries without a backing record are stale; skip them.
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record mealRecord
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, ErrInvalidMealData
		}
		meals = append(meals, record.toMeal())
	}

	return meals, nil
}

func (r *mealRepository) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	data, err := r.client.Get(ctx, mealKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrMealNotFound
		}
		return nil, fmt.Errorf("get meal %s: %w", id, err)
	}

	var record mealRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidMealData
	}

	meal := record.toMeal()
	return &meal, nil
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	return r.save(ctx, meal)
}

func (r *mealRepository) Update(ctx context.Context, meal *domain.Meal) error {
	return r.save(ctx, meal)
}

func (r *mealRepository) save(ctx context.Context, meal *domain.Meal) error {
	if meal == nil || meal.ID == "" {
		return ErrInvalidMealData
	}

	data, err := json.Marshal(fromMeal(meal))
	if err != nil {
		return ErrInvalidMealData
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, mealKeyPrefix+meal.ID, data, 0)
	pipe.SAdd(ctx, mealIndexKey, meal.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save meal %s: %w", meal.ID, err)
	}
	return nil
}

func (r *mealRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, mealKeyPrefix+id)
	pipe.SRem(ctx, mealIndexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	return nil
}

func (rec mealRecord) toMeal() domain.Meal {
	return domain.Meal{
		ID:            rec.ID,
		Name:          rec.Name,
		Categories:    rec.Categories,
		Seasons:       rec.Seasons,
		Recipe:        rec.Recipe,
		Rating:        rec.Rating,
		LastServed:    rec.LastServed,
		NextScheduled: rec.NextScheduled,
	}
}

func fromMeal(meal *domain.Meal) mealRecord {
	return mealRecord{
		ID:            meal.ID,
		Name:          meal.Name,
		Categories:    meal.Categories,
		Seasons:       meal.Seasons,
		Recipe:        meal.Recipe,
		Rating:        meal.Rating,
		LastServed:    meal.LastServed,
		NextScheduled: meal.NextScheduled,
	}
}
