package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dinnerplans/menu-service/internal/domain"
)

const specialDateKeyPrefix = "menu:special:"

type specialDateRepository struct {
	client *redis.Client
}

func NewSpecialDateRepository(client *redis.Client) domain.SpecialDateRepository {
	return &specialDateRepository{
		client: client,
	}
}

func (r *specialDateRepository) GetByMonthDay(ctx context.Context, key domain.MonthDay) (string, bool, error) {
	mealID, err := r.client.Get(ctx, specialDateKeyPrefix+key.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get special date %s: %w", key, err)
	}

	return mealID, true, nil
}
