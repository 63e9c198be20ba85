package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dinnerplans/menu-service/internal/domain"
)

const (
	dayRuleKeyPrefix = "menu:rule:day:"
	seasonRulesKey   = "menu:rule:seasons"
)

type dayRuleRecord struct {
	Weekday    int      `json:"weekday"`
	Categories []string `json:"categories"`
}

type seasonRuleRecord struct {
	Season string `json:"season"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type ruleRepository struct {
	client *redis.Client
}

func NewRuleRepository(client *redis.Client) domain.RuleRepository {
	return &ruleRepository{
		client: client,
	}
}

func (r *ruleRepository) GetDayRule(ctx context.Context, weekday time.Weekday) (*domain.DayRule, error) {
	key := dayRuleKeyPrefix + strconv.Itoa(int(weekday))

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrRuleNotFound
		}
		return nil, fmt.Errorf("get day rule %s: %w", weekday, err)
	}

	var record dayRuleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, ErrInvalidRuleData
	}

	return &domain.DayRule{
		Weekday:    time.Weekday(record.Weekday),
		Categories: record.Categories,
	}, nil
}

func (r *ruleRepository) ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error) {
	data, err := r.client.Get(ctx, seasonRulesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.SeasonRule{}, nil
		}
		return nil, fmt.Errorf("list season rules: %w", err)
	}

	var records []seasonRuleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, ErrInvalidRuleData
	}

	seasonRules := make([]domain.SeasonRule, len(records))
	for i, record := range records {
		seasonRules[i] = domain.SeasonRule{
			Season: record.Season,
			Start:  domain.MonthDay(record.Start),
			End:    domain.MonthDay(record.End),
		}
	}

	return seasonRules, nil
}
