package config

import (
	"os"
	"strconv"
)

const (
	horizonDaysEnv     = "PLANNER_HORIZON_DAYS"
	maxDrawAttemptsEnv = "PLANNER_MAX_DRAW_ATTEMPTS"

	defaultHorizonDays = 30
	// Bounded retry around the removed-meal exclusion; exhausting the budget
	// marks the day failed instead of looping.
	defaultMaxDrawAttempts = 10
)

type PlannerConfig struct {
	HorizonDays     int
	MaxDrawAttempts int
}

func LoadPlannerConfig() *PlannerConfig {
	horizonDays := defaultHorizonDays
	if v := os.Getenv(horizonDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			horizonDays = parsed
		}
	}

	maxDrawAttempts := defaultMaxDrawAttempts
	if v := os.Getenv(maxDrawAttemptsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxDrawAttempts = parsed
		}
	}

	return &PlannerConfig{
		HorizonDays:     horizonDays,
		MaxDrawAttempts: maxDrawAttempts,
	}
}
