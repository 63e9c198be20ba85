package config

import (
	"log/slog"
	"os"

	"github.com/dinnerplans/menu-service/internal/observability/logging"
)

type Config struct {
	Port        string
	Environment logging.Environment
	LogLevel    slog.Level
	Store       *StoreConfig
	Redis       *RedisConfig
	Planner     *PlannerConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        port,
		Environment: env,
		LogLevel:    logging.ParseLevel(os.Getenv("LOG_LEVEL")),
		Store:       LoadStoreConfig(),
		Redis:       redisConfig,
		Planner:     LoadPlannerConfig(),
	}, nil
}
