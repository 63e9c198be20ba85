package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/dinnerplans/menu-service/internal/config"
	"github.com/dinnerplans/menu-service/internal/domain"
	"github.com/dinnerplans/menu-service/internal/handler"
	"github.com/dinnerplans/menu-service/internal/health"
	"github.com/dinnerplans/menu-service/internal/infra/planrecorder"
	"github.com/dinnerplans/menu-service/internal/infra/repository"
	"github.com/dinnerplans/menu-service/internal/infra/sqlitestore"
	"github.com/dinnerplans/menu-service/internal/observability"
	"github.com/dinnerplans/menu-service/internal/observability/logging"
	"github.com/dinnerplans/menu-service/internal/observability/metrics"
	"github.com/dinnerplans/menu-service/internal/service/candidate"
	"github.com/dinnerplans/menu-service/internal/service/chooser"
	"github.com/dinnerplans/menu-service/internal/service/planner"
	"github.com/dinnerplans/menu-service/internal/service/rollover"
	"github.com/dinnerplans/menu-service/internal/service/rules"
	"github.com/dinnerplans/menu-service/internal/service/selector"
	"github.com/dinnerplans/menu-service/internal/service/specialdate"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

// stores bundles the repository ports the active backend provides.
type stores struct {
	meals        domain.MealRepository
	rules        domain.RuleRepository
	specialDates domain.SpecialDateRepository
	menu         domain.MenuRepository
	pinger       health.Pinger
	cleanup      func() error
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	logging.Setup(cfg.Environment, cfg.LogLevel)

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := observability.Init(ctx, "menu-service", Version)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	menuMetrics, err := metrics.NewMenuMetrics()
	if err != nil {
		slog.Error("failed to initialize menu metrics", slog.String("error", err.Error()))
		return 1
	}

	resultRecorder, err := planrecorder.NewRecorder(ctx, planrecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize plan result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close plan result recorder", slog.String("error", err.Error()))
		}
	}()

	st, err := initStores(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize store backend",
			slog.String("backend", string(cfg.Store.Backend)),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := st.cleanup(); err != nil {
			slog.Warn("store cleanup error", slog.String("error", err.Error()))
		}
	}()

	ruleCatalog := rules.NewCatalog(st.rules)
	specialDateIndex := specialdate.NewIndex(st.specialDates)
	candidatePool := candidate.NewPool(ruleCatalog)
	weightedSelector := selector.New()

	mealChooser := chooser.New(
		st.meals,
		specialDateIndex,
		candidatePool,
		weightedSelector,
		selector.GlobalRNG{},
		menuMetrics,
	)
	horizonPlanner := planner.New(st.meals, st.menu, mealChooser, menuMetrics, cfg.Planner.MaxDrawAttempts)
	rolloverJob := rollover.New(st.meals, st.menu, menuMetrics)

	mealHandler := handler.NewMealHandler(st.meals)
	menuHandler := handler.NewMenuHandler(
		mealChooser,
		horizonPlanner,
		rolloverJob,
		st.meals,
		st.menu,
		resultRecorder,
		cfg.Planner,
	)

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(string(cfg.Store.Backend), st.pinger, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/meals", mealHandler.ListMeals)
		v1.POST("/meals", mealHandler.CreateMeal)
		v1.GET("/meals/:id", mealHandler.GetMeal)
		v1.PUT("/meals/:id", mealHandler.UpdateMeal)
		v1.DELETE("/meals/:id", mealHandler.DeleteMeal)

		v1.GET("/menu", menuHandler.GetMenuRange)
		v1.PUT("/menu", menuHandler.OverrideAssignment)
		v1.GET("/menu/choose", menuHandler.ChooseMeal)
		v1.POST("/menu/plan", menuHandler.PlanHorizon)
		v1.POST("/menu/rollover", menuHandler.RollOver)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("store_backend", string(cfg.Store.Backend)),
			slog.Int("horizon_days", cfg.Planner.HorizonDays),
			slog.Int("max_draw_attempts", cfg.Planner.MaxDrawAttempts),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		store, err := sqlitestore.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}

		slog.Info("sqlite store opened", slog.String("path", cfg.Store.SQLitePath))

		return &stores{
			meals:        store,
			rules:        store,
			specialDates: store,
			menu:         store,
			pinger:       store,
			cleanup:      store.Close,
		}, nil

	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			redisClient.Close()
			return nil, err
		}
		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			redisClient.Close()
			return nil, err
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisClient.Close()
			return nil, err
		}

		slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))

		return &stores{
			meals:        repository.NewMealRepository(redisClient),
			rules:        repository.NewRuleRepository(redisClient),
			specialDates: repository.NewSpecialDateRepository(redisClient),
			menu:         repository.NewMenuRepository(redisClient),
			pinger:       redisPinger{client: redisClient},
			cleanup:      redisClient.Close,
		}, nil
	}
}

// redisPinger adapts the redis client to the health probe interface.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
