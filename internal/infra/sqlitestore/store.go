// Package sqlitestore provides a single-file SQLite backend for the menu
// repositories, for deployments that do not run Redis.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dinnerplans/menu-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS meals (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	categories     TEXT NOT NULL,
	seasons        TEXT NOT NULL,
	recipe         TEXT NOT NULL DEFAULT '',
	rating         INTEGER NOT NULL DEFAULT 0,
	last_served    TEXT,
	next_scheduled TEXT
);
CREATE TABLE IF NOT EXISTS day_rules (
	weekday    INTEGER PRIMARY KEY,
	categories TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS season_rules (
	season   TEXT PRIMARY KEY,
	start_md TEXT NOT NULL,
	end_md   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS special_dates (
	month_day TEXT PRIMARY KEY,
	meal_id   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS menu (
	date            TEXT PRIMARY KEY,
	meal_id         TEXT NOT NULL,
	removed_meal_id TEXT NOT NULL DEFAULT ''
);
`

// Store implements every menu repository port over one SQLite database.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and parent directory) if needed and
// bootstraps the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports database availability for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// --- MealRepository ---

func (s *Store) GetAll(ctx context.Context) ([]domain.Meal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, categories, seasons, recipe, rating, last_served, next_scheduled FROM meals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		meals = append(meals, *meal)
	}

	return meals, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Meal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, categories, seasons, recipe, rating, last_served, next_scheduled FROM meals WHERE id = ?`, id)

	meal, err := scanMeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMealNotFound
	}
	return meal, err
}

func (s *Store) Create(ctx context.Context, meal *domain.Meal) error {
	return s.saveMeal(ctx, meal)
}

func (s *Store) Update(ctx context.Context, meal *domain.Meal) error {
	return s.saveMeal(ctx, meal)
}

func (s *Store) saveMeal(ctx context.Context, meal *domain.Meal) error {
	categories, err := json.Marshal(meal.Categories)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	seasons, err := json.Marshal(meal.Seasons)
	if err != nil {
		return fmt.Errorf("encode seasons: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO meals (id, name, categories, seasons, recipe, rating, last_served, next_scheduled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			categories = excluded.categories,
			seasons = excluded.seasons,
			recipe = excluded.recipe,
			rating = excluded.rating,
			last_served = excluded.last_served,
			next_scheduled = excluded.next_scheduled`,
		meal.ID, meal.Name, string(categories), string(seasons), meal.Recipe, meal.Rating,
		nullableDate(meal.LastServed), nullableDate(meal.NextScheduled),
	)
	if err != nil {
		return fmt.Errorf("save meal %s: %w", meal.ID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM meals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete meal %s: %w", id, err)
	}
	return nil
}

// --- RuleRepository ---

func (s *Store) GetDayRule(ctx context.Context, weekday time.Weekday) (*domain.DayRule, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT categories FROM day_rules WHERE weekday = ?`, int(weekday)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query day rule %s: %w", weekday, err)
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, fmt.Errorf("decode day rule %s: %w", weekday, err)
	}

	return &domain.DayRule{Weekday: weekday, Categories: categories}, nil
}

func (s *Store) ListSeasonRules(ctx context.Context) ([]domain.SeasonRule, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT season, start_md, end_md FROM season_rules ORDER BY season`)
	if err != nil {
		return nil, fmt.Errorf("query season rules: %w", err)
	}
	defer rows.Close()

	seasonRules := []domain.SeasonRule{}
	for rows.Next() {
		var season, start, end string
		if err := rows.Scan(&season, &start, &end); err != nil {
			return nil, err
		}
		seasonRules = append(seasonRules, domain.SeasonRule{
			Season: season,
			Start:  domain.MonthDay(start),
			End:    domain.MonthDay(end),
		})
	}

	return seasonRules, rows.Err()
}

// SeedRules replaces the rule catalog. Rule data is owned by external
// tooling; this hook exists for provisioning and tests.
func (s *Store) SeedRules(ctx context.Context, dayRules []domain.DayRule, seasonRules []domain.SeasonRule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_rules`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM season_rules`); err != nil {
		return err
	}

	for _, rule := range dayRules {
		categories, err := json.Marshal(rule.Categories)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO day_rules (weekday, categories) VALUES (?, ?)`,
			int(rule.Weekday), string(categories)); err != nil {
			return err
		}
	}
	for _, rule := range seasonRules {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO season_rules (season, start_md, end_md) VALUES (?, ?, ?)`,
			rule.Season, rule.Start.String(), rule.End.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// --- SpecialDateRepository ---

func (s *Store) GetByMonthDay(ctx context.Context, key domain.MonthDay) (string, bool, error) {
	var mealID string
	err := s.db.QueryRowContext(ctx,
		`SELECT meal_id FROM special_dates WHERE month_day = ?`, key.String()).Scan(&mealID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query special date %s: %w", key, err)
	}

	return mealID, true, nil
}

// SetSpecialDate registers or replaces a special date override.
func (s *Store) SetSpecialDate(ctx context.Context, key domain.MonthDay, mealID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO special_dates (month_day, meal_id) VALUES (?, ?)
		ON CONFLICT(month_day) DO UPDATE SET meal_id = excluded.meal_id`,
		key.String(), mealID)
	return err
}

// --- MenuRepository ---

func (s *Store) GetByDate(ctx context.Context, date time.Time) (*domain.MenuAssignment, bool, error) {
	var key, mealID, removedMealID string
	err := s.db.QueryRowContext(ctx,
		`SELECT date, meal_id, removed_meal_id FROM menu WHERE date = ?`,
		domain.DateKey(date)).Scan(&key, &mealID, &removedMealID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query assignment %s: %w", domain.DateKey(date), err)
	}

	parsed, err := domain.ParseDateKey(key)
	if err != nil {
		return nil, false, fmt.Errorf("decode assignment date %q: %w", key, err)
	}

	return &domain.MenuAssignment{
		Date:          parsed,
		MealID:        mealID,
		RemovedMealID: removedMealID,
	}, true, nil
}

func (s *Store) Upsert(ctx context.Context, assignment *domain.MenuAssignment) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO menu (date, meal_id, removed_meal_id) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			meal_id = excluded.meal_id,
			removed_meal_id = excluded.removed_meal_id`,
		domain.DateKey(assignment.Date), assignment.MealID, assignment.RemovedMealID)
	if err != nil {
		return fmt.Errorf("upsert assignment %s: %w", domain.DateKey(assignment.Date), err)
	}
	return nil
}

func (s *Store) ListRange(ctx context.Context, start, end time.Time) ([]domain.MenuAssignment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, meal_id, removed_meal_id FROM menu WHERE date >= ? AND date <= ? ORDER BY date`,
		domain.DateKey(start), domain.DateKey(end))
	if err != nil {
		return nil, fmt.Errorf("query menu range: %w", err)
	}
	defer rows.Close()

	var assignments []domain.MenuAssignment
	for rows.Next() {
		var key, mealID, removedMealID string
		if err := rows.Scan(&key, &mealID, &removedMealID); err != nil {
			return nil, err
		}
		parsed, err := domain.ParseDateKey(key)
		if err != nil {
			return nil, fmt.Errorf("decode assignment date %q: %w", key, err)
		}
		assignments = append(assignments, domain.MenuAssignment{
			Date:          parsed,
			MealID:        mealID,
			RemovedMealID: removedMealID,
		})
	}

	return assignments, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (*domain.Meal, error) {
	var (
		meal          domain.Meal
		categories    string
		seasons       string
		lastServed    sql.NullString
		nextScheduled sql.NullString
	)

	if err := row.Scan(&meal.ID, &meal.Name, &categories, &seasons, &meal.Recipe, &meal.Rating,
		&lastServed, &nextScheduled); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(categories), &meal.Categories); err != nil {
		return nil, fmt.Errorf("decode categories for %s: %w", meal.ID, err)
	}
	if err := json.Unmarshal([]byte(seasons), &meal.Seasons); err != nil {
		return nil, fmt.Errorf("decode seasons for %s: %w", meal.ID, err)
	}

	var err error
	if meal.LastServed, err = parseNullableDate(lastServed); err != nil {
		return nil, fmt.Errorf("decode last_served for %s: %w", meal.ID, err)
	}
	if meal.NextScheduled, err = parseNullableDate(nextScheduled); err != nil {
		return nil, fmt.Errorf("decode next_scheduled for %s: %w", meal.ID, err)
	}

	return &meal, nil
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.DateKey(*t)
}

func parseNullableDate(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := domain.ParseDateKey(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
