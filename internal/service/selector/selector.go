package selector

import (
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/dinnerplans/menu-service/internal/domain"
)

// RNG is the source of randomness for weighted draws. It is injected so draw
// probability tests can run against a seeded generator.
type RNG interface {
	Intn(n int) int
}

// GlobalRNG draws from math/rand's locked global source. Used in production
// wiring where no reproducibility is needed.
type GlobalRNG struct{}

func (GlobalRNG) Intn(n int) int {
	return rand.Intn(n)
}

// Selector assigns recency-based weights to meals and performs the weighted
// random draw.
type Selector struct{}

func New() *Selector {
	return &Selector{}
}

// Weight scores a meal for selection on today. Higher ratings and longer
// gaps since the last serving both raise the score. A meal never served
// counts as served yesterday, and the floor of 1 keeps every candidate
// drawable regardless of rating.
func (s *Selector) Weight(meal *domain.Meal, today time.Time) int {
	day := domain.Date(today)

	lastServed := day.AddDate(0, 0, -1)
	if meal.LastServed != nil {
		lastServed = domain.Date(*meal.LastServed)
	}

	daysSince := int(day.Sub(lastServed).Hours() / 24)
	if daysSince < 0 {
		daysSince = 0
	}

	weight := meal.Rating * daysSince
	if weight < 1 {
		weight = 1
	}

	return weight
}

// Draw selects one candidate with probability weight/totalWeight. Candidates
// are scanned in id order so the prefix sums are deterministic for a given
// pool and seed. Returns ErrEmptyPool when there is nothing to draw from.
func (s *Selector) Draw(candidates []domain.Meal, today time.Time, rng RNG) (*domain.Meal, error) {
	if len(candidates) == 0 {
		return nil, domain.ErrEmptyPool
	}

	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, func(a, b domain.Meal) int {
		return strings.Compare(a.ID, b.ID)
	})

	totalWeight := 0
	weights := make([]int, len(sorted))
	for i := range sorted {
		w := s.Weight(&sorted[i], today)
		weights[i] = w
		totalWeight += w
	}

	remaining := rng.Intn(totalWeight) + 1
	for i, w := range weights {
		remaining -= w
		if remaining <= 0 {
			chosen := sorted[i]
			return &chosen, nil
		}
	}

	// Unreachable: remaining starts within [1, totalWeight].
	chosen := sorted[len(sorted)-1]
	return &chosen, nil
}
