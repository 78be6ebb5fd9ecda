package service

import (
	"context"
	"log"
	"sort"

	"github.com/localspot/discovery-api/internal/entity"
	"github.com/localspot/discovery-api/internal/repository"
)

// interestSeed is the fallback interest set, keyed by stable slugs. It doubles
// as the startup seed and as the static response when the table is empty or
// unreachable.
var interestSeed = []entity.Interest{
	{ID: "arts-culture", Name: "Arts & Culture"},
	{ID: "beauty-spa", Name: "Beauty & Spa"},
	{ID: "coffee-cafes", Name: "Coffee & Cafés"},
	{ID: "fitness-wellness", Name: "Fitness & Wellness"},
	{ID: "nightlife", Name: "Nightlife"},
	{ID: "outdoors", Name: "Outdoors"},
	{ID: "restaurants", Name: "Restaurants"},
	{ID: "shopping", Name: "Shopping"},
}

// LookupService serves the reference lists backing the filter UI.
type LookupService struct {
	repo repository.LookupRepository
}

// NewLookupService creates a new instance of LookupService.
func NewLookupService(repo repository.LookupRepository) *LookupService {
	return &LookupService{repo: repo}
}

// InterestSeed returns a copy of the fixed interest seed set, sorted by name.
func InterestSeed() []entity.Interest {
	entries := append([]entity.Interest(nil), interestSeed...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// EnsureInterestsSeeded idempotently writes the seed set. Meant to run once at
// startup rather than inside the read path.
func (s *LookupService) EnsureInterestsSeeded(ctx context.Context) error {
	return s.repo.SeedInterests(ctx, InterestSeed())
}

// ListInterests reads the interests table, degrading to the static seed set
// when the table is empty or the read fails. Availability wins over strict
// persistence confirmation, so this never returns an error.
func (s *LookupService) ListInterests(ctx context.Context) []entity.Interest {
	interests, err := s.repo.ListInterests(ctx)
	if err != nil {
		log.Printf("interests read failed, serving seed set: %v", err)
		return InterestSeed()
	}
	if len(interests) == 0 {
		return InterestSeed()
	}
	return interests
}

// ListDealBreakers returns the deal-breaker reference list.
func (s *LookupService) ListDealBreakers(ctx context.Context) ([]entity.DealBreaker, error) {
	return s.repo.ListDealBreakers(ctx)
}
