package mealdb

import (
	"context"
	"log/slog"

	"github.com/mmcdole/barback/internal/adapter/fetch"
	"github.com/mmcdole/barback/internal/domain"
)

// DefaultEndpoint lists every dish in the "Seafood" category
const DefaultEndpoint = "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood"

// Repository implements domain.MealRepository against TheMealDB
type Repository struct {
	fetcher  *fetch.Client
	endpoint string
	logger   *slog.Logger
}

// NewRepository creates a repository bound to endpoint (DefaultEndpoint if empty)
func NewRepository(fetcher *fetch.Client, endpoint string, logger *slog.Logger) *Repository {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		fetcher:  fetcher,
		endpoint: endpoint,
		logger:   logger,
	}
}

// Endpoint returns the URL the repository fetches from
func (r *Repository) Endpoint() string {
	return r.endpoint
}

// FetchMeals returns the meals of the category in server order
func (r *Repository) FetchMeals(ctx context.Context) ([]domain.Meal, error) {
	u, err := fetch.ParseURL(r.endpoint)
	if err != nil {
		r.logger.Error("invalid meal endpoint", "endpoint", r.endpoint, "error", err)
		return nil, err
	}

	resp, err := fetch.Get(ctx, r.fetcher, u, DecodeFilterResponse)
	if err != nil {
		return nil, err
	}

	meals := MapMeals(resp)
	r.logger.Info("fetched meals", "count", len(meals))
	return meals, nil
}
