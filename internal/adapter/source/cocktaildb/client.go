package cocktaildb

import (
	"context"
	"log/slog"

	"github.com/mmcdole/barback/internal/adapter/fetch"
	"github.com/mmcdole/barback/internal/domain"
)

// DefaultEndpoint lists every drink in the "Cocktail" category
const DefaultEndpoint = "https://www.thecocktaildb.com/api/json/v1/1/filter.php?c=Cocktail"

// Repository implements domain.CocktailRepository against TheCocktailDB
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

// FetchCocktails returns the drinks of the category in server order
func (r *Repository) FetchCocktails(ctx context.Context) ([]domain.Cocktail, error) {
	u, err := fetch.ParseURL(r.endpoint)
	if err != nil {
		r.logger.Error("invalid cocktail endpoint", "endpoint", r.endpoint, "error", err)
		return nil, err
	}

	resp, err := fetch.Get(ctx, r.fetcher, u, DecodeFilterResponse)
	if err != nil {
		return nil, err
	}

	cocktails := MapCocktails(resp)
	r.logger.Info("fetched cocktails", "count", len(cocktails))
	return cocktails, nil
}
