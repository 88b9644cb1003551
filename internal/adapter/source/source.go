package source

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/adapter/fetch"
	"github.com/mmcdole/barback/internal/adapter/source/cocktaildb"
	"github.com/mmcdole/barback/internal/adapter/source/mealdb"
	"github.com/mmcdole/barback/internal/domain"
)

// Sources bundles one repository per recipe catalog. Both share a single
// fetch client and therefore a single HTTP connection pool.
type Sources struct {
	Cocktails domain.CocktailRepository
	Meals     domain.MealRepository
}

// SourceConfig contains the configuration needed to create Sources
type SourceConfig struct {
	CocktailsURL string
	MealsURL     string
	Timeout      time.Duration
}

// NewSources builds the fetch client and injects it into each repository.
// Endpoints are validated on every fetch, not here, so a bad URL surfaces as
// an invalid URL error on the screen that uses it.
func NewSources(cfg *SourceConfig, logger *slog.Logger) (*Sources, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("negative request timeout: %s", cfg.Timeout)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = fetch.DefaultTimeout
	}

	fetcher := fetch.NewClient(&http.Client{Timeout: timeout}, logger)

	return &Sources{
		Cocktails: cocktaildb.NewRepository(fetcher, cfg.CocktailsURL, logger.With("source", "cocktaildb")),
		Meals:     mealdb.NewRepository(fetcher, cfg.MealsURL, logger.With("source", "mealdb")),
	}, nil
}

// NewSourcesFromConfig creates Sources from the application config
func NewSourcesFromConfig(cfg *adapter.Config, logger *slog.Logger) (*Sources, error) {
	return NewSources(&SourceConfig{
		CocktailsURL: cfg.API.CocktailsURL,
		MealsURL:     cfg.API.MealsURL,
		Timeout:      cfg.API.Timeout,
	}, logger)
}
