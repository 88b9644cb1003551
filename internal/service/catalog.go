package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/barback/internal/domain"
)

// unexpectedErrorMessage is shown for failures outside the fetch taxonomy
const unexpectedErrorMessage = "An unexpected error occurred"

// FetchFunc lists the items of one catalog
type FetchFunc[T domain.Item] func(ctx context.Context) ([]T, error)

// Catalog holds the presentation state of one screen and notifies observers
// on every transition. All state mutation happens under mu; observers are
// called while it is held, in transition order, and must not call back
// into the catalog.
//
// A Load started while another is in flight cancels the older attempt and
// discards its outcome, so the final state always belongs to the most
// recently started attempt.
type Catalog[T domain.Item] struct {
	name   string
	fetch  FetchFunc[T]
	logger *slog.Logger

	mu         sync.Mutex
	state      domain.State[T]
	generation uint64
	cancel     context.CancelFunc
	observers  map[int]domain.StateObserver[T]
	nextID     int
}

// NewCatalog creates a catalog in StatusLoading with no items
func NewCatalog[T domain.Item](name string, fetch FetchFunc[T], logger *slog.Logger) *Catalog[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog[T]{
		name:      name,
		fetch:     fetch,
		logger:    logger.With("catalog", name),
		state:     domain.State[T]{Status: domain.StatusLoading},
		observers: make(map[int]domain.StateObserver[T]),
	}
}

// NewCocktailCatalog creates the catalog behind the cocktail screen
func NewCocktailCatalog(repo domain.CocktailRepository, logger *slog.Logger) *Catalog[domain.Cocktail] {
	return NewCatalog("cocktails", repo.FetchCocktails, logger)
}

// NewMealCatalog creates the catalog behind the seafood screen
func NewMealCatalog(repo domain.MealRepository, logger *slog.Logger) *Catalog[domain.Meal] {
	return NewCatalog("meals", repo.FetchMeals, logger)
}

// Name returns the catalog name used in logs
func (c *Catalog[T]) Name() string {
	return c.name
}

// Load enters StatusLoading, fetches, and settles in StatusLoaded or
// StatusError. It returns once the attempt has settled or been superseded.
func (c *Catalog[T]) Load(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.cancel != nil {
		c.logger.Debug("superseding in-flight load", "generation", c.generation)
		c.cancel()
	}
	c.generation++
	gen := c.generation
	c.cancel = cancel
	c.state.Status = domain.StatusLoading
	c.state.Err = nil
	c.state.Message = ""
	c.publishLocked()
	c.mu.Unlock()

	c.logger.Info("loading", "generation", gen)
	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debug("discarding superseded load", "generation", gen)
		return
	}
	c.cancel = nil

	if err != nil {
		fe, ok := domain.AsFetchError(err)
		if ok {
			c.state.Message = fe.Error()
		} else {
			fe = domain.NetworkError(err)
			c.state.Message = unexpectedErrorMessage
		}
		c.state.Status = domain.StatusError
		c.state.Err = fe
		c.logger.Error("load failed", "kind", fe.Kind.String(), "error", err)
	} else {
		c.state.Status = domain.StatusLoaded
		c.state.Items = items
		c.logger.Info("loaded", "count", len(items))
	}
	c.publishLocked()
}

// Refresh re-fetches from scratch; it is the same as Load
func (c *Catalog[T]) Refresh(ctx context.Context) {
	c.Load(ctx)
}

// State returns a snapshot of the current state
func (c *Catalog[T]) State() domain.State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe registers an observer for future transitions and returns a
// function that removes it.
func (c *Catalog[T]) Subscribe(observer domain.StateObserver[T]) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	c.observers[id] = observer

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.observers, id)
	}
}

// Filter ranks the current items by fuzzy match of query against their names.
// An empty query returns every item in catalog order.
func (c *Catalog[T]) Filter(query string) []T {
	items := c.State().Items
	return FilterItems(items, query)
}

// FilterItems ranks items by fuzzy match of query against their names,
// best match first. Ties keep catalog order.
func FilterItems[T domain.Item](items []T, query string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return append(make([]T, 0, len(items)), items...)
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.GetName()
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	results := make([]T, len(ranks))
	for i, r := range ranks {
		results[i] = items[r.OriginalIndex]
	}
	return results
}

func (c *Catalog[T]) snapshotLocked() domain.State[T] {
	s := c.state
	if s.Items != nil {
		s.Items = append(make([]T, 0, len(s.Items)), s.Items...)
	}
	return s
}

func (c *Catalog[T]) publishLocked() {
	if len(c.observers) == 0 {
		return
	}
	ids := make([]int, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	s := c.snapshotLocked()
	for _, id := range ids {
		c.observers[id].OnState(s)
	}
}
