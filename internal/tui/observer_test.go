package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind_ForwardsLatestTransition(t *testing.T) {
	kedgeree := domain.Meal{ID: "52887", Name: "Kedgeree", ImageURL: "k.jpg"}
	catalog := service.NewCatalog("meals", func(ctx context.Context) ([]domain.Meal, error) {
		return []domain.Meal{kedgeree}, nil
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	updates := NewUpdates()
	unsubscribe := Bind(catalog, adapter.ScreenMeals, updates)
	defer unsubscribe()

	catalog.Load(context.Background())

	// Loading was replaced by Loaded while nobody was reading
	require.Equal(t, 1, updates.Len())
	loaded := updates.Next()
	assert.Equal(t, adapter.ScreenMeals, loaded.Screen)
	assert.Equal(t, domain.StatusLoaded, loaded.Status)
	assert.Equal(t, []domain.Item{kedgeree}, loaded.Items)
}

func TestScreenObserver_ForwardsErrorMessage(t *testing.T) {
	updates := NewUpdates()
	obs := NewScreenObserver[domain.Cocktail](adapter.ScreenCocktails, updates)

	obs.OnState(domain.State[domain.Cocktail]{
		Status:  domain.StatusError,
		Err:     domain.NewFetchError(domain.KindNoData, nil),
		Message: "No data received",
	})

	msg := updates.Next()
	assert.Equal(t, domain.StatusError, msg.Status)
	assert.Equal(t, "No data received", msg.Message)
}

func TestUpdates_FinalStateSurvivesBurst(t *testing.T) {
	updates := NewUpdates()

	// Far more transitions than any fixed buffer, with no reader
	for i := 0; i < 500; i++ {
		updates.Push(StateChangedMsg{Screen: adapter.ScreenCocktails, Status: domain.StatusLoading})
		updates.Push(StateChangedMsg{Screen: adapter.ScreenMeals, Status: domain.StatusLoading})
	}
	updates.Push(StateChangedMsg{Screen: adapter.ScreenMeals, Status: domain.StatusError, Message: "Invalid URL"})
	updates.Push(StateChangedMsg{Screen: adapter.ScreenCocktails, Status: domain.StatusLoaded})

	require.Equal(t, 2, updates.Len())

	// Order follows each screen's first pending message
	first := updates.Next()
	assert.Equal(t, adapter.ScreenCocktails, first.Screen)
	assert.Equal(t, domain.StatusLoaded, first.Status)

	second := updates.Next()
	assert.Equal(t, adapter.ScreenMeals, second.Screen)
	assert.Equal(t, domain.StatusError, second.Status)
	assert.Equal(t, "Invalid URL", second.Message)

	assert.Zero(t, updates.Len())
}

func TestUpdates_NextWaitsForPush(t *testing.T) {
	updates := NewUpdates()

	got := make(chan StateChangedMsg, 1)
	go func() { got <- updates.Next() }()

	updates.Push(StateChangedMsg{Screen: adapter.ScreenMeals, Status: domain.StatusLoaded})

	select {
	case msg := <-got:
		assert.Equal(t, adapter.ScreenMeals, msg.Screen)
	case <-time.After(5 * time.Second):
		t.Fatal("Next did not return after Push")
	}
}

func TestWaitForStateCmd_ReturnsQueuedMessage(t *testing.T) {
	updates := NewUpdates()
	updates.Push(StateChangedMsg{Screen: adapter.ScreenCocktails, Status: domain.StatusLoaded})

	msg := WaitForStateCmd(updates)()

	assert.Equal(t, StateChangedMsg{Screen: adapter.ScreenCocktails, Status: domain.StatusLoaded}, msg)
}
