package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadTimeout bounds a whole load attempt, on top of the per-request timeout
const loadTimeout = 2 * time.Minute

// Command factories for async operations. Results arrive through the
// catalog observers, so these commands return no message of their own.

// LoadCmd performs the first load of a screen
func LoadCmd(loader Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		loader.Load(ctx)
		return nil
	}
}

// RefreshCmd re-fetches a screen (pull-to-refresh and retry)
func RefreshCmd(loader Loader) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		loader.Refresh(ctx)
		return nil
	}
}

// OpenImageCmd opens an image URL in the external viewer
func OpenImageCmd(opener Opener, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(url); err != nil {
			return StatusMsg{Text: err.Error(), IsErr: true}
		}
		return StatusMsg{Text: "Opened " + url}
	}
}

// WaitForStateCmd blocks until the next catalog transition
func WaitForStateCmd(updates *Updates) tea.Cmd {
	return func() tea.Msg {
		return updates.Next()
	}
}
