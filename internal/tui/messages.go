package tui

import (
	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/domain"
)

// Message types for the TUI

// StateChangedMsg carries one catalog transition to the screen that shows it
type StateChangedMsg struct {
	Screen  adapter.ScreenName
	Status  domain.Status
	Items   []domain.Item
	Message string
}

// StatusMsg sets the footer status line
type StatusMsg struct {
	Text  string
	IsErr bool
}

// SwitchScreenMsg asks the model to show a screen, loading it on first display
type SwitchScreenMsg struct {
	Screen adapter.ScreenName
}
