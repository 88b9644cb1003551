package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/tui/components"
	"github.com/mmcdole/barback/internal/tui/styles"
)

// Vertical layout: tab bar plus a spacer line on top, one footer line below
const (
	HeaderHeight = 2
	FooterHeight = 1
	ChromeHeight = HeaderHeight + FooterHeight
)

// Loader starts a fetch for one screen. *service.Catalog satisfies it.
type Loader interface {
	Load(ctx context.Context)
	Refresh(ctx context.Context)
}

// Opener shows an image URL outside the terminal. *adapter.Opener satisfies it.
type Opener interface {
	Open(url string) error
}

// Screen is one tab of the application
type Screen struct {
	ID    adapter.ScreenName
	Title string // tab label
	Noun  string // used in "Loading <noun>..."

	Loader Loader
	List   *components.ListView

	Status  domain.Status
	Message string

	// started is set once the first load has been requested
	started bool
}

// NewScreen creates a screen in the loading state
func NewScreen(id adapter.ScreenName, title, noun string, loader Loader, showThumbnails bool) *Screen {
	return &Screen{
		ID:     id,
		Title:  title,
		Noun:   noun,
		Loader: loader,
		List:   components.NewListView(showThumbnails),
		Status: domain.StatusLoading,
	}
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Screens []*Screen
	Active  int
	Initial adapter.ScreenName

	// UI Components
	Spinner spinner.Model
	Help    help.Model
	Keys    KeyMap

	// Dimensions
	Width  int
	Height int
	Ready  bool

	ShowHelp bool

	// Footer status, cleared on the next screen transition
	StatusMsg   string
	StatusIsErr bool

	// Opener is optional; the open key does nothing without it
	Opener Opener

	updates *Updates
}

// NewModel creates a new application model. updates is the queue the
// screens' observers publish to; initial is the screen shown first.
func NewModel(screens []*Screen, updates *Updates, initial adapter.ScreenName) Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		Screens: screens,
		Initial: initial,
		Spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.SpinnerStyle),
		),
		Help:    h,
		Keys:    Keys,
		updates: updates,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	initial := m.Initial
	return tea.Batch(
		m.Spinner.Tick,
		WaitForStateCmd(m.updates),
		func() tea.Msg { return SwitchScreenMsg{Screen: initial} },
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StateChangedMsg:
		if s := m.screen(msg.Screen); s != nil {
			s.Status = msg.Status
			s.Message = msg.Message
			if msg.Status == domain.StatusLoaded {
				s.List.SetItems(msg.Items)
			}
		}
		return m, WaitForStateCmd(m.updates)

	case StatusMsg:
		m.StatusMsg = msg.Text
		m.StatusIsErr = msg.IsErr
		return m, nil

	case SwitchScreenMsg:
		for i, s := range m.Screens {
			if s.ID == msg.Screen {
				return m, m.activate(i)
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes the help overlay
	if m.ShowHelp {
		m.ShowHelp = false
		return m, nil
	}

	s := m.ActiveScreen()
	if s == nil {
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// The filter input swallows everything while typing
	if s.List.IsFilterTyping() {
		return m, s.List.Update(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, m.Keys.NextScreen):
		return m, m.activate((m.Active + 1) % len(m.Screens))

	case key.Matches(msg, m.Keys.PrevScreen):
		return m, m.activate((m.Active - 1 + len(m.Screens)) % len(m.Screens))

	case key.Matches(msg, m.Keys.Refresh):
		s.started = true
		return m, RefreshCmd(s.Loader)

	case key.Matches(msg, m.Keys.Retry):
		if s.Status == domain.StatusError {
			return m, RefreshCmd(s.Loader)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Open):
		if m.Opener == nil || s.Status != domain.StatusLoaded {
			return m, nil
		}
		if item := s.List.SelectedItem(); item != nil {
			return m, OpenImageCmd(m.Opener, item.GetImageURL())
		}
		return m, nil

	case key.Matches(msg, m.Keys.Filter):
		if s.Status == domain.StatusLoaded {
			cmd := s.List.ToggleFilter()
			m.updateLayout()
			return m, cmd
		}
		return m, nil
	}

	if s.Status == domain.StatusLoaded {
		return m, s.List.Update(msg)
	}
	return m, nil
}

// ActiveScreen returns the screen currently shown, or nil
func (m Model) ActiveScreen() *Screen {
	if m.Active < 0 || m.Active >= len(m.Screens) {
		return nil
	}
	return m.Screens[m.Active]
}

// activate shows screen i and starts its first load on first display
func (m *Model) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Screens) {
		return nil
	}
	m.Active = i
	m.StatusMsg = ""
	s := m.Screens[i]
	if s.started {
		return nil
	}
	s.started = true
	return LoadCmd(s.Loader)
}

func (m Model) screen(id adapter.ScreenName) *Screen {
	for _, s := range m.Screens {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}
	contentHeight := m.Height - ChromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.Help.Width = m.Width
	for _, s := range m.Screens {
		s.List.SetSize(m.Width, contentHeight)
	}
}
