package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/tui/styles"
)

const (
	errorTitle  = "Oops! Something went wrong"
	retryButton = "Try Again"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	contentHeight := m.Height - ChromeHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	if s := m.ActiveScreen(); s != nil {
		body = m.renderScreen(s, m.Width, contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(),
		"",
		lipgloss.NewStyle().Width(m.Width).Height(contentHeight).Render(body),
		m.renderFooter(),
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.Screens)*2)
	for i, s := range m.Screens {
		if i > 0 {
			tabs = append(tabs, styles.TabGapStyle.Render(" "))
		}
		if i == m.Active {
			tabs = append(tabs, styles.ActiveTabStyle.Render(s.Title))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(s.Title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderScreen(s *Screen, width, height int) string {
	switch s.Status {
	case domain.StatusLoading:
		return m.renderLoading(s, width, height)
	case domain.StatusError:
		return renderError(s, width, height)
	default:
		return s.List.View()
	}
}

func (m Model) renderLoading(s *Screen, width, height int) string {
	content := m.Spinner.View() + " " + styles.DimStyle.Render(fmt.Sprintf("Loading %s...", s.Noun))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderError(s *Screen, width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		styles.WarningIconStyle.Render("⚠"),
		"",
		styles.TitleStyle.Render(errorTitle),
		styles.ErrorStyle.Render(s.Message),
		"",
		styles.ButtonStyle.Render(retryButton),
		styles.DimStyle.Render("press enter to retry"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderFooter() string {
	// Left side: item count or status
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	} else if s := m.ActiveScreen(); s != nil {
		switch s.Status {
		case domain.StatusLoaded:
			left = styles.AccentStyle.Render(fmt.Sprintf("%d", len(s.List.Items()))) +
				styles.SubtitleStyle.Render(" "+s.Noun)
			if q := s.List.FilterQuery(); q != "" {
				left += styles.DimStyle.Render(fmt.Sprintf(" · filter %q", q))
			}
		case domain.StatusError:
			left = styles.ErrorStyle.Render(s.Message)
		default:
			left = styles.DimStyle.Render("Loading...")
		}
	}

	right := m.Help.ShortHelpView(m.Keys.ShortHelp())

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	content := styles.TitleStyle.Render("Keys") + "\n\n" +
		m.Help.FullHelpView(m.Keys.FullHelp()) + "\n\n" +
		styles.DimStyle.Render("Press any key to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(content))
}
