package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

// Layout constants for the list view
const (
	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2

	// FilterBarLines is the height of the filter input when active
	FilterBarLines = 1
)

// ListView is a scrollable, filterable list of catalog items. Each row shows
// the item name and category, plus the thumbnail URL on a second line when
// thumbnails are enabled.
type ListView struct {
	items []domain.Item

	// Selection
	cursor     int
	offset     int
	maxVisible int // rows, not lines

	// Dimensions
	width  int
	height int

	showThumbnails bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int         // indices into items
	matchedIdx   map[int][]int // item index -> matched byte offsets in its name
}

// NewListView creates an empty list view
func NewListView(showThumbnails bool) *ListView {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ListView{
		showThumbnails: showThumbnails,
		filterInput:    ti,
	}
}

// Update handles navigation and filter keys
func (l *ListView) Update(msg tea.Msg) tea.Cmd {
	// Handle filter input when active AND focused (typing mode)
	if l.filterActive && l.filterInput.Focused() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, ListViewKeys.Escape):
				l.clearFilter()
				return nil
			case key.Matches(msg, ListViewKeys.Accept):
				// Accept filter, blur input to allow navigation
				l.filterInput.Blur()
				return nil
			case key.Matches(msg, ListViewKeys.Erase):
				if l.filterInput.Value() == "" {
					l.clearFilter()
					return nil
				}
			}
		}

		var cmd tea.Cmd
		l.filterInput, cmd = l.filterInput.Update(msg)
		l.applyFilter()
		return cmd
	}

	// Filter is active but blurred: navigation over the filtered rows
	if l.filterActive {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, ListViewKeys.Escape):
				l.clearFilter()
				return nil
			case key.Matches(msg, ListViewKeys.Filter):
				return l.filterInput.Focus()
			}
		}
	}

	count := l.ItemCount()
	if count == 0 {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, ListViewKeys.Down):
			if l.cursor < count-1 {
				l.cursor++
				l.ensureVisible()
			}
		case key.Matches(msg, ListViewKeys.Up):
			if l.cursor > 0 {
				l.cursor--
				l.ensureVisible()
			}
		case key.Matches(msg, ListViewKeys.Home):
			l.cursor = 0
			l.offset = 0
		case key.Matches(msg, ListViewKeys.End):
			l.cursor = count - 1
			l.ensureVisible()
		case key.Matches(msg, ListViewKeys.HalfDown):
			l.cursor += l.halfPage()
			if l.cursor >= count {
				l.cursor = count - 1
			}
			l.ensureVisible()
		case key.Matches(msg, ListViewKeys.HalfUp):
			l.cursor -= l.halfPage()
			if l.cursor < 0 {
				l.cursor = 0
			}
			l.ensureVisible()
		}
	}

	return nil
}

// View renders the visible rows
func (l *ListView) View() string {
	return lipgloss.NewStyle().
		Width(l.width).
		Height(l.height).
		Render(l.renderContent())
}

// SetSize sets the area available to the list
func (l *ListView) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = width - 12
	l.recalcMaxVisible()
	l.ensureVisible()
}

// SetItems replaces the list contents and resets selection and filter
func (l *ListView) SetItems(items []domain.Item) {
	l.items = items
	l.cursor = 0
	l.offset = 0
	l.clearFilter()
}

// Items returns all items, ignoring the filter
func (l *ListView) Items() []domain.Item {
	return l.items
}

// ItemCount returns the number of visible (filtered) items
func (l *ListView) ItemCount() int {
	if l.filteredIdx != nil {
		return len(l.filteredIdx)
	}
	return len(l.items)
}

// SelectedItem returns the item under the cursor, or nil
func (l *ListView) SelectedItem() domain.Item {
	count := l.ItemCount()
	if count == 0 || l.cursor >= count {
		return nil
	}
	return l.items[l.mapIndex(l.cursor)]
}

// SelectedIndex returns the cursor position within the visible rows
func (l *ListView) SelectedIndex() int {
	return l.cursor
}

// ToggleFilter activates the filter input
func (l *ListView) ToggleFilter() tea.Cmd {
	l.filterActive = true
	l.recalcMaxVisible()
	return l.filterInput.Focus()
}

// IsFiltering returns true if filter mode is active
func (l *ListView) IsFiltering() bool {
	return l.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (l *ListView) IsFilterTyping() bool {
	return l.filterActive && l.filterInput.Focused()
}

// FilterQuery returns the current filter text
func (l *ListView) FilterQuery() string {
	return l.filterQuery
}

// Internal methods

func (l *ListView) rowHeight() int {
	if l.showThumbnails {
		return 2
	}
	return 1
}

func (l *ListView) halfPage() int {
	if l.maxVisible < 2 {
		return 1
	}
	return l.maxVisible / 2
}

func (l *ListView) recalcMaxVisible() {
	lines := l.height - ScrollIndicatorLines
	if l.filterActive {
		lines -= FilterBarLines
	}
	l.maxVisible = lines / l.rowHeight()
	if l.maxVisible < 1 {
		l.maxVisible = 1
	}
}

func (l *ListView) ensureVisible() {
	// Don't adjust offset if size hasn't been set yet
	if l.maxVisible <= 0 {
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.maxVisible {
		l.offset = l.cursor - l.maxVisible + 1
	}
}

func (l *ListView) clearFilter() {
	l.filterActive = false
	l.filterQuery = ""
	l.filteredIdx = nil
	l.matchedIdx = nil
	l.filterInput.SetValue("")
	l.filterInput.Blur()
	l.recalcMaxVisible()
}

func (l *ListView) applyFilter() {
	query := l.filterInput.Value()
	l.filterQuery = query

	if query == "" {
		l.filteredIdx = nil
		l.matchedIdx = nil
		return
	}

	// fuzzy.Find folds case itself; matching the original names keeps the
	// matched byte offsets valid for highlighting.
	names := make([]string, len(l.items))
	for i, item := range l.items {
		names[i] = item.GetName()
	}

	matches := fuzzy.Find(query, names)

	l.filteredIdx = make([]int, len(matches))
	l.matchedIdx = make(map[int][]int, len(matches))
	for i, match := range matches {
		l.filteredIdx[i] = match.Index
		l.matchedIdx[match.Index] = match.MatchedIndexes
	}

	// Reset cursor to first match
	l.cursor = 0
	l.offset = 0
}

func (l *ListView) mapIndex(i int) int {
	if l.filteredIdx != nil && i < len(l.filteredIdx) {
		return l.filteredIdx[i]
	}
	return i
}

// Rendering

func (l *ListView) renderContent() string {
	itemWidth := l.width
	if itemWidth < 10 {
		itemWidth = 10
	}

	count := l.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render("Nothing to show")
		if l.filterActive && l.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := " \n" + emptyMsg
		if l.filterActive {
			content += "\n" + l.renderFilterBar()
		}
		return content
	}

	var lines []string

	end := l.offset + l.maxVisible
	if end > count {
		end = count
	}

	for i := l.offset; i < end; i++ {
		idx := l.mapIndex(i)
		lines = append(lines, l.renderItem(idx, i == l.cursor, itemWidth)...)
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if l.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := header + "\n" + strings.Join(lines, "\n") + "\n" + footer

	if l.filterActive {
		content += "\n" + l.renderFilterBar()
	}

	return content
}

func (l *ListView) renderItem(idx int, selected bool, width int) []string {
	item := l.items[idx]

	kind := item.GetKind().String()
	kindFg := styles.DimGray

	// Available space: width - bullet(2) - kind - space(1) - margins(2)
	available := width - 5 - len(kind)
	if available < 5 {
		available = 5
	}
	name := styles.Truncate(item.GetName(), available)

	segs := []styles.Segment{{Text: "• ", Color: styles.Citrus}}
	segs = append(segs, l.highlightName(idx, name)...)
	segs = append(segs, styles.Segment{Text: " " + kind, Color: kindFg})

	lines := []string{styles.RenderRow(segs, selected, width)}

	if l.showThumbnails {
		thumb := styles.Truncate(item.GetImageURL(), width-4)
		if thumb == "" {
			thumb = "(no image)"
		}
		lines = append(lines, styles.RenderRow([]styles.Segment{
			{Text: "  " + thumb, Color: styles.DimGray},
		}, selected, width))
	}

	return lines
}

// highlightName splits name into parts, emphasising the characters that
// matched the filter query.
func (l *ListView) highlightName(idx int, name string) []styles.Segment {
	matched := l.matchedIdx[idx]
	if len(matched) == 0 {
		return []styles.Segment{{Text: name}}
	}

	set := make(map[int]bool, len(matched))
	for _, m := range matched {
		set[m] = true
	}

	var parts []styles.Segment
	var run strings.Builder
	runMatched := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatched {
			parts = append(parts, styles.Segment{Text: run.String(), Color: styles.Citrus, Bold: true})
		} else {
			parts = append(parts, styles.Segment{Text: run.String()})
		}
		run.Reset()
	}

	for i, r := range name {
		if set[i] != runMatched {
			flush()
			runMatched = set[i]
		}
		run.WriteRune(r)
	}
	flush()

	return parts
}

func (l *ListView) renderFilterBar() string {
	input := l.filterInput.View()

	countStr := ""
	if l.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", l.ItemCount(), len(l.items)))
	}

	return input + countStr
}
