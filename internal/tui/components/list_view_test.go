package components

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cocktails(names ...string) []domain.Item {
	items := make([]domain.Item, len(names))
	for i, name := range names {
		items[i] = domain.Cocktail{ID: fmt.Sprint(i + 1), Name: name, ImageURL: "http://img/" + name + ".jpg"}
	}
	return items
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestListView_Navigation(t *testing.T) {
	l := NewListView(false)
	l.SetSize(40, 10)
	l.SetItems(cocktails("Mojito", "Margarita", "Manhattan"))

	l.Update(runes("j"))
	assert.Equal(t, 1, l.SelectedIndex())
	assert.Equal(t, "Margarita", l.SelectedItem().GetName())

	l.Update(runes("G"))
	assert.Equal(t, 2, l.SelectedIndex())

	// Cursor stays on the last row
	l.Update(runes("j"))
	assert.Equal(t, 2, l.SelectedIndex())

	l.Update(runes("g"))
	assert.Equal(t, "Mojito", l.SelectedItem().GetName())
}

func TestListView_Filter(t *testing.T) {
	l := NewListView(false)
	l.SetSize(40, 10)
	l.SetItems(cocktails("Mojito", "Margarita", "Manhattan"))

	l.ToggleFilter()
	require.True(t, l.IsFilterTyping())

	l.Update(runes("mar"))
	assert.Equal(t, "mar", l.FilterQuery())
	assert.Equal(t, 1, l.ItemCount())
	assert.Equal(t, "Margarita", l.SelectedItem().GetName())
	assert.Contains(t, l.View(), "[1/3]")

	// Enter keeps the filter but returns to navigation
	l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, l.IsFiltering())
	assert.False(t, l.IsFilterTyping())

	l.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, l.IsFiltering())
	assert.Equal(t, 3, l.ItemCount())
}

func TestListView_FilterNoMatches(t *testing.T) {
	l := NewListView(false)
	l.SetSize(40, 10)
	l.SetItems(cocktails("Mojito"))

	l.ToggleFilter()
	l.Update(runes("zzz"))

	assert.Zero(t, l.ItemCount())
	assert.Nil(t, l.SelectedItem())
	assert.Contains(t, l.View(), "No matches")
}

func TestListView_Empty(t *testing.T) {
	l := NewListView(true)
	l.SetSize(40, 10)
	l.SetItems([]domain.Item{})

	assert.Nil(t, l.SelectedItem())
	assert.Contains(t, l.View(), "Nothing to show")
}

func TestListView_ScrollIndicatorsAndThumbnails(t *testing.T) {
	names := make([]string, 10)
	for i := range names {
		names[i] = fmt.Sprintf("Drink %d", i)
	}

	l := NewListView(true)
	l.SetSize(60, 8) // (8 - 2 indicator lines) / 2 lines per row = 3 rows
	l.SetItems(cocktails(names...))

	view := l.View()
	assert.Contains(t, view, "Drink 2")
	assert.NotContains(t, view, "Drink 3")
	assert.Contains(t, view, "http://img/Drink 0.jpg")
	assert.Contains(t, view, "↓ more")
	assert.NotContains(t, view, "↑ more")

	l.Update(runes("G"))
	view = l.View()
	assert.Contains(t, view, "Drink 9")
	assert.Contains(t, view, "↑ more")
}

func TestListView_SetItemsResetsState(t *testing.T) {
	l := NewListView(false)
	l.SetSize(40, 10)
	l.SetItems(cocktails("Mojito", "Margarita"))
	l.Update(runes("j"))
	l.ToggleFilter()

	l.SetItems(cocktails("Negroni"))

	assert.Zero(t, l.SelectedIndex())
	assert.False(t, l.IsFiltering())
	assert.Equal(t, "Negroni", l.SelectedItem().GetName())
}

func TestListView_HighlightUsesOriginalNameOffsets(t *testing.T) {
	// "İ" lowercases to a string of a different byte length
	l := NewListView(false)
	l.SetSize(60, 10)
	l.SetItems(cocktails("İİİİ Fizz", "Mojito"))

	l.ToggleFilter()
	l.Update(runes("fizz"))
	require.Equal(t, 1, l.ItemCount())

	parts := l.highlightName(0, "İİİİ Fizz")

	require.Len(t, parts, 2)
	assert.Equal(t, "İİİİ ", parts[0].Text)
	assert.False(t, parts[0].Bold)
	assert.Equal(t, "Fizz", parts[1].Text)
	assert.True(t, parts[1].Bold)
}

func TestListView_FilterIsCaseInsensitive(t *testing.T) {
	l := NewListView(false)
	l.SetSize(40, 10)
	l.SetItems(cocktails("Mojito", "Margarita"))

	l.ToggleFilter()
	l.Update(runes("MOJ"))

	require.Equal(t, 1, l.ItemCount())
	assert.Equal(t, "Mojito", l.SelectedItem().GetName())
}
