package service

import (
	"context"
	"testing"

	"github.com/mmcdole/barback/internal/domain"
	"github.com/stretchr/testify/assert"
)

func names[T domain.Item](items []T) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.GetName()
	}
	return out
}

func TestFilterItems(t *testing.T) {
	items := []domain.Cocktail{
		{ID: "1", Name: "Mojito"},
		{ID: "2", Name: "Margarita"},
		{ID: "3", Name: "Blue Margarita"},
		{ID: "4", Name: "Manhattan"},
	}

	t.Run("empty query keeps order", func(t *testing.T) {
		assert.Equal(t, items, FilterItems(items, "  "))
	})

	t.Run("case insensitive, closest first", func(t *testing.T) {
		got := FilterItems(items, "MARGARITA")
		assert.Equal(t, []string{"Margarita", "Blue Margarita"}, names(got))
	})

	t.Run("subsequence match", func(t *testing.T) {
		got := FilterItems(items, "mhtn")
		assert.Equal(t, []string{"Manhattan"}, names(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterItems(items, "zzz"))
	})
}

func TestCatalog_FilterUsesCurrentItems(t *testing.T) {
	sc := &script{results: []result{{items: []domain.Cocktail{
		{ID: "1", Name: "Mojito"},
		{ID: "2", Name: "Mai Tai"},
	}}}}
	c := NewCatalog("cocktails", sc.fetch, discardLogger())

	assert.Empty(t, c.Filter("mai"))

	c.Load(context.Background())

	assert.Equal(t, []string{"Mai Tai"}, names(c.Filter("mai")))
}
