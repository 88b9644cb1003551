package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/barback/internal/adapter"
	"github.com/mmcdole/barback/internal/adapter/source/cocktaildb"
	"github.com/mmcdole/barback/internal/adapter/source/mealdb"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/mmcdole/barback/internal/service"
	"github.com/mmcdole/barback/internal/tui/styles"
)

// plainOptions control non-interactive output
type plainOptions struct {
	JSON   bool
	Filter string
	Width  int // terminal width, 0 when not a terminal
}

// runPlain loads one screen and prints it to w
func runPlain(ctx context.Context, w io.Writer, screen adapter.ScreenName, cat *catalogs, opts plainOptions) error {
	switch screen {
	case adapter.ScreenMeals:
		return printCatalog(ctx, w, cat.meals, mealdb.EncodeMeals, opts)
	default:
		return printCatalog(ctx, w, cat.cocktails, cocktaildb.EncodeCocktails, opts)
	}
}

func printCatalog[T domain.Item](ctx context.Context, w io.Writer, catalog *service.Catalog[T], encode func([]T) ([]byte, error), opts plainOptions) error {
	catalog.Load(ctx)

	state := catalog.State()
	if state.Status == domain.StatusError {
		return state.Err
	}

	items := catalog.Filter(opts.Filter)

	if opts.JSON {
		data, err := encode(items)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", catalog.Name(), err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	// Names get at most a third of the terminal; URLs are left whole so they stay usable
	nameWidth := 0
	if opts.Width > 0 {
		nameWidth = opts.Width / 3
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, item := range items {
		name := item.GetName()
		if nameWidth > 0 {
			name = styles.Truncate(name, nameWidth)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.GetID(), name, item.GetImageURL())
	}
	return tw.Flush()
}
