package domain

import "context"

// CocktailRepository lists the drinks of the configured cocktail category
type CocktailRepository interface {
	FetchCocktails(ctx context.Context) ([]Cocktail, error)
}

// MealRepository lists the dishes of the configured meal category
type MealRepository interface {
	FetchMeals(ctx context.Context) ([]Meal, error)
}
