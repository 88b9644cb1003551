package mealdb

// FilterResponse is the envelope returned by filter.php
type FilterResponse struct {
	Meals *[]Meal `json:"meals"`
}

// Meal is one entry of a category filter. Fields are pointers so that a
// missing or null key can be told apart from an empty string.
type Meal struct {
	IDMeal       *string `json:"idMeal"`
	StrMeal      *string `json:"strMeal"`
	StrMealThumb *string `json:"strMealThumb"`
}
