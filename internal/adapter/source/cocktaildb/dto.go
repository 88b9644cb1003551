package cocktaildb

// FilterResponse is the envelope returned by filter.php
type FilterResponse struct {
	Drinks *[]Drink `json:"drinks"`
}

// Drink is one entry of a category filter. Fields are pointers so that a
// missing or null key can be told apart from an empty string.
type Drink struct {
	IDDrink       *string `json:"idDrink"`
	StrDrink      *string `json:"strDrink"`
	StrDrinkThumb *string `json:"strDrinkThumb"`
}
