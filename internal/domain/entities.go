package domain

// ItemKind distinguishes the recipe catalogs
type ItemKind int

const (
	ItemKindCocktail ItemKind = iota
	ItemKindMeal
)

// String returns the category label shown next to an item
func (k ItemKind) String() string {
	switch k {
	case ItemKindCocktail:
		return "Cocktail"
	case ItemKindMeal:
		return "Seafood"
	default:
		return "Unknown"
	}
}

// Cocktail is a drink returned by TheCocktailDB category filter
type Cocktail struct {
	ID       string // idDrink
	Name     string // strDrink
	ImageURL string // strDrinkThumb
}

// GetID implements Item
func (c Cocktail) GetID() string { return c.ID }

// GetName implements Item
func (c Cocktail) GetName() string { return c.Name }

// GetImageURL implements Item
func (c Cocktail) GetImageURL() string { return c.ImageURL }

// GetKind implements Item
func (c Cocktail) GetKind() ItemKind { return ItemKindCocktail }

// Meal is a dish returned by TheMealDB category filter
type Meal struct {
	ID       string // idMeal
	Name     string // strMeal
	ImageURL string // strMealThumb
}

// GetID implements Item
func (m Meal) GetID() string { return m.ID }

// GetName implements Item
func (m Meal) GetName() string { return m.Name }

// GetImageURL implements Item
func (m Meal) GetImageURL() string { return m.ImageURL }

// GetKind implements Item
func (m Meal) GetKind() ItemKind { return ItemKindMeal }
