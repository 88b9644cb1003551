package cocktaildb

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/barback/internal/domain"
)

// DecodeFilterResponse parses a filter.php payload. The drinks array and the
// id, name and thumbnail of every drink are required; unknown keys are ignored.
func DecodeFilterResponse(body []byte) (*FilterResponse, error) {
	var resp FilterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Drinks == nil {
		return nil, fmt.Errorf("missing drinks array")
	}
	for i, d := range *resp.Drinks {
		switch {
		case d.IDDrink == nil:
			return nil, fmt.Errorf("drinks[%d]: missing idDrink", i)
		case d.StrDrink == nil:
			return nil, fmt.Errorf("drinks[%d]: missing strDrink", i)
		case d.StrDrinkThumb == nil:
			return nil, fmt.Errorf("drinks[%d]: missing strDrinkThumb", i)
		}
	}
	return &resp, nil
}

// MapCocktails unwraps the envelope into domain cocktails, keeping order
func MapCocktails(resp *FilterResponse) []domain.Cocktail {
	if resp == nil || resp.Drinks == nil {
		return []domain.Cocktail{}
	}
	cocktails := make([]domain.Cocktail, 0, len(*resp.Drinks))
	for _, d := range *resp.Drinks {
		cocktails = append(cocktails, mapCocktail(d))
	}
	return cocktails
}

func mapCocktail(d Drink) domain.Cocktail {
	return domain.Cocktail{
		ID:       deref(d.IDDrink),
		Name:     deref(d.StrDrink),
		ImageURL: deref(d.StrDrinkThumb),
	}
}

// EncodeCocktails writes cocktails back out in the filter.php envelope
func EncodeCocktails(cocktails []domain.Cocktail) ([]byte, error) {
	drinks := make([]Drink, 0, len(cocktails))
	for _, c := range cocktails {
		id, name, thumb := c.ID, c.Name, c.ImageURL
		drinks = append(drinks, Drink{
			IDDrink:       &id,
			StrDrink:      &name,
			StrDrinkThumb: &thumb,
		})
	}
	return json.Marshal(FilterResponse{Drinks: &drinks})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
