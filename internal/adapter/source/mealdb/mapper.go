package mealdb

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/barback/internal/domain"
)

// DecodeFilterResponse parses a filter.php payload. The meals array and the
// id, name and thumbnail of every dish are required; unknown keys are ignored.
func DecodeFilterResponse(body []byte) (*FilterResponse, error) {
	var resp FilterResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Meals == nil {
		return nil, fmt.Errorf("missing meals array")
	}
	for i, m := range *resp.Meals {
		switch {
		case m.IDMeal == nil:
			return nil, fmt.Errorf("meals[%d]: missing idMeal", i)
		case m.StrMeal == nil:
			return nil, fmt.Errorf("meals[%d]: missing strMeal", i)
		case m.StrMealThumb == nil:
			return nil, fmt.Errorf("meals[%d]: missing strMealThumb", i)
		}
	}
	return &resp, nil
}

// MapMeals unwraps the envelope into domain meals, keeping order
func MapMeals(resp *FilterResponse) []domain.Meal {
	if resp == nil || resp.Meals == nil {
		return []domain.Meal{}
	}
	meals := make([]domain.Meal, 0, len(*resp.Meals))
	for _, m := range *resp.Meals {
		meals = append(meals, mapMeal(m))
	}
	return meals
}

func mapMeal(m Meal) domain.Meal {
	return domain.Meal{
		ID:       deref(m.IDMeal),
		Name:     deref(m.StrMeal),
		ImageURL: deref(m.StrMealThumb),
	}
}

// EncodeMeals writes meals back out in the filter.php envelope
func EncodeMeals(meals []domain.Meal) ([]byte, error) {
	records := make([]Meal, 0, len(meals))
	for _, m := range meals {
		id, name, thumb := m.ID, m.Name, m.ImageURL
		records = append(records, Meal{
			IDMeal:       &id,
			StrMeal:      &name,
			StrMealThumb: &thumb,
		})
	}
	return json.Marshal(FilterResponse{Meals: &records})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
