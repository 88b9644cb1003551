package mealdb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maxcnunes/httpfake"
	"github.com/mmcdole/barback/internal/adapter/fetch"
	"github.com/mmcdole/barback/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filterPath = "/api/json/v1/1/filter.php"

func newTestRepository(fake *httpfake.HTTPFake) *Repository {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRepository(
		fetch.NewClient(nil, logger),
		fake.ResolveURL(filterPath+"?c=Seafood"),
		logger,
	)
}

func TestNewRepository_DefaultEndpoint(t *testing.T) {
	repo := NewRepository(fetch.NewClient(nil, nil), "", nil)
	assert.Equal(t, "https://www.themealdb.com/api/json/v1/1/filter.php?c=Seafood", repo.Endpoint())
}

func TestFetchMeals_Success(t *testing.T) {
	fake := httpfake.New()
	defer fake.Close()

	fake.NewHandler().
		Get(filterPath).
		Reply(http.StatusOK).
		BodyString(`{"meals":[
			{"strMeal":"Baked salmon with fennel & tomatoes","strMealThumb":"https://www.themealdb.com/images/media/meals/1548772327.jpg","idMeal":"52959"},
			{"strMeal":"Cajun spiced fish tacos","strMealThumb":"https://www.themealdb.com/images/media/meals/uvuyxu1503067369.jpg","idMeal":"52819"}
		]}`)

	got, err := newTestRepository(fake).FetchMeals(context.Background())

	require.NoError(t, err)
	want := []domain.Meal{
		{ID: "52959", Name: "Baked salmon with fennel & tomatoes", ImageURL: "https://www.themealdb.com/images/media/meals/1548772327.jpg"},
		{ID: "52819", Name: "Cajun spiced fish tacos", ImageURL: "https://www.themealdb.com/images/media/meals/uvuyxu1503067369.jpg"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FetchMeals() mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchMeals_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"forbidden", http.StatusForbidden, `{"meals":[]}`, domain.ErrNetwork},
		{"empty body", http.StatusOK, "", domain.ErrNoData},
		{"drinks envelope", http.StatusOK, `{"drinks":[]}`, domain.ErrDecoding},
		{"missing thumb", http.StatusOK, `{"meals":[{"idMeal":"1","strMeal":"Kedgeree"}]}`, domain.ErrDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := httpfake.New()
			defer fake.Close()

			handler := fake.NewHandler().
				Get(filterPath).
				Reply(tt.status)
			if tt.body != "" {
				handler.BodyString(tt.body)
			}

			_, err := newTestRepository(fake).FetchMeals(context.Background())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEncodeMeals_RoundTrip(t *testing.T) {
	meals := []domain.Meal{
		{ID: "52959", Name: "Baked salmon", ImageURL: "https://img/1.jpg"},
		{ID: "52819", Name: "Fish tacos", ImageURL: "https://img/2.jpg"},
	}

	body, err := EncodeMeals(meals)
	require.NoError(t, err)

	resp, err := DecodeFilterResponse(body)
	require.NoError(t, err)
	assert.Equal(t, meals, MapMeals(resp))
}
