package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// RecipeService defines the recipe operations available to API consumers.
type RecipeService interface {
	// List retrieves every recipe in store order.
	List(ctx context.Context) ([]models.Recipe, error)
	// Create submits a new recipe. All six fields must be non-empty.
	Create(ctx context.Context, f models.Fields) (*models.Recipe, error)
	// Update replaces every field of the recipe with the given id.
	Update(ctx context.Context, id int64, f models.Fields) (*models.Recipe, error)
	// Delete removes the recipe with the given id.
	Delete(ctx context.Context, id int64) error
}

// APIError is a non-2xx response from the recipe API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// Unwrap maps the status code onto the shared sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return shared.ErrRecipeNotFound
	case http.StatusBadRequest:
		return shared.ErrInvalidInput
	default:
		return shared.ErrAPIRequest
	}
}
