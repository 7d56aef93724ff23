package models

import (
	"context"
	"fmt"

	"github.com/desertthunder/recipebox/internal/shared"
)

const (
	// DefaultDescription is stored when a recipe is persisted without a description.
	DefaultDescription = "Delicious. You need to try it!"
	// DefaultImageURL is stored when a recipe is persisted without an image.
	DefaultImageURL = "https://images.pexels.com/photos/9986228/pexels-photo-9986228.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"
)

// Fields holds every mutable value of a recipe.
type Fields struct {
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	Servings     int    `json:"servings"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}

// WithDefaults returns a copy of f with an empty description and image url replaced by the storage defaults.
//
// Whitespace is a value and is kept as given.
func (f Fields) WithDefaults() Fields {
	if f.Description == "" {
		f.Description = DefaultDescription
	}
	if f.ImageURL == "" {
		f.ImageURL = DefaultImageURL
	}
	return f
}

// Validate checks the storage invariant: title, ingredients and instructions are non-empty.
//
// Servings is not range checked.
func (f Fields) Validate() error {
	switch {
	case f.Title == "":
		return fmt.Errorf("%w: title is required", shared.ErrInvalidRecipe)
	case f.Ingredients == "":
		return fmt.Errorf("%w: ingredients is required", shared.ErrInvalidRecipe)
	case f.Instructions == "":
		return fmt.Errorf("%w: instructions is required", shared.ErrInvalidRecipe)
	}
	return nil
}

// Recipe is a persisted recipe.
//
// The embedded [Fields] are flattened when encoded, so the wire shape is a single object.
type Recipe struct {
	ID int64 `json:"id"`
	Fields
}

// NewRecipe builds a Recipe from an id and its fields.
func NewRecipe(id int64, f Fields) *Recipe {
	return &Recipe{ID: id, Fields: f}
}

// String renders a one-line summary, e.g. "#3 Soup (serves 2)".
func (r Recipe) String() string {
	return fmt.Sprintf("#%d %s (serves %d)", r.ID, r.Title, r.Servings)
}

// RecipeStore defines the data access operations for recipes.
// Implementations return an error wrapping [shared.ErrRecipeNotFound] for unknown ids.
type RecipeStore interface {
	// List returns every recipe ordered by id.
	List(ctx context.Context) ([]Recipe, error)
	// Get retrieves a recipe by id.
	Get(ctx context.Context, id int64) (*Recipe, error)
	// Create inserts a recipe and returns it with its new id.
	Create(ctx context.Context, f Fields) (*Recipe, error)
	// Replace overwrites all fields of an existing recipe.
	Replace(ctx context.Context, id int64, f Fields) (*Recipe, error)
	// Delete permanently removes a recipe.
	Delete(ctx context.Context, id int64) error
	// Count returns the number of stored recipes.
	Count(ctx context.Context) (int, error)
}
