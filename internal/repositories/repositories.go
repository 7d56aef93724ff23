package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

const recipeColumns = "id, title, ingredients, instructions, servings, description, image_url"

var _ models.RecipeStore = (*RecipeRepository)(nil)

// RecipeRepository implements [models.RecipeStore] over a SQLite database.
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository with the given database connection
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// List retrieves all recipes in insertion order.
//
// An empty table yields an empty, non-nil slice.
func (r *RecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, *recipe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return recipes, nil
}

// Get retrieves a recipe by id
func (r *RecipeRepository) Get(ctx context.Context, id int64) (*models.Recipe, error) {
	query := "SELECT " + recipeColumns + " FROM recipes WHERE id = ?"

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", shared.ErrRecipeNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// Create inserts a new recipe, filling blank description and image url with the storage defaults.
func (r *RecipeRepository) Create(ctx context.Context, f models.Fields) (*models.Recipe, error) {
	f = f.WithDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO recipes (title, ingredients, instructions, servings, description, image_url)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		f.Title,
		f.Ingredients,
		f.Instructions,
		f.Servings,
		f.Description,
		f.ImageURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert recipe: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted id: %w", err)
	}

	return models.NewRecipe(id, f), nil
}

// Replace overwrites every mutable field of the recipe with the given id. The id itself is preserved.
func (r *RecipeRepository) Replace(ctx context.Context, id int64, f models.Fields) (*models.Recipe, error) {
	f = f.WithDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE recipes
		SET title = ?, ingredients = ?, instructions = ?, servings = ?, description = ?, image_url = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		f.Title,
		f.Ingredients,
		f.Instructions,
		f.Servings,
		f.Description,
		f.ImageURL,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	if err := expectOneRow(result, id); err != nil {
		return nil, err
	}

	return models.NewRecipe(id, f), nil
}

// Delete permanently removes a recipe by id
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return expectOneRow(result, id)
}

// Count returns the number of stored recipes
func (r *RecipeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scanRecipe scans a single row into a [models.Recipe]
func scanRecipe(row scanner) (*models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Servings,
		&recipe.Description,
		&recipe.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan recipe: %w", err)
	}
	return &recipe, nil
}

func expectOneRow(result sql.Result, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %d", shared.ErrRecipeNotFound, id)
	}
	return nil
}
