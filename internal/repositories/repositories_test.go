package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with the schema applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}

	return db
}

func soup() models.Fields {
	return models.Fields{
		Title:        "Soup",
		Ingredients:  "water,salt",
		Instructions: "Boil.",
		Servings:     2,
		Description:  "Tasty",
		ImageURL:     "http://x/y.jpg",
	}
}

func TestRecipeRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		recipe, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		if recipe.ID <= 0 {
			t.Errorf("expected positive id, got %d", recipe.ID)
		}

		if recipe.Fields != soup() {
			t.Errorf("expected fields %+v, got %+v", soup(), recipe.Fields)
		}
	})

	t.Run("Create applies storage defaults", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		f := soup()
		f.Description = ""
		f.ImageURL = ""

		created, err := repo.Create(ctx, f)
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		stored, err := repo.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get recipe: %v", err)
		}

		if stored.Description != models.DefaultDescription {
			t.Errorf("expected default description, got %q", stored.Description)
		}
		if stored.ImageURL != models.DefaultImageURL {
			t.Errorf("expected default image url, got %q", stored.ImageURL)
		}
	})

	t.Run("Create allows zero servings", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		f := soup()
		f.Servings = 0

		created, err := repo.Create(ctx, f)
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}
		if created.Servings != 0 {
			t.Errorf("expected 0 servings, got %d", created.Servings)
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		created, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		retrieved, err := repo.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get recipe: %v", err)
		}

		if *retrieved != *created {
			t.Errorf("expected %+v, got %+v", created, retrieved)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		created, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		update := soup()
		update.Servings = 4
		update.Title = "Hearty Soup"

		replaced, err := repo.Replace(ctx, created.ID, update)
		if err != nil {
			t.Fatalf("failed to replace recipe: %v", err)
		}

		if replaced.ID != created.ID {
			t.Errorf("expected id %d to be preserved, got %d", created.ID, replaced.ID)
		}

		retrieved, err := repo.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("failed to get recipe: %v", err)
		}

		if retrieved.Fields != update {
			t.Errorf("expected fields %+v, got %+v", update, retrieved.Fields)
		}
	})

	t.Run("Replace with identical values", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		created, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		if _, err := repo.Replace(ctx, created.ID, soup()); err != nil {
			t.Fatalf("replacing with identical values should succeed: %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		created, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}

		if err := repo.Delete(ctx, created.ID); err != nil {
			t.Fatalf("failed to delete recipe: %v", err)
		}

		if _, err := repo.Get(ctx, created.ID); err == nil {
			t.Error("expected error when getting deleted recipe")
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)

		empty, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list recipes: %v", err)
		}
		if empty == nil || len(empty) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", empty)
		}

		titles := []string{"Soup", "Bread", "Tea"}
		for _, title := range titles {
			f := soup()
			f.Title = title
			if _, err := repo.Create(ctx, f); err != nil {
				t.Fatalf("failed to create recipe: %v", err)
			}
		}

		recipes, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("failed to list recipes: %v", err)
		}

		if len(recipes) != len(titles) {
			t.Fatalf("expected %d recipes, got %d", len(titles), len(recipes))
		}

		for i, recipe := range recipes {
			if recipe.Title != titles[i] {
				t.Errorf("expected recipe %d to be %s, got %s", i, titles[i], recipe.Title)
			}
			if i > 0 && recipe.ID <= recipes[i-1].ID {
				t.Errorf("expected ascending ids, got %d after %d", recipe.ID, recipes[i-1].ID)
			}
		}
	})

	t.Run("Count", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		for range 3 {
			if _, err := repo.Create(ctx, soup()); err != nil {
				t.Fatalf("failed to create recipe: %v", err)
			}
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("failed to count recipes: %v", err)
		}
		if count != 3 {
			t.Errorf("expected 3 recipes, got %d", count)
		}
	})

	t.Run("Ids are never reused", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewRecipeRepository(db)
		first, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}
		if err := repo.Delete(ctx, first.ID); err != nil {
			t.Fatalf("failed to delete recipe: %v", err)
		}

		second, err := repo.Create(ctx, soup())
		if err != nil {
			t.Fatalf("failed to create recipe: %v", err)
		}
		if second.ID <= first.ID {
			t.Errorf("expected id greater than %d, got %d", first.ID, second.ID)
		}
	})
}
