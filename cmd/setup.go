package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/repositories"
	"github.com/desertthunder/recipebox/internal/shared"
)

// seedRecipes are inserted by [Runner.SetupSeed]. Entries without a description or image pick up the storage defaults.
var seedRecipes = []models.Fields{
	{
		Title:        "Tomato Soup",
		Ingredients:  "tomatoes, onion, garlic, olive oil, vegetable stock, salt",
		Instructions: "Soften the onion and garlic in oil. Add tomatoes and stock, simmer 20 minutes, then blend until smooth.",
		Servings:     4,
		Description:  "A weeknight classic.",
	},
	{
		Title:        "Pancakes",
		Ingredients:  "flour, milk, eggs, sugar, baking powder, butter",
		Instructions: "Whisk everything into a smooth batter. Cook ladlefuls on a buttered pan until golden on both sides.",
		Servings:     2,
	},
	{
		Title:        "Guacamole",
		Ingredients:  "avocados, lime, red onion, cilantro, salt",
		Instructions: "Mash the avocados with lime juice. Fold in chopped onion and cilantro, season with salt.",
		Servings:     3,
		Description:  "Best made right before serving.",
	},
}

// SetupDatabase creates the config file when missing, then opens the database and applies the schema.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	if r.configPath != "" {
		if _, err := os.Stat(r.configPath); errors.Is(err, os.ErrNotExist) {
			r.logger.Info("config file not found, creating from template", "path", r.configPath)
			if err := shared.CreateConfigFile(r.configPath); err != nil {
				r.logger.Warn("failed to create config file, using defaults", "error", err)
			} else if config, err := shared.ResolveConfig(r.configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
			} else {
				r.logger.Info("config file created", "path", r.configPath)
				r.setConfig(config)
			}
		}
	}

	db, created, err := r.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if created {
		r.writePlain("✓ Created recipes table\n")
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlain("✓ Database ready at %s\n", r.config.Database.Path)
}

// SetupSeed inserts [seedRecipes] directly through the store, skipping non-empty databases unless --force is set.
func (r *Runner) SetupSeed(ctx context.Context, cmd *cli.Command) error {
	db, _, err := r.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := repositories.NewRecipeRepository(db)

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count recipes: %w", err)
	}
	if count > 0 && !cmd.Bool("force") {
		r.logger.Info("database already has recipes, skipping seed", "count", count)
		return r.writePlain("Database already has %d recipes; use --force to seed anyway\n", count)
	}

	r.writePlain("Seeding %d recipes...\n", len(seedRecipes))
	for _, f := range seedRecipes {
		recipe, err := repo.Create(ctx, f)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", f.Title, err)
		}
		r.logger.Debug("seeded recipe", "id", recipe.ID, "title", recipe.Title)
		r.writePlain("  + %s\n", recipe)
	}
	return nil
}
