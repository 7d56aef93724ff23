package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/recipebox/internal/formatter"
	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
	"github.com/desertthunder/recipebox/internal/tasks"
)

func fieldsFromFlags(cmd *cli.Command) models.Fields {
	return models.Fields{
		Title:        cmd.String("title"),
		Ingredients:  cmd.String("ingredients"),
		Instructions: cmd.String("instructions"),
		Servings:     cmd.Int("servings"),
		Description:  cmd.String("description"),
		ImageURL:     cmd.String("image-url"),
	}
}

// RecipesList prints every recipe known to the API.
func (r *Runner) RecipesList(ctx context.Context, cmd *cli.Command) error {
	recipes, err := r.client.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(recipes, cmd.Bool("pretty"))
	}

	if len(recipes) == 0 {
		return r.writePlain("No recipes found.\n")
	}

	r.writePlainHeader(fmt.Sprintf("Recipes (%d)", len(recipes)))
	for _, recipe := range recipes {
		r.writePlain("%s\n", recipe)
		r.writePlain("    %s\n", recipe.Ingredients)
	}
	return nil
}

// RecipesAdd creates a recipe from flags.
func (r *Runner) RecipesAdd(ctx context.Context, cmd *cli.Command) error {
	recipe, err := r.client.Create(ctx, fieldsFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to add recipe: %w", err)
	}

	r.logger.Info("recipe added", "id", recipe.ID)
	return r.writePlain("✓ Recipe added successfully: %s\n", recipe)
}

// RecipesUpdate replaces every field of the recipe given by --id.
func (r *Runner) RecipesUpdate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	recipe, err := r.client.Update(ctx, id, fieldsFromFlags(cmd))
	if err != nil {
		return fmt.Errorf("failed to update recipe %d: %w", id, err)
	}

	r.logger.Info("recipe updated", "id", recipe.ID)
	return r.writePlain("✓ Recipe updated successfully: %s\n", recipe)
}

// RecipesDelete removes the recipe given by --id.
func (r *Runner) RecipesDelete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int64("id")

	if err := r.client.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}

	r.logger.Info("recipe deleted", "id", id)
	return r.writePlain("✓ Recipe deleted successfully: #%d\n", id)
}

// RecipesExport writes the whole catalog to --output, or stdout.
//
// The format comes from --format, then the output file extension, then defaults to JSON.
func (r *Runner) RecipesExport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	format := formatter.FormatJSON
	if name := cmd.String("format"); name != "" {
		parsed, err := formatter.ParseFormat(name)
		if err != nil {
			return err
		}
		format = parsed
	} else if path != "" {
		format = formatter.FormatFromPath(path)
	}

	progress := make(chan tasks.ProgressUpdate, 10)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Info(update.Message, "phase", update.Phase)
		}
	}()

	result, err := r.engine.Export(ctx, progress, r.output, path, format)
	close(progress)
	<-done

	if err != nil {
		return err
	}

	if result.Path != "" {
		return r.writePlain("✓ Exported %d recipes to %s (%s)\n", result.Count, result.Path, result.Format)
	}
	return nil
}

// RecipesImport creates every recipe in a JSON or CSV file through the API.
func (r *Runner) RecipesImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: import file path", shared.ErrMissingArgument)
	}

	r.logger.Info("loading recipes", "path", path)
	fields, err := tasks.LoadImportFile(path)
	if err != nil {
		return err
	}

	r.writePlain("Importing %d recipes from %s...\n", len(fields), path)

	progress := make(chan tasks.ProgressUpdate, len(fields)+1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.writePlain("   [%d/%d] %s\n", update.Step, update.Total, update.Message)
		}
	}()

	result, err := r.engine.BulkImport(ctx, progress, fields, tasks.BulkImportOpts{
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
	})
	close(progress)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Import Complete!")
	r.writePlain("Imported: %d/%d\n", result.Succeeded, result.Total)

	if result.Failed > 0 {
		r.logger.Warn("some recipes failed to import", "failed", result.Failed)
		r.writePlain("\nFailed to import %d recipes:\n", result.Failed)
		for _, res := range result.Results {
			if res.Error != nil {
				r.writePlain("  - #%d %q: %v\n", res.Index+1, res.Title, res.Error)
			}
		}
	}

	return nil
}
