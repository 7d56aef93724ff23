package tasks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/desertthunder/recipebox/internal/formatter"
	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/services"
	"github.com/desertthunder/recipebox/internal/shared"
)

// RecipeEngine runs bulk recipe operations against a recipe service.
type RecipeEngine struct {
	svc services.RecipeService
}

// NewRecipeEngine creates a new RecipeEngine with the provided service.
func NewRecipeEngine(svc services.RecipeService) *RecipeEngine {
	return &RecipeEngine{svc: svc}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *RecipeEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// ExportResult summarises a finished export.
type ExportResult struct {
	Count  int              // Number of recipes written
	Format formatter.Format // Format used
	Path   string           // Output file, empty when written to a stream
}

// Export fetches every recipe and writes it to path in the given format, or to w when path is empty.
func (e *RecipeEngine) Export(
	ctx context.Context,
	progress chan<- ProgressUpdate,
	w io.Writer,
	path string,
	format formatter.Format,
) (*ExportResult, error) {
	if e.svc == nil {
		return nil, fmt.Errorf("%w: recipe service not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, fetchingRecipesUpdate())
	recipes, err := e.svc.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	e.sendProgress(progress, writingExportUpdate(len(recipes), string(format)))
	if err := formatter.WriteExport(w, path, format, recipes); err != nil {
		return nil, err
	}

	return &ExportResult{Count: len(recipes), Format: format, Path: path}, nil
}

// LoadImportFile reads recipe fields from a JSON array or a CSV export, chosen by file extension.
func LoadImportFile(path string) ([]models.Fields, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	switch formatter.FormatFromPath(path) {
	case formatter.FormatCSV:
		return formatter.ParseCSV(bytes.NewReader(data))
	case formatter.FormatJSON:
		return formatter.ParseJSON(data)
	default:
		return nil, fmt.Errorf("%w: cannot import %s, use .json or .csv", shared.ErrInvalidArgument, path)
	}
}
