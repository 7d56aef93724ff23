package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	LoadFile Phase = iota
	ImportRecipe
	FetchRecipes
	WriteExport
)

func (p Phase) String() string {
	switch p {
	case LoadFile:
		return "load_file"
	case ImportRecipe:
		return "import_recipe"
	case FetchRecipes:
		return "fetch_recipes"
	case WriteExport:
		return "write_export"
	default:
		return ""
	}
}

func loadingFileUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   LoadFile,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading recipes from %s...", path),
	}
}

func importedUpdate(step, total int, r ImportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportRecipe,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Imported %q as #%d", r.Title, r.ID),
		Data:    r,
	}
}

func importFailedUpdate(step, total int, r ImportResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ImportRecipe,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Failed to import %q: %v", r.Title, r.Error),
		Data:    r,
	}
}

func fetchingRecipesUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchRecipes,
		Step:    1,
		Total:   1,
		Message: "Fetching recipes...",
	}
}

func writingExportUpdate(count int, format string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteExport,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing %d recipes as %s...", count, format),
	}
}
