package server

import (
	"encoding/json"
	"net/http"

	"github.com/desertthunder/recipebox/internal/models"
)

const (
	msgRecipeAdded   = "Recipe added successfully"
	msgRecipeUpdated = "Recipe updated successfully"
	msgRecipeDeleted = "Recipe deleted successfully"
	msgRecipeMissing = "Recipe not found"
	msgInvalidJSON   = "Invalid JSON body"
	msgInternalError = "Internal server error"
)

// ErrorResponse is the body of every 4xx and 5xx response from the recipe API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by create, update and delete. Recipe is omitted on delete.
type MessageResponse struct {
	Message string         `json:"message"`
	Recipe  *models.Recipe `json:"recipe,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
