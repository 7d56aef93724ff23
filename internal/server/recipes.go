package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// RecipeHandler serves the /api/recipes endpoints.
type RecipeHandler struct {
	store   models.RecipeStore
	decoder *RequestDecoder
	logger  *log.Logger
}

// NewRecipeHandler creates a RecipeHandler backed by store.
func NewRecipeHandler(store models.RecipeStore, logger *log.Logger) *RecipeHandler {
	return &RecipeHandler{
		store:   store,
		decoder: NewRequestDecoder(),
		logger:  shared.WithLogger(logger, "handler", "recipes"),
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *RecipeHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/api/recipes", Handler: h.List},
		{Method: http.MethodPost, Path: "/api/recipes", Handler: h.Create},
		{Method: http.MethodPut, Path: "/api/recipes/{id}", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/api/recipes/{id}", Handler: h.Delete},
	}
}

// List handles GET /api/recipes
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.store.List(r.Context())
	if err != nil {
		h.internalError(w, r, "failed to list recipes", err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// Create handles POST /api/recipes
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	recipe, err := h.store.Create(r.Context(), req.Fields())
	if err != nil {
		h.storeError(w, r, "failed to create recipe", err)
		return
	}

	recipeMutations.WithLabelValues("create").Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgRecipeAdded, Recipe: recipe})
}

// Update handles PUT /api/recipes/{id}
//
// The existence check runs before the body is read, so an unknown id yields 404 even for an invalid body.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lookup(w, r)
	if !ok {
		return
	}

	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	recipe, err := h.store.Replace(r.Context(), id, req.Fields())
	if err != nil {
		h.storeError(w, r, "failed to update recipe", err)
		return
	}

	recipeMutations.WithLabelValues("update").Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgRecipeUpdated, Recipe: recipe})
}

// Delete handles DELETE /api/recipes/{id}
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to delete recipe", err)
		return
	}

	recipeMutations.WithLabelValues("delete").Inc()
	writeJSON(w, http.StatusOK, MessageResponse{Message: msgRecipeDeleted})
}

// lookup parses the {id} path value and confirms the recipe exists, writing a 404 otherwise.
func (h *RecipeHandler) lookup(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, msgRecipeMissing)
		return 0, false
	}

	if _, err := h.store.Get(r.Context(), id); err != nil {
		h.storeError(w, r, "failed to get recipe", err)
		return 0, false
	}
	return id, true
}

func (h *RecipeHandler) decode(w http.ResponseWriter, r *http.Request) (*RecipeRequest, bool) {
	req, err := h.decoder.Decode(r.Body)
	if err == nil {
		return req, true
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		writeError(w, http.StatusBadRequest, reqErr.Message)
		return nil, false
	}

	h.internalError(w, r, "failed to decode request", err)
	return nil, false
}

func (h *RecipeHandler) storeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, shared.ErrRecipeNotFound):
		writeError(w, http.StatusNotFound, msgRecipeMissing)
	case errors.Is(err, shared.ErrInvalidRecipe):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, msg, err)
	}
}

func (h *RecipeHandler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.Error(msg, "error", err, "requestID", RequestIDFrom(r.Context()))
	writeError(w, http.StatusInternalServerError, msgInternalError)
}
