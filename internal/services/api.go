// API client for the recipe HTTP service
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

const recipesPath = "/api/recipes"

// RecipeClient implements [RecipeService] over HTTP.
type RecipeClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ RecipeService = (*RecipeClient)(nil)

// NewRecipeClient creates a new client for the recipe API at baseURL.
func NewRecipeClient(baseURL string, client *http.Client) *RecipeClient {
	if baseURL == "" {
		baseURL = "http://127.0.0.1:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &RecipeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// BaseURL returns the API root this client talks to.
func (c *RecipeClient) BaseURL() string {
	return c.baseURL
}

// messageResponse is the body of successful create, update and delete responses.
type messageResponse struct {
	Message string         `json:"message"`
	Recipe  *models.Recipe `json:"recipe"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// List performs GET /api/recipes.
func (c *RecipeClient) List(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := c.do(ctx, http.MethodGet, recipesPath, nil, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// Create performs POST /api/recipes.
func (c *RecipeClient) Create(ctx context.Context, f models.Fields) (*models.Recipe, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, recipesPath, f, &resp); err != nil {
		return nil, err
	}
	if resp.Recipe == nil {
		return nil, fmt.Errorf("%w: response missing recipe", shared.ErrAPIRequest)
	}
	return resp.Recipe, nil
}

// Update performs PUT /api/recipes/{id}.
func (c *RecipeClient) Update(ctx context.Context, id int64, f models.Fields) (*models.Recipe, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", recipesPath, id), f, &resp); err != nil {
		return nil, err
	}
	if resp.Recipe == nil {
		return nil, fmt.Errorf("%w: response missing recipe", shared.ErrAPIRequest)
	}
	return resp.Recipe, nil
}

// Delete performs DELETE /api/recipes/{id}.
func (c *RecipeClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", recipesPath, id), nil, nil)
}

// do sends a JSON request and decodes a 2xx JSON body into out when out is non-nil.
func (c *RecipeClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody errorResponse
		if json.Unmarshal(data, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}
	return nil
}
