// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// MockRecipeService is an in-memory test double for services.RecipeService.
//
// Ids start at 1 and are never reused. Setting Err makes every call fail with it.
type MockRecipeService struct {
	mu      sync.Mutex
	recipes []models.Recipe
	nextID  int64
	calls   int

	Err error
}

// NewMockRecipeService creates a mock pre-populated with fields, assigned ids 1..n.
func NewMockRecipeService(fields ...models.Fields) *MockRecipeService {
	m := &MockRecipeService{nextID: 1}
	for _, f := range fields {
		m.recipes = append(m.recipes, models.Recipe{ID: m.nextID, Fields: f})
		m.nextID++
	}
	return m
}

func (m *MockRecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]models.Recipe{}, m.recipes...), nil
}

func (m *MockRecipeService) Create(ctx context.Context, f models.Fields) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if f.Title == "" {
		return nil, fmt.Errorf("%w: Missing required field: 'title'", shared.ErrInvalidInput)
	}
	r := models.Recipe{ID: m.nextID, Fields: f}
	m.nextID++
	m.recipes = append(m.recipes, r)
	return &r, nil
}

func (m *MockRecipeService) Update(ctx context.Context, id int64, f models.Fields) (*models.Recipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			m.recipes[i].Fields = f
			r := m.recipes[i]
			return &r, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", shared.ErrRecipeNotFound, id)
}

func (m *MockRecipeService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return m.Err
	}
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			m.recipes = append(m.recipes[:i], m.recipes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %d", shared.ErrRecipeNotFound, id)
}

// Calls returns the number of service calls made so far.
func (m *MockRecipeService) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// SampleFields returns a complete, valid set of recipe fields titled title.
func SampleFields(title string) models.Fields {
	return models.Fields{
		Title:        title,
		Ingredients:  "water,salt",
		Instructions: "Boil.",
		Servings:     2,
		Description:  "Tasty",
		ImageURL:     "http://x/y.jpg",
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
