package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type pingHandler struct{}

func (pingHandler) Routes() []Route {
	return []Route{
		{Method: http.MethodGet, Path: "/ping/{name}", Handler: func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("pong " + r.PathValue("name")))
		}},
	}
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle matches method and path", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodPost, "/things", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))
		if rec.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/other", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("Handler registers routes with path values", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(pingHandler{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping/soup", nil))
		if got := rec.Body.String(); got != "pong soup" {
			t.Errorf("expected 'pong soup', got %q", got)
		}
	})

	t.Run("Middleware order", func(t *testing.T) {
		router := NewBasicRouter()
		var order []string
		tag := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}
		router.Use(tag("first"), tag("second"))
		router.Handler(pingHandler{})

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping/x", nil))
		if strings.Join(order, ",") != "first,second" {
			t.Errorf("expected first,second got %v", order)
		}
	})

	t.Run("Middleware wraps unmatched requests", func(t *testing.T) {
		router := NewBasicRouter()
		hit := false
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hit = true
				next.ServeHTTP(w, r)
			})
		})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
		if !hit {
			t.Error("middleware should run for unmatched paths")
		}
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("Pattern", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(pingHandler{})

		if got := router.Pattern(httptest.NewRequest(http.MethodGet, "/ping/abc", nil)); got != "GET /ping/{name}" {
			t.Errorf("unexpected pattern %q", got)
		}
		if got := router.Pattern(httptest.NewRequest(http.MethodGet, "/nope", nil)); got != "" {
			t.Errorf("expected empty pattern, got %q", got)
		}
	})
}
