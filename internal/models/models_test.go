package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/desertthunder/recipebox/internal/shared"
)

func TestFields(t *testing.T) {
	t.Run("WithDefaults", func(t *testing.T) {
		tc := []struct {
			name            string
			input           Fields
			wantDescription string
			wantImageURL    string
		}{
			{
				name:            "blank values get defaults",
				input:           Fields{Title: "Soup"},
				wantDescription: DefaultDescription,
				wantImageURL:    DefaultImageURL,
			},
			{
				name:            "whitespace kept",
				input:           Fields{Description: "   ", ImageURL: "\t"},
				wantDescription: "   ",
				wantImageURL:    "\t",
			},
			{
				name:            "supplied values kept",
				input:           Fields{Description: "Tasty", ImageURL: "http://x/y.jpg"},
				wantDescription: "Tasty",
				wantImageURL:    "http://x/y.jpg",
			},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				got := tt.input.WithDefaults()
				if got.Description != tt.wantDescription {
					t.Errorf("description = %q, want %q", got.Description, tt.wantDescription)
				}
				if got.ImageURL != tt.wantImageURL {
					t.Errorf("image_url = %q, want %q", got.ImageURL, tt.wantImageURL)
				}
			})
		}
	})

	t.Run("Validate", func(t *testing.T) {
		valid := Fields{Title: "Soup", Ingredients: "water,salt", Instructions: "Boil."}

		if err := valid.Validate(); err != nil {
			t.Fatalf("expected valid fields, got %v", err)
		}

		zero := valid
		zero.Servings = 0
		if err := zero.Validate(); err != nil {
			t.Errorf("zero servings should be valid, got %v", err)
		}

		negative := valid
		negative.Servings = -3
		if err := negative.Validate(); err != nil {
			t.Errorf("negative servings should be valid, got %v", err)
		}

		for _, mutate := range []func(*Fields){
			func(f *Fields) { f.Title = "" },
			func(f *Fields) { f.Ingredients = "" },
			func(f *Fields) { f.Instructions = "" },
		} {
			f := valid
			mutate(&f)
			if err := f.Validate(); !errors.Is(err, shared.ErrInvalidRecipe) {
				t.Errorf("expected ErrInvalidRecipe, got %v", err)
			}
		}
	})
}

func TestRecipe(t *testing.T) {
	t.Run("MarshalJSON field order", func(t *testing.T) {
		r := NewRecipe(7, Fields{
			Title:        "Soup",
			Ingredients:  "water,salt",
			Instructions: "Boil.",
			Servings:     2,
			Description:  "Tasty",
			ImageURL:     "http://x/y.jpg",
		})

		data, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}

		want := `{"id":7,"title":"Soup","ingredients":"water,salt","instructions":"Boil.","servings":2,"description":"Tasty","image_url":"http://x/y.jpg"}`
		if string(data) != want {
			t.Errorf("got %s\nwant %s", data, want)
		}
	})

	t.Run("UnmarshalJSON", func(t *testing.T) {
		var r Recipe
		if err := json.Unmarshal([]byte(`{"id":3,"title":"Tea","servings":1}`), &r); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if r.ID != 3 || r.Title != "Tea" || r.Servings != 1 {
			t.Errorf("unexpected recipe %+v", r)
		}
	})

	t.Run("String", func(t *testing.T) {
		r := NewRecipe(3, Fields{Title: "Tea", Servings: 1})
		if got := r.String(); got != "#3 Tea (serves 1)" {
			t.Errorf("unexpected summary %q", got)
		}
	})
}
