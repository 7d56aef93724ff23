package formatter

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
	th "github.com/desertthunder/recipebox/internal/testing"
)

func sampleRecipes() []models.Recipe {
	soup := th.SampleFields("Soup")
	bread := th.SampleFields("Bread, \"crusty\"")
	bread.Ingredients = "flour, water ,yeast,,salt"
	bread.Instructions = "Knead.\nBake."
	bread.Servings = 0
	return []models.Recipe{
		{ID: 1, Fields: soup},
		{ID: 4, Fields: bread},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleRecipes())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "ID,Title,Ingredients,Instructions,Servings,Description,Image URL\n") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "1,Soup,\"water,salt\",Boil.,2,Tasty,http://x/y.jpg") {
			t.Errorf("CSV missing soup row, got: %s", output)
		}
		if !strings.Contains(output, `"Bread, ""crusty"""`) {
			t.Errorf("CSV should quote embedded commas and quotes, got: %s", output)
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleRecipes())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{
			"# Recipes",
			"**Count**: 2",
			"## Soup",
			"![Soup](http://x/y.jpg)",
			"**Servings**: 0",
			"- flour\n- water\n- yeast\n- salt\n",
			"### Instructions\n\nKnead.\nBake.",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleRecipes())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, "Recipes: 2\n") {
			t.Errorf("text missing count, got: %s", output)
		}
		if !strings.Contains(output, "1. Soup (serves 2)") {
			t.Errorf("text missing soup line, got: %s", output)
		}
		if !strings.Contains(output, "Ingredients: flour, water, yeast, salt") {
			t.Errorf("text missing normalised ingredients, got: %s", output)
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(nil)
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("expected empty array, got %s", data)
		}

		data, err = ExportToJSON(sampleRecipes())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}
		if !strings.Contains(string(data), `"image_url": "http://x/y.jpg"`) {
			t.Errorf("unexpected JSON %s", data)
		}
	})
}

func TestFormats(t *testing.T) {
	t.Run("ParseFormat", func(t *testing.T) {
		tc := []struct {
			input string
			want  Format
		}{
			{"json", FormatJSON},
			{"", FormatJSON},
			{"CSV", FormatCSV},
			{"md", FormatMarkdown},
			{"markdown", FormatMarkdown},
			{"text", FormatText},
			{"txt", FormatText},
		}

		for _, tt := range tc {
			got, err := ParseFormat(tt.input)
			if err != nil {
				t.Errorf("ParseFormat(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		}

		if _, err := ParseFormat("yaml"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("FormatFromPath", func(t *testing.T) {
		if got := FormatFromPath("out/recipes.CSV"); got != FormatCSV {
			t.Errorf("expected csv, got %s", got)
		}
		if got := FormatFromPath("recipes.md"); got != FormatMarkdown {
			t.Errorf("expected markdown, got %s", got)
		}
		if got := FormatFromPath("recipes"); got != FormatJSON {
			t.Errorf("expected json, got %s", got)
		}
	})

	t.Run("Render rejects unknown format", func(t *testing.T) {
		if _, err := Render(Format("xml"), nil); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestWriteExport(t *testing.T) {
	t.Run("To writer", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteExport(&buf, "", FormatText, sampleRecipes()); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if !strings.Contains(buf.String(), "Soup") {
			t.Errorf("unexpected output %s", buf.String())
		}
	})

	t.Run("To file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "recipes.csv")
		if err := WriteExport(nil, path, FormatCSV, sampleRecipes()); err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.Contains(content, "Soup") {
			t.Errorf("unexpected file content %s", content)
		}
	})

	t.Run("Writer failure", func(t *testing.T) {
		if err := WriteExport(&th.FWriter{}, "", FormatJSON, sampleRecipes()); err == nil {
			t.Error("expected write error")
		}
	})
}

func TestParsers(t *testing.T) {
	t.Run("CSV round trip", func(t *testing.T) {
		data, err := ExportToCSV(sampleRecipes())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		fields, err := ParseCSV(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("ParseCSV failed: %v", err)
		}
		if len(fields) != 2 {
			t.Fatalf("expected 2 recipes, got %d", len(fields))
		}
		for i, r := range sampleRecipes() {
			if fields[i] != r.Fields {
				t.Errorf("recipe %d: expected %+v, got %+v", i, r.Fields, fields[i])
			}
		}
	})

	t.Run("CSV empty input", func(t *testing.T) {
		fields, err := ParseCSV(strings.NewReader(""))
		if err != nil || len(fields) != 0 {
			t.Errorf("expected no recipes, got %v (%v)", fields, err)
		}
	})

	t.Run("CSV invalid servings", func(t *testing.T) {
		input := "ID,Title,Ingredients,Instructions,Servings,Description,Image URL\n1,Soup,water,Boil.,two,Tasty,http://x\n"
		if _, err := ParseCSV(strings.NewReader(input)); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("CSV wrong header", func(t *testing.T) {
		input := "ID,Name,Ingredients,Instructions,Servings,Description,Image URL\n"
		if _, err := ParseCSV(strings.NewReader(input)); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		fields, err := ParseJSON([]byte(`[{"id":5,"title":"Tea","ingredients":"tea","instructions":"Steep.","servings":1,"description":"Warm","image_url":"http://x/t.jpg"}]`))
		if err != nil {
			t.Fatalf("ParseJSON failed: %v", err)
		}
		if len(fields) != 1 || fields[0].Title != "Tea" || fields[0].Servings != 1 {
			t.Errorf("unexpected fields %+v", fields)
		}

		if _, err := ParseJSON([]byte(`{"title":"Tea"}`)); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput for non-array, got %v", err)
		}
	})
}
