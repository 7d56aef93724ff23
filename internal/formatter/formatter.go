// package formatter renders recipes as JSON, CSV, Markdown or plain text and reads them back from JSON and CSV
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
)

// Formats lists every supported export format.
var Formats = []Format{FormatJSON, FormatCSV, FormatMarkdown, FormatText}

var csvHeaders = []string{"ID", "Title", "Ingredients", "Instructions", "Servings", "Description", "Image URL"}

// ParseFormat resolves a format name, accepting "md" and "text" as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, name)
}

// FormatFromPath picks a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".md", ".markdown":
		return FormatMarkdown
	case ".txt":
		return FormatText
	}
	return FormatJSON
}

// Render converts recipes to the given format.
func Render(format Format, recipes []models.Recipe) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ExportToJSON(recipes)
	case FormatCSV:
		return ExportToCSV(recipes)
	case FormatMarkdown:
		return ExportToMarkdown(recipes)
	case FormatText:
		return ExportToText(recipes)
	}
	return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
}

// ExportToJSON converts recipes to an indented JSON array
func ExportToJSON(recipes []models.Recipe) ([]byte, error) {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return shared.MarshalJSON(recipes, true)
}

// ExportToCSV converts recipes to CSV format with columns: ID, Title, Ingredients, Instructions, Servings, Description, Image URL
func ExportToCSV(recipes []models.Recipe) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range recipes {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			r.Ingredients,
			r.Instructions,
			strconv.Itoa(r.Servings),
			r.Description,
			r.ImageURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts recipes to a Markdown document, one section per recipe
func ExportToMarkdown(recipes []models.Recipe) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Recipes\n\n")
	fmt.Fprintf(&buf, "**Count**: %d\n", len(recipes))

	for _, r := range recipes {
		fmt.Fprintf(&buf, "\n## %s\n\n", r.Title)
		if r.ImageURL != "" {
			fmt.Fprintf(&buf, "![%s](%s)\n\n", r.Title, r.ImageURL)
		}
		if r.Description != "" {
			fmt.Fprintf(&buf, "%s\n\n", r.Description)
		}
		fmt.Fprintf(&buf, "**Servings**: %d\n\n", r.Servings)

		buf.WriteString("### Ingredients\n\n")
		for _, item := range SplitIngredients(r.Ingredients) {
			fmt.Fprintf(&buf, "- %s\n", item)
		}

		fmt.Fprintf(&buf, "\n### Instructions\n\n%s\n", r.Instructions)
	}

	return buf.Bytes(), nil
}

// ExportToText converts recipes to plain text format
func ExportToText(recipes []models.Recipe) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Recipes: %d\n", len(recipes))
	for i, r := range recipes {
		fmt.Fprintf(&buf, "\n%d. %s (serves %d)\n", i+1, r.Title, r.Servings)
		if r.Description != "" {
			fmt.Fprintf(&buf, "   %s\n", r.Description)
		}
		fmt.Fprintf(&buf, "   Ingredients: %s\n", strings.Join(SplitIngredients(r.Ingredients), ", "))
		fmt.Fprintf(&buf, "   Instructions: %s\n", r.Instructions)
	}

	return buf.Bytes(), nil
}

// SplitIngredients splits a comma separated ingredient list, dropping blank entries.
func SplitIngredients(ingredients string) []string {
	var items []string
	for _, item := range strings.Split(ingredients, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// WriteExport renders recipes and writes them to path, or to w when path is empty.
func WriteExport(w io.Writer, path string, format Format, recipes []models.Recipe) error {
	data, err := Render(format, recipes)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if path == "" {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// ParseJSON reads recipe fields from a JSON array of recipe objects. Ids in the input are ignored.
func ParseJSON(data []byte) ([]models.Fields, error) {
	var recipes []models.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %v", shared.ErrInvalidInput, err)
	}

	fields := make([]models.Fields, 0, len(recipes))
	for _, r := range recipes {
		fields = append(fields, r.Fields)
	}
	return fields, nil
}

// ParseCSV reads recipe fields from CSV in the layout produced by [ExportToCSV].
func ParseCSV(r io.Reader) ([]models.Fields, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeaders)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []models.Fields{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV header: %v", shared.ErrInvalidInput, err)
	}
	if !strings.EqualFold(header[1], csvHeaders[1]) {
		return nil, fmt.Errorf("%w: unexpected CSV header %v", shared.ErrInvalidInput, header)
	}

	fields := []models.Fields{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", shared.ErrInvalidInput, line, err)
		}

		servings, err := strconv.Atoi(strings.TrimSpace(record[4]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid servings %q", shared.ErrInvalidInput, line, record[4])
		}

		fields = append(fields, models.Fields{
			Title:        record[1],
			Ingredients:  record[2],
			Instructions: record[3],
			Servings:     servings,
			Description:  record[5],
			ImageURL:     record[6],
		})
	}
	return fields, nil
}
