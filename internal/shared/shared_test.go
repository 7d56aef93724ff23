package shared

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLogLevel(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  log.Level
	}{
		{name: "debug", input: "debug", want: log.DebugLevel},
		{name: "mixed case with whitespace", input: "  WARN ", want: log.WarnLevel},
		{name: "error", input: "error", want: log.ErrorLevel},
		{name: "empty falls back to info", input: "", want: log.InfoLevel},
		{name: "unknown falls back to info", input: "chatty", want: log.InfoLevel},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := WithLogger(NewLogger(&buf), "component", "test")
		logger.Info("hello")

		out := buf.String()
		if !strings.Contains(out, "hello") || !strings.Contains(out, "component=test") {
			t.Errorf("unexpected log output %q", out)
		}
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf)
		SetLogLevel(logger, log.ErrorLevel)
		logger.Info("quiet")

		if buf.Len() != 0 {
			t.Errorf("expected no output below error level, got %q", buf.String())
		}
	})

	t.Run("file logger creates directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "recipebox.log")
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		logger.Info("to file")
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if len(a) != 36 {
		t.Errorf("expected 36 character uuid, got %q", a)
	}
	if a == b {
		t.Error("expected unique ids")
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]int{"servings": 4}

	compact, err := MarshalJSON(data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(compact) != `{"servings":4}` {
		t.Errorf("unexpected compact output %s", compact)
	}

	pretty, err := MarshalJSON(data, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pretty) != "{\n  \"servings\": 4\n}" {
		t.Errorf("unexpected pretty output %s", pretty)
	}

	if _, err := MarshalJSON(make(chan int), false); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestDatabase(t *testing.T) {
	ctx := context.Background()

	t.Run("in-memory schema", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		exists, err := HasSchema(ctx, db)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if exists {
			t.Fatal("expected fresh database to have no schema")
		}

		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("schema creation should be idempotent: %v", err)
		}

		exists, err = HasSchema(ctx, db)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !exists {
			t.Fatal("expected schema to exist")
		}
	})

	t.Run("column defaults", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}

		_, err = db.ExecContext(ctx,
			"INSERT INTO recipes (title, ingredients, instructions, servings) VALUES ('t', 'i', 's', 2)")
		if err != nil {
			t.Fatalf("failed to insert: %v", err)
		}

		var description, imageURL string
		if err := db.QueryRowContext(ctx, "SELECT description, image_url FROM recipes").Scan(&description, &imageURL); err != nil {
			t.Fatalf("failed to query: %v", err)
		}
		if description != "Delicious. You need to try it!" {
			t.Errorf("unexpected default description %q", description)
		}
		if !strings.HasPrefix(imageURL, "https://images.pexels.com/photos/9986228/") {
			t.Errorf("unexpected default image url %q", imageURL)
		}
	})

	t.Run("file database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "recipes.db")
		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, 4, 2)
		if got := db.Stats().MaxOpenConnections; got != 4 {
			t.Errorf("expected 4 max open connections, got %d", got)
		}

		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
	})

	t.Run("dsn", func(t *testing.T) {
		if got := dsn(":memory:"); got != ":memory:" {
			t.Errorf("unexpected dsn %q", got)
		}
		if got := dsn("file:x.db?mode=ro"); got != "file:x.db?mode=ro" {
			t.Errorf("unexpected dsn %q", got)
		}
		if got := dsn("./r.db"); got != "file:./r.db?_busy_timeout=5000&_journal_mode=WAL" {
			t.Errorf("unexpected dsn %q", got)
		}
		if got := dsn("./a?b#c%d.db"); got != "file:./a%3Fb%23c%25d.db?_busy_timeout=5000&_journal_mode=WAL" {
			t.Errorf("unexpected dsn %q", got)
		}
	})

	t.Run("file name with URI delimiters", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "my?recipes#1.db")

		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := EnsureSchema(ctx, db); err != nil {
			t.Fatalf("failed to create schema: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected database file at %s: %v", path, err)
		}
	})
}
