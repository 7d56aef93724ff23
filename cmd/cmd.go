// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// recipeFieldFlags are shared by add and update, which both send every field.
func recipeFieldFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "title",
			Aliases:  []string{"t"},
			Usage:    "Recipe title (max 100 characters)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "ingredients",
			Aliases:  []string{"i"},
			Usage:    "Comma separated ingredient list",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "instructions",
			Usage:    "Preparation steps",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "servings",
			Aliases:  []string{"s"},
			Usage:    "Number of servings",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "description",
			Aliases:  []string{"d"},
			Usage:    "Short description",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "image-url",
			Usage:    "Image URL",
			Required: true,
		},
	}
}

func idFlag() cli.Flag {
	return &cli.Int64Flag{
		Name:     "id",
		Usage:    "Recipe ID",
		Required: true,
	}
}

// serveCommand runs the HTTP API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the recipe API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "host",
				Usage: "Listen host (overrides config)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (overrides config and PORT)",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles database setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "database",
				Usage:  "Create the config file if missing and initialize the database schema",
				Action: r.SetupDatabase,
			},
			{
				Name:  "seed",
				Usage: "Insert a few sample recipes into an empty database",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Seed even when recipes already exist",
					},
				},
				Action: r.SetupSeed,
			},
		},
	}
}

// recipesCommand handles recipe operations against a running server.
func recipesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "recipes",
		Aliases: []string{"r"},
		Usage:   "Manage recipes through the API",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List all recipes",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
					},
				},
				Action: r.RecipesList,
			},
			{
				Name:   "add",
				Usage:  "Create a recipe",
				Flags:  recipeFieldFlags(),
				Action: r.RecipesAdd,
			},
			{
				Name:   "update",
				Usage:  "Replace every field of a recipe",
				Flags:  append([]cli.Flag{idFlag()}, recipeFieldFlags()...),
				Action: r.RecipesUpdate,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a recipe",
				Flags:   []cli.Flag{idFlag()},
				Action:  r.RecipesDelete,
			},
			{
				Name:  "export",
				Usage: "Export all recipes as JSON, CSV, Markdown or text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: json, csv, markdown, txt (default: from --output extension, else json)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
				},
				Action: r.RecipesExport,
			},
			{
				Name:  "import",
				Usage: "Create recipes from a JSON or CSV file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent requests (1-10)",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second",
						Value: 10,
					},
				},
				Action: r.RecipesImport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive recipe browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive recipe browser",
		Action:  r.TUI,
	}
}
