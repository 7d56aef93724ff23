package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/recipebox/internal/services"
	"github.com/desertthunder/recipebox/internal/shared"
	"github.com/desertthunder/recipebox/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	client     services.RecipeService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.RecipeEngine

	// set when the client was built from config rather than injected
	ownsClient bool
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Client     services.RecipeService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Config.Client.Timeout}
	}

	r := &Runner{
		configPath: opts.ConfigPath,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		client:     opts.Client,
		ownsClient: opts.Client == nil,
	}
	r.setConfig(opts.Config)
	return r
}

// Configure resolves the --config file and environment overrides before any command runs.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	r.configPath = cmd.String("config")

	config, err := shared.ResolveConfig(r.configPath)
	if err != nil {
		return ctx, err
	}
	r.setConfig(config)
	r.logger.Debug("configuration loaded", "path", r.configPath, "db", config.Database.Path, "api", config.Client.BaseURL)
	return ctx, nil
}

func (r *Runner) setConfig(config *shared.Config) {
	r.config = config
	shared.SetLogLevel(r.logger, shared.ParseLogLevel(config.Log.Level))

	if r.ownsClient {
		r.client = services.NewRecipeClient(config.Client.BaseURL, r.httpClient)
	}
	r.engine = tasks.NewRecipeEngine(r.client)
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, setupCommand, recipesCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openDatabase opens the configured database and makes sure the recipes table exists.
// created reports whether the table had to be created.
func (r *Runner) openDatabase(ctx context.Context) (db *sql.DB, created bool, err error) {
	path := r.config.Database.Path
	r.logger.Info("opening database", "path", path)

	db, err = shared.NewDatabase(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create database: %w", err)
	}

	if path != ":memory:" {
		shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
	}

	exists, err := shared.HasSchema(ctx, db)
	if err != nil {
		db.Close()
		return nil, false, err
	}
	if !exists {
		r.logger.Info("creating recipes table", "path", path)
	}

	if err := shared.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, false, err
	}
	return db, !exists, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
