package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/recipebox/internal/repositories"
	"github.com/desertthunder/recipebox/internal/server"
	"github.com/desertthunder/recipebox/internal/shared"
)

// Serve opens the database, bootstraps the schema and runs the API until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	config := r.config.Server
	if cmd.IsSet("host") {
		config.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		port := cmd.Int("port")
		if port <= 0 || port > 65535 {
			return fmt.Errorf("%w: port %d out of range", shared.ErrInvalidArgument, port)
		}
		config.Port = port
	}

	db, _, err := r.openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	store := repositories.NewRecipeRepository(db)
	return server.Run(ctx, config, store, r.logger)
}
