package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/locvowork/employee_roster/internal/bootstrap"
)

// serveCmd starts the HTTP API with configuration from the environment.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := bootstrap.NewApp()
		if err := app.Initialize(ctx); err != nil {
			return err
		}
		return app.Run(ctx)
	},
}
