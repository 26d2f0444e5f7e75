package main

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/clientbook/internal/clients/app"
	"github.com/aussiebroadwan/clientbook/pkg/slogx"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default when no command is given)",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger := app.NewLogger(cfg)

		st, err := app.OpenStore(cfg)
		if err != nil {
			return err
		}
		logger.Info("database migrations applied successfully", "driver", cfg.DatabaseDriver)
		return st.Close()
	},
}

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the clients listed in a YAML fixtures file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := app.LoadConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		path := seedFile
		if path == "" {
			path = cfg.SeedFile
		}
		if path == "" {
			return fmt.Errorf("no fixtures file: pass --file or set CLIENTS_SEED_FILE")
		}

		st, err := app.OpenStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := slogx.WithContext(context.Background(), app.NewLogger(cfg))
		created, err := app.SeedStore(ctx, st, path)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d clients\n", len(created))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixtures file (default $CLIENTS_SEED_FILE)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run()
}
