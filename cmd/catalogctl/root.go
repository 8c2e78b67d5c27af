package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Nomet5/cake-app-sub003/config"
	"github.com/Nomet5/cake-app-sub003/internal/apperr"
	"github.com/Nomet5/cake-app-sub003/internal/app"
	"github.com/Nomet5/cake-app-sub003/internal/envelope"
	"github.com/Nomet5/cake-app-sub003/pkg/database"
	"github.com/Nomet5/cake-app-sub003/pkg/logger"
)

// cli holds what the persistent flags and config resolve to for one run.
type cli struct {
	sqlitePath string
	logLevel   string

	cfg    *config.Config
	logger logger.ZapLogger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect and prepare the bakery catalog",
		Long: `catalogctl runs catalog queries against the configured database and
prints the same JSON envelopes the HTTP and gRPC APIs return.

It reads the same environment (and .env file) as the servers.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if c.sqlitePath != "" {
				cfg.Database.Driver = database.DriverSQLite
				cfg.Database.SQLitePath = c.sqlitePath
			}
			c.cfg = cfg

			lc := cfg.ZapLogger()
			lc.Level = c.logLevel
			c.logger = logger.NewZapLogger(lc)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.sqlitePath, "sqlite", "", "use this SQLite file instead of the configured database")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "error", "log level for diagnostics")

	root.AddCommand(
		c.migrateCmd(),
		c.seedCmd(),
		c.productsCmd(),
		c.categoriesCmd(),
		c.chefsCmd(),
		c.invalidateCmd(),
	)
	return root
}

func (c *cli) open(ctx context.Context) (*app.Catalog, error) {
	return app.New(ctx, c.cfg, c.logger)
}

// printEnvelope writes a success envelope, or a failure envelope followed by
// the error so the exit status is non-zero.
func printEnvelope[T any](cmd *cobra.Command, data T, meta envelope.Meta, err error) error {
	var out any
	if err != nil {
		out = envelope.Failure[T](apperr.PublicMessage(err, envelope.GenericMessage), apperr.Code(err), envelope.Meta{})
	} else {
		out = envelope.Success(data, meta)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(out); encErr != nil {
		return fmt.Errorf("write output: %w", encErr)
	}
	return err
}
