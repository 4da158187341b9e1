// Command shopctl runs one-off maintenance tasks against the shop database.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopapi/internal/config"
	"shopapi/internal/database"
	"shopapi/internal/logger"
)

// env is what every subcommand needs: a logger and an open database.
type env struct {
	lg *zap.Logger
	db *sql.DB
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shopctl",
		Short:         "Maintenance commands for the shop API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedAdminCmd(), newSeedTaxCmd())
	return root
}

// withEnv opens the database from the environment configuration and hands it to fn.
func withEnv(ctx context.Context, fn func(context.Context, *env) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	lg, err := logger.New(cfg.LogLevel, cfg.Location())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	return fn(ctx, &env{lg: lg, db: db})
}
