package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	portssvc "github.com/SscSPs/trust_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trust_ledger_app/internal/core/services"
	"github.com/SscSPs/trust_ledger_app/internal/middleware"
	"github.com/SscSPs/trust_ledger_app/internal/platform/config"
	"github.com/SscSPs/trust_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/trust_ledger_app/pkg/database"
)

var (
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "trustctl",
		Short: "Operator tooling for the trust ledger",
		Long: `trustctl runs the trust ledger's operational tasks against the database:
applying migrations, sweeping trust accounts for negative balances,
printing reconciliation reports and minting development tokens.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL connection URL (overrides PGSQL_URL)")
	rootCmd.PersistentFlags().String("migrations-path", "", "migration source URL (overrides MIGRATIONS_PATH)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("PGSQL_URL", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("MIGRATIONS_PATH", rootCmd.PersistentFlags().Lookup("migrations-path"))
	_ = viper.BindPFlag("LOG_LEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(complianceCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(tokenCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(viper.GetString("LOG_LEVEL"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", viper.GetString("LOG_LEVEL"), err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	return nil
}

// openServices connects to the database and builds the service container.
// Commands run without the distributed lock; they only read or flag rows.
func openServices(ctx context.Context) (*portssvc.ServiceContainer, func(), error) {
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), nil)
	return container, func() { database.ClosePgxPool(pool) }, nil
}

// commandContext carries the CLI logger the way the HTTP middleware carries a request logger.
func commandContext(cmd *cobra.Command) context.Context {
	return middleware.WithLogger(cmd.Context(), slog.Default().With(slog.String("command", cmd.CommandPath())))
}
