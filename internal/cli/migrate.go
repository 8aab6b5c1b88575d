package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/swatches/internal/adapters/turso"
	"github.com/emiliopalmerini/swatches/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [version]",
	Short: "Run database migrations",
	Long: `Run database migrations on the libsql store.

Without arguments, runs all pending migrations (up).
With a version number, migrates to that specific version (up or down as needed).

Examples:
  swatches migrate      # Run all pending migrations
  swatches migrate 0    # Rollback all migrations`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	target := -1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %s", args[0])
		}
		target = v
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := turso.NewDB(cfg.Turso)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := cmdContext(cmd)
	m := migrate.New(db.DB, log.Named("migrate"))

	applied, err := m.To(ctx, target)
	if err != nil {
		return err
	}
	version, _, err := m.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if applied == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Already at version %d\n", version)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated to version %d (%d migrations applied)\n", version, applied)
	return nil
}
