package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/swatches/internal/app"
	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
)

var saveCmd = &cobra.Command{
	Use:   "save NAME HEX...",
	Short: "Save a named palette",
	Long: `Save a named palette to the configured store.

Examples:
  swatches save "Sea" "#1d3557" "#457b9d" "#a8dadc" "#f1faee" "#e63946"
  swatches save Mono "#000" "#fff" --store memory`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSave,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved palettes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listJSON bool

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the records as JSON")
}

// withApp opens the configured adapters for a one-shot command.
func withApp(ctx context.Context, fn func(a *app.App) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.Background()) }()
	return fn(a)
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	return withApp(ctx, func(a *app.App) error {
		rec, err := a.Library.Save(ctx, args[0], args[1:])
		if err != nil {
			return fmt.Errorf("failed to save palette: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q as #%d (%s)\n", rec.Name, rec.SequenceNumber, rec.ID)
		return nil
	})
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmdContext(cmd)
	return withApp(ctx, func(a *app.App) error {
		records, err := a.Library.LoadAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load palettes: %w", err)
		}
		if listJSON {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(records)
		}
		printLibrary(cmd.OutOrStdout(), records)
		return nil
	})
}

func printLibrary(w io.Writer, records []domain.SavedPalette) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No saved palettes")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(w, "%3d  %-20s %s  %s\n", rec.SequenceNumber, rec.Name, theme.Chips(rec.Colors), strings.Join(rec.Colors, " "))
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
