package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/app"
	"github.com/emiliopalmerini/swatches/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the terminal studio",
	Long: `Open the terminal studio.

Keys:
  ←/→     select a swatch        space  generate
  l       lock or unlock         a      adjust hue/saturation/lightness
  c       copy hex (OSC52)       w      save the palette
  o       open saved palettes    q      quit`,
	RunE: runTUI,
}

var tuiSlots int

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().IntVar(&tuiSlots, "slots", 0, "Number of swatches")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if tuiSlots > 0 {
		cfg.Slots = tuiSlots
	}

	// Log lines would tear the alternate screen.
	log := zap.NewNop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close(context.Background()) }()

	return tui.Run(ctx, a.Studio)
}
