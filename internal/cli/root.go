package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "swatches",
	Short: "Random color palettes with locks, HSL tuning and a saved library",
	Long: `swatches generates random color palettes.

Lock the colors you like, regenerate the rest, fine-tune any swatch by hue,
saturation and lightness, and keep named palettes for later.

Settings come from SWATCHES_* environment variables; flags override them.`,
	SilenceUsage: true,
}

var (
	debug     bool
	storeFlag string
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose development logging")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Palette store: turso, file or memory")
}

// newLogger builds the process logger; --debug switches to development output.
func newLogger() (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadConfig reads the environment and applies the persistent flags.
func loadConfig() (*app.Config, error) {
	cfg, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if storeFlag != "" {
		cfg.Store = storeFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
