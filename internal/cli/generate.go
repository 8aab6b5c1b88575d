package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/swatches/internal/adapters/colors"
	"github.com/emiliopalmerini/swatches/internal/domain"
	"github.com/emiliopalmerini/swatches/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/swatches/internal/ports"
	"github.com/emiliopalmerini/swatches/internal/studio"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a random palette",
	Long: `Print a random palette.

Slots are numbered from 0. A locked slot keeps the given color.

Examples:
  swatches generate                         # Five random colors
  swatches generate --slots 3               # Three random colors
  swatches generate --lock 0=#1d3557        # Keep slot 0, randomize the rest
  swatches generate --json                  # Hex list as JSON`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateSlots int
	generateLocks []string
	generateJSON  bool
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateSlots, "slots", studio.DefaultSlots, "Number of swatches")
	generateCmd.Flags().StringArrayVar(&generateLocks, "lock", nil, "Lock a slot to a color, as SLOT=#HEX (repeatable)")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the palette as a JSON array")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	locks := make(map[int]domain.Color, len(generateLocks))
	for _, raw := range generateLocks {
		slot, c, err := parseLock(raw)
		if err != nil {
			return err
		}
		locks[slot] = c
	}

	views, err := generatePalette(cmdContext(cmd), generateSlots, locks, colors.NewService())
	if err != nil {
		return err
	}

	if generateJSON {
		hexes := make([]string, len(views))
		for i, v := range views {
			hexes[i] = v.Label
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(hexes)
	}
	printPalette(cmd.OutOrStdout(), views)
	return nil
}

// parseLock reads a SLOT=#HEX flag value.
func parseLock(raw string) (int, domain.Color, error) {
	slotPart, hexPart, ok := strings.Cut(raw, "=")
	if !ok {
		return 0, domain.Color{}, fmt.Errorf("invalid lock %q: want SLOT=#HEX", raw)
	}
	slot, err := strconv.Atoi(strings.TrimSpace(slotPart))
	if err != nil || slot < 0 {
		return 0, domain.Color{}, fmt.Errorf("invalid lock %q: slot must be a non-negative number", raw)
	}
	c, err := domain.ParseHex(strings.TrimSpace(hexPart))
	if err != nil {
		return 0, domain.Color{}, fmt.Errorf("invalid lock %q: %w", raw, err)
	}
	return slot, c, nil
}

// generatePalette runs one generation over a throwaway studio with the given
// slots pinned.
func generatePalette(ctx context.Context, slots int, locks map[int]domain.Color, svc ports.ColorService) ([]domain.SwatchView, error) {
	if slots <= 0 {
		return nil, fmt.Errorf("invalid slot count %d: must be positive", slots)
	}

	st := studio.New(slots, svc, nil, nil, nil)
	for slot, c := range locks {
		if err := st.Pin(slot, c); err != nil {
			return nil, fmt.Errorf("lock slot %d: %w", slot, err)
		}
	}
	if err := st.Regenerate(ctx); err != nil {
		return nil, err
	}
	return st.Snapshot().Swatches, nil
}

func printPalette(w io.Writer, views []domain.SwatchView) {
	for _, v := range views {
		chip := theme.Swatch(v.Background, v.Ink.Hex()).
			Padding(0, 2).
			Render(v.Label)
		suffix := ""
		if v.Locked {
			suffix = "  locked"
		}
		fmt.Fprintf(w, "%d  %s%s\n", v.Index, chip, suffix)
	}
}
