package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/preview"
)

const defaultGradientSteps = 5

func newGradientCmd(a *app) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "gradient <from> <to>",
		Short: "Interpolate between two colours in OKLCH",
		Long: `Print evenly spaced colours from <from> to <to> inclusive, interpolating
lightness and chroma linearly and hue along the shorter arc. Colours are hex or
OKLCH ("h,c,l" or "oklch(L C H)").

Examples:
  okbase16 gradient '#1a1b26' '#7aa2f7'
  okbase16 gradient 'oklch(0.65 0.18 0)' 'oklch(0.68 0.17 220)' --steps 9`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := colour.ParseColour(args[0])
			if err != nil {
				return fmt.Errorf("invalid <from>: %w", err)
			}
			to, err := colour.ParseColour(args[1])
			if err != nil {
				return fmt.Errorf("invalid <to>: %w", err)
			}
			colours, err := colour.Gradient(from, to, steps)
			if err != nil {
				return fmt.Errorf("--steps %d: %w", steps, err)
			}

			w := cmd.OutOrStdout()
			opts := a.previewOptions(w)
			table := NewTable("Step", "", "Hex", "OKLCH")
			for i, c := range colours {
				hex := colour.ToHex(c)
				table.AddRow(strconv.Itoa(i), preview.Block(hex, 4, opts), hex, colour.FormatOKLCH(c))
			}
			_, err = table.WriteTo(w)
			return err
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", defaultGradientSteps, "number of colours, including both ends")
	return cmd
}
