package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/preview"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>",
		Short: "Convert a colour between hex and OKLCH",
		Long: `Print a colour as hex and OKLCH. OKLCH input is clamped to its domain and
mapped into the sRGB gamut by reducing chroma, so the hex value is always
displayable.

Examples:
  okbase16 convert '#7aa2f7'
  okbase16 convert 'oklch(0.7 0.3 140)'
  okbase16 convert 220,0.17,0.68`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colour.ParseColour(args[0])
			if err != nil {
				return err
			}
			c = c.Validate()
			hex := colour.ToHex(c)

			w := cmd.OutOrStdout()
			opts := a.previewOptions(w)
			fmt.Fprintf(w, "%s hex:     %s\n", preview.Block(hex, 2, opts), hex)
			fmt.Fprintf(w, "%s oklch:   %s\n", preview.Block(hex, 2, opts), colour.FormatOKLCH(c))
			if gamut := colour.GamutClamp(c); gamut != c {
				fmt.Fprintf(w, "%s in sRGB: %s\n", preview.Block(hex, 2, opts), colour.FormatOKLCH(gamut))
			}
			return nil
		},
	}
}
