package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/preview"
)

func newContrastCmd(a *app) *cobra.Command {
	var minLevel string

	cmd := &cobra.Command{
		Use:   "contrast",
		Short: "Check contrast against the background",
		Long: `Check the WCAG contrast ratio of base03 to base0F against base00, highest
first. With --min the command fails when any slot falls below the level.

Examples:
  okbase16 contrast
  okbase16 contrast --min aa`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			threshold, err := contrastThreshold(minLevel)
			if err != nil {
				return err
			}

			_, theme, err := a.theme(cmd)
			if err != nil {
				return err
			}
			results := colour.CheckContrast(theme.Hex())

			w := cmd.OutOrStdout()
			if err := preview.Contrast(w, theme, results, a.previewOptions(w)); err != nil {
				return err
			}
			if threshold == 0 {
				return nil
			}

			var failing []string
			for _, r := range results {
				if r.Ratio < threshold {
					failing = append(failing, r.Slot.String())
				}
			}
			if len(failing) > 0 {
				return fmt.Errorf("%d slot(s) below %s: %s", len(failing), strings.ToUpper(minLevel), strings.Join(failing, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&minLevel, "min", "", "fail when any slot is below this level (aa, aaa)")
	return cmd
}

func contrastThreshold(level string) (float64, error) {
	switch strings.ToLower(level) {
	case "":
		return 0, nil
	case "aa":
		return colour.ContrastAA, nil
	case "aaa":
		return colour.ContrastAAA, nil
	default:
		return 0, fmt.Errorf("invalid --min %q (expected aa or aaa)", level)
	}
}
