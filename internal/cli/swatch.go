package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/plugin/output"
	"github.com/jmylchreest/okbase16/internal/preview"
)

func newSwatchCmd(a *app) *cobra.Command {
	var backup bool

	cmd := &cobra.Command{
		Use:   "swatch <out.png>",
		Short: "Write a PNG swatch of the scheme",
		Long: `Draw the 16 slots as a labelled 4x4 PNG grid. Use "-" to write to stdout.

Examples:
  okbase16 swatch scheme.png
  okbase16 swatch - --mode triadic > triadic.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, theme, err := a.theme(cmd)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := preview.Swatch(&buf, theme); err != nil {
				return err
			}
			if args[0] == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			path, err := output.ExpandHome(args[0])
			if err != nil {
				return err
			}
			if err := output.WriteFile(path, buf.Bytes(), backup, a.logger.Named("swatch")); err != nil {
				return err
			}
			a.status(cmd, "✓ Wrote swatch to: %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&backup, "backup", false, "keep an existing file as <name>.backup")
	return cmd
}
