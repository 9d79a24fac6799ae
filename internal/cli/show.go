package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/filter"
	"github.com/jmylchreest/okbase16/internal/harmony"
	"github.com/jmylchreest/okbase16/internal/preview"
	"github.com/jmylchreest/okbase16/internal/state"
)

// schemeJSON is the --json form of show.
type schemeJSON struct {
	Name           string           `json:"name"`
	Author         string           `json:"author"`
	Mode           harmony.Mode     `json:"mode"`
	Filters        filter.Filters   `json:"filters"`
	FiltersEnabled bool             `json:"filtersEnabled"`
	Colours        colour.Scheme    `json:"colours"`
	Hex            colour.HexScheme `json:"hex"`
	Share          string           `json:"share"`
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the palette",
		Long: `Show the 16 slots of the scheme with a colour block, hex value, OKLCH
value and role. Filters are applied unless --no-filters is set.

Examples:
  okbase16 show
  okbase16 show --mode triadic --seed '#e06c75'
  okbase16 show --state '#c=...' --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, theme, err := a.theme(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, s, theme.Scheme)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s by %s (%s)\n\n", s.Metadata.Name, s.Metadata.Author, s.Mode)
			return preview.Palette(w, theme, a.previewOptions(w))
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the scheme as JSON")
	return cmd
}

func writeJSON(cmd *cobra.Command, s state.State, display colour.Scheme) error {
	out := schemeJSON{
		Name:           s.Metadata.Name,
		Author:         s.Metadata.Author,
		Mode:           s.Mode,
		Filters:        s.Filters,
		FiltersEnabled: s.FiltersEnabled,
		Colours:        display,
		Hex:            display.Hex(),
		Share:          state.Encode(s),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode scheme: %w", err)
	}
	return nil
}
