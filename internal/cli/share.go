package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/state"
)

func newShareCmd(a *app) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the share hash of the scheme",
		Long: `Print the scheme as a share hash. The hash holds the unfiltered colours,
the mode, any non-default filters and any non-default name or author, and can
be passed back with --state.

Examples:
  okbase16 share --mode analogous --seed '#7aa2f7'
  okbase16 share --base-url https://example.com/okbase16/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.resolveState(cmd)
			if err != nil {
				return err
			}
			hash := state.Encode(s)
			if baseURL != "" {
				link, err := shareLink(baseURL, hash)
				if err != nil {
					return err
				}
				hash = link
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "prefix the hash with this URL")
	return cmd
}

// shareLink replaces any fragment of base with hash.
func shareLink(base, hash string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid --base-url: %w", err)
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String() + hash, nil
}
