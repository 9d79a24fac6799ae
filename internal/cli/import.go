package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/okbase16/internal/colour"
	"github.com/jmylchreest/okbase16/internal/compression"
	"github.com/jmylchreest/okbase16/internal/editor"
	"github.com/jmylchreest/okbase16/internal/plugin/output/base16"
	"github.com/jmylchreest/okbase16/internal/security"
	"github.com/jmylchreest/okbase16/internal/state"
	httputil "github.com/jmylchreest/okbase16/internal/util/http"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml|url>",
		Short: "Import a Base16 YAML scheme",
		Long: `Read a Base16 YAML scheme, plain or xz-compressed, from a file or an
http(s) URL and print its share hash. The imported scheme starts in manual
mode; editing flags apply on top of it.

Examples:
  okbase16 import tokyo-night.yaml
  okbase16 import tokyo-night.yaml.xz --lightness 0.05
  okbase16 import https://example.com/schemes/tokyo-night.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scheme, meta, err := importScheme(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("imported scheme", "path", args[0], "name", meta.Name)

			session, err := editor.New(state.Default(), a.logger.Named("editor")).Apply(
				editor.SetColours(scheme),
				editor.SetMetadata(meta),
			)
			if err != nil {
				return err
			}
			s, err := a.applyEdits(cmd, session.State())
			if err != nil {
				return err
			}
			a.status(cmd, "✓ Imported %s by %s", s.Metadata.Name, s.Metadata.Author)
			fmt.Fprintln(cmd.OutOrStdout(), state.Encode(s))
			return nil
		},
	}
}

// importScheme reads the colours and metadata of a Base16 file or URL.
func importScheme(ctx context.Context, source string) (colour.Scheme, state.Metadata, error) {
	var in io.Reader
	if httputil.IsURL(source) {
		data, err := httputil.Fetch(ctx, source, httputil.FetchOptions{})
		if err != nil {
			return colour.Scheme{}, state.Metadata{}, fmt.Errorf("failed to fetch scheme: %w", err)
		}
		in = bytes.NewReader(data)
	} else {
		f, err := os.Open(source)
		if err != nil {
			return colour.Scheme{}, state.Metadata{}, fmt.Errorf("failed to open scheme: %w", err)
		}
		defer f.Close()
		in = f
	}

	r, err := compression.NewReader(in, security.MaxSchemeFileSize)
	if err != nil {
		return colour.Scheme{}, state.Metadata{}, err
	}
	scheme, meta, err := base16.Parse(r)
	if err != nil {
		return colour.Scheme{}, state.Metadata{}, fmt.Errorf("%s: %w", source, err)
	}
	return scheme, meta, nil
}
