// okbase16 - A Base16 colour scheme editor working in OKLCH
//
// okbase16 generates and edits 16-slot Base16 palettes, shares them as a
// compact hash and exports them to Base16 YAML and application themes.
package main

import (
	"os"

	"github.com/jmylchreest/okbase16/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
