//go:build !unix

package kitty

import (
	"fmt"
	"runtime"
)

// reloadAllKittyInstances is not supported without SIGUSR1.
func (p *Plugin) reloadAllKittyInstances() error {
	return fmt.Errorf("automatic reload is not supported on %s, restart kitty manually", runtime.GOOS)
}
