//go:build windows
// +build windows

package signals

import (
	"os"
	"os/signal"
)

func init() {
	signal.Notify(sigCh, os.Interrupt)
}

// Handle receives signals until StopHandle closes the channel. Windows has
// no SIGHUP; ctrl-c arrives as os.Interrupt.
func Handle() {
	for sig := range sigCh {
		if sig == os.Interrupt {
			runInterruptHandlers()
		}
	}
}
