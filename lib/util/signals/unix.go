//go:build !windows
// +build !windows

package signals

import (
	"os/signal"
	"syscall"
)

func init() {
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
}

// Handle receives signals until StopHandle closes the channel. SIGHUP is
// treated the same as an interrupt: for a pipe filter, a vanished
// controlling terminal means the consumer of our output is gone.
func Handle() {
	for sig := range sigCh {
		switch sig {
		case syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP:
			runInterruptHandlers()
		}
	}
}
